// Package tui provides the terminal front-ends for term2048: a Bubble Tea
// prompt UI for interactive terminals and a line-oriented loop for pipes.
// Both only do I/O; the turn logic lives in package session.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/engine"
	"github.com/vovakirdan/term2048/internal/render"
	"github.com/vovakirdan/term2048/internal/session"
)

// Options configure a front-end.
type Options struct {
	Render   render.Options
	Renderer *lipgloss.Renderer // nil means lipgloss's default renderer
	Logger   *log.Logger        // nil discards
}

// Model is the Bubble Tea model for the prompt UI.
type Model struct {
	sess     *session.Session
	input    textinput.Model
	keys     KeyMap
	help     help.Model
	renderer *lipgloss.Renderer
	opts     render.Options
	logger   *log.Logger

	notice   string
	won      bool
	lost     bool
	quitting bool
}

// NewModel creates a prompt UI model for sess.
func NewModel(sess *session.Session, opts Options) Model {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	input := textinput.New()
	input.Prompt = sess.Prompt()
	input.CharLimit = 16
	input.Focus()

	return Model{
		sess:     sess,
		input:    input,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		renderer: renderer,
		opts:     opts.Render,
		logger:   logger,
		won:      sess.Won(),
		lost:     sess.Lost(),
	}
}

// Init starts the cursor blinking, or quits at once on a stuck board.
func (m Model) Init() tea.Cmd {
	if m.lost {
		return tea.Quit
	}
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			return m.submit(engine.DirUp.String())
		case key.Matches(msg, m.keys.Down):
			return m.submit(engine.DirDown.String())
		case key.Matches(msg, m.keys.Left):
			return m.submit(engine.DirLeft.String())
		case key.Matches(msg, m.keys.Right):
			return m.submit(engine.DirRight.String())
		case key.Matches(msg, m.keys.Submit):
			entry := m.input.Value()
			m.input.Reset()
			return m.submit(entry)
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit hands entry to the session and updates the view state.
func (m Model) submit(entry string) (tea.Model, tea.Cmd) {
	out, err := m.sess.Submit(entry)
	switch {
	case errors.Is(err, session.ErrGameOver):
		m.lost = true
		return m, tea.Quit
	case errors.Is(err, session.ErrInvalidDirection):
		m.notice = session.InvalidNotice
		return m, nil
	case err != nil:
		m.logger.Error("move failed", "error", err)
		m.notice = err.Error()
		return m, nil
	}

	m.notice = ""
	m.won = out.Won
	m.input.Prompt = m.sess.Prompt()
	if out.Lost {
		m.lost = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := m.renderer.NewStyle().Bold(true)
	banner := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	warn := m.renderer.NewStyle().Foreground(lipgloss.Color("9"))

	var b strings.Builder
	b.WriteString(title.Render(session.WelcomeMessage))
	b.WriteString("\n\n")
	b.WriteString(boardView(m.renderer, m.sess.Board().Grid(), m.opts))
	b.WriteString("\n\n")

	if m.lost {
		b.WriteString(warn.Render(session.LossMessage))
		b.WriteString("\n")
		return b.String()
	}

	if m.won {
		b.WriteString(banner.Render(session.WinMessage))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(warn.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// Lost reports whether the game ended with no legal move.
func (m Model) Lost() bool {
	return m.lost
}

// Run starts the Bubble Tea program for sess. It returns when the game is
// lost, the player quits or ctx is cancelled.
func Run(ctx context.Context, sess *session.Session, opts Options, progOpts ...tea.ProgramOption) error {
	model := NewModel(sess, opts)

	p := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithContext(ctx)}, progOpts...)...)

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run prompt ui: %w", err)
	}

	if m, ok := final.(Model); ok {
		m.logger.Info("session ended",
			"lost", m.lost,
			"moves", sess.Moves(),
			"max", sess.Board().MaxTile(),
		)
	}
	return nil
}
