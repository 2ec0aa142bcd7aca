package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/session"
)

// RunLines plays sess as a plain prompt loop: print the board, ask for a
// direction, reprompt until a legal one is entered, repeat until no move
// is left. Closing the input ends the game without error; cancelling ctx
// returns ctx.Err() even while waiting for input.
func RunLines(ctx context.Context, in io.Reader, out io.Writer, sess *session.Session, opts Options) error {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.NewRenderer(out)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()
	lines, readErr := scanLines(readCtx, in)
	printBoard := func() {
		fmt.Fprintln(out, boardView(renderer, sess.Board().Grid(), opts.Render))
	}

	fmt.Fprintln(out, session.WelcomeMessage)
	printBoard()

	for {
		if sess.Lost() {
			fmt.Fprintln(out, session.LossMessage)
			logger.Info("session ended", "lost", true, "moves", sess.Moves(), "max", sess.Board().MaxTile())
			return nil
		}

		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			if sess.Retry() {
				fmt.Fprintln(out, session.InvalidNotice)
				fmt.Fprintln(out)
			}
			fmt.Fprint(out, sess.Prompt())

			var entry string
			select {
			case <-ctx.Done():
				return ctx.Err()
			case line, ok := <-lines:
				if !ok {
					if err := <-readErr; err != nil {
						if ctxErr := ctx.Err(); ctxErr != nil {
							return ctxErr
						}
						return fmt.Errorf("read direction: %w", err)
					}
					fmt.Fprintln(out)
					logger.Info("input closed", "moves", sess.Moves())
					return nil
				}
				entry = line
			}

			_, err := sess.Submit(entry)
			if err == nil {
				break
			}
			if !errors.Is(err, session.ErrInvalidDirection) {
				return err
			}
		}

		fmt.Fprintln(out)
		printBoard()
		fmt.Fprintln(out)

		if sess.Won() {
			fmt.Fprintln(out, session.WinMessage)
		}
	}
}

// scanLines reads in line by line on its own goroutine so a blocked read
// never holds up cancellation. The lines channel is closed when input ends;
// readErr then carries the scanner error, or ctx.Err() if cancelled first.
func scanLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}
