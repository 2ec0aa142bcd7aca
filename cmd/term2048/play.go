package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/render"
	"github.com/vovakirdan/term2048/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game of 2048.

Controls:
  up/w, down/s, left/a, right/d  - Type a direction and press Enter
  Arrow keys                     - Move directly (full-screen prompt only)
  Esc/Ctrl+C                     - Quit

Examples:
  term2048 play
  term2048 play --seed 7 --ui line`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	mode := resolveMode(cfg.UI.Mode)
	logger, closeLog, err := newLogger(cfg.Log, mode)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close of the log file

	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	rt.Color = cfg.UI.Color
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	if rt.ScreenW < render.Width() || rt.ScreenH < render.Height() {
		logger.Warn("terminal smaller than the board", "width", rt.ScreenW, "height", rt.ScreenH)
	}

	board := engine.New(engine.NewRand(rt.Seed))
	sess := session.New(board, logger)
	opts := tui.Options{
		Render: render.Options{
			Color:   rt.Color,
			Palette: paletteFromConfig(cfg.UI.Palette),
		},
		Logger: logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("starting game", "mode", mode, "seed", rt.Seed, "color", rt.Color)

	if mode == config.UIModeTUI {
		err = tui.Run(ctx, sess, opts)
	} else {
		err = tui.RunLines(ctx, os.Stdin, os.Stdout, sess, opts)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("ui") {
		cfg.UI.Mode = config.UIMode(flagUI)
	}
	if flagNoColor {
		cfg.UI.Color = false
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// resolveMode turns auto into tui when both stdin and stdout are terminals.
func resolveMode(mode config.UIMode) config.UIMode {
	if mode != config.UIModeAuto {
		return mode
	}
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		return config.UIModeTUI
	}
	return config.UIModeLine
}

func paletteFromConfig(p map[int]int) render.Palette {
	palette := make(render.Palette, len(p))
	for exp, code := range p {
		palette[exp] = core.Color(code)
	}
	return palette
}
