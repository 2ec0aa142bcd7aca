package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/term2048/internal/config"
)

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "term2048.log")

	logger, closeLog, err := newLogger(config.LogConfig{Level: "info", File: path}, config.UIModeTUI)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("hello", "moves", 3)
	logger.Debug("hidden")
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "hello") || !strings.Contains(out, "moves=3") {
		t.Errorf("log file missing entry: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug entry written at info level")
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	if _, _, err := newLogger(config.LogConfig{Level: "loud"}, config.UIModeLine); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestResolveModeKeepsExplicitMode(t *testing.T) {
	for _, mode := range []config.UIMode{config.UIModeTUI, config.UIModeLine} {
		if got := resolveMode(mode); got != mode {
			t.Errorf("resolveMode(%q) = %q", mode, got)
		}
	}
}

func TestPaletteFromConfig(t *testing.T) {
	p := paletteFromConfig(map[int]int{1: 196, 11: 226})
	if p[1] != 196 || p[11] != 226 || len(p) != 2 {
		t.Errorf("palette = %v", p)
	}
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"config"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config command: %v", err)
	}
	if buf.String() != string(config.DefaultYAML()) {
		t.Errorf("config output differs from embedded default:\n%s", buf.String())
	}
}

func TestPlayRejectsBadUIFlag(t *testing.T) {
	rootCmd.SetArgs([]string{"play", "--ui", "gui", "--config", writeConfig(t, "ui:\n  mode: line\n")})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagUI = ""
		flagConfig = ""
	})

	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "ui.mode") {
		t.Errorf("expected ui.mode validation error, got %v", err)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "term2048.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
