// Package config provides YAML-based configuration loading for term2048.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// UIMode selects the front-end.
type UIMode string

const (
	UIModeAuto UIMode = "auto"
	UIModeTUI  UIMode = "tui"
	UIModeLine UIMode = "line"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all term2048 settings.
type Config struct {
	UI  UIConfig  `yaml:"ui"`
	Log LogConfig `yaml:"log"`
}

// UIConfig defines how the board is shown.
type UIConfig struct {
	Mode    UIMode      `yaml:"mode"`
	Color   bool        `yaml:"color"`
	Palette map[int]int `yaml:"palette"` // log2(value) -> ANSI 256-colour code
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate checks values that YAML decoding cannot.
func (c Config) Validate() error {
	switch c.UI.Mode {
	case UIModeAuto, UIModeTUI, UIModeLine:
	default:
		return fmt.Errorf("%w: ui.mode %q (want auto, tui or line)", ErrInvalid, c.UI.Mode)
	}

	for exp, code := range c.UI.Palette {
		if exp < 1 || exp > 17 {
			return fmt.Errorf("%w: palette exponent %d out of range 1-17", ErrInvalid, exp)
		}
		if code < 0 || code > 255 {
			return fmt.Errorf("%w: palette colour %d for exponent %d out of range 0-255", ErrInvalid, code, exp)
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}
