// Package config loads the TOML configuration file and translates theme
// color overrides into concrete styles.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/kerrislane/tvshelf/terminal"
	"github.com/kerrislane/tvshelf/tui"
)

// Config is the full application configuration
type Config struct {
	Terminal TerminalConfig    `toml:"terminal"`
	Log      LogConfig         `toml:"log"`
	Library  LibraryConfig     `toml:"library"`
	Colors   map[string]string `toml:"colors"` // Semantic name to hex fg, see applyColors
}

type TerminalConfig struct {
	// Backend selects the output driver: "ansi" (default) or "tcell"
	Backend string `toml:"backend"`
}

type LogConfig struct {
	// File receives debug logs; empty disables logging entirely.
	// Never the tty: the driver owns that.
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type LibraryConfig struct {
	Path string `toml:"path"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Terminal: TerminalConfig{Backend: terminal.BackendANSI},
		Log:      LogConfig{Level: "info"},
		Library:  LibraryConfig{Path: "library.toml"},
	}
}

// Load merges the file at path over defaults. A missing file yields
// defaults; a malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	switch cfg.Terminal.Backend {
	case terminal.BackendANSI, terminal.BackendTcell:
	default:
		return nil, fmt.Errorf("config %s: unknown terminal backend %q", path, cfg.Terminal.Backend)
	}

	return cfg, nil
}

// Theme builds the render theme: defaults with configured foreground
// overrides applied per semantic category.
func (c *Config) Theme() (tui.Theme, error) {
	th := tui.DefaultTheme
	for name, hex := range c.Colors {
		rgb, err := terminal.ParseRGB(hex)
		if err != nil {
			return th, fmt.Errorf("config color %q: %w", name, err)
		}
		switch name {
		case "default":
			th.Default.Fg = rgb
		case "current":
			th.Current.Fg = rgb
		case "header":
			th.Header.Fg = rgb
		case "rule":
			th.Rule.Fg = rgb
		case "menu":
			th.Menu.Fg = rgb
		case "category":
			th.Category.Fg = rgb
		case "episode":
			th.Episode.Fg = rgb
		case "watched":
			th.Watched.Fg = rgb
		case "dirty":
			th.Dirty.Fg = rgb
		case "status":
			th.Status.Fg = rgb
		case "hint":
			th.Hint.Fg = rgb
		default:
			return th, fmt.Errorf("config color %q: unknown semantic category", name)
		}
	}
	return th, nil
}
