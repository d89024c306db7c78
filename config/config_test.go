package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kerrislane/tvshelf/terminal"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Terminal.Backend != terminal.BackendANSI {
		t.Errorf("backend = %q, want %q", cfg.Terminal.Backend, terminal.BackendANSI)
	}
	if cfg.Library.Path != "library.toml" {
		t.Errorf("library path = %q", cfg.Library.Path)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[terminal]
backend = "tcell"

[library]
path = "/data/shows.toml"

[colors]
current = "#FFCC00"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Terminal.Backend != terminal.BackendTcell {
		t.Errorf("backend = %q", cfg.Terminal.Backend)
	}
	if cfg.Library.Path != "/data/shows.toml" {
		t.Errorf("library path = %q", cfg.Library.Path)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level default lost: %q", cfg.Log.Level)
	}

	th, err := cfg.Theme()
	if err != nil {
		t.Fatalf("Theme: %v", err)
	}
	want := terminal.RGB{R: 0xFF, G: 0xCC, B: 0x00}
	if th.Current.Fg != want {
		t.Errorf("current fg = %+v, want %+v", th.Current.Fg, want)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[terminal]\nbackend = \"curses\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[terminal\nbackend ="), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestThemeRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Colors = map[string]string{"current": "#GGGGGG"}
	if _, err := cfg.Theme(); err == nil {
		t.Error("expected error for bad hex")
	}

	cfg.Colors = map[string]string{"sparkle": "#112233"}
	if _, err := cfg.Theme(); err == nil {
		t.Error("expected error for unknown category")
	}
}
