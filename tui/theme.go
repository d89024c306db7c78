// Package tui holds the component layer: pure transforms from application
// values to rows of cells, plus the theme and viewport state they share.
package tui

import "github.com/kerrislane/tvshelf/terminal"

// Style is a foreground/background pair with attributes
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// Theme defines semantic color pairs for the browser. Components treat it
// as an opaque read-only lookup table.
type Theme struct {
	Default  Style // Plain text, blank fill
	Current  Style // Selection bar
	Header   Style
	Rule     Style // Header separator line
	Category Style
	Episode  Style
	Watched  Style // Episode already seen
	Dirty    Style // Unsaved changes marker
	Status   Style
	Hint     Style // Key hints in the status bar
	Menu     Style
}

// DefaultTheme provides reasonable defaults
var DefaultTheme = Theme{
	Default:  Style{Fg: terminal.RGB{R: 200, G: 200, B: 200}, Bg: terminal.RGB{R: 20, G: 20, B: 30}},
	Current:  Style{Fg: terminal.RGB{R: 255, G: 255, B: 255}, Bg: terminal.RGB{R: 50, G: 50, B: 70}},
	Header:   Style{Fg: terminal.RGB{R: 255, G: 255, B: 255}, Bg: terminal.RGB{R: 40, G: 60, B: 90}, Attr: terminal.AttrBold},
	Rule:     Style{Fg: terminal.RGB{R: 60, G: 80, B: 100}, Bg: terminal.RGB{R: 20, G: 20, B: 30}},
	Category: Style{Fg: terminal.RGB{R: 130, G: 170, B: 220}, Bg: terminal.RGB{R: 20, G: 20, B: 30}, Attr: terminal.AttrBold},
	Episode:  Style{Fg: terminal.RGB{R: 200, G: 200, B: 200}, Bg: terminal.RGB{R: 20, G: 20, B: 30}},
	Watched:  Style{Fg: terminal.RGB{R: 100, G: 110, B: 120}, Bg: terminal.RGB{R: 20, G: 20, B: 30}},
	Dirty:    Style{Fg: terminal.RGB{R: 255, G: 80, B: 80}, Bg: terminal.RGB{R: 40, G: 60, B: 90}},
	Status:   Style{Fg: terminal.RGB{R: 140, G: 140, B: 140}, Bg: terminal.RGB{R: 20, G: 20, B: 30}},
	Hint:     Style{Fg: terminal.RGB{R: 100, G: 180, B: 200}, Bg: terminal.RGB{R: 20, G: 20, B: 30}},
	Menu:     Style{Fg: terminal.RGB{R: 220, G: 220, B: 220}, Bg: terminal.RGB{R: 30, G: 30, B: 50}},
}
