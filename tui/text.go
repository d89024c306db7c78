package tui

import (
	"github.com/mattn/go-runewidth"
)

// Truncate truncates s with an ellipsis suffix if it exceeds maxWidth
// display columns. Counts columns, never bytes; a wide rune is never split.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// TruncateLeft truncates with an ellipsis prefix, keeping the end of s
func TruncateLeft(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}
	return runewidth.TruncateLeft(s, runewidth.StringWidth(s)-maxWidth+1, "…")
}

// PadRight pads s with spaces to width display columns
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PadLeft left-pads s with spaces to width display columns
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// PadCenter centers s within width display columns, the spare column
// going to the right when the split is uneven
func PadCenter(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return PadRight(PadLeft(s, runewidth.StringWidth(s)+gap/2), width)
}

// StringWidth returns display width in columns (not runes, not bytes)
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

func runeWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}
