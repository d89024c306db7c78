package tui

import (
	"github.com/kerrislane/tvshelf/render"
)

// Component is a pure transform from (width, theme, selection) to rows of
// cells. Implementations must be deterministic, perform no I/O, and never
// return a row wider than the requested width. Zero or negative width
// yields no rows.
type Component interface {
	Render(width int, th Theme, selected bool) [][]render.Cell
}

// textCells converts a string to a single padded row of cells in the given
// style. Truncation counts display columns, never bytes; wide runes emit a
// continuation cell so column math stays honest for CJK titles.
func textCells(s string, st Style, width int) []render.Cell {
	if width <= 0 {
		return nil
	}

	s = Truncate(s, width)

	row := make([]render.Cell, 0, width)
	for _, r := range s {
		rw := runeWidth(r)
		if len(row)+rw > width {
			break
		}
		row = append(row, render.Cell{Rune: r, Fg: st.Fg, Bg: st.Bg, Attrs: st.Attr})
		if rw == 2 {
			row = append(row, render.Cell{Fg: st.Fg, Bg: st.Bg, Attrs: st.Attr})
		}
	}
	for len(row) < width {
		row = append(row, render.Cell{Rune: ' ', Fg: st.Fg, Bg: st.Bg, Attrs: st.Attr})
	}
	return row
}

// overlayCells writes s into row starting at col, keeping the row's
// background. Used to place fragments onto an already-styled bar.
func overlayCells(row []render.Cell, col int, s string, st Style) {
	x := col
	for _, r := range s {
		rw := runeWidth(r)
		if x < 0 || x+rw > len(row) {
			break
		}
		bg := row[x].Bg
		row[x] = render.Cell{Rune: r, Fg: st.Fg, Bg: bg, Attrs: st.Attr}
		if rw == 2 {
			row[x+1] = render.Cell{Fg: st.Fg, Bg: bg, Attrs: st.Attr}
		}
		x += rw
	}
}
