package tui

import (
	"strings"

	"github.com/kerrislane/tvshelf/render"
)

// Header is the two-row top section: a title bar and a separator rule
type Header struct {
	Title string
	Dirty bool // Unsaved library changes
}

func (h Header) Render(width int, th Theme, _ bool) [][]render.Cell {
	if width <= 0 {
		return nil
	}

	title := h.Title
	row := textCells(" "+title, th.Header, width)
	if h.Dirty {
		const marker = "[+]"
		if at := width - len(marker) - 1; at > StringWidth(" "+title) {
			overlayCells(row, at, marker, Style{Fg: th.Dirty.Fg, Bg: th.Header.Bg, Attr: th.Dirty.Attr})
		}
	}

	rule := textCells(strings.Repeat("─", width), th.Rule, width)

	return [][]render.Cell{row, rule}
}

// StatusBar is the single bottom row: context text left, key hints right
type StatusBar struct {
	Left  string
	Hints []string
}

func (s StatusBar) Render(width int, th Theme, _ bool) [][]render.Cell {
	if width <= 0 {
		return nil
	}

	row := textCells(" "+s.Left, th.Status, width)

	if len(s.Hints) > 0 {
		hints := strings.Join(s.Hints, "  ")
		at := width - StringWidth(hints) - 1
		if at > StringWidth(" "+s.Left)+1 {
			overlayCells(row, at, hints, th.Hint)
		}
	}
	return [][]render.Cell{row}
}

// Menu is the modal overlay: a bordered box of menu rows with its own
// selection. It renders at its natural size; the caller centers it.
type Menu struct {
	Title string
	Items []MenuRow
	View  *Viewport
}

// Size returns the natural box dimensions for the given frame bounds
func (m *Menu) Size(maxWidth, maxHeight int) (int, int) {
	w := StringWidth(m.Title) + 6
	for _, it := range m.Items {
		if n := StringWidth(it.Label) + StringWidth(it.Hint) + 8; n > w {
			w = n
		}
	}
	if w > maxWidth {
		w = maxWidth
	}
	h := len(m.Items) + 2
	if h > maxHeight {
		h = maxHeight
	}
	return w, h
}

// Render produces the full box. Width or height too small for the border
// produces no rows.
func (m *Menu) Render(width, height int, th Theme) [][]render.Cell {
	if width < 2 || height < 2 {
		return nil
	}

	inner := height - 2
	m.View.SetTotal(len(m.Items))
	m.View.SetVisible(inner)

	rows := make([][]render.Cell, 0, height)
	rows = append(rows, boxEdge('┌', '┐', '─', " "+m.Title+" ", width, th))

	for y := 0; y < inner; y++ {
		idx := m.View.First + y
		row := textCells("", th.Menu, width)
		if idx < len(m.Items) {
			selected := idx == m.View.Selected
			item := m.Items[idx].Render(width-2, th, selected)
			if len(item) > 0 {
				copy(row[1:width-1], item[0])
			}
		}
		row[0] = render.Cell{Rune: '│', Fg: th.Rule.Fg, Bg: th.Menu.Bg}
		row[width-1] = render.Cell{Rune: '│', Fg: th.Rule.Fg, Bg: th.Menu.Bg}
		rows = append(rows, row)
	}

	rows = append(rows, boxEdge('└', '┘', '─', "", width, th))
	return rows
}

func boxEdge(left, right, fill rune, label string, width int, th Theme) []render.Cell {
	row := make([]render.Cell, width)
	for i := range row {
		row[i] = render.Cell{Rune: fill, Fg: th.Rule.Fg, Bg: th.Menu.Bg}
	}
	row[0] = render.Cell{Rune: left, Fg: th.Rule.Fg, Bg: th.Menu.Bg}
	row[width-1] = render.Cell{Rune: right, Fg: th.Rule.Fg, Bg: th.Menu.Bg}
	if label != "" && StringWidth(label)+4 <= width {
		overlayCells(row, 2, label, Style{Fg: th.Header.Fg, Bg: th.Menu.Bg, Attr: th.Header.Attr})
	}
	return row
}
