package tui

import (
	"github.com/kerrislane/tvshelf/render"
)

// List is the scrollable composite: it lays child components into rows,
// one item per row, windowed by its viewport. The viewport is re-fitted
// to the current item count and height on every render pass.
type List struct {
	Items []Component
	View  *Viewport
}

// Render produces at most height rows, each exactly width cells.
// Zero or negative dimensions produce no rows.
func (l *List) Render(width, height int, th Theme) [][]render.Cell {
	if width <= 0 || height <= 0 {
		// Keep viewport bookkeeping current even when there is no room
		l.View.SetTotal(len(l.Items))
		l.View.SetVisible(0)
		return nil
	}

	l.View.SetTotal(len(l.Items))
	l.View.SetVisible(height)

	rows := make([][]render.Cell, 0, height)
	for y := 0; y < height; y++ {
		idx := l.View.First + y
		if idx >= len(l.Items) {
			break
		}
		selected := l.View.Total > 0 && idx == l.View.Selected
		out := l.Items[idx].Render(width, th, selected)
		if len(out) == 0 {
			continue
		}
		// Leaf rows are single-line; extra lines would overlap the next
		// item and are dropped
		rows = append(rows, out[0])
	}
	return rows
}
