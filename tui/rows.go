package tui

import (
	"fmt"
	"time"

	"github.com/kerrislane/tvshelf/render"
)

// CategoryRow is a single category header line in the browse list
type CategoryRow struct {
	Name        string
	SeriesCount int
}

func (c CategoryRow) Render(width int, th Theme, selected bool) [][]render.Cell {
	if width <= 0 {
		return nil
	}

	st := th.Category
	if selected {
		st = th.Current
	}

	row := textCells("▸ "+c.Name, st, width)

	count := fmt.Sprintf("%d series", c.SeriesCount)
	if at := width - StringWidth(count) - 1; at > StringWidth("▸ "+c.Name)+1 {
		overlayCells(row, at, count, Style{Fg: st.Fg, Bg: st.Bg, Attr: st.Attr})
	}
	return [][]render.Cell{row}
}

// EpisodeRow is a single episode line: code, title, duration, watched mark
type EpisodeRow struct {
	Code     string // SxxEyy
	Title    string
	Duration time.Duration
	Watched  bool
}

func (e EpisodeRow) Render(width int, th Theme, selected bool) [][]render.Cell {
	if width <= 0 {
		return nil
	}

	st := th.Episode
	if e.Watched {
		st = th.Watched
	}
	if selected {
		st = th.Current
	}

	mark := " "
	if e.Watched {
		mark = "✓"
	}
	left := fmt.Sprintf("  %s %s  %s", mark, e.Code, e.Title)
	row := textCells(left, st, width)

	if e.Duration > 0 {
		dur := formatDuration(e.Duration)
		if at := width - StringWidth(dur) - 1; at > StringWidth(left)+1 {
			overlayCells(row, at, dur, st)
		}
	}
	return [][]render.Cell{row}
}

// MenuRow is a single menu entry with an optional key hint
type MenuRow struct {
	Label string
	Hint  string
}

func (m MenuRow) Render(width int, th Theme, selected bool) [][]render.Cell {
	if width <= 0 {
		return nil
	}

	st := th.Menu
	if selected {
		st = th.Current
	}

	row := textCells(" "+m.Label, st, width)
	if m.Hint != "" {
		if at := width - StringWidth(m.Hint) - 1; at > StringWidth(" "+m.Label)+1 {
			overlayCells(row, at, m.Hint, Style{Fg: th.Hint.Fg, Bg: st.Bg})
		}
	}
	return [][]render.Cell{row}
}

// formatDuration renders like "45m" or "1h02m"
func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	if m < 60 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%02dm", m/60, m%60)
}
