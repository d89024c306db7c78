package render

import (
	"github.com/kerrislane/tvshelf/terminal"
)

// BufferManager owns the current frame (what the terminal shows) and the
// desired frame (freshly composed this pass). It is single-threaded by
// construction: one instance, one event loop, no locking.
type BufferManager struct {
	current *Frame
	desired *Frame
}

// NewBufferManager creates both frames blank at the given dimensions
func NewBufferManager(width, height int) *BufferManager {
	return &BufferManager{
		current: NewFrame(width, height),
		desired: NewFrame(width, height),
	}
}

func (m *BufferManager) Width() int  { return m.desired.width }
func (m *BufferManager) Height() int { return m.desired.height }

// BeginFrame resets the desired frame to blank. Current is untouched.
func (m *BufferManager) BeginFrame() {
	m.desired.Blank()
}

// Compose copies component output into the desired frame at the given
// top-left offset. Cells falling outside the frame are silently clipped,
// which gives composite layouts graceful degradation for free.
func (m *BufferManager) Compose(rows [][]Cell, atRow, atCol int) {
	for dy, row := range rows {
		y := atRow + dy
		if y < 0 || y >= m.desired.height {
			continue
		}
		for dx, c := range row {
			x := atCol + dx
			if x < 0 || x >= m.desired.width {
				continue
			}
			m.desired.cells[y*m.desired.width+x] = c
		}
	}
}

// Commit diffs desired against current, batches changed cells into
// maximal contiguous per-row runs, then swaps desired into current.
// Any field inequality counts as changed; runs are bounded only by
// column contiguity, never merged across rows.
func (m *BufferManager) Commit() []terminal.Batch {
	var batches []terminal.Batch

	w, h := m.desired.width, m.desired.height
	for y := 0; y < h; y++ {
		rowStart := y * w
		x := 0
		for x < w {
			if m.desired.cells[rowStart+x].Equal(m.current.cells[rowStart+x]) {
				x++
				continue
			}

			start := x
			for x < w && !m.desired.cells[rowStart+x].Equal(m.current.cells[rowStart+x]) {
				x++
			}

			run := make([]Cell, x-start)
			copy(run, m.desired.cells[rowStart+start:rowStart+x])
			batches = append(batches, terminal.Batch{
				Row:      y,
				StartCol: start,
				Cells:    run,
			})
		}
	}

	// Ownership swap, no per-cell copy. The old current frame becomes
	// next pass's desired and is blanked by BeginFrame.
	m.current, m.desired = m.desired, m.current

	return batches
}

// Resize reallocates both frames. Current is cleared to blank so the next
// Commit treats every non-blank desired cell as changed (full repaint).
func (m *BufferManager) Resize(width, height int) {
	m.current = NewFrame(width, height)
	m.desired = NewFrame(width, height)
}

// Current exposes the committed frame for tests and snapshots
func (m *BufferManager) Current() *Frame {
	return m.current
}
