package render

import "fmt"

// Frame is a full-screen rectangular grid of cells, row-major.
// A frame of zero or negative dimension has zero rows and is valid.
type Frame struct {
	width  int
	height int
	cells  []Cell
}

// NewFrame creates a blank frame. A non-positive dimension on either axis
// yields the empty 0x0 frame, never an error.
func NewFrame(width, height int) *Frame {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	f := &Frame{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	f.Blank()
	return f
}

func (f *Frame) Width() int  { return f.width }
func (f *Frame) Height() int { return f.height }

// Blank resets every cell to the default using exponential copy
func (f *Frame) Blank() {
	if len(f.cells) == 0 {
		return
	}
	f.cells[0] = BlankCell
	for filled := 1; filled < len(f.cells); filled *= 2 {
		copy(f.cells[filled:], f.cells[:filled])
	}
}

// At returns the cell at (row, col). Out of bounds returns BlankCell.
func (f *Frame) At(row, col int) Cell {
	if row < 0 || row >= f.height || col < 0 || col >= f.width {
		return BlankCell
	}
	return f.cells[row*f.width+col]
}

// Set writes the cell at (row, col), silently dropping out-of-bounds writes
func (f *Frame) Set(row, col int, c Cell) {
	if row < 0 || row >= f.height || col < 0 || col >= f.width {
		return
	}
	f.cells[row*f.width+col] = c
}

// Row returns the row slice. Callers must not hold it across a resize.
func (f *Frame) Row(row int) []Cell {
	if row < 0 || row >= f.height {
		return nil
	}
	return f.cells[row*f.width : (row+1)*f.width]
}

// Equal compares two frames cell-wise. Comparing frames of different
// dimensions is a caller bug, not a renderable state.
func (f *Frame) Equal(o *Frame) bool {
	if f.width != o.width || f.height != o.height {
		panic(fmt.Sprintf("frame dimension mismatch: %dx%d vs %dx%d",
			f.width, f.height, o.width, o.height))
	}
	for i := range f.cells {
		if !f.cells[i].Equal(o.cells[i]) {
			return false
		}
	}
	return true
}
