package render

import (
	"testing"
)

func TestNewFrameBlank(t *testing.T) {
	f := NewFrame(80, 24)
	if f.Width() != 80 || f.Height() != 24 {
		t.Fatalf("Expected 80x24, got %dx%d", f.Width(), f.Height())
	}
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if c := f.At(y, x); c != BlankCell {
				t.Fatalf("Expected blank cell at (%d,%d), got %+v", y, x, c)
			}
		}
	}
}

func TestNewFrameZeroDimension(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {0, 0}, {-3, 5}, {5, -1}} {
		f := NewFrame(dims[0], dims[1])
		// Either axis non-positive collapses to the empty 0x0 frame
		if f.Width() != 0 || f.Height() != 0 {
			t.Errorf("NewFrame(%d, %d) = %dx%d, want 0x0",
				dims[0], dims[1], f.Width(), f.Height())
		}
		if f.Row(0) != nil {
			t.Errorf("Expected no rows for %dx%d", dims[0], dims[1])
		}
		// Access must clamp, not panic
		_ = f.At(0, 0)
		f.Set(0, 0, Cell{Rune: 'x'})
	}
}

func TestFrameSetAt(t *testing.T) {
	f := NewFrame(10, 10)
	c := Cell{Rune: 'A'}
	f.Set(5, 3, c)
	if got := f.At(5, 3); got != c {
		t.Errorf("Expected %+v, got %+v", c, got)
	}

	// Out of bounds writes are dropped
	f.Set(-1, 0, c)
	f.Set(0, 100, c)
	if got := f.At(0, 0); got != BlankCell {
		t.Errorf("Out of bounds write leaked: %+v", got)
	}
}

func TestFrameEqual(t *testing.T) {
	a := NewFrame(10, 5)
	b := NewFrame(10, 5)
	if !a.Equal(b) {
		t.Error("Expected blank frames to be equal")
	}

	b.Set(2, 2, Cell{Rune: 'x'})
	if a.Equal(b) {
		t.Error("Expected frames to differ after write")
	}
}

func TestFrameEqualDimensionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on dimension mismatch")
		}
	}()
	NewFrame(10, 5).Equal(NewFrame(5, 10))
}
