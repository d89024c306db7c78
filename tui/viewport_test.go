package tui

import (
	"testing"
)

func checkInvariants(t *testing.T, v *Viewport, ctx string) {
	t.Helper()

	if v.Total == 0 {
		if v.Selected != 0 || v.First != 0 {
			t.Errorf("%s: empty list must have selected=0 first=0, got sel=%d first=%d",
				ctx, v.Selected, v.First)
		}
		return
	}
	if v.Selected < 0 || v.Selected >= v.Total {
		t.Errorf("%s: selected %d out of range [0,%d)", ctx, v.Selected, v.Total)
	}
	if v.Visible < 1 {
		return
	}
	if v.Selected < v.First || v.Selected >= v.First+v.Visible {
		t.Errorf("%s: selected %d not visible in [%d,%d)",
			ctx, v.Selected, v.First, v.First+v.Visible)
	}
	maxFirst := v.Total - v.Visible
	if maxFirst < 0 {
		maxFirst = 0
	}
	if v.First > maxFirst {
		t.Errorf("%s: first %d exceeds max %d", ctx, v.First, maxFirst)
	}
}

func TestViewportScrollDown(t *testing.T) {
	v := NewViewport(100, 10)

	v.Select(15)
	if v.First != 6 {
		t.Errorf("Expected first=6 after selecting 15, got %d", v.First)
	}
	checkInvariants(t, v, "scroll down")
}

func TestViewportScrollUp(t *testing.T) {
	v := NewViewport(100, 10)
	v.Select(15) // first becomes 6

	v.Select(2)
	if v.First != 2 {
		t.Errorf("Expected first=2 after selecting 2, got %d", v.First)
	}
	checkInvariants(t, v, "scroll up")
}

func TestViewportSelectionWithinWindowKeepsFirst(t *testing.T) {
	v := NewViewport(100, 10)
	v.Select(15) // first=6

	v.Select(8)
	if v.First != 6 {
		t.Errorf("Expected first unchanged at 6, got %d", v.First)
	}
}

func TestViewportShrinkingContentClampsSelection(t *testing.T) {
	v := NewViewport(50, 10)
	v.Select(45)

	v.SetTotal(20)
	if v.Selected != 19 {
		t.Errorf("Expected selection clamped to 19, got %d", v.Selected)
	}
	checkInvariants(t, v, "shrink")

	v.SetTotal(0)
	checkInvariants(t, v, "empty")
}

func TestViewportResizeKeepsSelection(t *testing.T) {
	v := NewViewport(100, 20)
	v.Select(50)

	v.SetVisible(5)
	if v.Selected != 50 {
		t.Errorf("Resize must not move selection, got %d", v.Selected)
	}
	checkInvariants(t, v, "resize smaller")

	v.SetVisible(200)
	if v.Selected != 50 {
		t.Errorf("Resize must not move selection, got %d", v.Selected)
	}
	if v.First != 0 {
		t.Errorf("Expected first=0 when everything fits, got %d", v.First)
	}
	checkInvariants(t, v, "resize larger")
}

func TestViewportNavigation(t *testing.T) {
	v := NewViewport(30, 10)

	v.MoveBy(-1)
	if v.Selected != 0 {
		t.Errorf("Moving above top must clamp, got %d", v.Selected)
	}

	v.End()
	if v.Selected != 29 {
		t.Errorf("Expected End at 29, got %d", v.Selected)
	}

	v.MoveBy(1)
	if v.Selected != 29 {
		t.Errorf("Moving past bottom must clamp, got %d", v.Selected)
	}

	v.Home()
	if v.Selected != 0 || v.First != 0 {
		t.Errorf("Expected Home at 0/0, got sel=%d first=%d", v.Selected, v.First)
	}

	v.PageDown()
	checkInvariants(t, v, "page down")
	v.PageUp()
	if v.Selected != 0 {
		t.Errorf("Expected PageUp back to 0, got %d", v.Selected)
	}
}

// TestViewportInvariantSweep exercises every combination in a small grid,
// the way the scroll rules are expected to hold universally
func TestViewportInvariantSweep(t *testing.T) {
	const n = 12
	for total := 0; total <= n; total++ {
		for visible := 1; visible <= n; visible++ {
			for sel := 0; sel < total; sel++ {
				v := NewViewport(total, visible)
				v.Select(sel)
				checkInvariants(t, v, "sweep select")

				// Follow with a shrink and a resize, invariants must survive
				v.SetTotal(total / 2)
				checkInvariants(t, v, "sweep shrink")
				v.SetVisible(visible/2 + 1)
				checkInvariants(t, v, "sweep revisible")
			}
		}
	}
}

// TestViewportTierIndependence verifies the controller behaves identically
// whether indices represent a flat list or categories-plus-episodes
func TestViewportTierIndependence(t *testing.T) {
	// 3 categories with 5 episodes each, flattened: 18 rows
	flat := NewViewport(18, 7)
	tiered := NewViewport(18, 7)

	moves := []int{3, 9, 17, 4, 0, 12}
	for _, m := range moves {
		flat.Select(m)
		tiered.Select(m)
		if flat.First != tiered.First || flat.Selected != tiered.Selected {
			t.Fatalf("Divergence at move %d: flat=%+v tiered=%+v", m, flat, tiered)
		}
	}
}
