package tui

// Viewport tracks the scroll/selection relationship for any list-like
// composite. It operates purely on integer indices and capacity; what the
// indices represent (flat rows, category/episode tiers) does not matter.
//
// Invariants after every adjustment:
//   - Total == 0 implies Selected == 0 and First == 0
//   - Selected < Total whenever Total > 0
//   - First <= Selected < First+Visible (when Visible > 0)
//   - First <= max(0, Total-Visible)
type Viewport struct {
	First    int // First visible index
	Selected int
	Total    int
	Visible  int // Viewport capacity in items
}

// NewViewport creates a viewport over total items with the given capacity
func NewViewport(total, visible int) *Viewport {
	v := &Viewport{Total: total, Visible: visible}
	v.adjust()
	return v
}

// Select moves the selection to idx, clamping and scrolling to keep it visible
func (v *Viewport) Select(idx int) {
	v.Selected = idx
	v.adjust()
}

// MoveBy moves the selection by delta
func (v *Viewport) MoveBy(delta int) {
	v.Select(v.Selected + delta)
}

// PageDown advances the selection by one viewport worth of items
func (v *Viewport) PageDown() {
	v.MoveBy(v.pageDelta())
}

// PageUp moves the selection back by one viewport worth of items
func (v *Viewport) PageUp() {
	v.MoveBy(-v.pageDelta())
}

// Home jumps to the first item
func (v *Viewport) Home() {
	v.Select(0)
}

// End jumps to the last item
func (v *Viewport) End() {
	v.Select(v.Total - 1)
}

// SetTotal updates the item count after content changed; the selection is
// clamped into range and the scroll rules re-applied
func (v *Viewport) SetTotal(total int) {
	v.Total = total
	v.adjust()
}

// SetVisible updates capacity after a resize without moving the selection
func (v *Viewport) SetVisible(visible int) {
	v.Visible = visible
	v.adjust()
}

func (v *Viewport) pageDelta() int {
	if v.Visible < 1 {
		return 1
	}
	return v.Visible
}

// adjust restores all invariants. Clamp selection first, then the two
// scroll rules, then the trailing-gap rule.
func (v *Viewport) adjust() {
	if v.Total < 0 {
		v.Total = 0
	}
	if v.Total == 0 {
		v.Selected = 0
		v.First = 0
		return
	}

	if v.Selected >= v.Total {
		v.Selected = v.Total - 1
	}
	if v.Selected < 0 {
		v.Selected = 0
	}

	if v.Visible < 1 {
		// No room to show anything; park the window on the selection so
		// a later SetVisible recovers cleanly
		v.First = v.Selected
		return
	}

	if v.Selected < v.First {
		v.First = v.Selected
	}
	if v.Selected >= v.First+v.Visible {
		v.First = v.Selected - v.Visible + 1
	}

	maxFirst := v.Total - v.Visible
	if maxFirst < 0 {
		maxFirst = 0
	}
	if v.First > maxFirst {
		v.First = maxFirst
	}
	if v.First < 0 {
		v.First = 0
	}
}
