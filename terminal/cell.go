package terminal

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// AttrStyle masks the style bits
const AttrStyle Attr = AttrBold | AttrDim | AttrItalic | AttrUnderline | AttrBlink | AttrReverse

// Cell represents a single terminal cell. A zero Rune renders as space.
// Cells are value types; equality is full-field comparison.
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Equal reports whether two cells would render identically.
// All fields participate: a space over a different background still differs.
func (c Cell) Equal(o Cell) bool {
	return c.Rune == o.Rune && c.Fg == o.Fg && c.Bg == o.Bg && c.Attrs == o.Attrs
}

// Batch is one contiguous run of cells to write at a position.
// Each batch costs one cursor-position operation plus one styled write.
type Batch struct {
	Row      int
	StartCol int
	Cells    []Cell
}
