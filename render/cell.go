// Package render owns the two live frames and turns the difference
// between them into the smallest set of terminal write batches.
package render

import (
	"github.com/kerrislane/tvshelf/terminal"
)

// Cell is an alias to terminal.Cell to avoid copying at the driver boundary
type Cell = terminal.Cell
type Attr = terminal.Attr

// BlankCell is the cleared state of every frame cell: a space in default
// colors. Composition overwrites what it needs and leaves the rest blank.
var BlankCell = Cell{Rune: ' '}
