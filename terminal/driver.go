package terminal

import (
	"fmt"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventError  // Read error
	EventClosed // Input closed
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError
}

// Driver is the sole writer to the terminal device for the process's
// lifetime. It translates batched cell runs into cursor positioning and
// styled writes; everything above it works on in-memory frames.
type Driver interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Events returns the merged key/resize event channel
	Events() <-chan Event

	// Apply writes batches to the terminal. One cursor-position operation
	// plus one contiguous write per batch. I/O errors are returned, not
	// retried; the caller decides whether rendering can continue.
	Apply(batches []Batch) error

	// Invalidate forces the next Apply to redraw from scratch
	Invalidate()
}

// Backend names for config selection
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// New creates a Driver by backend name. Empty string selects ANSI.
func New(backend string) (Driver, error) {
	switch backend {
	case "", BackendANSI:
		return newANSIDriver(newUnixBackend(), DetectColorMode()), nil
	case BackendTcell:
		return newTcellDriver(), nil
	default:
		return nil, fmt.Errorf("unknown terminal backend %q", backend)
	}
}
