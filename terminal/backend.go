package terminal

// Backend abstracts platform-specific terminal access so the ANSI driver
// can be tested against an in-memory implementation.
type Backend interface {
	// Init enters raw mode
	Init() error

	// Fini restores the previous terminal mode. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) error

	// Read blocks until input is available, the stop channel is closed,
	// or an error occurs. A nil slice with nil error means timeout.
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}
