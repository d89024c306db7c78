package terminal

import (
	"bufio"
	"fmt"
	"sync"

	"github.com/mattn/go-runewidth"
)

// ansiDriver implements Driver with hand-rolled escape sequences over a
// raw-mode tty. Style sequences are coalesced: SGR is emitted only when
// the style of the cell being written differs from the last one emitted.
type ansiDriver struct {
	backend Backend
	writer  *bufio.Writer
	input   *inputReader

	colorMode ColorMode
	eventCh   chan Event

	cursorX     int
	cursorY     int
	cursorValid bool

	// Style state for coalescing
	lastFg    RGB
	lastBg    RGB
	lastAttr  Attr
	lastValid bool

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

func newANSIDriver(b Backend, colorMode ColorMode) *ansiDriver {
	return &ansiDriver{
		backend:   b,
		writer:    bufio.NewWriterSize(backendWriter{b}, 65536),
		colorMode: colorMode,
		eventCh:   make(chan Event, 64),
	}
}

// backendWriter adapts Backend.Write to io.Writer for bufio
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	if err := w.b.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (d *ansiDriver) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}

	if err := d.backend.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	d.backend.SetResizeHandler(func(w, h int) {
		// Newest resize wins, drop the stale one if unconsumed
		ev := Event{Type: EventResize, Width: w, Height: h}
		select {
		case d.eventCh <- ev:
		default:
			select {
			case <-d.eventCh:
			default:
			}
			d.eventCh <- ev
		}
	})

	w := d.writer
	w.Write(csiAltScreenEnter)
	w.Write(csiCursorHide)
	w.Write(csiAutoWrapOff)
	w.Write(csiClear)
	if err := w.Flush(); err != nil {
		d.backend.Fini()
		return fmt.Errorf("terminal init: %w", err)
	}

	d.input = newInputReader(d.backend, d.eventCh)
	d.input.start()

	d.initialized = true
	return nil
}

func (d *ansiDriver) Fini() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized || d.finalized {
		return
	}
	d.finalized = true

	d.input.stop()

	w := d.writer
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Flush()

	d.backend.Fini()
}

func (d *ansiDriver) Size() (int, int) {
	return d.backend.Size()
}

func (d *ansiDriver) Events() <-chan Event {
	return d.eventCh
}

// Invalidate forgets cursor and style state so the next Apply positions
// and styles from scratch. Call after anything else wrote to the tty.
func (d *ansiDriver) Invalidate() {
	d.mu.Lock()
	d.cursorValid = false
	d.lastValid = false
	d.mu.Unlock()
}

// Apply writes batches in order. Within a row, a short gap between the
// cursor and the next batch is crossed with cursor-forward instead of an
// absolute position, which is a few bytes cheaper.
func (d *ansiDriver) Apply(batches []Batch) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized || d.finalized {
		return nil
	}

	w := d.writer
	for _, b := range batches {
		x, y := b.StartCol, b.Row

		if !d.cursorValid || x != d.cursorX || y != d.cursorY {
			if d.cursorValid && y == d.cursorY && x > d.cursorX {
				writeCursorForward(w, x-d.cursorX)
			} else {
				writeCursorPos(w, x, y)
			}
			d.cursorX = x
			d.cursorY = y
			d.cursorValid = true
		}

		for i := 0; i < len(b.Cells); i++ {
			c := b.Cells[i]
			d.writeStyleCoalesced(w, c.Fg, c.Bg, c.Attrs)

			r := c.Rune
			if r == 0 {
				r = ' '
			}
			if r < 0x80 {
				w.WriteByte(byte(r))
				d.cursorX++
				continue
			}
			w.WriteRune(r)

			// Wide runes advance the cursor two columns and own the
			// following continuation cell
			rw := runewidth.RuneWidth(r)
			if rw < 1 {
				rw = 1
			}
			d.cursorX += rw
			if rw == 2 && i+1 < len(b.Cells) && b.Cells[i+1].Rune == 0 {
				i++
			}
		}
	}

	w.Write(csiSGR0)
	d.lastValid = false

	if err := w.Flush(); err != nil {
		return fmt.Errorf("terminal write: %w", err)
	}
	return nil
}

// writeStyleCoalesced emits a single combined SGR sequence when style changes
func (d *ansiDriver) writeStyleCoalesced(w *bufio.Writer, fg, bg RGB, attr Attr) {
	fgChanged := !d.lastValid || fg != d.lastFg
	bgChanged := !d.lastValid || bg != d.lastBg
	styleAttr := attr & AttrStyle
	attrChanged := !d.lastValid || styleAttr != d.lastAttr&AttrStyle

	if !fgChanged && !bgChanged && !attrChanged {
		return
	}

	if attrChanged {
		// Attribute change requires a reset first
		w.Write(csi)
		w.WriteByte('0')
		if styleAttr&AttrBold != 0 {
			w.Write([]byte(";1"))
		}
		if styleAttr&AttrDim != 0 {
			w.Write([]byte(";2"))
		}
		if styleAttr&AttrItalic != 0 {
			w.Write([]byte(";3"))
		}
		if styleAttr&AttrUnderline != 0 {
			w.Write([]byte(";4"))
		}
		if styleAttr&AttrBlink != 0 {
			w.Write([]byte(";5"))
		}
		if styleAttr&AttrReverse != 0 {
			w.Write([]byte(";7"))
		}
		d.writeFgInline(w, fg)
		d.writeBgInline(w, bg)
		w.WriteByte('m')
	} else if fgChanged && bgChanged {
		w.Write(csi)
		d.writeFgInline(w, fg)
		d.writeBgInline(w, bg)
		w.WriteByte('m')
	} else if fgChanged {
		d.writeFgFull(w, fg)
	} else if bgChanged {
		d.writeBgFull(w, bg)
	}

	d.lastFg = fg
	d.lastBg = bg
	d.lastAttr = attr
	d.lastValid = true
}

// writeFgInline writes fg color parameters (no CSI prefix, no 'm' suffix)
func (d *ansiDriver) writeFgInline(w *bufio.Writer, fg RGB) {
	w.WriteByte(';')
	if d.colorMode == ColorModeTrueColor {
		w.Write([]byte("38;2;"))
		writeInt(w, int(fg.R))
		w.WriteByte(';')
		writeInt(w, int(fg.G))
		w.WriteByte(';')
		writeInt(w, int(fg.B))
	} else {
		w.Write([]byte("38;5;"))
		writeInt(w, int(RGBTo256(fg)))
	}
}

// writeBgInline writes bg color parameters (no CSI prefix, no 'm' suffix)
func (d *ansiDriver) writeBgInline(w *bufio.Writer, bg RGB) {
	w.WriteByte(';')
	if d.colorMode == ColorModeTrueColor {
		w.Write([]byte("48;2;"))
		writeInt(w, int(bg.R))
		w.WriteByte(';')
		writeInt(w, int(bg.G))
		w.WriteByte(';')
		writeInt(w, int(bg.B))
	} else {
		w.Write([]byte("48;5;"))
		writeInt(w, int(RGBTo256(bg)))
	}
}

// writeFgFull writes a complete fg color sequence
func (d *ansiDriver) writeFgFull(w *bufio.Writer, fg RGB) {
	if d.colorMode == ColorModeTrueColor {
		w.Write(csiFgRGB)
		writeInt(w, int(fg.R))
		w.WriteByte(';')
		writeInt(w, int(fg.G))
		w.WriteByte(';')
		writeInt(w, int(fg.B))
		w.WriteByte('m')
	} else {
		w.Write(csiFg256)
		writeInt(w, int(RGBTo256(fg)))
		w.WriteByte('m')
	}
}

// writeBgFull writes a complete bg color sequence
func (d *ansiDriver) writeBgFull(w *bufio.Writer, bg RGB) {
	if d.colorMode == ColorModeTrueColor {
		w.Write(csiBgRGB)
		writeInt(w, int(bg.R))
		w.WriteByte(';')
		writeInt(w, int(bg.G))
		w.WriteByte(';')
		writeInt(w, int(bg.B))
		w.WriteByte('m')
	} else {
		w.Write(csiBg256)
		writeInt(w, int(RGBTo256(bg)))
		w.WriteByte('m')
	}
}
