package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// tcellDriver implements Driver over tcell.Screen. tcell carries its own
// terminfo database and wide-char handling, so this backend is the escape
// hatch for terminals where the raw ANSI path misbehaves.
type tcellDriver struct {
	screen  tcell.Screen
	eventCh chan Event
	stopCh  chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

func newTcellDriver() *tcellDriver {
	return &tcellDriver{
		eventCh: make(chan Event, 64),
		stopCh:  make(chan struct{}),
	}
}

func (d *tcellDriver) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	screen.HideCursor()
	d.screen = screen
	d.initialized = true

	Go(d.pollLoop)
	return nil
}

func (d *tcellDriver) Fini() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized || d.finalized {
		return
	}
	d.finalized = true
	close(d.stopCh)
	d.screen.Fini()
}

func (d *tcellDriver) Size() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized || d.finalized {
		return 80, 24
	}
	return d.screen.Size()
}

func (d *tcellDriver) Events() <-chan Event {
	return d.eventCh
}

func (d *tcellDriver) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.initialized && !d.finalized {
		d.screen.Sync()
	}
}

func (d *tcellDriver) Apply(batches []Batch) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized || d.finalized {
		return nil
	}

	for _, b := range batches {
		for i, c := range b.Cells {
			if c.Rune == 0 && i > 0 {
				continue // Continuation cell of a wide rune, tcell handles it
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			d.screen.SetContent(b.StartCol+i, b.Row, r, nil, tcellStyle(c))
		}
	}
	d.screen.Show()
	return nil
}

// tcellStyle converts cell colors and attributes to a tcell.Style
func tcellStyle(c Cell) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
		Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

func (d *tcellDriver) pollLoop() {
	for {
		select {
		case <-d.stopCh:
			return
		default:
		}

		ev := d.screen.PollEvent()
		if ev == nil {
			return // Screen finalized
		}

		switch tev := ev.(type) {
		case *tcell.EventResize:
			w, h := tev.Size()
			d.send(Event{Type: EventResize, Width: w, Height: h})
		case *tcell.EventKey:
			d.send(convertTcellKey(tev))
		}
	}
}

func (d *tcellDriver) send(ev Event) {
	select {
	case d.eventCh <- ev:
	default:
	}
}

var tcellKeyMap = map[tcell.Key]Key{
	tcell.KeyEscape:    KeyEscape,
	tcell.KeyEnter:     KeyEnter,
	tcell.KeyTab:       KeyTab,
	tcell.KeyBacktab:   KeyBacktab,
	tcell.KeyBackspace: KeyBackspace,
	tcell.KeyDelete:    KeyDelete,
	tcell.KeyUp:        KeyUp,
	tcell.KeyDown:      KeyDown,
	tcell.KeyLeft:      KeyLeft,
	tcell.KeyRight:     KeyRight,
	tcell.KeyHome:      KeyHome,
	tcell.KeyEnd:       KeyEnd,
	tcell.KeyPgUp:      KeyPageUp,
	tcell.KeyPgDn:      KeyPageDown,
	tcell.KeyF1:        KeyF1,
	tcell.KeyF2:        KeyF2,
	tcell.KeyF3:        KeyF3,
	tcell.KeyF4:        KeyF4,
	// DEL byte arrives as Backspace2 on most terminals
	tcell.KeyBackspace2: KeyBackspace,
}

func convertTcellKey(tev *tcell.EventKey) Event {
	ev := Event{Type: EventKey}

	if tev.Modifiers()&tcell.ModAlt != 0 {
		ev.Modifiers |= ModAlt
	}
	if tev.Modifiers()&tcell.ModShift != 0 {
		ev.Modifiers |= ModShift
	}
	if tev.Modifiers()&tcell.ModCtrl != 0 {
		ev.Modifiers |= ModCtrl
	}

	if k, ok := tcellKeyMap[tev.Key()]; ok {
		ev.Key = k
		return ev
	}
	if tev.Key() >= tcell.KeyCtrlA && tev.Key() <= tcell.KeyCtrlZ {
		ev.Key = KeyCtrlA + Key(tev.Key()-tcell.KeyCtrlA)
		return ev
	}
	if tev.Key() == tcell.KeyRune {
		ev.Key = KeyRune
		ev.Rune = tev.Rune()
		return ev
	}

	ev.Key = KeyNone
	return ev
}
