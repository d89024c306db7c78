package terminal

import (
	"testing"
)

func TestParseControl(t *testing.T) {
	cases := []struct {
		in   byte
		want Key
	}{
		{0x09, KeyTab},
		{0x0d, KeyEnter},
		{0x0a, KeyEnter},
		{0x08, KeyBackspace},
		{0x03, KeyCtrlC},
		{0x04, KeyCtrlD},
		{0x15, KeyCtrlU},
	}
	for _, tc := range cases {
		ev := parseControl(tc.in)
		if ev.Key != tc.want {
			t.Errorf("parseControl(%#x) = %v, want %v", tc.in, ev.Key, tc.want)
		}
	}
}

func TestParseEscapeCSI(t *testing.T) {
	cases := []struct {
		in   string
		want Key
		mod  Modifier
	}{
		{"\x1b[A", KeyUp, ModNone},
		{"\x1b[B", KeyDown, ModNone},
		{"\x1b[5~", KeyPageUp, ModNone},
		{"\x1b[6~", KeyPageDown, ModNone},
		{"\x1b[H", KeyHome, ModNone},
		{"\x1b[F", KeyEnd, ModNone},
		{"\x1b[3~", KeyDelete, ModNone},
		{"\x1b[Z", KeyBacktab, ModShift},
		{"\x1b[1;5A", KeyUp, ModCtrl},
		{"\x1bOA", KeyUp, ModNone},
		{"\x1bOP", KeyF1, ModNone},
	}
	for _, tc := range cases {
		consumed, ev := parseEscape([]byte(tc.in))
		if consumed != len(tc.in) {
			t.Errorf("parseEscape(%q) consumed %d, want %d", tc.in, consumed, len(tc.in))
		}
		if ev.Key != tc.want {
			t.Errorf("parseEscape(%q) = %v, want %v", tc.in, ev.Key, tc.want)
		}
		if ev.Modifiers != tc.mod {
			t.Errorf("parseEscape(%q) mod = %v, want %v", tc.in, ev.Modifiers, tc.mod)
		}
	}
}

func TestParseEscapeIncomplete(t *testing.T) {
	// A split CSI sequence must not be consumed until the terminator arrives
	consumed, _ := parseEscape([]byte("\x1b[1;5"))
	if consumed != 0 {
		t.Errorf("Expected 0 consumed for incomplete sequence, got %d", consumed)
	}
}

func TestParseEscapeAltRune(t *testing.T) {
	consumed, ev := parseEscape([]byte("\x1bx"))
	if consumed != 2 {
		t.Fatalf("Expected 2 consumed, got %d", consumed)
	}
	if ev.Key != KeyRune || ev.Rune != 'x' || ev.Modifiers != ModAlt {
		t.Errorf("Expected Alt+x, got key=%v rune=%q mod=%v", ev.Key, ev.Rune, ev.Modifiers)
	}
}

func TestDecodeRune(t *testing.T) {
	cases := []struct {
		in   []byte
		want rune
		size int
	}{
		{[]byte("a"), 'a', 1},
		{[]byte("é"), 'é', 2},
		{[]byte("世"), '世', 3},
		{[]byte("🎬"), '🎬', 4},
	}
	for _, tc := range cases {
		r, size := decodeRune(tc.in)
		if r != tc.want || size != tc.size {
			t.Errorf("decodeRune(%v) = %q/%d, want %q/%d", tc.in, r, size, tc.want, tc.size)
		}
	}

	// Overlong encoding must be rejected
	if r, _ := decodeRune([]byte{0xc0, 0x80}); r != 0xFFFD {
		t.Errorf("Expected replacement char for overlong encoding, got %q", r)
	}
}
