// Package terminal is the output driver boundary: raw-mode lifecycle,
// input decoding, and the translation of batched cell runs into terminal
// writes. Nothing above this package touches the tty.
//
// Two Driver implementations exist: a hand-rolled ANSI writer (default)
// and a tcell-backed one for terminals where the ANSI path misbehaves.
package terminal
