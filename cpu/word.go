// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// Word is a 16-bit value held as a high and low byte pair.
type Word struct {
	High byte
	Low  byte
}

// MakeWord splits a 16-bit value into a Word.
func MakeWord(value uint16) Word {
	return Word{High: byte(value >> 8), Low: byte(value)}
}

// Uint16 returns the Word as a 16-bit value.
func (w Word) Uint16() uint16 {
	return (uint16(w.High) << 8) | uint16(w.Low)
}

// Add returns the Word offset by delta, wrapping within 16 bits.
func (w Word) Add(delta int) Word {
	return MakeWord(uint16(int(w.Uint16()) + delta))
}

// String returns the Word as four hex digits.
func (w Word) String() string {
	return fmt.Sprintf("%02X%02X", w.High, w.Low)
}
