// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"math/bits"
)

// Flags are the five 8080 status flags.
type Flags struct {
	Carry    bool
	AuxCarry bool
	Zero     bool
	Sign     bool
	Parity   bool
}

// PSW flag bit positions.
const (
	FLAG_CARRY     = byte(1 << 0)
	FLAG_PARITY    = byte(1 << 2)
	FLAG_AUX_CARRY = byte(1 << 4)
	FLAG_ZERO      = byte(1 << 6)
	FLAG_SIGN      = byte(1 << 7)
)

// Pack returns the flags as the low byte of the PSW.
func (fl Flags) Pack() (packed byte) {
	for _, bit := range []struct {
		set  bool
		mask byte
	}{
		{fl.Carry, FLAG_CARRY},
		{fl.Parity, FLAG_PARITY},
		{fl.AuxCarry, FLAG_AUX_CARRY},
		{fl.Zero, FLAG_ZERO},
		{fl.Sign, FLAG_SIGN},
	} {
		if bit.set {
			packed |= bit.mask
		}
	}
	return
}

// UnpackFlags decodes the low byte of the PSW.
func UnpackFlags(packed byte) Flags {
	return Flags{
		Carry:    packed&FLAG_CARRY != 0,
		Parity:   packed&FLAG_PARITY != 0,
		AuxCarry: packed&FLAG_AUX_CARRY != 0,
		Zero:     packed&FLAG_ZERO != 0,
		Sign:     packed&FLAG_SIGN != 0,
	}
}

// zsp returns the zero, sign and parity flags of result; carry and aux carry
// are left clear.
func zsp(result byte) Flags {
	return Flags{
		Zero:   result == 0,
		Sign:   result&0x80 != 0,
		Parity: bits.OnesCount8(result)%2 == 0,
	}
}

func bit(set bool) int {
	if set {
		return 1
	}
	return 0
}

// Add computes a + b + carry.
func Add(a, b byte, carry bool) (result byte, flags Flags) {
	c := bit(carry)
	sum := int(a) + int(b) + c
	result = byte(sum)
	flags = zsp(result)
	flags.Carry = sum > 0xff
	flags.AuxCarry = int(a&0xf)+int(b&0xf)+c > 0xf
	return
}

// Sub computes a - b - borrow. Carry is set on borrow out of bit 7, aux carry
// on borrow out of bit 3.
func Sub(a, b byte, borrow bool) (result byte, flags Flags) {
	c := bit(borrow)
	diff := int(a) - int(b) - c
	result = byte(diff)
	flags = zsp(result)
	flags.Carry = diff < 0
	flags.AuxCarry = int(a&0xf)-int(b&0xf)-c < 0
	return
}

// And computes a & b. Carry is cleared and aux carry reflects bit 3 of the
// operands, as on the 8080.
func And(a, b byte) (result byte, flags Flags) {
	result = a & b
	flags = zsp(result)
	flags.AuxCarry = (a|b)&0x08 != 0
	return
}

// Xor computes a ^ b, clearing carry and aux carry.
func Xor(a, b byte) (result byte, flags Flags) {
	result = a ^ b
	flags = zsp(result)
	return
}

// Or computes a | b, clearing carry and aux carry.
func Or(a, b byte) (result byte, flags Flags) {
	result = a | b
	flags = zsp(result)
	return
}

// Rlc rotates left, copying bit 7 into bit 0 and carry.
func Rlc(a byte) (result byte, carry bool) {
	carry = a&0x80 != 0
	result = bits.RotateLeft8(a, 1)
	return
}

// Rrc rotates right, copying bit 0 into bit 7 and carry.
func Rrc(a byte) (result byte, carry bool) {
	carry = a&0x01 != 0
	result = bits.RotateLeft8(a, -1)
	return
}

// Ral rotates left through carry.
func Ral(a byte, carryIn bool) (result byte, carry bool) {
	carry = a&0x80 != 0
	result = a<<1 | byte(bit(carryIn))
	return
}

// Rar rotates right through carry.
func Rar(a byte, carryIn bool) (result byte, carry bool) {
	carry = a&0x01 != 0
	result = a>>1 | byte(bit(carryIn))<<7
	return
}

// Daa applies the BCD correction to the accumulator a given the current flags.
func Daa(a byte, in Flags) (result byte, flags Flags) {
	var correction byte
	carry := in.Carry

	if a&0x0f > 9 || in.AuxCarry {
		correction |= 0x06
	}
	if a > 0x99 || in.Carry {
		correction |= 0x60
		carry = true
	}

	result, flags = Add(a, correction, false)
	flags.Carry = carry
	return
}
