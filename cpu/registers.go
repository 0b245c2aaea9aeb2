// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// Registers is the 8080 register bank.
//
// Register M has no storage of its own: loads and stores through it go to
// Memory at the address held in H:L.
type Registers struct {
	memory *Memory

	reg     [8]byte // B, C, D, E, H, L, -, A
	pc      Word
	sp      Word
	flags   Flags
	stopped bool
}

// NewRegisters creates a zeroed register bank backed by mem.
func NewRegisters(mem *Memory) (rb *Registers) {
	rb = &Registers{
		memory: mem,
	}
	return
}

// Reset puts the bank into its power-on state: PC at 0, SP at 0xFFFF,
// all pairs and flags cleared, not stopped.
func (rb *Registers) Reset() {
	clear(rb.reg[:])
	rb.pc = Word{}
	rb.sp = MakeWord(0xffff)
	rb.flags = Flags{}
	rb.stopped = false
}

func (rb *Registers) check(r Register) {
	if r < REG_B || r > REG_A {
		panic(fmt.Sprintf("register %d out of range", int(r)))
	}
}

// Load reads a register. REG_M reads Memory at H:L.
func (rb *Registers) Load(r Register) byte {
	rb.check(r)
	if r == REG_M {
		return rb.memory.Load(rb.LoadX(REG_H))
	}
	return rb.reg[r]
}

// Store writes a register. REG_M writes Memory at H:L.
func (rb *Registers) Store(r Register, value byte) {
	rb.check(r)
	if r == REG_M {
		rb.memory.Store(rb.LoadX(REG_H), value)
		return
	}
	rb.reg[r] = value
}

// LoadX reads a register pair: REG_B (BC), REG_D (DE), REG_H (HL) or
// REG_PSW (A and the packed flags).
func (rb *Registers) LoadX(pair Register) Word {
	if !pair.Pair() {
		panic(fmt.Sprintf("register %v is not a pair", pair))
	}
	if pair == REG_PSW {
		return Word{High: rb.reg[REG_A], Low: rb.flags.Pack()}
	}
	return Word{High: rb.reg[pair], Low: rb.reg[pair+1]}
}

// StoreX writes a register pair. Storing REG_PSW unpacks the low byte into
// the flags.
func (rb *Registers) StoreX(pair Register, value Word) {
	if !pair.Pair() {
		panic(fmt.Sprintf("register %v is not a pair", pair))
	}
	if pair == REG_PSW {
		rb.reg[REG_A] = value.High
		rb.flags = UnpackFlags(value.Low)
		return
	}
	rb.reg[pair] = value.High
	rb.reg[pair+1] = value.Low
}

// Flags returns all five flags.
func (rb *Registers) Flags() Flags {
	return rb.flags
}

// SetFlags replaces all five flags.
func (rb *Registers) SetFlags(flags Flags) {
	rb.flags = flags
}

func (rb *Registers) Carry() bool    { return rb.flags.Carry }
func (rb *Registers) AuxCarry() bool { return rb.flags.AuxCarry }
func (rb *Registers) Zero() bool     { return rb.flags.Zero }
func (rb *Registers) Sign() bool     { return rb.flags.Sign }
func (rb *Registers) Parity() bool   { return rb.flags.Parity }

func (rb *Registers) SetCarry(value bool)    { rb.flags.Carry = value }
func (rb *Registers) SetAuxCarry(value bool) { rb.flags.AuxCarry = value }
func (rb *Registers) SetZero(value bool)     { rb.flags.Zero = value }
func (rb *Registers) SetSign(value bool)     { rb.flags.Sign = value }
func (rb *Registers) SetParity(value bool)   { rb.flags.Parity = value }

// ToggleCarry complements the carry flag.
func (rb *Registers) ToggleCarry() {
	rb.flags.Carry = !rb.flags.Carry
}

// ProgramCounter returns the address of the next byte to fetch.
func (rb *Registers) ProgramCounter() Word {
	return rb.pc
}

func (rb *Registers) SetProgramCounter(pc Word) {
	rb.pc = pc
}

func (rb *Registers) StackPointer() Word {
	return rb.sp
}

func (rb *Registers) SetStackPointer(sp Word) {
	rb.sp = sp
}

// Stopped is true once HLT has executed.
func (rb *Registers) Stopped() bool {
	return rb.stopped
}

func (rb *Registers) SetStopped(stopped bool) {
	rb.stopped = stopped
}

// String returns the register bank state as text.
func (rb *Registers) String() (text string) {
	flag := func(set bool, name string) string {
		if set {
			return name
		}
		return "-"
	}
	for _, pair := range []Register{REG_B, REG_D, REG_H, REG_PSW} {
		name := pair.String() + Register(pair+1).String()
		if pair == REG_PSW {
			name = "PSW"
		}
		text += fmt.Sprintf("% 4s: %v\n", name, rb.LoadX(pair))
	}
	text += fmt.Sprintf("% 4s: %v\n", "SP", rb.sp)
	text += fmt.Sprintf("% 4s: %v\n", "PC", rb.pc)
	text += fmt.Sprintf("% 4s: %s%s%s%s%s\n", "F",
		flag(rb.flags.Sign, "S"),
		flag(rb.flags.Zero, "Z"),
		flag(rb.flags.AuxCarry, "A"),
		flag(rb.flags.Parity, "P"),
		flag(rb.flags.Carry, "C"))
	if rb.stopped {
		text += fmt.Sprintf("% 4s: %v\n", "HLT", true)
	}
	return
}
