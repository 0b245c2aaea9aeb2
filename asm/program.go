// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"iter"

	"github.com/ezrec/i8080/internal"
)

// Opcode is one assembled instruction and the source line it came from.
type Opcode struct {
	LineNo  int    // Source line number, 1-based.
	Address int    // Address of the first byte.
	Line    string // Source line text.
	Bytes   []byte // Encoded instruction.
}

// String returns the opcode as a listing line.
func (op Opcode) String() string {
	return fmt.Sprintf("%04X  % -11X %4d  %v", op.Address, op.Bytes, op.LineNo, op.Line)
}

// Tagged is a single program byte tagged with its source line.
type Tagged struct {
	Byte   byte
	LineNo int
}

type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the opcode covering address. The Opcode is nil if none does.
func (prog *Program) Debug(address int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if address >= op.Address && address < op.Address+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  address - op.Address,
			}
			break
		}
	}

	return
}

// Bytes iterates over every program byte by address.
func (prog *Program) Bytes() iter.Seq2[int, byte] {
	seqs := make([]iter.Seq2[int, byte], len(prog.Opcodes))
	for n, op := range prog.Opcodes {
		seqs[n] = func(yield func(address int, data byte) bool) {
			for index, data := range op.Bytes {
				if !yield(op.Address+index, data) {
					return
				}
			}
		}
	}

	return internal.IterSeq2Concat(seqs...)
}

// Binary is the program image, to be loaded at address 0.
func (prog *Program) Binary() (bin []byte) {
	for _, data := range prog.Bytes() {
		bin = append(bin, data)
	}

	return
}

// Tagged is the program image with each byte tagged by its source line.
func (prog *Program) Tagged() (tagged []Tagged) {
	for _, op := range prog.Opcodes {
		for _, data := range op.Bytes {
			tagged = append(tagged, Tagged{Byte: data, LineNo: op.LineNo})
		}
	}

	return
}
