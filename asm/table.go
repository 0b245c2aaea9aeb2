// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strings"
)

// EQU binds its label to an operand instead of an address.
const EQU = "EQU"

// ArgKind is the class of value an operand slot accepts.
type ArgKind int

const (
	ARG_REG     ArgKind = iota // register
	ARG_PAIR                   // register pair
	ARG_PAIR_BD                // B or D pair
	ARG_BYTE                   // byte
	ARG_WORD                   // word
	ARG_VECTOR                 // restart vector
)

// Size is the number of instruction bytes the operand occupies after the
// opcode.
func (ak ArgKind) Size() int {
	switch ak {
	case ARG_BYTE:
		return 1
	case ARG_WORD:
		return 2
	default:
		return 0
	}
}

// check validates a resolved value for the operand slot.
func (ak ArgKind) check(value int) (err error) {
	switch ak {
	case ARG_REG:
		if value < 0 || value > 7 {
			err = ErrRegister
		}
	case ARG_PAIR:
		if value < 0 || value > 6 || value&1 != 0 {
			err = ErrRegisterPair
		}
	case ARG_PAIR_BD:
		if value != 0 && value != 2 {
			err = ErrRegisterPair
		}
	case ARG_BYTE:
		if value < 0 || value > 0xff {
			err = ErrRange
		}
	case ARG_WORD:
		if value < 0 || value > 0xffff {
			err = ErrRange
		}
	case ARG_VECTOR:
		if value < 0 || value > 7 {
			err = ErrRange
		}
	}

	return
}

// arg is an operand slot. Register slots are or-ed into the opcode at shift.
type arg struct {
	kind  ArgKind
	shift int
}

var (
	argDst    = arg{ARG_REG, 3}
	argSrc    = arg{ARG_REG, 0}
	argPair   = arg{ARG_PAIR, 4}
	argPairBD = arg{ARG_PAIR_BD, 4}
	argByte   = arg{ARG_BYTE, 0}
	argWord   = arg{ARG_WORD, 0}
	argVector = arg{ARG_VECTOR, 3}
)

// encoding is the base opcode of a mnemonic and its operand slots.
type encoding struct {
	opcode byte
	args   []arg
}

// Size is the encoded length of the instruction in bytes.
func (enc encoding) Size() (size int) {
	size = 1
	for _, a := range enc.args {
		size += a.kind.Size()
	}

	return
}

// condSuffix are the condition code suffixes, in encoding order.
var condSuffix = []string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

// encodingMap maps upper case mnemonics to their encoding.
var encodingMap = buildEncodingMap()

func buildEncodingMap() (table map[string]encoding) {
	table = map[string]encoding{
		// Data movement
		"MOV":  {0x40, []arg{argDst, argSrc}},
		"MVI":  {0x06, []arg{argDst, argByte}},
		"LXI":  {0x01, []arg{argPair, argWord}},
		"STAX": {0x02, []arg{argPairBD}},
		"LDAX": {0x0a, []arg{argPairBD}},
		"STA":  {0x32, []arg{argWord}},
		"LDA":  {0x3a, []arg{argWord}},
		"SHLD": {0x22, []arg{argWord}},
		"LHLD": {0x2a, []arg{argWord}},
		"XCHG": {0xeb, nil},
		"XTHL": {0xe3, nil},
		"SPHL": {0xf9, nil},
		"PCHL": {0xe9, nil},
		"PUSH": {0xc5, []arg{argPair}},
		"POP":  {0xc1, []arg{argPair}},

		// Arithmetic
		"INR": {0x04, []arg{argDst}},
		"DCR": {0x05, []arg{argDst}},
		"INX": {0x03, []arg{argPair}},
		"DCX": {0x0b, []arg{argPair}},
		"DAD": {0x09, []arg{argPair}},
		"ADD": {0x80, []arg{argSrc}},
		"ADC": {0x88, []arg{argSrc}},
		"SUB": {0x90, []arg{argSrc}},
		"SBB": {0x98, []arg{argSrc}},
		"ANA": {0xa0, []arg{argSrc}},
		"XRA": {0xa8, []arg{argSrc}},
		"ORA": {0xb0, []arg{argSrc}},
		"CMP": {0xb8, []arg{argSrc}},
		"ADI": {0xc6, []arg{argByte}},
		"ACI": {0xce, []arg{argByte}},
		"SUI": {0xd6, []arg{argByte}},
		"SBI": {0xde, []arg{argByte}},
		"ANI": {0xe6, []arg{argByte}},
		"XRI": {0xee, []arg{argByte}},
		"ORI": {0xf6, []arg{argByte}},
		"CPI": {0xfe, []arg{argByte}},
		"DAA": {0x27, nil},

		// Rotate and flags
		"RLC": {0x07, nil},
		"RRC": {0x0f, nil},
		"RAL": {0x17, nil},
		"RAR": {0x1f, nil},
		"CMA": {0x2f, nil},
		"STC": {0x37, nil},
		"CMC": {0x3f, nil},

		// Control
		"JMP":  {0xc3, []arg{argWord}},
		"CALL": {0xcd, []arg{argWord}},
		"RET":  {0xc9, nil},
		"NOP":  {0x00, nil},
		"HLT":  {0x76, nil},

		// Machine control and I/O
		"EI":  {0xfb, nil},
		"DI":  {0xf3, nil},
		"IN":  {0xdb, []arg{argByte}},
		"OUT": {0xd3, []arg{argByte}},
		"RST": {0xc7, []arg{argVector}},
	}

	for cc, suffix := range condSuffix {
		field := byte(cc << 3)
		table["J"+suffix] = encoding{0xc2 | field, []arg{argWord}}
		table["C"+suffix] = encoding{0xc4 | field, []arg{argWord}}
		table["R"+suffix] = encoding{0xc0 | field, nil}
	}

	return
}

// sizeOf returns the encoded size of a mnemonic, independent of its
// operands.
func sizeOf(code string) (size int, err error) {
	code = strings.ToUpper(code)
	if code == EQU {
		return
	}

	enc, ok := encodingMap[code]
	if !ok {
		err = ErrInstructionUnknown
		return
	}

	size = enc.Size()

	return
}

// Code encodes a single operation, resolving its operands through symbols.
// Operand words are emitted low byte first.
func Code(op *Operation, symbols SymbolMap) (code []byte, err error) {
	mnemonic := strings.ToUpper(op.Code)
	if mnemonic == EQU {
		return
	}

	enc, ok := encodingMap[mnemonic]
	if !ok {
		err = &ErrSymbol{Name: op.Code, Err: ErrInstructionUnknown}
		return
	}

	if len(op.Operands) != len(enc.args) {
		err = &ErrOperands{Code: mnemonic, Expected: len(enc.args), Given: len(op.Operands)}
		return
	}

	opcode := enc.opcode
	var data []byte
	for n, a := range enc.args {
		operand := op.Operands[n]

		var value int
		value, err = symbols.Resolve(operand)
		if err == nil {
			err = a.kind.check(value)
		}
		if err != nil {
			err = &ErrValue{Code: mnemonic, Operand: operand.String(), Err: err}
			return
		}

		switch a.kind {
		case ARG_REG, ARG_VECTOR:
			opcode |= byte(value << a.shift)
		case ARG_PAIR, ARG_PAIR_BD:
			opcode |= byte(value>>1) << a.shift
		case ARG_BYTE:
			data = append(data, byte(value))
		case ARG_WORD:
			data = append(data, byte(value), byte(value>>8))
		}
	}

	// MOV M,M would collide with HLT.
	if mnemonic == "MOV" && opcode == 0x76 {
		err = ErrInvalidOperation
		return
	}

	code = append([]byte{opcode}, data...)

	return
}
