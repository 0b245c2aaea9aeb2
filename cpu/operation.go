// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// Operation is a decoded instruction. The concrete types are Implied, Move,
// Single, Immediate, Wide, Branch and Unimplemented.
type Operation interface {
	Kind() Kind
	String() string
}

// Implied is an instruction without operands (NOP, HLT, RET, RNZ, XCHG, ...).
type Implied struct {
	Op Kind
}

// Move is MOV To,From.
type Move struct {
	To   Register
	From Register
}

// Single is an instruction with one register or register pair operand
// (ADD..CMP, INR, DCR, INX, DCX, DAD, PUSH, POP, STAX, LDAX).
type Single struct {
	Op       Kind
	Register Register
}

// Immediate carries an 8-bit immediate (MVI, ADI, ACI, SUI, SBI, ANI, XRI,
// ORI, CPI). Register is only meaningful for MVI.
type Immediate struct {
	Op       Kind
	Register Register
	Value    byte
}

// Wide carries a 16-bit immediate (LXI, STA, LDA, SHLD, LHLD). Register is
// only meaningful for LXI.
type Wide struct {
	Op       Kind
	Register Register
	Value    Word
}

// Branch is a jump or call to Position (JMP, Jcc, CALL, Ccc).
type Branch struct {
	Op       Kind
	Position Word
}

// Unimplemented is any I/O, interrupt control or RST opcode.
// Executing it changes nothing.
type Unimplemented struct {
	Opcode byte
}

var (
	_ Operation = Implied{}
	_ Operation = Move{}
	_ Operation = Single{}
	_ Operation = Immediate{}
	_ Operation = Wide{}
	_ Operation = Branch{}
	_ Operation = Unimplemented{}
)

func (op Implied) Kind() Kind       { return op.Op }
func (op Move) Kind() Kind          { return OP_MOV }
func (op Single) Kind() Kind        { return op.Op }
func (op Immediate) Kind() Kind     { return op.Op }
func (op Wide) Kind() Kind          { return op.Op }
func (op Branch) Kind() Kind        { return op.Op }
func (op Unimplemented) Kind() Kind { return OP_UNIMPLEMENTED }

// pairName names a register pair operand the way the assembler spells it.
func pairName(op Kind, r Register) string {
	switch {
	case r != REG_M:
		return r.String()
	case op == OP_PUSH || op == OP_POP:
		return "PSW"
	default:
		return "SP"
	}
}

// hexLiteral formats digits as an assembler hex literal, which must not start
// with a letter.
func hexLiteral(digits string) string {
	if digits[0] > '9' {
		digits = "0" + digits
	}
	return digits + "H"
}

func (op Implied) String() string {
	return op.Op.String()
}

func (op Move) String() string {
	return fmt.Sprintf("MOV %v,%v", op.To, op.From)
}

func (op Single) String() string {
	switch op.Op {
	case OP_INX, OP_DCX, OP_DAD, OP_PUSH, OP_POP, OP_STAX, OP_LDAX:
		return fmt.Sprintf("%v %v", op.Op, pairName(op.Op, op.Register))
	}
	return fmt.Sprintf("%v %v", op.Op, op.Register)
}

func (op Immediate) String() string {
	if op.Op == OP_MVI {
		return fmt.Sprintf("MVI %v,%v", op.Register, hexLiteral(fmt.Sprintf("%02X", op.Value)))
	}
	return fmt.Sprintf("%v %v", op.Op, hexLiteral(fmt.Sprintf("%02X", op.Value)))
}

func (op Wide) String() string {
	if op.Op == OP_LXI {
		return fmt.Sprintf("LXI %v,%v", pairName(op.Op, op.Register), hexLiteral(op.Value.String()))
	}
	return fmt.Sprintf("%v %v", op.Op, hexLiteral(op.Value.String()))
}

func (op Branch) String() string {
	return fmt.Sprintf("%v %v", op.Op, hexLiteral(op.Position.String()))
}

func (op Unimplemented) String() string {
	return fmt.Sprintf("DB %v", hexLiteral(fmt.Sprintf("%02X", op.Opcode)))
}
