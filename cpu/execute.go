// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// Executor applies decoded Operations to the register bank and memory.
type Executor struct {
	Registers *Registers
	Memory    *Memory
}

// loadPair reads a 16-bit operand where index 6 means SP.
func (ex *Executor) loadPair(r Register) Word {
	if r == REG_SP {
		return ex.Registers.StackPointer()
	}
	return ex.Registers.LoadX(r)
}

// storePair writes a 16-bit operand where index 6 means SP.
func (ex *Executor) storePair(r Register, value Word) {
	if r == REG_SP {
		ex.Registers.SetStackPointer(value)
		return
	}
	ex.Registers.StoreX(r, value)
}

// test evaluates a branch condition against the flags.
func (ex *Executor) test(cond Cond) bool {
	rb := ex.Registers
	switch cond {
	case COND_NZ:
		return !rb.Zero()
	case COND_Z:
		return rb.Zero()
	case COND_NC:
		return !rb.Carry()
	case COND_C:
		return rb.Carry()
	case COND_PO:
		return !rb.Parity()
	case COND_PE:
		return rb.Parity()
	case COND_P:
		return !rb.Sign()
	case COND_M:
		return rb.Sign()
	}
	return false
}

// taken reports whether a jump, call or return of kind k branches.
func (ex *Executor) taken(k Kind) bool {
	cond, ok := k.Cond()
	if !ok {
		return true
	}
	return ex.test(cond)
}

// accumulate runs an ALU operation of kind k with the accumulator and value.
func (ex *Executor) accumulate(k Kind, value byte) {
	rb := ex.Registers
	a := rb.Load(REG_A)

	var result byte
	var flags Flags
	switch k {
	case OP_ADD, OP_ADI:
		result, flags = Add(a, value, false)
	case OP_ADC, OP_ACI:
		result, flags = Add(a, value, rb.Carry())
	case OP_SUB, OP_SUI, OP_CMP, OP_CPI:
		result, flags = Sub(a, value, false)
	case OP_SBB, OP_SBI:
		result, flags = Sub(a, value, rb.Carry())
	case OP_ANA, OP_ANI:
		result, flags = And(a, value)
	case OP_XRA, OP_XRI:
		result, flags = Xor(a, value)
	case OP_ORA, OP_ORI:
		result, flags = Or(a, value)
	default:
		panic(fmt.Sprintf("%v is not an accumulator operation", k))
	}

	rb.SetFlags(flags)
	if k != OP_CMP && k != OP_CPI {
		rb.Store(REG_A, result)
	}
}

// Execute applies op. It never fails: Unimplemented is a no-op.
func (ex *Executor) Execute(op Operation) {
	rb := ex.Registers
	mem := ex.Memory

	switch op := op.(type) {
	case Move:
		rb.Store(op.To, rb.Load(op.From))
	case Immediate:
		if op.Op == OP_MVI {
			rb.Store(op.Register, op.Value)
		} else {
			ex.accumulate(op.Op, op.Value)
		}
	case Single:
		ex.executeSingle(op)
	case Wide:
		switch op.Op {
		case OP_LXI:
			ex.storePair(op.Register, op.Value)
		case OP_STA:
			mem.Store(op.Value, rb.Load(REG_A))
		case OP_LDA:
			rb.Store(REG_A, mem.Load(op.Value))
		case OP_SHLD:
			mem.Store(op.Value, rb.Load(REG_L))
			mem.Store(op.Value.Add(1), rb.Load(REG_H))
		case OP_LHLD:
			rb.Store(REG_L, mem.Load(op.Value))
			rb.Store(REG_H, mem.Load(op.Value.Add(1)))
		}
	case Branch:
		if !ex.taken(op.Op) {
			return
		}
		if op.Op.IsCall() {
			rb.Push(rb.ProgramCounter())
		}
		rb.SetProgramCounter(op.Position)
	case Implied:
		ex.executeImplied(op)
	case Unimplemented:
		// Nothing.
	default:
		panic(fmt.Sprintf("unknown operation %T", op))
	}
}

func (ex *Executor) executeSingle(op Single) {
	rb := ex.Registers
	mem := ex.Memory

	switch op.Op {
	case OP_ADD, OP_ADC, OP_SUB, OP_SBB, OP_ANA, OP_XRA, OP_ORA, OP_CMP:
		ex.accumulate(op.Op, rb.Load(op.Register))
	case OP_INR, OP_DCR:
		var result byte
		var flags Flags
		if op.Op == OP_INR {
			result, flags = Add(rb.Load(op.Register), 1, false)
		} else {
			result, flags = Sub(rb.Load(op.Register), 1, false)
		}
		flags.Carry = rb.Carry()
		rb.SetFlags(flags)
		rb.Store(op.Register, result)
	case OP_INX:
		ex.storePair(op.Register, ex.loadPair(op.Register).Add(1))
	case OP_DCX:
		ex.storePair(op.Register, ex.loadPair(op.Register).Add(-1))
	case OP_DAD:
		sum := uint32(rb.LoadX(REG_H).Uint16()) + uint32(ex.loadPair(op.Register).Uint16())
		rb.StoreX(REG_H, MakeWord(uint16(sum)))
		rb.SetCarry(sum > 0xffff)
	case OP_PUSH:
		rb.Push(rb.LoadX(op.Register))
	case OP_POP:
		rb.StoreX(op.Register, rb.Pop())
	case OP_STAX:
		mem.Store(rb.LoadX(op.Register), rb.Load(REG_A))
	case OP_LDAX:
		rb.Store(REG_A, mem.Load(rb.LoadX(op.Register)))
	}
}

func (ex *Executor) executeImplied(op Implied) {
	rb := ex.Registers
	mem := ex.Memory

	if op.Op.IsReturn() {
		if ex.taken(op.Op) {
			rb.SetProgramCounter(rb.Pop())
		}
		return
	}

	a := rb.Load(REG_A)
	switch op.Op {
	case OP_NOP:
	case OP_HLT:
		rb.SetStopped(true)
	case OP_RLC, OP_RRC, OP_RAL, OP_RAR:
		var carry bool
		switch op.Op {
		case OP_RLC:
			a, carry = Rlc(a)
		case OP_RRC:
			a, carry = Rrc(a)
		case OP_RAL:
			a, carry = Ral(a, rb.Carry())
		case OP_RAR:
			a, carry = Rar(a, rb.Carry())
		}
		rb.Store(REG_A, a)
		rb.SetCarry(carry)
	case OP_DAA:
		result, flags := Daa(a, rb.Flags())
		rb.Store(REG_A, result)
		rb.SetFlags(flags)
	case OP_CMA:
		rb.Store(REG_A, ^a)
	case OP_STC:
		rb.SetCarry(true)
	case OP_CMC:
		rb.ToggleCarry()
	case OP_XCHG:
		de := rb.LoadX(REG_D)
		rb.StoreX(REG_D, rb.LoadX(REG_H))
		rb.StoreX(REG_H, de)
	case OP_XTHL:
		sp := rb.StackPointer()
		l, h := mem.Load(sp), mem.Load(sp.Add(1))
		mem.Store(sp, rb.Load(REG_L))
		mem.Store(sp.Add(1), rb.Load(REG_H))
		rb.Store(REG_L, l)
		rb.Store(REG_H, h)
	case OP_PCHL:
		rb.SetProgramCounter(rb.LoadX(REG_H))
	case OP_SPHL:
		rb.SetStackPointer(rb.LoadX(REG_H))
	}
}
