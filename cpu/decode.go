// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Decoder turns opcode bytes into Operations, pulling immediate operands
// through its Fetcher.
type Decoder struct {
	Fetcher *Fetcher
}

// impliedMap holds the single byte, operand free opcodes. It includes the
// undocumented NOP and RET aliases.
var impliedMap = map[byte]Kind{
	0x00: OP_NOP,
	0x08: OP_NOP,
	0x10: OP_NOP,
	0x18: OP_NOP,
	0x20: OP_NOP,
	0x28: OP_NOP,
	0x30: OP_NOP,
	0x38: OP_NOP,
	0x07: OP_RLC,
	0x0f: OP_RRC,
	0x17: OP_RAL,
	0x1f: OP_RAR,
	0x27: OP_DAA,
	0x2f: OP_CMA,
	0x37: OP_STC,
	0x3f: OP_CMC,
	0x76: OP_HLT,
	0xc9: OP_RET,
	0xd9: OP_RET,
	0xe3: OP_XTHL,
	0xe9: OP_PCHL,
	0xeb: OP_XCHG,
	0xf9: OP_SPHL,
}

// immediateMap holds the accumulator opcodes taking an 8-bit immediate.
var immediateMap = map[byte]Kind{
	0xc6: OP_ADI,
	0xce: OP_ACI,
	0xd6: OP_SUI,
	0xde: OP_SBI,
	0xe6: OP_ANI,
	0xee: OP_XRI,
	0xf6: OP_ORI,
	0xfe: OP_CPI,
}

// wideMap holds the opcodes taking a 16-bit address.
var wideMap = map[byte]Kind{
	0x22: OP_SHLD,
	0x2a: OP_LHLD,
	0x32: OP_STA,
	0x3a: OP_LDA,
}

// branchMap holds the unconditional jump and call opcodes, including their
// undocumented aliases.
var branchMap = map[byte]Kind{
	0xc3: OP_JMP,
	0xcb: OP_JMP,
	0xcd: OP_CALL,
	0xdd: OP_CALL,
	0xed: OP_CALL,
	0xfd: OP_CALL,
}

// Decode decodes opcode, fetching 0, 1 or 2 operand bytes as needed.
// Opcodes outside the implemented set decode to Unimplemented.
func (de *Decoder) Decode(opcode byte) Operation {
	// HLT occupies the MOV M,M slot.
	if kind, ok := impliedMap[opcode]; ok {
		return Implied{Op: kind}
	}

	reg := Register((opcode >> 3) & 7)
	pair := Register((opcode >> 3) & 6)
	cond := Cond((opcode >> 3) & 7)

	switch {
	case opcode&0xc0 == 0x40:
		return Move{To: reg, From: Register(opcode & 7)}
	case opcode&0xc0 == 0x80:
		return Single{Op: OP_ADD + Kind((opcode-0x80)>>3), Register: Register(opcode & 7)}
	}

	if kind, ok := immediateMap[opcode]; ok {
		return Immediate{Op: kind, Value: de.Fetcher.Fetch()}
	}
	if kind, ok := wideMap[opcode]; ok {
		return Wide{Op: kind, Value: de.Fetcher.FetchWord()}
	}
	if kind, ok := branchMap[opcode]; ok {
		return Branch{Op: kind, Position: de.Fetcher.FetchWord()}
	}

	switch {
	case opcode&0xc7 == 0x06:
		return Immediate{Op: OP_MVI, Register: reg, Value: de.Fetcher.Fetch()}
	case opcode&0xc7 == 0x04:
		return Single{Op: OP_INR, Register: reg}
	case opcode&0xc7 == 0x05:
		return Single{Op: OP_DCR, Register: reg}
	case opcode&0xcf == 0x01:
		return Wide{Op: OP_LXI, Register: pair, Value: de.Fetcher.FetchWord()}
	case opcode&0xcf == 0x03:
		return Single{Op: OP_INX, Register: pair}
	case opcode&0xcf == 0x0b:
		return Single{Op: OP_DCX, Register: pair}
	case opcode&0xcf == 0x09:
		return Single{Op: OP_DAD, Register: pair}
	case opcode&0xcf == 0xc5:
		return Single{Op: OP_PUSH, Register: pair}
	case opcode&0xcf == 0xc1:
		return Single{Op: OP_POP, Register: pair}
	case opcode&0xef == 0x02:
		return Single{Op: OP_STAX, Register: Register((opcode >> 3) & 2)}
	case opcode&0xef == 0x0a:
		return Single{Op: OP_LDAX, Register: Register((opcode >> 3) & 2)}
	case opcode&0xc7 == 0xc0:
		return Implied{Op: returnKind[cond]}
	case opcode&0xc7 == 0xc2:
		return Branch{Op: jumpKind[cond], Position: de.Fetcher.FetchWord()}
	case opcode&0xc7 == 0xc4:
		return Branch{Op: callKind[cond], Position: de.Fetcher.FetchWord()}
	}

	return Unimplemented{Opcode: opcode}
}
