package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// decodeBytes places code at address 0 and decodes the first instruction.
func decodeBytes(code ...byte) (op Operation, pc Word) {
	cpu := NewProcessor()
	cpu.Memory.Write(Word{}, code)
	opcode := cpu.Fetcher.Fetch()
	op = cpu.Decoder.Decode(opcode)
	pc = cpu.Registers.ProgramCounter()
	return
}

func TestDecode_Move(t *testing.T) {
	assert := assert.New(t)

	for opcode := 0x40; opcode < 0x80; opcode++ {
		op, pc := decodeBytes(byte(opcode))
		assert.Equal(MakeWord(1), pc)
		if opcode == 0x76 {
			assert.Equal(Implied{Op: OP_HLT}, op)
			continue
		}
		assert.Equal(Move{From: Register(opcode & 7), To: Register((opcode >> 3) & 7)}, op, "%#x", opcode)
	}
}

func TestDecode_Alu(t *testing.T) {
	assert := assert.New(t)

	bands := []Kind{OP_ADD, OP_ADC, OP_SUB, OP_SBB, OP_ANA, OP_XRA, OP_ORA, OP_CMP}
	for opcode := 0x80; opcode < 0xc0; opcode++ {
		op, _ := decodeBytes(byte(opcode))
		assert.Equal(Single{Op: bands[(opcode-0x80)/8], Register: Register(opcode & 7)}, op, "%#x", opcode)
	}
}

func TestDecode_Implied(t *testing.T) {
	assert := assert.New(t)

	table := map[byte]Kind{
		0x00: OP_NOP, 0x08: OP_NOP, 0x10: OP_NOP, 0x18: OP_NOP,
		0x20: OP_NOP, 0x28: OP_NOP, 0x30: OP_NOP, 0x38: OP_NOP,
		0x07: OP_RLC, 0x17: OP_RAL, 0x27: OP_DAA, 0x37: OP_STC,
		0x0f: OP_RRC, 0x1f: OP_RAR, 0x2f: OP_CMA, 0x3f: OP_CMC,
		0xc9: OP_RET, 0xd9: OP_RET,
		0xc0: OP_RNZ, 0xc8: OP_RZ, 0xd0: OP_RNC, 0xd8: OP_RC,
		0xe0: OP_RPO, 0xe8: OP_RPE, 0xf0: OP_RP, 0xf8: OP_RM,
		0xe3: OP_XTHL, 0xe9: OP_PCHL, 0xeb: OP_XCHG, 0xf9: OP_SPHL,
	}

	for opcode, kind := range table {
		op, pc := decodeBytes(opcode, 0xaa, 0xbb)
		assert.Equal(Implied{Op: kind}, op, "%#x", opcode)
		assert.Equal(MakeWord(1), pc, "%#x", opcode)
	}
}

func TestDecode_Immediate(t *testing.T) {
	assert := assert.New(t)

	table := map[byte]Operation{
		0x06: Immediate{Op: OP_MVI, Register: REG_B, Value: 0x42},
		0x36: Immediate{Op: OP_MVI, Register: REG_M, Value: 0x42},
		0x3e: Immediate{Op: OP_MVI, Register: REG_A, Value: 0x42},
		0xc6: Immediate{Op: OP_ADI, Value: 0x42},
		0xce: Immediate{Op: OP_ACI, Value: 0x42},
		0xd6: Immediate{Op: OP_SUI, Value: 0x42},
		0xde: Immediate{Op: OP_SBI, Value: 0x42},
		0xe6: Immediate{Op: OP_ANI, Value: 0x42},
		0xee: Immediate{Op: OP_XRI, Value: 0x42},
		0xf6: Immediate{Op: OP_ORI, Value: 0x42},
		0xfe: Immediate{Op: OP_CPI, Value: 0x42},
	}

	for opcode, expected := range table {
		op, pc := decodeBytes(opcode, 0x42, 0x99)
		assert.Equal(expected, op, "%#x", opcode)
		assert.Equal(MakeWord(2), pc, "%#x", opcode)
	}
}

func TestDecode_Wide(t *testing.T) {
	assert := assert.New(t)

	w := Word{High: 0x12, Low: 0x34}
	table := map[byte]Operation{
		0x01: Wide{Op: OP_LXI, Register: REG_B, Value: w},
		0x11: Wide{Op: OP_LXI, Register: REG_D, Value: w},
		0x21: Wide{Op: OP_LXI, Register: REG_H, Value: w},
		0x31: Wide{Op: OP_LXI, Register: REG_SP, Value: w},
		0x22: Wide{Op: OP_SHLD, Value: w},
		0x2a: Wide{Op: OP_LHLD, Value: w},
		0x32: Wide{Op: OP_STA, Value: w},
		0x3a: Wide{Op: OP_LDA, Value: w},
		0xc3: Branch{Op: OP_JMP, Position: w},
		0xcb: Branch{Op: OP_JMP, Position: w},
		0xcd: Branch{Op: OP_CALL, Position: w},
		0xdd: Branch{Op: OP_CALL, Position: w},
		0xed: Branch{Op: OP_CALL, Position: w},
		0xfd: Branch{Op: OP_CALL, Position: w},
		0xc2: Branch{Op: OP_JNZ, Position: w},
		0xca: Branch{Op: OP_JZ, Position: w},
		0xd2: Branch{Op: OP_JNC, Position: w},
		0xda: Branch{Op: OP_JC, Position: w},
		0xe2: Branch{Op: OP_JPO, Position: w},
		0xea: Branch{Op: OP_JPE, Position: w},
		0xf2: Branch{Op: OP_JP, Position: w},
		0xfa: Branch{Op: OP_JM, Position: w},
		0xc4: Branch{Op: OP_CNZ, Position: w},
		0xcc: Branch{Op: OP_CZ, Position: w},
		0xd4: Branch{Op: OP_CNC, Position: w},
		0xdc: Branch{Op: OP_CC, Position: w},
		0xe4: Branch{Op: OP_CPO, Position: w},
		0xec: Branch{Op: OP_CPE, Position: w},
		0xf4: Branch{Op: OP_CP, Position: w},
		0xfc: Branch{Op: OP_CM, Position: w},
	}

	for opcode, expected := range table {
		op, pc := decodeBytes(opcode, 0x34, 0x12)
		assert.Equal(expected, op, "%#x", opcode)
		assert.Equal(MakeWord(3), pc, "%#x", opcode)
	}
}

func TestDecode_Pairs(t *testing.T) {
	assert := assert.New(t)

	table := map[byte]Single{
		0x03: {OP_INX, REG_B}, 0x13: {OP_INX, REG_D}, 0x23: {OP_INX, REG_H}, 0x33: {OP_INX, REG_SP},
		0x0b: {OP_DCX, REG_B}, 0x1b: {OP_DCX, REG_D}, 0x2b: {OP_DCX, REG_H}, 0x3b: {OP_DCX, REG_SP},
		0x09: {OP_DAD, REG_B}, 0x19: {OP_DAD, REG_D}, 0x29: {OP_DAD, REG_H}, 0x39: {OP_DAD, REG_SP},
		0xc5: {OP_PUSH, REG_B}, 0xd5: {OP_PUSH, REG_D}, 0xe5: {OP_PUSH, REG_H}, 0xf5: {OP_PUSH, REG_PSW},
		0xc1: {OP_POP, REG_B}, 0xd1: {OP_POP, REG_D}, 0xe1: {OP_POP, REG_H}, 0xf1: {OP_POP, REG_PSW},
		0x02: {OP_STAX, REG_B}, 0x12: {OP_STAX, REG_D},
		0x0a: {OP_LDAX, REG_B}, 0x1a: {OP_LDAX, REG_D},
		0x04: {OP_INR, REG_B}, 0x34: {OP_INR, REG_M}, 0x3c: {OP_INR, REG_A},
		0x05: {OP_DCR, REG_B}, 0x35: {OP_DCR, REG_M}, 0x3d: {OP_DCR, REG_A},
	}

	for opcode, expected := range table {
		op, pc := decodeBytes(opcode)
		assert.Equal(expected, op, "%#x", opcode)
		assert.Equal(MakeWord(1), pc, "%#x", opcode)
	}
}

func TestDecode_Unimplemented(t *testing.T) {
	assert := assert.New(t)

	for _, opcode := range []byte{
		0xc7, 0xcf, 0xd3, 0xd7, 0xdb, 0xdf, 0xe7, 0xef, 0xf3, 0xf7, 0xfb, 0xff,
	} {
		op, pc := decodeBytes(opcode, 0x11, 0x22)
		assert.Equal(Unimplemented{Opcode: opcode}, op, "%#x", opcode)
		assert.Equal(OP_UNIMPLEMENTED, op.Kind())
		assert.Equal(MakeWord(1), pc, "%#x", opcode)
	}
}

func TestDecode_All(t *testing.T) {
	assert := assert.New(t)

	// Every opcode decodes, and only the I/O, interrupt and RST groups are
	// unimplemented.
	unimplemented := 0
	for opcode := range 256 {
		op, _ := decodeBytes(byte(opcode), 0, 0)
		assert.NotNil(op)
		if op.Kind() == OP_UNIMPLEMENTED {
			unimplemented++
		}
	}
	assert.Equal(12, unimplemented)
}

func TestOperation_String(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		op   Operation
		text string
	}{
		{Implied{Op: OP_NOP}, "NOP"},
		{Move{To: REG_C, From: REG_A}, "MOV C,A"},
		{Single{Op: OP_ADD, Register: REG_M}, "ADD M"},
		{Single{Op: OP_PUSH, Register: REG_PSW}, "PUSH PSW"},
		{Single{Op: OP_INX, Register: REG_SP}, "INX SP"},
		{Immediate{Op: OP_MVI, Register: REG_A, Value: 1}, "MVI A,01H"},
		{Immediate{Op: OP_CPI, Value: 0xfe}, "CPI 0FEH"},
		{Wide{Op: OP_LXI, Register: REG_SP, Value: MakeWord(0x1234)}, "LXI SP,1234H"},
		{Wide{Op: OP_STA, Value: MakeWord(0x8000)}, "STA 8000H"},
		{Branch{Op: OP_JNZ, Position: MakeWord(6)}, "JNZ 0006H"},
		{Branch{Op: OP_CALL, Position: MakeWord(0xbeef)}, "CALL 0BEEFH"},
		{Unimplemented{Opcode: 0xdb}, "DB 0DBH"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.op.String())
	}
}

func TestKind_Cond(t *testing.T) {
	assert := assert.New(t)

	cond, ok := OP_JPE.Cond()
	assert.True(ok)
	assert.Equal(COND_PE, cond)

	cond, ok = OP_RM.Cond()
	assert.True(ok)
	assert.Equal(COND_M, cond)

	_, ok = OP_JMP.Cond()
	assert.False(ok)

	assert.True(OP_JMP.IsJump())
	assert.True(OP_JC.IsJump())
	assert.False(OP_CC.IsJump())
	assert.True(OP_CC.IsCall())
	assert.True(OP_RET.IsReturn())
	assert.True(OP_RPO.IsReturn())
	assert.False(OP_HLT.IsReturn())
}
