package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzDecode(f *testing.F) {
	for opcode := range 256 {
		f.Add(byte(opcode), byte(0x34), byte(0x12), uint16(0x8000), byte(0))
	}

	f.Fuzz(func(t *testing.T, opcode, lo, hi byte, sp uint16, psw byte) {
		assert := assert.New(t)

		cpu := NewProcessor()
		cpu.Memory.Write(MakeWord(0x100), []byte{opcode, lo, hi})
		cpu.Registers.SetProgramCounter(MakeWord(0x100))
		cpu.Registers.SetStackPointer(MakeWord(sp))
		cpu.Registers.StoreX(REG_PSW, Word{High: 0x5a, Low: psw})
		cpu.Registers.StoreX(REG_H, MakeWord(0x4000))

		op := cpu.Decoder.Decode(cpu.Fetcher.Fetch())
		assert.NotNil(op)

		// Operand bytes consumed match the operation shape.
		length := int(cpu.Registers.ProgramCounter().Uint16()) - 0x100
		switch op.(type) {
		case Immediate:
			assert.Equal(2, length)
		case Wide, Branch:
			assert.Equal(3, length)
		default:
			assert.Equal(1, length)
		}

		assert.NotPanics(func() { cpu.Executor.Execute(op) })

		if _, ok := op.(Unimplemented); ok {
			assert.Equal(MakeWord(0x101), cpu.Registers.ProgramCounter())
			assert.Equal(MakeWord(sp), cpu.Registers.StackPointer())
			assert.Equal(byte(0x5a), cpu.Registers.Load(REG_A))
		}
		assert.Equal(op.Kind() == OP_HLT, cpu.Stopped())
	})
}
