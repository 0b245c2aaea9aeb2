package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var physical = []Register{REG_B, REG_C, REG_D, REG_E, REG_H, REG_L, REG_A}

func TestRegisters_StoreLoad(t *testing.T) {
	assert := assert.New(t)

	for _, r := range physical {
		for v := range 256 {
			rb := NewRegisters(&Memory{})
			for n, other := range physical {
				rb.Store(other, byte(0xa0+n))
			}
			rb.Store(r, byte(v))
			assert.Equal(byte(v), rb.Load(r), r.String())
			for n, other := range physical {
				if other != r {
					assert.Equal(byte(0xa0+n), rb.Load(other), "%v disturbed %v", r, other)
				}
			}
		}
	}
}

func TestRegisters_M(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	rb := NewRegisters(mem)

	rb.StoreX(REG_H, Word{High: 0x12, Low: 0x34})
	rb.Store(REG_M, 0x5a)
	assert.Equal(byte(0x5a), mem.Load(Word{High: 0x12, Low: 0x34}))

	mem.Store(Word{High: 0x12, Low: 0x34}, 0xa5)
	assert.Equal(byte(0xa5), rb.Load(REG_M))
}

func TestRegisters_Pairs(t *testing.T) {
	assert := assert.New(t)

	rb := NewRegisters(&Memory{})

	rb.StoreX(REG_B, Word{High: 1, Low: 2})
	rb.StoreX(REG_D, Word{High: 3, Low: 4})
	rb.StoreX(REG_H, Word{High: 5, Low: 6})

	assert.Equal(byte(1), rb.Load(REG_B))
	assert.Equal(byte(2), rb.Load(REG_C))
	assert.Equal(byte(3), rb.Load(REG_D))
	assert.Equal(byte(4), rb.Load(REG_E))
	assert.Equal(byte(5), rb.Load(REG_H))
	assert.Equal(byte(6), rb.Load(REG_L))
	assert.Equal(Word{High: 3, Low: 4}, rb.LoadX(REG_D))

	assert.Panics(func() { rb.LoadX(REG_C) })
	assert.Panics(func() { rb.Store(Register(8), 0) })
}

func TestRegisters_PSW(t *testing.T) {
	assert := assert.New(t)

	for a := range 256 {
		rb := NewRegisters(&Memory{})
		rb.Store(REG_A, byte(a))
		rb.SetZero(true)
		rb.SetParity(true)
		assert.Equal(Word{High: byte(a), Low: 68}, rb.LoadX(REG_PSW))
	}

	rb := NewRegisters(&Memory{})
	rb.StoreX(REG_PSW, Word{High: 0x42, Low: 0xff})
	assert.Equal(byte(0x42), rb.Load(REG_A))
	assert.Equal(Flags{Carry: true, AuxCarry: true, Zero: true, Sign: true, Parity: true}, rb.Flags())
	assert.Equal(Word{High: 0x42, Low: 0xd5}, rb.LoadX(REG_PSW))

	rb.StoreX(REG_PSW, Word{High: 0, Low: FLAG_AUX_CARRY})
	assert.True(rb.AuxCarry())
	assert.False(rb.Carry())
	assert.False(rb.Sign())
}

func TestRegisters_ToggleCarry(t *testing.T) {
	assert := assert.New(t)

	for packed := range 256 {
		rb := NewRegisters(&Memory{})
		rb.SetFlags(UnpackFlags(byte(packed)))
		before := rb.Flags()

		rb.ToggleCarry()
		assert.Equal(!before.Carry, rb.Carry())
		rb.ToggleCarry()
		assert.Equal(before, rb.Flags())
	}
}

func TestRegisters_Reset(t *testing.T) {
	assert := assert.New(t)

	rb := NewRegisters(&Memory{})
	assert.Equal(Word{}, rb.StackPointer())

	rb.StoreX(REG_B, MakeWord(0x1234))
	rb.StoreX(REG_PSW, MakeWord(0xffff))
	rb.SetProgramCounter(MakeWord(0x100))
	rb.SetStopped(true)

	rb.Reset()
	assert.Equal(Word{}, rb.ProgramCounter())
	assert.Equal(MakeWord(0xffff), rb.StackPointer())
	assert.Equal(Word{}, rb.LoadX(REG_B))
	assert.Equal(Word{}, rb.LoadX(REG_PSW))
	assert.False(rb.Stopped())
}

func TestRegisters_String(t *testing.T) {
	assert := assert.New(t)

	rb := NewRegisters(&Memory{})
	rb.StoreX(REG_H, MakeWord(0xbeef))
	rb.SetCarry(true)

	text := rb.String()
	assert.Contains(text, "HL: BEEF")
	assert.Contains(text, "F: ----C")
}
