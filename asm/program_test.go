package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgram(t *testing.T) {
	assert := assert.New(t)

	prog, err := (&Assembler{}).Parse(strings.NewReader(strings.Join(fibonacci, "\n")))
	require.NoError(t, err)

	assert.Equal(10, len(prog.Opcodes))

	addresses := []int{}
	for address, data := range prog.Bytes() {
		addresses = append(addresses, address)
		assert.Equal(prog.Binary()[address], data)
	}
	assert.Equal(15, len(addresses))
	assert.Equal(14, addresses[14])

	count := 0
	for range prog.Bytes() {
		count++
		if count == 4 {
			break
		}
	}
	assert.Equal(4, count)

	tagged := prog.Tagged()
	assert.Equal(len(prog.Binary()), len(tagged))
	assert.Equal(Tagged{0xc2, 10}, tagged[10])
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog, err := (&Assembler{}).Parse(strings.NewReader(strings.Join(fibonacci, "\n")))
	require.NoError(t, err)

	dbg := prog.Debug(0)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(12)
	assert.Equal(10, dbg.LineNo)
	assert.Equal(2, dbg.Index)
	assert.Equal("JNZ LOOP", dbg.Line)

	dbg = prog.Debug(14)
	assert.Equal(13, dbg.LineNo)

	dbg = prog.Debug(15)
	assert.Nil(dbg.Opcode)
}

func TestOpcode_String(t *testing.T) {
	assert := assert.New(t)

	op := Opcode{LineNo: 10, Address: 0x0a, Line: "JNZ LOOP", Bytes: []byte{0xc2, 0x06, 0x00}}
	text := op.String()
	assert.True(strings.HasPrefix(text, "000A  C2 06 00"))
	assert.True(strings.HasSuffix(text, "10  JNZ LOOP"))
}
