// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Fetcher reads the instruction stream at the program counter.
type Fetcher struct {
	Registers *Registers
	Memory    *Memory
}

// Fetch reads the byte at PC and advances PC by one, wrapping at 0xFFFF.
func (fe *Fetcher) Fetch() (value byte) {
	pc := fe.Registers.ProgramCounter()
	value = fe.Memory.Load(pc)
	fe.Registers.SetProgramCounter(pc.Add(1))
	return
}

// FetchWord reads a little endian word: low byte first, then high byte.
func (fe *Fetcher) FetchWord() (value Word) {
	value.Low = fe.Fetch()
	value.High = fe.Fetch()
	return
}
