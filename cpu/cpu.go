// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"log"
)

// Processor is the simulation context of an 8080: memory, register bank and
// the fetch, decode and execute stages sharing them.
type Processor struct {
	Verbose bool // Set to enable verbose logging.

	Memory    *Memory
	Registers *Registers
	Fetcher   *Fetcher
	Decoder   *Decoder
	Executor  *Executor

	Ticks int // Instructions executed.
}

// NewProcessor creates a processor with zeroed memory and registers.
func NewProcessor() (cpu *Processor) {
	mem := &Memory{}
	rb := NewRegisters(mem)
	fe := &Fetcher{Registers: rb, Memory: mem}

	cpu = &Processor{
		Memory:    mem,
		Registers: rb,
		Fetcher:   fe,
		Decoder:   &Decoder{Fetcher: fe},
		Executor:  &Executor{Registers: rb, Memory: mem},
	}

	return
}

// Reset clears memory and puts the register bank into its power-on state.
func (cpu *Processor) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Memory.Reset()
	cpu.Registers.Reset()
	cpu.Ticks = 0
}

// Stopped is true once HLT has executed.
func (cpu *Processor) Stopped() bool {
	return cpu.Registers.Stopped()
}

// Next runs one fetch, decode and execute cycle. It does nothing once the
// processor has stopped.
func (cpu *Processor) Next() {
	if cpu.Stopped() {
		return
	}

	pc := cpu.Registers.ProgramCounter()
	opcode := cpu.Fetcher.Fetch()
	op := cpu.Decoder.Decode(opcode)

	if cpu.Verbose {
		log.Printf("cpu: %v: %v", pc, op)
		if _, ok := op.(Unimplemented); ok {
			log.Printf("cpu: %v: opcode 0x%02x not implemented", pc, opcode)
		}
	}

	cpu.Executor.Execute(op)
	cpu.Ticks++

	if cpu.Verbose && cpu.Stopped() {
		log.Printf("cpu: halted after %d instructions", cpu.Ticks)
	}
}

// String returns the current processor state as a string.
func (cpu *Processor) String() string {
	return cpu.Registers.String() + fmt.Sprintf("% 4s: %d\n", "T", cpu.Ticks)
}
