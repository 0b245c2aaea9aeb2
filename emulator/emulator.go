// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/i8080/asm"
	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/internal"
)

const (
	STACK_TOP = 0xffff // Stack pointer after a reset.
)

var _emulator_defines = map[string]int{
	"STACK_TOP":   STACK_TOP,
	"MEMORY_SIZE": cpu.MEMORY_SIZE,
	"PAGE_SIZE":   cpu.PAGE_SIZE,
}

// Emulator state. Processor + the program listing loaded into it.
//
// The emulator is a step driver: every call into it runs to completion, and
// callers must serialize access to it and to the embedded Processor.
type Emulator struct {
	Verbose        bool         // If set, enables verbose logging.
	*cpu.Processor              // Reference to the processor simulation.
	Program        *asm.Program // Reference to the currently loaded program listing.

	defines   map[string]int
	observers []func(emu *Emulator)
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Processor: cpu.NewProcessor(),
		Program:   &asm.Program{},
	}

	return
}

// Define adds a symbol visible to programs compiled by the emulator.
func (emu *Emulator) Define(name string, value int) {
	if emu.defines == nil {
		emu.defines = map[string]int{}
	}
	emu.defines[name] = value
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines), maps.All(emu.defines))
}

// Compile assembles source into the emulator's program. On failure the
// program, memory and registers are left untouched.
func (emu *Emulator) Compile(source string) (err error) {
	assembler := &asm.Assembler{Verbose: emu.Verbose}
	for name, value := range emu.Defines() {
		assembler.Predefine(name, value)
	}

	prog, err := assembler.Parse(strings.NewReader(source))
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// Load writes the program image into memory at address 0.
func (emu *Emulator) Load() {
	bin := emu.Program.Binary()
	emu.Processor.Memory.Write(cpu.Word{}, bin)

	if emu.Verbose {
		log.Printf("emulator: loaded %d bytes", len(bin))
	}
}

// Reset puts the processor in its power-on state and loads the program.
func (emu *Emulator) Reset() {
	emu.Processor.Verbose = emu.Verbose
	emu.Processor.Reset()
	emu.Load()
}

// OnStep registers fn to be called after every executed instruction.
func (emu *Emulator) OnStep(fn func(emu *Emulator)) {
	emu.observers = append(emu.observers, fn)
}

// LineNo returns the source line of the instruction at the program counter,
// or 0 if the program counter is outside the program.
func (emu *Emulator) LineNo() int {
	pc := emu.Processor.Registers.ProgramCounter()
	dbg := emu.Program.Debug(int(pc.Uint16()))
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick executes a single instruction. It is done once the processor halts.
func (emu *Emulator) Tick() (done bool) {
	if emu.Processor.Stopped() {
		done = true
		return
	}

	lineno := emu.LineNo()

	emu.Processor.Verbose = emu.Verbose
	emu.Processor.Next()

	for _, fn := range emu.observers {
		fn(emu)
	}

	done = emu.Processor.Stopped()
	if done && emu.Verbose {
		log.Printf("emulator: halted at line %d", lineno)
	}

	return
}

// Run ticks until the processor halts. A positive limit bounds the number of
// instructions executed.
func (emu *Emulator) Run(limit int) (err error) {
	for steps := 0; !emu.Tick(); steps++ {
		if limit > 0 && steps+1 >= limit {
			err = &ErrRuntime{LineNo: emu.LineNo(), Err: ErrStepLimit}
			return
		}
	}

	return
}
