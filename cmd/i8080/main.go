// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/emulator"
)

// State is the register bank snapshot printed by -dump.
type State struct {
	PC, SP  string
	A       byte
	B, C    byte
	D, E    byte
	H, L    byte
	Flags   cpu.Flags
	Stopped bool
	Ticks   int
	LineNo  int
}

func snapshot(emu *emulator.Emulator) State {
	rb := emu.Registers
	return State{
		PC:      rb.ProgramCounter().String(),
		SP:      rb.StackPointer().String(),
		A:       rb.Load(cpu.REG_A),
		B:       rb.Load(cpu.REG_B),
		C:       rb.Load(cpu.REG_C),
		D:       rb.Load(cpu.REG_D),
		E:       rb.Load(cpu.REG_E),
		H:       rb.Load(cpu.REG_H),
		L:       rb.Load(cpu.REG_L),
		Flags:   rb.Flags(),
		Stopped: emu.Stopped(),
		Ticks:   emu.Ticks,
		LineNo:  emu.LineNo(),
	}
}

func main() {
	var compile string
	var listing bool
	var steps int
	var save bool
	var dump bool
	var verbose bool

	emu := emulator.NewEmulator()

	flag.StringVar(&compile, "c", "", ".asm file to compile")
	flag.BoolVar(&listing, "l", false, "Print the program listing")
	flag.IntVar(&steps, "n", 0, "Maximum instructions to execute, 0 for no limit")
	flag.BoolVar(&save, "s", false, "Assemble only, do not execute")
	flag.BoolVar(&dump, "dump", false, "Dump registers after execution")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Func("D", "Define NAME=VALUE for the assembler", func(text string) (err error) {
		name, value, ok := strings.Cut(text, "=")
		if !ok {
			return fmt.Errorf("%v: expected NAME=VALUE", text)
		}
		number, err := strconv.ParseInt(value, 0, 32)
		if err != nil {
			return
		}
		emu.Define(name, int(number))
		return
	})

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) == 0 {
		log.Fatalf("%v: -c is required", os.Args[0])
	}

	inf, err := os.Open(compile)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	defer inf.Close()

	source, err := io.ReadAll(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	emu.Verbose = verbose
	err = emu.Compile(string(source))
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if listing {
		for _, op := range emu.Program.Opcodes {
			fmt.Println(op)
		}
	}

	if save {
		return
	}

	emu.Reset()
	err = emu.Run(steps)

	if dump {
		printer := pp.New()
		printer.SetColoringEnabled(term.IsTerminal(int(os.Stdout.Fd())))
		printer.Println(snapshot(emu))
	}

	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
}
