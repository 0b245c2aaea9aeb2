// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"log"
	"strings"
)

// Assembler is a two pass assembler for the 8080.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]int // Predefined symbols.
}

// Predefine defines a symbol visible to every assembly, or redefines an
// existing predefine.
func (asm *Assembler) Predefine(name string, value int) {
	if asm.predefine == nil {
		asm.predefine = map[string]int{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// BuildSymbolMap is the first pass. Each label is bound to the address of the
// next instruction, counting the fixed size of every preceding operation.
func (asm *Assembler) BuildSymbolMap(lines []Line) (symbols SymbolMap, err error) {
	var line *Line

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: line.Location.Start.Line, Line: line.Source, Err: err}
		}
	}()

	symbols = NewSymbolMap()
	for name, value := range asm.predefine {
		symbols[name] = Operand{Value: value}
	}

	address := 0
	for n := range lines {
		line = &lines[n]

		var size int
		equ := false
		if line.Operation != nil {
			size, err = sizeOf(line.Operation.Code)
			if err != nil {
				return
			}
			equ = strings.EqualFold(line.Operation.Code, EQU)
		}

		if len(line.Label) > 0 {
			value := Operand{Value: address}
			if equ {
				if len(line.Operation.Operands) != 1 {
					err = &ErrOperands{Code: EQU, Expected: 1, Given: len(line.Operation.Operands)}
					return
				}
				value = line.Operation.Operands[0]
			}
			err = symbols.Define(line.Label, value)
			if err != nil {
				return
			}
			if asm.Verbose {
				log.Printf("asm: %v = %v", line.Label, value)
			}
		} else if equ {
			err = ErrEquateSyntax
			return
		}

		address += size
	}

	return
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	text, err := io.ReadAll(input)
	if err != nil {
		return
	}

	lines := Parse(string(text))

	symbols, err := asm.BuildSymbolMap(lines)
	if err != nil {
		return
	}

	prog = &Program{}
	address := 0
	for _, line := range lines {
		if line.Operation == nil {
			continue
		}

		var code []byte
		code, err = Code(line.Operation, symbols)
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: line.Location.Start.Line, Line: line.Source, Err: err}
			return
		}

		if len(code) == 0 {
			continue
		}

		op := Opcode{
			LineNo:  line.Location.Start.Line,
			Address: address,
			Line:    line.Source,
			Bytes:   code,
		}
		if asm.Verbose {
			log.Printf("asm: %v", op)
		}

		prog.Opcodes = append(prog.Opcodes, op)
		address += len(code)
	}

	return
}

// BuildSymbolMap builds the symbol map of lines with no predefined symbols.
func BuildSymbolMap(lines []Line) (SymbolMap, error) {
	return (&Assembler{}).BuildSymbolMap(lines)
}

// AssembleMap assembles source, tagging each byte with its source line.
func AssembleMap(source string) (tagged []Tagged, err error) {
	prog, err := (&Assembler{}).Parse(strings.NewReader(source))
	if err != nil {
		return
	}

	tagged = prog.Tagged()

	return
}

// Assemble assembles source into a program image.
func Assemble(source string) (bin []byte, err error) {
	prog, err := (&Assembler{}).Parse(strings.NewReader(source))
	if err != nil {
		return
	}

	bin = prog.Binary()

	return
}
