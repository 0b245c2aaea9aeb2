// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"
	"maps"
	"regexp"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// SymbolMap maps symbol names to the operand they stand for. Labels map to
// their address, equates to their operand, and the register names to their
// register index.
type SymbolMap map[string]Operand

// registerMap is the register and register pair naming shared by every
// SymbolMap.
var registerMap = map[string]int{
	"B":   0,
	"C":   1,
	"D":   2,
	"E":   3,
	"H":   4,
	"L":   5,
	"M":   6,
	"A":   7,
	"SP":  6,
	"PSW": 6,
}

// NewSymbolMap returns a SymbolMap seeded with the register names, in both
// upper and lower case.
func NewSymbolMap() (symbols SymbolMap) {
	symbols = make(SymbolMap, 2*len(registerMap)+16)
	for name, index := range registerMap {
		symbols[name] = Operand{Value: index}
		symbols[strings.ToLower(name)] = Operand{Value: index}
	}

	return
}

// Define binds name to an operand. Rebinding an existing name fails with
// ErrLabelDuplicate.
func (symbols SymbolMap) Define(name string, op Operand) (err error) {
	if _, ok := symbols[name]; ok {
		err = &ErrSymbol{Name: name, Err: ErrLabelDuplicate}
		return
	}

	symbols[name] = op

	return
}

// Resolve follows op through the map until it reaches a number.
func (symbols SymbolMap) Resolve(op Operand) (value int, err error) {
	return symbols.resolve(op, map[string]bool{})
}

// resolve is Resolve with the set of names already visited on this chain.
func (symbols SymbolMap) resolve(op Operand, visited map[string]bool) (value int, err error) {
	for {
		if len(op.Expr) > 0 {
			return symbols.eval(op.Expr, visited)
		}

		name := op.Name
		if len(name) == 0 {
			value = op.Value
			return
		}

		if visited[name] {
			err = &ErrSymbol{Name: name, Err: ErrSymbolCircular}
			return
		}
		visited[name] = true

		next, ok := symbols[name]
		if !ok {
			err = &ErrSymbol{Name: name, Err: ErrSymbolUnknown}
			return
		}
		op = next
	}
}

var reExprIdentifier = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// eval does compile time $(...) evaluations. Every symbol named in the
// expression is predeclared with its resolved value.
func (symbols SymbolMap) eval(expr string, visited map[string]bool) (value int, err error) {
	pred := starlark.StringDict{}
	for _, name := range reExprIdentifier.FindAllString(expr, -1) {
		if _, ok := symbols[name]; !ok {
			continue
		}
		if _, ok := pred[name]; ok {
			continue
		}
		var v int
		v, err = symbols.resolve(Operand{Name: name}, maps.Clone(visited))
		if err != nil {
			return
		}
		pred[name] = starlark.MakeInt(v)
	}

	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrExpression, err)
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrExpression
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrRange
		return
	}

	value = int(st_int64)

	return
}
