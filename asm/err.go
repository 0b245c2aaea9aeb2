package asm

import (
	"errors"

	"github.com/ezrec/i8080/translate"
)

var f = translate.From

var (
	// Encoding errors
	ErrOperandCount       = errors.New(f("operand count"))
	ErrInvalidValue       = errors.New(f("invalid value"))
	ErrInvalidOperation   = errors.New(f("invalid operation"))
	ErrInstructionUnknown = errors.New(f("instruction unknown"))

	// Value errors
	ErrRange        = errors.New(f("value out of range"))
	ErrRegister     = errors.New(f("register invalid"))
	ErrRegisterPair = errors.New(f("register pair invalid"))
	ErrExpression   = errors.New(f("expression invalid"))

	// Symbol errors
	ErrSymbolUnknown  = errors.New(f("symbol unknown"))
	ErrSymbolCircular = errors.New(f("symbol circular"))
	ErrLabelDuplicate = errors.New(f("label duplicated"))
	ErrEquateSyntax   = errors.New(f("EQU syntax"))
)

// ErrOperands is an operand count mismatch.
type ErrOperands struct {
	Code     string
	Expected int
	Given    int
}

func (err *ErrOperands) Error() string {
	return f("%v expects %d operands, given %d", err.Code, err.Expected, err.Given)
}

func (err *ErrOperands) Unwrap() error {
	return ErrOperandCount
}

// ErrValue is an operand that did not resolve to a legal value.
type ErrValue struct {
	Code    string
	Operand string
	Err     error
}

func (err *ErrValue) Error() string {
	return f("%v operand '%v' %v: %v", err.Code, err.Operand, ErrInvalidValue, err.Err)
}

func (err *ErrValue) Unwrap() []error {
	return []error{ErrInvalidValue, err.Err}
}

// ErrSymbol is a failed lookup of a named symbol.
type ErrSymbol struct {
	Name string
	Err  error
}

func (err *ErrSymbol) Error() string {
	return f("%v '%v'", err.Err, err.Name)
}

func (err *ErrSymbol) Unwrap() error {
	return err.Err
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
