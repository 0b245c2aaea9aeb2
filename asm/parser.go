// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Position is a point in the source text. Line and Column are 1-based,
// Offset is the 0-based byte offset from the start of the source.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Location is the span of one source line, end exclusive.
type Location struct {
	Start Position
	End   Position
}

// Operand is a single instruction operand before resolution.
// Exactly one of Name or Expr is set for symbolic operands; a literal has
// neither and carries its Value.
type Operand struct {
	Name  string // Symbol name.
	Value int    // Literal value.
	Expr  string // Compile time $(...) expression.
}

// String returns the operand as it would appear in source.
func (op Operand) String() string {
	switch {
	case len(op.Expr) > 0:
		return "$(" + op.Expr + ")"
	case len(op.Name) > 0:
		return op.Name
	default:
		return strconv.Itoa(op.Value)
	}
}

// Operation is a mnemonic and its operands.
type Operation struct {
	Code     string // Upper case mnemonic.
	Operands []Operand
}

// String returns the operation in canonical source form.
func (op *Operation) String() string {
	args := make([]string, len(op.Operands))
	for n, arg := range op.Operands {
		args[n] = arg.String()
	}

	if len(args) == 0 {
		return op.Code
	}

	return op.Code + " " + strings.Join(args, ",")
}

// Line is one parsed source line.
type Line struct {
	Label     string     // Label bound on this line, if any.
	Operation *Operation // Operation on this line, if any.
	Comment   string     // Comment text after ';', if any.
	Location  Location   // Span of the line in the source.
	Source    string     // Line text as written.
}

// Blank is true for lines with neither label nor operation.
func (line *Line) Blank() bool {
	return len(line.Label) == 0 && line.Operation == nil
}

var (
	reIdentifier = regexp.MustCompile(`^[A-Za-z_.?@][A-Za-z0-9_.?@]*$`)
	reHex        = regexp.MustCompile(`^[0-9][0-9A-Fa-f]*[Hh]$`)
	reBinary     = regexp.MustCompile(`^[01]+[Bb]$`)
	reDecimal    = regexp.MustCompile(`^-?[0-9]+$`)
	reCPrefix    = regexp.MustCompile(`^0[Xx][0-9A-Fa-f]+$`)
)

// Parse splits source into Lines. Parsing is lenient: anything that is not
// a recognized literal is taken as a symbol name, and is only validated when
// the operation is encoded.
func Parse(source string) (lines []Line) {
	chunks := strings.SplitAfter(source, "\n")
	if len(chunks) > 0 && len(chunks[len(chunks)-1]) == 0 {
		chunks = chunks[:len(chunks)-1]
	}

	offset := 0
	for n, chunk := range chunks {
		text := strings.TrimRight(chunk, "\r\n")
		line := parseLine(text)
		line.Location = Location{
			Start: Position{Line: n + 1, Column: 1, Offset: offset},
			End:   Position{Line: n + 1, Column: len(text) + 1, Offset: offset + len(text)},
		}
		lines = append(lines, line)
		offset += len(chunk)
	}

	return
}

// indexOutside finds the first sep in text that is not inside quotes or
// parentheses.
func indexOutside(text string, sep byte) int {
	depth := 0
	quoted := false
	for n := 0; n < len(text); n++ {
		ch := text[n]
		switch {
		case quoted:
			if ch == '\'' {
				quoted = false
			}
		case ch == '\'':
			quoted = true
		case ch == '(':
			depth++
		case ch == ')':
			if depth > 0 {
				depth--
			}
		case ch == sep && depth == 0:
			return n
		}
	}

	return -1
}

// splitOutside splits text on every sep not inside quotes or parentheses.
func splitOutside(text string, sep byte) (parts []string) {
	for {
		n := indexOutside(text, sep)
		if n < 0 {
			parts = append(parts, text)
			return
		}
		parts = append(parts, text[:n])
		text = text[n+1:]
	}
}

// cutSpace splits text at its first run of white space.
func cutSpace(text string) (head, tail string) {
	n := strings.IndexFunc(text, unicode.IsSpace)
	if n < 0 {
		return text, ""
	}

	return text[:n], strings.TrimSpace(text[n:])
}

// parseLine parses the text of a single line.
func parseLine(text string) (line Line) {
	line.Source = text

	body := text
	if n := indexOutside(body, ';'); n >= 0 {
		line.Comment = strings.TrimSpace(body[n+1:])
		body = body[:n]
	}
	body = strings.TrimSpace(body)

	// LABEL: ...
	if n := indexOutside(body, ':'); n >= 0 {
		label := strings.TrimSpace(body[:n])
		if reIdentifier.MatchString(label) {
			line.Label = label
			body = strings.TrimSpace(body[n+1:])
		}
	}

	if len(body) == 0 {
		return
	}

	code, rest := cutSpace(body)

	// NAME EQU value
	if len(line.Label) == 0 && reIdentifier.MatchString(code) {
		word, value := cutSpace(rest)
		if strings.EqualFold(word, EQU) {
			line.Label = code
			code, rest = word, value
		}
	}

	op := &Operation{Code: strings.ToUpper(code)}
	if len(rest) > 0 {
		for _, word := range splitOutside(rest, ',') {
			op.Operands = append(op.Operands, ParseOperand(strings.TrimSpace(word)))
		}
	}
	line.Operation = op

	return
}

// ParseOperand converts the text of one operand. Numeric literals are
// decimal, hex with a trailing 'H', binary with a trailing 'B', hex with a
// leading '0x', or a single quoted character.
func ParseOperand(word string) (op Operand) {
	var value int64
	var err error

	switch {
	case strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")"):
		op.Expr = strings.TrimSpace(word[2 : len(word)-1])
		return
	case len(word) == 3 && word[0] == '\'' && word[2] == '\'':
		op.Value = int(word[1])
		return
	case reHex.MatchString(word):
		value, err = strconv.ParseInt(word[:len(word)-1], 16, 64)
	case reBinary.MatchString(word):
		value, err = strconv.ParseInt(word[:len(word)-1], 2, 64)
	case reCPrefix.MatchString(word):
		value, err = strconv.ParseInt(word[2:], 16, 64)
	case reDecimal.MatchString(word):
		value, err = strconv.ParseInt(word, 10, 64)
	default:
		op.Name = word
		return
	}

	if err != nil {
		// Too large for any operand; it fails as an unknown symbol.
		op.Name = word
		return
	}

	op.Value = int(value)

	return
}
