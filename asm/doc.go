// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm is a two pass assembler for 8080 mnemonic source.
//
// The first pass parses source text into Lines and binds every label to the
// address of the instruction that follows it. The second pass encodes each
// Operation, resolving symbolic operands through the SymbolMap.
//
// Mnemonics are case-insensitive. Symbols are case-sensitive, but the
// register names are predefined in both upper and lower case, so "mov b,a"
// and "MOV B,A" assemble alike.
package asm
