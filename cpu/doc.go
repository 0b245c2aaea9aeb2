// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package cpu implements an Intel 8080 class microprocessor.
//
// The processor consists of a register bank (B, C, D, E, H, L, A, the
// program counter, the stack pointer, and the carry, auxiliary carry, zero,
// sign and parity flags), a flat 64K byte memory, and a pipeline of Fetcher,
// Decoder and Executor driven one instruction at a time by the Processor.
//
// The core is synchronous and performs no locking. Callers that drive it from
// a timer or UI must serialize access themselves.
package cpu
