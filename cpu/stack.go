// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Push stores value on the descending stack in Memory: the high byte at
// SP-1, then the low byte at SP-2, leaving SP at SP-2.
func (rb *Registers) Push(value Word) {
	rb.memory.Store(rb.sp.Add(-1), value.High)
	rb.memory.Store(rb.sp.Add(-2), value.Low)
	rb.sp = rb.sp.Add(-2)
}

// Pop reads the word at SP and advances SP by 2.
func (rb *Registers) Pop() (value Word) {
	value = rb.Peek()
	rb.sp = rb.sp.Add(2)
	return
}

// Peek reads the word at SP without moving SP.
func (rb *Registers) Peek() Word {
	return Word{
		Low:  rb.memory.Load(rb.sp),
		High: rb.memory.Load(rb.sp.Add(1)),
	}
}
