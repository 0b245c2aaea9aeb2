// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

const (
	MEMORY_SIZE = 0x10000 // Addressable bytes.
	PAGE_SIZE   = 0x100   // Bytes per display page.
)

// Memory is a flat 64K byte store addressed by a Word.
// Every Word is a valid address, so no access can fail.
type Memory struct {
	cell [MEMORY_SIZE]byte
}

// Load reads the byte at address.
func (mem *Memory) Load(address Word) byte {
	return mem.cell[address.Uint16()]
}

// Store writes value at address.
func (mem *Memory) Store(address Word, value byte) {
	mem.cell[address.Uint16()] = value
}

// Write copies data into memory starting at address, wrapping at the top of
// the address space.
func (mem *Memory) Write(address Word, data []byte) {
	for n, value := range data {
		mem.Store(address.Add(n), value)
	}
}

// Page returns a copy of the 256 byte page number page.
func (mem *Memory) Page(page byte) (data []byte) {
	start := int(page) * PAGE_SIZE
	data = make([]byte, PAGE_SIZE)
	copy(data, mem.cell[start:start+PAGE_SIZE])
	return
}

// Reset zeros all of memory.
func (mem *Memory) Reset() {
	clear(mem.cell[:])
}
