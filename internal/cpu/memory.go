package cpu

import "github.com/retroenv/retrogolib/nes/addressing"

// MemorySize is the size of the flat 6502 address space.
const MemorySize = 0x10000

// Memory is the flat 64KB address space of the CPU. The range starting at
// addressing.CodeBaseAddress (0x8000) is read-only for the instruction set.
type Memory struct {
	data [MemorySize]byte
}

// NewMemory returns a zeroed address space.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) byte {
	return m.data[address]
}

// Write stores a byte, writes into the ROM window are dropped.
func (m *Memory) Write(address uint16, value byte) {
	if address >= addressing.CodeBaseAddress {
		return
	}
	m.data[address] = value
}

// ReadWord reads a little-endian word.
func (m *Memory) ReadWord(address uint16) uint16 {
	low := uint16(m.data[address])
	high := uint16(m.data[address+1])
	return high<<8 | low
}

// readWordBug reads a word from a memory address and emulates a 6502 bug that caused
// the low byte to wrap without incrementing the high byte.
func (m *Memory) readWordBug(address uint16) uint16 {
	low := uint16(m.data[address])
	address = (address & 0xFF00) | uint16(byte(address)+1)
	high := uint16(m.data[address])
	return high<<8 | low
}

// readZeroPageWord reads a pointer from the zero page. The high byte of a pointer
// at 0xFF is read from 0x00.
func (m *Memory) readZeroPageWord(pointer byte) uint16 {
	low := uint16(m.data[pointer])
	high := uint16(m.data[pointer+1])
	return high<<8 | low
}

// Load copies data into memory starting at address, bypassing the ROM write guard.
// It is used to place ROM images before the CPU runs. Data past the end of the
// address space is ignored.
func (m *Memory) Load(address uint16, data []byte) {
	copy(m.data[address:], data)
}

// Slice returns a copy of length bytes starting at address, wrapping at the end of
// the address space.
func (m *Memory) Slice(address uint16, length int) []byte {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = m.data[address+uint16(i)]
	}
	return buf
}
