package cpu

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemoryWriteGuard(t *testing.T) {
	mem := NewMemory()

	mem.Write(0x0000, 0x01)
	mem.Write(0x7FFF, 0x02)
	mem.Write(0x8000, 0x03)
	mem.Write(0xFFFF, 0x04)

	assert.Equal(t, byte(0x01), mem.Read(0x0000))
	assert.Equal(t, byte(0x02), mem.Read(0x7FFF))
	assert.Equal(t, byte(0x00), mem.Read(0x8000))
	assert.Equal(t, byte(0x00), mem.Read(0xFFFF))
}

func TestMemoryLoad(t *testing.T) {
	mem := NewMemory()
	mem.Load(0xFFFE, []byte{0x01, 0x02, 0x03})

	assert.Equal(t, byte(0x01), mem.Read(0xFFFE))
	assert.Equal(t, byte(0x02), mem.Read(0xFFFF))
	assert.Equal(t, byte(0x00), mem.Read(0x0000))
}

func TestMemoryReadWord(t *testing.T) {
	mem := NewMemory()
	mem.Load(0x10FF, []byte{0xCD, 0xAB})
	mem.Load(0x1000, []byte{0x12})

	assert.Equal(t, uint16(0xABCD), mem.ReadWord(0x10FF))
	assert.Equal(t, uint16(0x12CD), mem.readWordBug(0x10FF))
}

func TestMemorySlice(t *testing.T) {
	mem := NewMemory()
	mem.Load(0xFFFF, []byte{0xAA})
	mem.Write(0x0000, 0xBB)

	assert.Equal(t, []byte{0xAA, 0xBB}, mem.Slice(0xFFFF, 2))
}
