package cpu

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

const testCodeAddress = 0x8000

// newTestCPU returns a CPU with the program counter pointing at the given code that is
// placed at the start of the ROM window.
func newTestCPU(t *testing.T, code ...byte) (*CPU, *Memory) {
	t.Helper()

	mem := NewMemory()
	mem.Load(testCodeAddress, code)

	c := New()
	c.PC = testCodeAddress
	return c, mem
}

func step(t *testing.T, c *CPU, mem *Memory) {
	t.Helper()
	assert.NoError(t, c.Step(mem))
}

func flag(t *testing.T, c *CPU, name rune) bool {
	t.Helper()
	value, err := c.Flag(name)
	assert.NoError(t, err)
	return value
}

func TestStepLoadImmediate(t *testing.T) {
	c, mem := newTestCPU(t, 0xA9, 0xFF) // lda #$FF

	step(t, c, mem)

	assert.Equal(t, byte(0xFF), c.A)
	assert.True(t, flag(t, c, 'N'))
	assert.False(t, flag(t, c, 'Z'))
	assert.Equal(t, uint16(0x8002), c.PC)
	assert.Equal(t, uint64(1), c.Instructions)
}

func TestStepStoreWriteGuard(t *testing.T) {
	tests := []struct {
		name     string
		code     []byte
		address  uint16
		expected byte
	}{
		{"protected address", []byte{0x8D, 0x01, 0xFF}, 0xFF01, 0x00},   // sta $FF01
		{"first ROM address", []byte{0x8D, 0x00, 0x80}, 0x8000, 0x8D},   // sta $8000
		{"last RAM address", []byte{0x8D, 0xFF, 0x7F}, 0x7FFF, 0xFF},    // sta $7FFF
		{"display window", []byte{0x8D, 0x10, 0x20}, 0x2010, 0xFF},      // sta $2010
		{"zero page", []byte{0x85, 0x10}, 0x0010, 0xFF},                 // sta $10
		{"indexed into ROM", []byte{0x9D, 0xFF, 0x7F}, 0x8000, 0x9D},    // sta $7FFF,X with X=1
		{"indexed below ROM", []byte{0x9D, 0xFE, 0x7F}, 0x7FFF, 0xFF},   // sta $7FFE,X with X=1
		{"indirect indexed", []byte{0x91, 0x20}, 0x1235, 0xFF},          // sta ($20),Y with Y=1
		{"indexed indirect", []byte{0x81, 0x1F}, 0x1234, 0xFF},          // sta ($1F,X) with X=1
		{"store x zero page y", []byte{0x96, 0x0F}, 0x0010, 0x01},       // stx $0F,Y with Y=1
		{"store y zero page x", []byte{0x94, 0x0F}, 0x0010, 0x01},       // sty $0F,X with X=1
		{"store x absolute ROM", []byte{0x8E, 0x00, 0x90}, 0x9000, 0x00}, // stx $9000
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mem := newTestCPU(t, tt.code...)
			mem.Write(0x20, 0x34)
			mem.Write(0x21, 0x12)
			c.A = 0xFF
			c.X = 0x01
			c.Y = 0x01

			step(t, c, mem)

			assert.Equal(t, tt.expected, mem.Read(tt.address))
			assert.Equal(t, uint16(0x8000)+uint16(len(tt.code)), c.PC)
		})
	}
}

func TestStepInvalidOpcode(t *testing.T) {
	c, mem := newTestCPU(t, 0x02)
	c.A = 0x12

	err := c.Step(mem)
	assert.Error(t, err, "invalid opcode 0x02 at address 0x8000")
	assert.True(t, errors.Is(err, ErrInvalidOpcode))

	var opcodeErr *InvalidOpcodeError
	assert.True(t, errors.As(err, &opcodeErr))
	assert.Equal(t, byte(0x02), opcodeErr.Opcode)
	assert.Equal(t, uint16(0x8000), opcodeErr.PC)

	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, byte(0x12), c.A)
	assert.Equal(t, uint64(0), c.Instructions)
}

func TestStepAllUnassignedOpcodesFail(t *testing.T) {
	for b := 0; b < 256; b++ {
		if Opcodes[b].Instruction != nil {
			continue
		}
		c, mem := newTestCPU(t, byte(b))
		err := c.Step(mem)
		assert.True(t, errors.Is(err, ErrInvalidOpcode))
	}
}

func TestNew(t *testing.T) {
	c := New()
	assert.Equal(t, uint16(0), c.PC)
	assert.Equal(t, byte(0), c.A)
	assert.Equal(t, byte(0), c.X)
	assert.Equal(t, byte(0), c.Y)
	assert.Equal(t, byte(0xFF), c.SP)
	assert.Equal(t, byte(0), c.Status())
}

func TestReset(t *testing.T) {
	mem := NewMemory()
	mem.Load(ResetAddress, []byte{0x34, 0x92})

	c := New()
	c.A = 1
	c.X = 2
	c.Y = 3
	c.SP = 0x10
	assert.NoError(t, c.SetFlag('C', true))

	c.Reset(mem)

	assert.Equal(t, uint16(0x9234), c.PC)
	assert.Equal(t, byte(0), c.A)
	assert.Equal(t, byte(0), c.X)
	assert.Equal(t, byte(0), c.Y)
	assert.Equal(t, byte(0xFF), c.SP)
	assert.True(t, flag(t, c, 'I'))
	assert.False(t, flag(t, c, 'C'))
}

func TestNMI(t *testing.T) {
	mem := NewMemory()
	mem.Load(NMIAddress, []byte{0x00, 0x90})

	c := New()
	c.PC = 0x8123
	assert.NoError(t, c.SetFlag('C', true))
	assert.NoError(t, c.SetFlag('B', true))

	c.NMI(mem)

	assert.Equal(t, uint16(0x9000), c.PC)
	assert.Equal(t, byte(0xFC), c.SP)
	assert.Equal(t, byte(0x81), mem.Read(0x01FF))
	assert.Equal(t, byte(0x23), mem.Read(0x01FE))
	// break flag cleared and bit 5 set in the pushed copy
	assert.Equal(t, byte(CarryFlag|UnusedFlag), mem.Read(0x01FD))
	assert.True(t, flag(t, c, 'I'))
	assert.True(t, flag(t, c, 'B'))
}

func TestNMIReturn(t *testing.T) {
	mem := NewMemory()
	mem.Load(NMIAddress, []byte{0x00, 0x90})
	mem.Load(0x9000, []byte{0x40}) // rti

	c := New()
	c.PC = 0x8123
	assert.NoError(t, c.SetFlag('Z', true))

	c.NMI(mem)
	step(t, c, mem)

	assert.Equal(t, uint16(0x8123), c.PC)
	assert.Equal(t, byte(0xFF), c.SP)
	assert.Equal(t, byte(ZeroFlag), c.Status())
}

func TestStackWrap(t *testing.T) {
	c, mem := newTestCPU(t, 0x48, 0x68) // pha, pla
	c.SP = 0x00
	c.A = 0x42

	step(t, c, mem)
	assert.Equal(t, byte(0xFF), c.SP)
	assert.Equal(t, byte(0x42), mem.Read(0x0100))

	c.A = 0
	step(t, c, mem)
	assert.Equal(t, byte(0x00), c.SP)
	assert.Equal(t, byte(0x42), c.A)
}

func TestProgram(t *testing.T) {
	// sums 10 + 9 + ... + 1 into $00 and stores the result in the display window
	code := []byte{
		0xA2, 0x0A, // ldx #$0A
		0xA9, 0x00, // lda #$00
		0x18,       // clc
		0x86, 0x01, // stx $01
		0x65, 0x01, // adc $01
		0xCA,       // dex
		0xD0, 0xF8, // bne -8
		0x85, 0x00, // sta $00
		0x8D, 0x00, 0x20, // sta $2000
		0xEA, // nop
	}
	c, mem := newTestCPU(t, code...)

	for c.PC != 0x8011 {
		step(t, c, mem)
	}

	assert.Equal(t, byte(55), mem.Read(0x0000))
	assert.Equal(t, byte(55), mem.Read(0x2000))
	assert.Equal(t, byte(0), c.X)
	assert.True(t, flag(t, c, 'Z'))
}
