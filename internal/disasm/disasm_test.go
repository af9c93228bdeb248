package disasm

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/emu6502/internal/cpu"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/nes/parameter"
)

func TestFetch(t *testing.T) {
	rom := []byte{
		0xA9, 0xFF, // lda #$FF
		0x8D, 0x01, 0xFF, // sta $FF01
		0xEA,       // nop
		0x02,       // unassigned
		0x4C, 0x00, // truncated jmp
	}

	tests := []struct {
		name     string
		index    int
		expected []byte
		err      error
	}{
		{"immediate", 0, []byte{0xA9, 0xFF}, nil},
		{"absolute", 2, []byte{0x8D, 0x01, 0xFF}, nil},
		{"implied", 5, []byte{0xEA}, nil},
		{"operand byte as opcode", 1, nil, cpu.ErrInvalidOpcode},
		{"invalid opcode", 6, nil, cpu.ErrInvalidOpcode},
		{"truncated instruction", 7, nil, ErrIndexOutOfRange},
		{"negative index", -1, nil, ErrIndexOutOfRange},
		{"index past end", len(rom), nil, ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instruction, err := Fetch(rom, tt.index)
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err))
				assert.True(t, instruction == nil)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, instruction)
		})
	}
}

func TestFetchCopiesBytes(t *testing.T) {
	rom := []byte{0xA9, 0x10}
	instruction, err := Fetch(rom, 0)
	assert.NoError(t, err)

	instruction[1] = 0x20
	assert.Equal(t, byte(0x10), rom[1])
}

func TestLine(t *testing.T) {
	tests := []struct {
		code     []byte
		expected string
	}{
		{[]byte{0xEA}, "nop"},
		{[]byte{0x0A}, "asl a"},
		{[]byte{0xA9, 0xFF}, "lda #$FF"},
		{[]byte{0xA5, 0x10}, "lda $10"},
		{[]byte{0xB5, 0x10}, "lda $10,X"},
		{[]byte{0xB6, 0x10}, "ldx $10,Y"},
		{[]byte{0xAD, 0x34, 0x12}, "lda $1234"},
		{[]byte{0x9D, 0x01, 0xFF}, "sta $FF01,X"},
		{[]byte{0xB9, 0x00, 0x20}, "lda $2000,Y"},
		{[]byte{0x6C, 0x34, 0x12}, "jmp ($1234)"},
		{[]byte{0xA1, 0x20}, "lda ($20,X)"},
		{[]byte{0xB1, 0x20}, "lda ($20),Y"},
		{[]byte{0xD0, 0x0E}, "bne $8010"},
		{[]byte{0xD0, 0xFE}, "bne $8000"},
		{[]byte{0x20, 0x00, 0x90}, "jsr $9000"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			mem := cpu.NewMemory()
			mem.Load(0x8000, tt.code)

			ins, err := Line(Converter{}, mem, 0x8000)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ins.String())
			assert.Equal(t, tt.code, ins.Bytes)
			assert.Equal(t, uint16(0x8000), ins.Address)
		})
	}
}

func TestLineConverter(t *testing.T) {
	mem := cpu.NewMemory()
	mem.Load(0x8000, []byte{0xA1, 0x20, 0xB1, 0x20, 0xB9, 0x34, 0x12})

	ins, err := Line(parameter.Ca65Converter{}, mem, 0x8000)
	assert.NoError(t, err)
	assert.Equal(t, "lda ($0020,X)", ins.String())

	ins, err = Line(parameter.Ca65Converter{}, mem, 0x8002)
	assert.NoError(t, err)
	assert.Equal(t, "lda ($0020),Y", ins.String())

	ins, err = Line(Converter{}, mem, 0x8004)
	assert.NoError(t, err)
	assert.Equal(t, "lda $1234,Y", ins.String())
}

func TestLineInvalidOpcode(t *testing.T) {
	mem := cpu.NewMemory()
	mem.Load(0x8000, []byte{0xFF})

	ins, err := Line(Converter{}, mem, 0x8000)
	assert.True(t, errors.Is(err, cpu.ErrInvalidOpcode))

	var opcodeErr *cpu.InvalidOpcodeError
	assert.True(t, errors.As(err, &opcodeErr))
	assert.Equal(t, uint16(0x8000), opcodeErr.PC)
	assert.Equal(t, []byte{0xFF}, ins.Bytes)
}

func TestListing(t *testing.T) {
	mem := cpu.NewMemory()
	mem.Load(0x8000, []byte{
		0xA9, 0x01, // lda #$01
		0x02,             // unassigned
		0x8D, 0x00, 0x20, // sta $2000
	})

	var buf bytes.Buffer
	assert.NoError(t, Listing(&buf, Converter{}, mem, 0x8000, 0x8005))

	expected := "$8000  A9 01     lda #$01\n" +
		"$8002  02        .byte $02\n" +
		"$8003  8D 00 20  sta $2000\n"
	assert.Equal(t, expected, buf.String())
}

func TestListingEndOfMemory(t *testing.T) {
	mem := cpu.NewMemory()
	mem.Load(0xFFFE, []byte{0xEA, 0xEA})

	var buf bytes.Buffer
	assert.NoError(t, Listing(&buf, Converter{}, mem, 0xFFFE, 0xFFFF))
	assert.Equal(t, "$FFFE  EA        nop\n$FFFF  EA        nop\n", buf.String())
}
