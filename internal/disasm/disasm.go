// Package disasm decodes 6502 instructions into assembler notation.
package disasm

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/emu6502/internal/cpu"
	nescpu "github.com/retroenv/retrogolib/nes/cpu"
	"github.com/retroenv/retrogolib/nes/parameter"
)

// ErrIndexOutOfRange is returned when an instruction is fetched from outside of a buffer.
var ErrIndexOutOfRange = errors.New("index out of range")

// Instruction is a decoded instruction.
type Instruction struct {
	Address uint16
	Bytes   []byte // opcode followed by the operand bytes
	Name    string // lowercase mnemonic
	Param   string // operand in assembler notation, empty for implied addressing
}

// String returns the instruction in assembler notation.
func (i Instruction) String() string {
	if i.Param == "" {
		return i.Name
	}
	return i.Name + " " + i.Param
}

// Fetch returns the bytes of the instruction starting at index of the ROM buffer.
// The length is looked up from the opcode table.
func Fetch(rom []byte, index int) ([]byte, error) {
	if index < 0 || index >= len(rom) {
		return nil, fmt.Errorf("%w: index %d is outside of the ROM (0 - %d)", ErrIndexOutOfRange, index, len(rom))
	}

	b := rom[index]
	size, ok := cpu.OperandBytes(b)
	if !ok {
		return nil, fmt.Errorf("%w 0x%02X at index %d", cpu.ErrInvalidOpcode, b, index)
	}

	end := index + 1 + size
	if end > len(rom) {
		return nil, fmt.Errorf("%w: instruction at index %d ends after the ROM (0 - %d)", ErrIndexOutOfRange, index, len(rom))
	}

	instruction := make([]byte, 1+size)
	copy(instruction, rom[index:end])
	return instruction, nil
}

// Line decodes the instruction at the given address and formats its operand using
// the converter. For unassigned opcode bytes an instruction containing only the
// opcode byte is returned together with an *cpu.InvalidOpcodeError.
func Line(converter parameter.Converter, mem *cpu.Memory, address uint16) (Instruction, error) {
	b := mem.Read(address)
	ins := Instruction{
		Address: address,
		Bytes:   []byte{b},
	}

	opcode := cpu.Opcodes[b]
	if opcode.Instruction == nil {
		return ins, &cpu.InvalidOpcodeError{Opcode: b, PC: address}
	}

	size, _ := cpu.OperandBytes(b)
	ins.Bytes = mem.Slice(address, 1+size)
	ins.Name = nescpu.Opcodes[b].Instruction.Name

	read := paramReader[opcode.Addressing]
	param, err := parameter.String(converter, opcode.Addressing, read(address, ins.Bytes))
	if err != nil {
		return ins, fmt.Errorf("converting parameter at address 0x%04X: %w", address, err)
	}
	ins.Param = param
	return ins, nil
}

// Listing writes a disassembly of the memory range from start to end inclusive.
// Unassigned opcode bytes are written as data bytes.
func Listing(w io.Writer, converter parameter.Converter, mem *cpu.Memory, start, end uint16) error {
	for address := int(start); address <= int(end); {
		ins, err := Line(converter, mem, uint16(address))
		code := ins.String()
		if err != nil {
			if !errors.Is(err, cpu.ErrInvalidOpcode) {
				return fmt.Errorf("disassembling address 0x%04X: %w", address, err)
			}
			code = fmt.Sprintf(".byte $%02X", ins.Bytes[0])
		}

		if _, err := fmt.Fprintf(w, "$%04X  %-8s  %s\n", ins.Address, hexBytes(ins.Bytes), code); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
		address += len(ins.Bytes)
	}
	return nil
}

func hexBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}
