package disasm

import (
	"fmt"

	"github.com/retroenv/retrogolib/nes/addressing"
	"github.com/retroenv/retrogolib/nes/parameter"
)

// paramReaderFunc returns the typed operand of the instruction at address, data
// contains the opcode and operand bytes.
type paramReaderFunc func(address uint16, data []byte) any

var paramReader = map[addressing.Mode]paramReaderFunc{
	addressing.ImpliedAddressing:     paramReaderImplied,
	addressing.ImmediateAddressing:   paramReaderImmediate,
	addressing.AccumulatorAddressing: paramReaderAccumulator,
	addressing.AbsoluteAddressing:    paramReaderAbsolute,
	addressing.AbsoluteXAddressing:   paramReaderAbsoluteX,
	addressing.AbsoluteYAddressing:   paramReaderAbsoluteY,
	addressing.ZeroPageAddressing:    paramReaderZeroPage,
	addressing.ZeroPageXAddressing:   paramReaderZeroPageX,
	addressing.ZeroPageYAddressing:   paramReaderZeroPageY,
	addressing.RelativeAddressing:    paramReaderRelative,
	addressing.IndirectAddressing:    paramReaderIndirect,
	addressing.IndirectXAddressing:   paramReaderIndirectX,
	addressing.IndirectYAddressing:   paramReaderIndirectY,
}

func word(data []byte) uint16 {
	return uint16(data[2])<<8 | uint16(data[1])
}

func paramReaderImplied(uint16, []byte) any {
	return nil
}

func paramReaderImmediate(_ uint16, data []byte) any {
	return int(data[1])
}

func paramReaderAccumulator(uint16, []byte) any {
	return addressing.Accumulator(0)
}

func paramReaderAbsolute(_ uint16, data []byte) any {
	return addressing.Absolute(word(data))
}

func paramReaderAbsoluteX(_ uint16, data []byte) any {
	return addressing.AbsoluteX(word(data))
}

func paramReaderAbsoluteY(_ uint16, data []byte) any {
	return addressing.AbsoluteY(word(data))
}

func paramReaderZeroPage(_ uint16, data []byte) any {
	return addressing.ZeroPage(data[1])
}

func paramReaderZeroPageX(_ uint16, data []byte) any {
	return addressing.ZeroPageX(data[1])
}

func paramReaderZeroPageY(_ uint16, data []byte) any {
	return addressing.ZeroPageY(data[1])
}

// paramReaderRelative returns the branch destination as absolute address.
func paramReaderRelative(address uint16, data []byte) any {
	offset := uint16(data[1])

	var destination uint16
	if offset < 0x80 {
		destination = address + 2 + offset
	} else {
		destination = address + 2 + offset - 0x100
	}
	return addressing.Absolute(destination)
}

func paramReaderIndirect(_ uint16, data []byte) any {
	return addressing.Indirect(word(data))
}

func paramReaderIndirectX(_ uint16, data []byte) any {
	return addressing.IndirectX(data[1])
}

func paramReaderIndirectY(_ uint16, data []byte) any {
	return addressing.IndirectY(data[1])
}

// Converter formats operands in ca65 notation. The pointer of the indexed indirect
// modes is a zero page address and is printed with two digits.
type Converter struct {
	parameter.Ca65Converter
}

// IndirectX converts the parameter to ($nn,X) notation.
func (c Converter) IndirectX(param any) string {
	if val, ok := param.(addressing.IndirectX); ok {
		return fmt.Sprintf("($%02X,X)", byte(val))
	}
	return c.Ca65Converter.IndirectX(param)
}

// IndirectY converts the parameter to ($nn),Y notation.
func (c Converter) IndirectY(param any) string {
	if val, ok := param.(addressing.IndirectY); ok {
		return fmt.Sprintf("($%02X),Y", byte(val))
	}
	return c.Ca65Converter.IndirectY(param)
}
