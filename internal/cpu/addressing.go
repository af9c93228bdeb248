package cpu

import "github.com/retroenv/retrogolib/nes/addressing"

// Operand is the result of resolving the addressing mode of an instruction.
type Operand struct {
	// Value is the effective address, or the operand itself if Direct is set.
	Value uint16
	// Bytes is the number of operand bytes following the opcode.
	Bytes uint16
	// Direct marks Value as an immediate or accumulator value that must not be
	// dereferenced.
	Direct bool
}

type resolver func(c *CPU, mem *Memory) Operand

var resolvers = map[addressing.Mode]resolver{
	addressing.ImpliedAddressing:     resolveImplied,
	addressing.ImmediateAddressing:   resolveImmediate,
	addressing.AccumulatorAddressing: resolveAccumulator,
	addressing.AbsoluteAddressing:    resolveAbsolute,
	addressing.AbsoluteXAddressing:   resolveAbsoluteX,
	addressing.AbsoluteYAddressing:   resolveAbsoluteY,
	addressing.ZeroPageAddressing:    resolveZeroPage,
	addressing.ZeroPageXAddressing:   resolveZeroPageX,
	addressing.ZeroPageYAddressing:   resolveZeroPageY,
	addressing.RelativeAddressing:    resolveRelative,
	addressing.IndirectAddressing:    resolveIndirect,
	addressing.IndirectXAddressing:   resolveIndirectX,
	addressing.IndirectYAddressing:   resolveIndirectY,
}

// operandSizes maps the addressing modes to the count of operand bytes.
var operandSizes = map[addressing.Mode]int{
	addressing.ImpliedAddressing:     0,
	addressing.AccumulatorAddressing: 0,
	addressing.ImmediateAddressing:   1,
	addressing.ZeroPageAddressing:    1,
	addressing.ZeroPageXAddressing:   1,
	addressing.ZeroPageYAddressing:   1,
	addressing.RelativeAddressing:    1,
	addressing.IndirectXAddressing:   1,
	addressing.IndirectYAddressing:   1,
	addressing.AbsoluteAddressing:    2,
	addressing.AbsoluteXAddressing:   2,
	addressing.AbsoluteYAddressing:   2,
	addressing.IndirectAddressing:    2,
}

func resolveImplied(*CPU, *Memory) Operand {
	return Operand{}
}

func resolveImmediate(c *CPU, mem *Memory) Operand {
	return Operand{Value: uint16(mem.Read(c.PC + 1)), Bytes: 1, Direct: true}
}

func resolveAccumulator(c *CPU, _ *Memory) Operand {
	return Operand{Value: uint16(c.A), Direct: true}
}

func resolveAbsolute(c *CPU, mem *Memory) Operand {
	return Operand{Value: mem.ReadWord(c.PC + 1), Bytes: 2}
}

func resolveAbsoluteX(c *CPU, mem *Memory) Operand {
	return Operand{Value: mem.ReadWord(c.PC+1) + uint16(c.X), Bytes: 2}
}

func resolveAbsoluteY(c *CPU, mem *Memory) Operand {
	return Operand{Value: mem.ReadWord(c.PC+1) + uint16(c.Y), Bytes: 2}
}

func resolveZeroPage(c *CPU, mem *Memory) Operand {
	return Operand{Value: uint16(mem.Read(c.PC + 1)), Bytes: 1}
}

// resolveZeroPageX wraps the indexed address inside the zero page.
func resolveZeroPageX(c *CPU, mem *Memory) Operand {
	return Operand{Value: uint16(mem.Read(c.PC+1) + c.X), Bytes: 1}
}

func resolveZeroPageY(c *CPU, mem *Memory) Operand {
	return Operand{Value: uint16(mem.Read(c.PC+1) + c.Y), Bytes: 1}
}

// resolveRelative returns the branch destination, the offset is relative to the
// instruction following the branch.
func resolveRelative(c *CPU, mem *Memory) Operand {
	offset := int8(mem.Read(c.PC + 1))
	return Operand{Value: c.PC + 2 + uint16(offset), Bytes: 1}
}

func resolveIndirect(c *CPU, mem *Memory) Operand {
	pointer := mem.ReadWord(c.PC + 1)
	var address uint16
	if c.indirectJumpBug {
		address = mem.readWordBug(pointer)
	} else {
		address = mem.ReadWord(pointer)
	}
	return Operand{Value: address, Bytes: 2}
}

func resolveIndirectX(c *CPU, mem *Memory) Operand {
	pointer := mem.Read(c.PC+1) + c.X
	return Operand{Value: mem.readZeroPageWord(pointer), Bytes: 1}
}

func resolveIndirectY(c *CPU, mem *Memory) Operand {
	pointer := mem.Read(c.PC + 1)
	return Operand{Value: mem.readZeroPageWord(pointer) + uint16(c.Y), Bytes: 1}
}
