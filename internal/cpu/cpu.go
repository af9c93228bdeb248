// Package cpu implements a MOS 6502 instruction interpreter working on a flat 64KB
// address space. Only documented opcodes are supported, decimal mode is ignored and
// time is measured in executed instructions instead of clock cycles.
package cpu

// Interrupt vector addresses, each holding a little-endian address.
const (
	NMIAddress   = 0xFFFA
	ResetAddress = 0xFFFC
	IrqAddress   = 0xFFFE
)

const (
	stackBase      = 0x0100
	initialStackSP = 0xFF
)

// CPU contains the registers of a 6502 processor. The memory it operates on is passed
// to every call that executes code.
type CPU struct {
	PC uint16 // program counter, address of the next opcode
	A  byte   // accumulator
	X  byte   // index register X
	Y  byte   // index register Y
	SP byte   // stack pointer, low byte of the next free stack slot

	status byte

	// Instructions counts the executed instructions.
	Instructions uint64

	indirectJumpBug bool
}

// Option configures optional CPU behavior.
type Option func(*CPU)

// WithIndirectJumpBug enables the NMOS behavior of JMP ($xxFF) fetching the high byte
// of the target from $xx00 instead of the next page.
func WithIndirectJumpBug() Option {
	return func(c *CPU) {
		c.indirectJumpBug = true
	}
}

// New returns a CPU with cleared registers and flags.
func New(options ...Option) *CPU {
	c := &CPU{
		SP: initialStackSP,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Reset loads the program counter from the reset vector and initializes the other
// registers. Interrupts are disabled after a reset.
func (c *CPU) Reset(mem *Memory) {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = initialStackSP
	c.status = byte(InterruptFlag)
	c.PC = mem.ReadWord(ResetAddress)
}

// Step executes the instruction at PC.
func (c *CPU) Step(mem *Memory) error {
	b := mem.Read(c.PC)
	opcode := Opcodes[b]
	if opcode.Instruction == nil {
		return &InvalidOpcodeError{Opcode: b, PC: c.PC}
	}

	resolve := resolvers[opcode.Addressing]
	operand := resolve(c, mem)
	opcode.Instruction.handler(c, mem, operand)

	c.Instructions++
	return nil
}

// NMI runs the non-maskable interrupt sequence. It must only be called between
// two Step calls. Unlike BRK, the pushed status has the break flag cleared.
func (c *CPU) NMI(mem *Memory) {
	c.push16(mem, c.PC)
	c.push(mem, c.status&^byte(BreakFlag)|byte(UnusedFlag))
	c.setFlag(InterruptFlag, true)
	c.PC = mem.ReadWord(NMIAddress)
}

func (c *CPU) push(mem *Memory, value byte) {
	mem.Write(stackBase|uint16(c.SP), value)
	c.SP--
}

func (c *CPU) pull(mem *Memory) byte {
	c.SP++
	return mem.Read(stackBase | uint16(c.SP))
}

// push16 pushes the high byte first so that the word is stored little-endian.
func (c *CPU) push16(mem *Memory, value uint16) {
	c.push(mem, byte(value>>8))
	c.push(mem, byte(value))
}

func (c *CPU) pull16(mem *Memory) uint16 {
	low := uint16(c.pull(mem))
	high := uint16(c.pull(mem))
	return high<<8 | low
}

// advance moves PC past the current instruction.
func (c *CPU) advance(op Operand) {
	c.PC += op.Bytes + 1
}
