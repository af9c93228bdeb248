package cpu

// branch jumps to the resolved relative address if the flag has the expected value,
// otherwise execution continues after the 2 byte branch instruction.
func (c *CPU) branch(op Operand, flag Flag, expected bool) {
	if c.flag(flag) == expected {
		c.PC = op.Value
		return
	}
	c.PC += 2
}

func (c *CPU) bcc(_ *Memory, op Operand) { c.branch(op, CarryFlag, false) }
func (c *CPU) bcs(_ *Memory, op Operand) { c.branch(op, CarryFlag, true) }
func (c *CPU) bne(_ *Memory, op Operand) { c.branch(op, ZeroFlag, false) }
func (c *CPU) beq(_ *Memory, op Operand) { c.branch(op, ZeroFlag, true) }
func (c *CPU) bpl(_ *Memory, op Operand) { c.branch(op, NegativeFlag, false) }
func (c *CPU) bmi(_ *Memory, op Operand) { c.branch(op, NegativeFlag, true) }
func (c *CPU) bvc(_ *Memory, op Operand) { c.branch(op, OverflowFlag, false) }
func (c *CPU) bvs(_ *Memory, op Operand) { c.branch(op, OverflowFlag, true) }

func (c *CPU) jmp(_ *Memory, op Operand) {
	c.PC = op.Value
}

// jsr pushes the address of the last byte of the jsr instruction.
func (c *CPU) jsr(mem *Memory, op Operand) {
	c.push16(mem, c.PC+2)
	c.PC = op.Value
}

func (c *CPU) rts(mem *Memory, _ Operand) {
	c.PC = c.pull16(mem) + 1
}

// brk pushes the address following a padding byte after the opcode and a copy of the
// status with the break flag set, then continues at the IRQ vector.
func (c *CPU) brk(mem *Memory, _ Operand) {
	c.push16(mem, c.PC+2)
	c.push(mem, c.status|pushedBits)
	c.setFlag(InterruptFlag, true)
	c.PC = mem.ReadWord(IrqAddress)
}

func (c *CPU) rti(mem *Memory, _ Operand) {
	// B and bit 5 keep their current value, the pulled copies are ignored
	c.restoreStatus(c.pull(mem))
	c.PC = c.pull16(mem)
}

func (c *CPU) pha(mem *Memory, op Operand) {
	c.push(mem, c.A)
	c.advance(op)
}

func (c *CPU) pla(mem *Memory, op Operand) {
	c.A = c.pull(mem)
	c.setZN(c.A)
	c.advance(op)
}

func (c *CPU) php(mem *Memory, op Operand) {
	c.push(mem, c.status|pushedBits)
	c.advance(op)
}

func (c *CPU) plp(mem *Memory, op Operand) {
	c.restoreStatus(c.pull(mem))
	c.advance(op)
}
