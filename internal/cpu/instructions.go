package cpu

// load returns the operand value, reading memory unless the operand is direct.
func (c *CPU) load(mem *Memory, op Operand) byte {
	if op.Direct {
		return byte(op.Value)
	}
	return mem.Read(op.Value)
}

// store writes a read-modify-write result back to the accumulator or memory.
func (c *CPU) store(mem *Memory, op Operand, value byte) {
	if op.Direct {
		c.A = value
		return
	}
	mem.Write(op.Value, value)
}

func (c *CPU) lda(mem *Memory, op Operand) {
	c.A = c.load(mem, op)
	c.setZN(c.A)
	c.advance(op)
}

func (c *CPU) ldx(mem *Memory, op Operand) {
	c.X = c.load(mem, op)
	c.setZN(c.X)
	c.advance(op)
}

func (c *CPU) ldy(mem *Memory, op Operand) {
	c.Y = c.load(mem, op)
	c.setZN(c.Y)
	c.advance(op)
}

func (c *CPU) sta(mem *Memory, op Operand) {
	mem.Write(op.Value, c.A)
	c.advance(op)
}

func (c *CPU) stx(mem *Memory, op Operand) {
	mem.Write(op.Value, c.X)
	c.advance(op)
}

func (c *CPU) sty(mem *Memory, op Operand) {
	mem.Write(op.Value, c.Y)
	c.advance(op)
}

func (c *CPU) tax(_ *Memory, op Operand) {
	c.X = c.A
	c.setZN(c.X)
	c.advance(op)
}

func (c *CPU) txa(_ *Memory, op Operand) {
	c.A = c.X
	c.setZN(c.A)
	c.advance(op)
}

func (c *CPU) tay(_ *Memory, op Operand) {
	c.Y = c.A
	c.setZN(c.Y)
	c.advance(op)
}

func (c *CPU) tya(_ *Memory, op Operand) {
	c.A = c.Y
	c.setZN(c.A)
	c.advance(op)
}

func (c *CPU) tsx(_ *Memory, op Operand) {
	c.X = c.SP
	c.setZN(c.X)
	c.advance(op)
}

func (c *CPU) txs(_ *Memory, op Operand) {
	c.SP = c.X
	c.advance(op)
}

// addWithCarry adds value and the carry flag to the accumulator. The overflow flag is
// set when both inputs have the same sign and the sign of the result differs.
func (c *CPU) addWithCarry(value byte) {
	sum := uint16(c.A) + uint16(value) + uint16(c.carry())
	result := byte(sum)

	c.setFlag(CarryFlag, sum > 0xFF)
	c.setFlag(OverflowFlag, (result^c.A)&(result^value)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) adc(mem *Memory, op Operand) {
	c.addWithCarry(c.load(mem, op))
	c.advance(op)
}

// sbc subtracts using the ones' complement of the operand, a set carry means no borrow.
func (c *CPU) sbc(mem *Memory, op Operand) {
	c.addWithCarry(^c.load(mem, op))
	c.advance(op)
}

func (c *CPU) inc(mem *Memory, op Operand) {
	value := mem.Read(op.Value) + 1
	mem.Write(op.Value, value)
	c.setZN(value)
	c.advance(op)
}

func (c *CPU) dec(mem *Memory, op Operand) {
	value := mem.Read(op.Value) - 1
	mem.Write(op.Value, value)
	c.setZN(value)
	c.advance(op)
}

func (c *CPU) inx(_ *Memory, op Operand) {
	c.X++
	c.setZN(c.X)
	c.advance(op)
}

func (c *CPU) dex(_ *Memory, op Operand) {
	c.X--
	c.setZN(c.X)
	c.advance(op)
}

func (c *CPU) iny(_ *Memory, op Operand) {
	c.Y++
	c.setZN(c.Y)
	c.advance(op)
}

func (c *CPU) dey(_ *Memory, op Operand) {
	c.Y--
	c.setZN(c.Y)
	c.advance(op)
}

func (c *CPU) asl(mem *Memory, op Operand) {
	value := c.load(mem, op)
	c.setFlag(CarryFlag, value&0x80 != 0)
	value <<= 1
	c.store(mem, op, value)
	c.setZN(value)
	c.advance(op)
}

func (c *CPU) lsr(mem *Memory, op Operand) {
	value := c.load(mem, op)
	c.setFlag(CarryFlag, value&0x01 != 0)
	value >>= 1
	c.store(mem, op, value)
	c.setZN(value)
	c.advance(op)
}

func (c *CPU) rol(mem *Memory, op Operand) {
	value := c.load(mem, op)
	carry := c.carry()
	c.setFlag(CarryFlag, value&0x80 != 0)
	value = value<<1 | carry
	c.store(mem, op, value)
	c.setZN(value)
	c.advance(op)
}

func (c *CPU) ror(mem *Memory, op Operand) {
	value := c.load(mem, op)
	carry := c.carry()
	c.setFlag(CarryFlag, value&0x01 != 0)
	value = value>>1 | carry<<7
	c.store(mem, op, value)
	c.setZN(value)
	c.advance(op)
}

func (c *CPU) and(mem *Memory, op Operand) {
	c.A &= c.load(mem, op)
	c.setZN(c.A)
	c.advance(op)
}

func (c *CPU) ora(mem *Memory, op Operand) {
	c.A |= c.load(mem, op)
	c.setZN(c.A)
	c.advance(op)
}

func (c *CPU) eor(mem *Memory, op Operand) {
	c.A ^= c.load(mem, op)
	c.setZN(c.A)
	c.advance(op)
}

func (c *CPU) bit(mem *Memory, op Operand) {
	value := c.load(mem, op)
	c.setFlag(ZeroFlag, c.A&value == 0)
	c.setFlag(OverflowFlag, value&0x40 != 0)
	c.setFlag(NegativeFlag, value&0x80 != 0)
	c.advance(op)
}

// compare sets the flags for register - value without storing the difference.
func (c *CPU) compare(register, value byte) {
	c.setFlag(CarryFlag, register >= value)
	c.setZN(register - value)
}

func (c *CPU) cmp(mem *Memory, op Operand) {
	c.compare(c.A, c.load(mem, op))
	c.advance(op)
}

func (c *CPU) cpx(mem *Memory, op Operand) {
	c.compare(c.X, c.load(mem, op))
	c.advance(op)
}

func (c *CPU) cpy(mem *Memory, op Operand) {
	c.compare(c.Y, c.load(mem, op))
	c.advance(op)
}

func (c *CPU) clc(_ *Memory, op Operand) {
	c.setFlag(CarryFlag, false)
	c.advance(op)
}

func (c *CPU) sec(_ *Memory, op Operand) {
	c.setFlag(CarryFlag, true)
	c.advance(op)
}

func (c *CPU) cli(_ *Memory, op Operand) {
	c.setFlag(InterruptFlag, false)
	c.advance(op)
}

func (c *CPU) sei(_ *Memory, op Operand) {
	c.setFlag(InterruptFlag, true)
	c.advance(op)
}

func (c *CPU) cld(_ *Memory, op Operand) {
	c.setFlag(DecimalFlag, false)
	c.advance(op)
}

func (c *CPU) sed(_ *Memory, op Operand) {
	c.setFlag(DecimalFlag, true)
	c.advance(op)
}

func (c *CPU) clv(_ *Memory, op Operand) {
	c.setFlag(OverflowFlag, false)
	c.advance(op)
}

func (c *CPU) nop(_ *Memory, op Operand) {
	c.advance(op)
}
