package cpu

// Flag is a bit of the processor status register.
type Flag byte

// Status register bits, from bit 0 to bit 7.
const (
	CarryFlag     Flag = 1 << iota // C
	ZeroFlag                       // Z
	InterruptFlag                  // I, interrupt disable
	DecimalFlag                    // D, unused by ADC/SBC
	BreakFlag                      // B
	UnusedFlag                     // bit 5
	OverflowFlag                   // V
	NegativeFlag                   // N
)

// pushedBits are forced set in the status byte pushed by BRK and PHP and are kept
// unchanged when a status byte is pulled by PLP and RTI.
const pushedBits = byte(BreakFlag | UnusedFlag)

var flagNames = map[rune]Flag{
	'N': NegativeFlag,
	'V': OverflowFlag,
	'B': BreakFlag,
	'D': DecimalFlag,
	'I': InterruptFlag,
	'Z': ZeroFlag,
	'C': CarryFlag,
}

// Flag returns whether the named status flag is set. Valid names are N V B D I Z C.
func (c *CPU) Flag(name rune) (bool, error) {
	flag, ok := flagNames[name]
	if !ok {
		return false, &InvalidFlagError{Name: name}
	}
	return c.flag(flag), nil
}

// SetFlag sets the named status flag to the given value. Valid names are N V B D I Z C.
func (c *CPU) SetFlag(name rune, value bool) error {
	flag, ok := flagNames[name]
	if !ok {
		return &InvalidFlagError{Name: name}
	}
	c.setFlag(flag, value)
	return nil
}

// Status returns the raw status register.
func (c *CPU) Status() byte {
	return c.status
}

func (c *CPU) flag(flag Flag) bool {
	return c.status&byte(flag) != 0
}

func (c *CPU) setFlag(flag Flag, value bool) {
	if value {
		c.status |= byte(flag)
	} else {
		c.status &^= byte(flag)
	}
}

// carry returns the carry flag as 0 or 1.
func (c *CPU) carry() byte {
	return c.status & byte(CarryFlag)
}

// setZN sets the zero and negative flags from a result value.
func (c *CPU) setZN(value byte) {
	c.setFlag(ZeroFlag, value == 0)
	c.setFlag(NegativeFlag, value&0x80 != 0)
}

// restoreStatus loads a pulled status byte, keeping the current B and bit 5.
func (c *CPU) restoreStatus(value byte) {
	c.status = value&^pushedBits | c.status&pushedBits
}
