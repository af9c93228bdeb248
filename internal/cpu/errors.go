package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOpcode is matched by errors returned for bytes that have no opcode table entry.
	ErrInvalidOpcode = errors.New("invalid opcode")
	// ErrInvalidFlag is matched by errors returned for unknown status flag names.
	ErrInvalidFlag = errors.New("invalid status flag")
)

// InvalidOpcodeError is returned by Step when the byte at PC is not a documented opcode.
type InvalidOpcodeError struct {
	Opcode byte
	PC     uint16
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode 0x%02X at address 0x%04X", e.Opcode, e.PC)
}

func (e *InvalidOpcodeError) Unwrap() error {
	return ErrInvalidOpcode
}

// InvalidFlagError is returned by the flag accessors for names outside N V B D I Z C.
type InvalidFlagError struct {
	Name rune
}

func (e *InvalidFlagError) Error() string {
	return fmt.Sprintf("'%c' is not a valid status flag", e.Name)
}

func (e *InvalidFlagError) Unwrap() error {
	return ErrInvalidFlag
}
