package display

import (
	"fmt"
	"strings"

	"github.com/retroenv/emu6502/internal/cpu"
)

// flagColumns lists the status register bits from bit 7 to bit 0.
var flagColumns = []string{"N", "V", "-", "B", "D", "I", "Z", "C"}

var flagLegend = []string{
	"  │   │   │   │   │   │   │   └─ C - Carry",
	"  │   │   │   │   │   │   └───── Z - Zero",
	"  │   │   │   │   │   └───────── I - Interrupt Disable",
	"  │   │   │   │   └───────────── D - Decimal Mode",
	"  │   │   │   └───────────────── B - Break",
	"  │   │   └───────────────────── [ Not Used ]",
	"  │   └───────────────────────── V - Overflow",
	"  └───────────────────────────── N - Negative",
}

// Status returns the lines of the register panel: the registers, the status flags
// and the instruction at the program counter.
func Status(c *cpu.CPU, current string) []string {
	status := c.Status()
	values := make([]string, len(flagColumns))
	for i := range flagColumns {
		bit := 7 - i
		values[i] = fmt.Sprintf("%d", status>>bit&1)
	}

	lines := []string{
		fmt.Sprintf("Program Counter:  $%04X      Accumulator:    $%02X", c.PC, c.A),
		fmt.Sprintf("X Register:       $%02X        Stack Pointer:  $%02X", c.X, c.SP),
		fmt.Sprintf("Y Register:       $%02X        Instructions:   %d", c.Y, c.Instructions),
		"",
		"Status Register:",
		"┌───┬───┬───┬───┬───┬───┬───┬───┐",
		tableRow(flagColumns),
		"├───┼───┼───┼───┼───┼───┼───┼───┤",
		tableRow(values),
		"└───┴───┴───┴───┴───┴───┴───┴───┘",
	}
	lines = append(lines, flagLegend...)
	lines = append(lines, "", "Instruction:      "+current)
	return lines
}

func tableRow(cells []string) string {
	return "│ " + strings.Join(cells, " │ ") + " │"
}
