// Package display renders the character display and the CPU status panel as text.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/emu6502/internal/cpu"
)

// Memory windows read by the display.
const (
	BackgroundAddress = 0x2000
	SpriteAddress     = 0x2100
	BufferSize        = 256
)

// Grid dimensions in characters.
const (
	Columns = 16
	Rows    = BufferSize / Columns
)

const (
	cursorHome = "\x1b[H"
	clearLine  = "\x1b[K"
	// raw terminal mode does not translate a line feed to a carriage return
	lineEnd = "\r\n"

	panelGap = "    "
)

// Display holds the characters of the last frame read from memory.
type Display struct {
	cells [BufferSize]byte
}

// New returns an empty display.
func New() *Display {
	return &Display{}
}

// Read copies the background window and overlays the sprites. Each sprite is a pair
// of a position byte and a character byte, sprites with position 0 are disabled.
func (d *Display) Read(mem *cpu.Memory) {
	copy(d.cells[:], mem.Slice(BackgroundAddress, BufferSize))

	sprites := mem.Slice(SpriteAddress, BufferSize)
	for i := 0; i < len(sprites); i += 2 {
		position := sprites[i]
		if position == 0 {
			continue
		}
		d.cells[position] = sprites[i+1]
	}
}

// Cell returns the character at the given grid position.
func (d *Display) Cell(column, row int) byte {
	return d.cells[row*Columns+column]
}

// Lines returns the grid including its border. Control characters are shown as space,
// bytes from 0x80 are shown as the Latin-1 character of the same code.
func (d *Display) Lines() []string {
	border := strings.Repeat("═", 2*Columns+1)

	lines := make([]string, 0, Rows+2)
	lines = append(lines, "╔"+border+"╗")

	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		sb.Reset()
		sb.WriteString("║ ")
		for column := 0; column < Columns; column++ {
			c := d.Cell(column, row)
			if c <= 31 {
				c = ' '
			}
			sb.WriteRune(rune(c))
			sb.WriteByte(' ')
		}
		sb.WriteString("║")
		lines = append(lines, sb.String())
	}

	lines = append(lines, "╚"+border+"╝")
	return lines
}

// Render writes the grid to the writer.
func (d *Display) Render(w io.Writer) error {
	for _, line := range d.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing display: %w", err)
		}
	}
	return nil
}

// Frame moves the cursor to the top left and writes the grid with the status panel
// of the CPU next to it.
func (d *Display) Frame(w io.Writer, c *cpu.CPU, current string) error {
	grid := d.Lines()
	panel := Status(c, current)
	width := len([]rune(grid[0]))

	var sb strings.Builder
	sb.WriteString(cursorHome)
	for i, n := 0, max(len(grid), len(panel)); i < n; i++ {
		if i < len(grid) {
			sb.WriteString(grid[i])
		} else {
			sb.WriteString(strings.Repeat(" ", width))
		}
		if i < len(panel) {
			sb.WriteString(panelGap)
			sb.WriteString(panel[i])
		}
		sb.WriteString(clearLine)
		sb.WriteString(lineEnd)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
