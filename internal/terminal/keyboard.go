// Package terminal reads keys from a raw mode terminal and translates them to
// emulator commands.
package terminal

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/retroenv/emu6502/internal/emulator"
	"golang.org/x/term"
)

const pollInterval = 5 * time.Millisecond

// Key codes as sent by a terminal in raw mode.
const (
	keyCtrlC     = 0x03
	keyBackspace = 0x08
	keyLineFeed  = 0x0A
	keyReturn    = 0x0D
	keyEscape    = 0x1B
	keySpace     = 0x20
	keyDelete    = 0x7F
)

var keyCommands = map[byte]emulator.Command{
	keyEscape:    emulator.CommandExit,
	keyCtrlC:     emulator.CommandExit,
	'q':          emulator.CommandExit,
	keySpace:     emulator.CommandTogglePause,
	keyReturn:    emulator.CommandStepFrame,
	keyLineFeed:  emulator.CommandStepFrame,
	keyBackspace: emulator.CommandStepInstruction,
	keyDelete:    emulator.CommandStepInstruction,
}

// KeyCommand returns the command that is bound to the key.
func KeyCommand(b byte) (emulator.Command, bool) {
	cmd, ok := keyCommands[b]
	return cmd, ok
}

// Keyboard reads commands from a terminal.
type Keyboard struct {
	file *os.File
}

// NewKeyboard returns a keyboard reading from the given terminal file.
func NewKeyboard(file *os.File) *Keyboard {
	return &Keyboard{file: file}
}

// Run switches the terminal to raw mode and sends the commands of pressed keys until
// the context is done or the exit key was pressed. The terminal state is restored on
// return. If the file is not a terminal, Run waits for the context to be done.
func (k *Keyboard) Run(ctx context.Context, commands chan<- emulator.Command) error {
	fd := int(k.file.Fd())
	if !term.IsTerminal(fd) {
		<-ctx.Done()
		return nil
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("setting raw terminal mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	return k.read(ctx, fd, commands)
}

// dispatch sends the command of the key and returns whether reading should stop.
func dispatch(ctx context.Context, b byte, commands chan<- emulator.Command) bool {
	cmd, ok := KeyCommand(b)
	if !ok {
		return false
	}

	select {
	case commands <- cmd:
	case <-ctx.Done():
		return true
	}
	return cmd == emulator.CommandExit
}

// wait sleeps for the poll interval and returns false if the context is done.
func wait(ctx context.Context) bool {
	timer := time.NewTimer(pollInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
