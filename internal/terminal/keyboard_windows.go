//go:build windows

package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/emu6502/internal/emulator"
)

// read uses blocking reads, the context is checked after every key.
func (k *Keyboard) read(ctx context.Context, _ int, commands chan<- emulator.Command) error {
	buf := make([]byte, 1)
	for ctx.Err() == nil {
		n, err := k.file.Read(buf)
		if n > 0 && dispatch(ctx, buf[0], commands) {
			return nil
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading terminal input: %w", err)
		}
	}
	return nil
}
