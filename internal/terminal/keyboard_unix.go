//go:build !windows

package terminal

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/emu6502/internal/emulator"
	"golang.org/x/sys/unix"
)

// read polls the non-blocking file descriptor so that the context can stop reading.
func (k *Keyboard) read(ctx context.Context, fd int, commands chan<- emulator.Command) error {
	if err := unix.SetNonblock(fd, true); err != nil {
		return fmt.Errorf("setting non-blocking input: %w", err)
	}
	defer func() { _ = unix.SetNonblock(fd, false) }()

	buf := make([]byte, 1)
	for {
		n, err := unix.Read(fd, buf)
		if n > 0 && dispatch(ctx, buf[0], commands) {
			return nil
		}

		switch {
		case errors.Is(err, unix.EAGAIN), errors.Is(err, unix.EINTR), err == nil && n <= 0:
			if !wait(ctx) {
				return nil
			}
		case err != nil:
			return fmt.Errorf("reading terminal input: %w", err)
		default:
			if ctx.Err() != nil {
				return nil
			}
		}
	}
}
