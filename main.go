// Package main implements a MOS 6502 emulator with a text display
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/retroenv/emu6502/internal/cli"
	"github.com/retroenv/emu6502/internal/config"
	"github.com/retroenv/emu6502/internal/cpu"
	"github.com/retroenv/emu6502/internal/disasm"
	"github.com/retroenv/emu6502/internal/display"
	"github.com/retroenv/emu6502/internal/emulator"
	"github.com/retroenv/emu6502/internal/loader"
	"github.com/retroenv/emu6502/internal/options"
	"github.com/retroenv/emu6502/internal/terminal"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/nes/addressing"
	"golang.org/x/sync/errgroup"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

const clearScreen = "\x1b[2J"

func main() {
	opts, err := cli.ParseFlags()
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(os.Stdout, opts)
			usageErr.ShowUsage()
		} else {
			logger := config.CreateLogger(opts.Debug, opts.Quiet)
			logger.Error("Invalid options", err)
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if !opts.Disassemble {
		printBanner(os.Stdout, opts)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, opts, os.Stdout); err != nil {
		logger.Error("Emulation failed", err)
		stop()
		os.Exit(1)
	}
}

func printBanner(w io.Writer, opts options.Program) {
	if opts.Quiet {
		return
	}
	_, _ = fmt.Fprintln(w, "[------------------------------]")
	_, _ = fmt.Fprintln(w, "[ emu6502 - MOS 6502 emulator  ]")
	_, _ = fmt.Fprintf(w, "[------------------------------]\n\n")
	_, _ = fmt.Fprintf(w, "version: %s\n\n", buildinfo.Version(version, commit, date))
}

// run loads the ROM and either writes a disassembly or runs the emulation.
func run(ctx context.Context, logger *log.Logger, opts options.Program, stdout io.Writer) error {
	mem, err := loader.Load(opts)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	logger.Debug("ROM loaded",
		log.String("file", opts.Input),
		log.String("reset", fmt.Sprintf("$%04X", mem.ReadWord(cpu.ResetAddress))))

	if opts.Disassemble {
		return disasm.Listing(stdout, disasm.Converter{}, mem, addressing.CodeBaseAddress, cpu.MemorySize-1)
	}
	return emulate(ctx, logger, mem, opts, stdout)
}

// emulate runs the emulator loop and the keyboard reader until one of them stops.
func emulate(ctx context.Context, logger *log.Logger, mem *cpu.Memory, opts options.Program, stdout io.Writer) error {
	emuOptions := options.NewEmulator(opts, stdout)
	emu := emulator.New(logger, mem, display.New(), emuOptions)

	if emuOptions.Output != nil {
		_, _ = io.WriteString(stdout, clearScreen)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	commands := make(chan emulator.Command)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return emu.Run(ctx, commands)
	})

	if !opts.Headless {
		keyboard := terminal.NewKeyboard(os.Stdin)
		g.Go(func() error {
			return keyboard.Run(ctx, commands)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Emulation stopped",
		log.Uint64("frames", emu.Frames()),
		log.Uint64("instructions", emu.CPU().Instructions))
	return nil
}
