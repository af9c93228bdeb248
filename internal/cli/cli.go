// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/emu6502/internal/options"
)

var (
	errInvalidInstructionsPerFrame = errors.New("instructions per frame must be greater than 0")
	errInvalidFrameRate            = errors.New("frame rate must be greater than 0")
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := validateOptions(opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	if e.msg == "" {
		return "missing ROM file"
	}
	return e.msg
}

// ShowUsage prints the usage and the flag defaults to stdout.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Println(e.msg)
		fmt.Println()
	}
	fmt.Printf("usage: emu6502 [options] <rom file>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions checks the value ranges of the timing options.
func validateOptions(opts options.Program) error {
	if opts.InstructionsPerFrame <= 0 {
		return fmt.Errorf("%w: %d", errInvalidInstructionsPerFrame, opts.InstructionsPerFrame)
	}
	if opts.FrameRate <= 0 {
		return fmt.Errorf("%w: %d", errInvalidFrameRate, opts.FrameRate)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.BoolVar(&opts.Binary, "binary", false, "read input file as raw binary file without iNES header detection")
	flags.IntVar(&opts.InstructionsPerFrame, "ipf", options.DefaultInstructionsPerFrame, "instructions to execute per frame")
	flags.IntVar(&opts.FrameRate, "fps", options.DefaultFrameRate, "frames per second")
	flags.Uint64Var(&opts.MaxFrames, "frames", 0, "stop after the given number of frames, 0 runs until exit")
	flags.BoolVar(&opts.NoNMI, "nonmi", false, "do not raise a non-maskable interrupt after each frame")
	flags.BoolVar(&opts.IndirectJumpBug, "jmpbug", false, "emulate the JMP ($xxFF) page wrap of the NMOS 6502")
	flags.BoolVar(&opts.Headless, "headless", false, "run without rendering the display")
	flags.BoolVar(&opts.Disassemble, "disasm", false, "print a disassembly of the ROM and exit")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
