// Package options contains the program options.
package options

import (
	"io"
	"time"
)

// Default values of the emulation options.
const (
	DefaultInstructionsPerFrame = 100
	DefaultFrameRate            = 60
)

// Parameters contains file path options.
type Parameters struct {
	Input string // ROM file to run
}

// Flags contains behavior options.
type Flags struct {
	Binary          bool // treat input as raw binary without iNES header detection
	Debug           bool // enable debug logging
	Disassemble     bool // print a listing of the ROM window and exit
	Headless        bool // run without rendering the display
	IndirectJumpBug bool // emulate the NMOS JMP ($xxFF) page wrap
	NoNMI           bool // do not raise an NMI after every frame
	Quiet           bool // quiet mode
}

// Timing contains frame pacing options.
type Timing struct {
	InstructionsPerFrame int
	FrameRate            int
	MaxFrames            uint64 // stop after this many frames, 0 runs until exit
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	Timing
}

// Emulator defines options to control the emulation session.
type Emulator struct {
	InstructionsPerFrame int
	FrameInterval        time.Duration
	MaxFrames            uint64

	IndirectJumpBug bool
	NoNMI           bool

	Output io.Writer // display output, nil runs headless
}

// NewEmulator returns emulator options derived from the program options.
func NewEmulator(opts Program, output io.Writer) Emulator {
	e := Emulator{
		InstructionsPerFrame: opts.InstructionsPerFrame,
		MaxFrames:            opts.MaxFrames,
		IndirectJumpBug:      opts.IndirectJumpBug,
		NoNMI:                opts.NoNMI,
	}
	if e.InstructionsPerFrame <= 0 {
		e.InstructionsPerFrame = DefaultInstructionsPerFrame
	}

	frameRate := opts.FrameRate
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	e.FrameInterval = time.Second / time.Duration(frameRate)

	if !opts.Headless {
		e.Output = output
	}
	return e
}
