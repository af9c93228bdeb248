// Package emulator drives the CPU in frames and connects it to the display.
package emulator

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/emu6502/internal/cpu"
	"github.com/retroenv/emu6502/internal/disasm"
	"github.com/retroenv/emu6502/internal/display"
	"github.com/retroenv/emu6502/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Emulator contains the state of an emulation session.
type Emulator struct {
	logger  *log.Logger
	options options.Emulator

	cpu     *cpu.CPU
	mem     *cpu.Memory
	display *display.Display

	active bool
	paused bool
	frames uint64
}

// New returns a new emulator for the loaded memory.
func New(logger *log.Logger, mem *cpu.Memory, disp *display.Display, opts options.Emulator) *Emulator {
	var cpuOptions []cpu.Option
	if opts.IndirectJumpBug {
		cpuOptions = append(cpuOptions, cpu.WithIndirectJumpBug())
	}

	return &Emulator{
		logger:  logger,
		options: opts,
		cpu:     cpu.New(cpuOptions...),
		mem:     mem,
		display: disp,
	}
}

// CPU returns the emulated processor.
func (e *Emulator) CPU() *cpu.CPU {
	return e.cpu
}

// Active returns whether the session is running and has not been exited.
func (e *Emulator) Active() bool {
	return e.active
}

// Paused returns whether frame execution is paused.
func (e *Emulator) Paused() bool {
	return e.paused
}

// Frames returns the number of executed frames.
func (e *Emulator) Frames() uint64 {
	return e.frames
}

// Start resets the CPU, activates the session and draws the initial frame.
func (e *Emulator) Start() error {
	e.cpu.Reset(e.mem)
	e.active = true
	e.paused = false
	e.frames = 0

	e.logger.Debug("CPU reset", log.String("pc", fmt.Sprintf("$%04X", e.cpu.PC)))
	return e.render()
}

// StepInstruction executes a single instruction and redraws the display.
func (e *Emulator) StepInstruction() error {
	if err := e.step(); err != nil {
		return err
	}
	return e.render()
}

// StepFrame executes the instructions of one frame, raises the non-maskable interrupt
// unless disabled and redraws the display.
func (e *Emulator) StepFrame() error {
	for i, n := 0, e.options.InstructionsPerFrame; i < n; i++ {
		if err := e.step(); err != nil {
			return err
		}
	}

	if !e.options.NoNMI {
		e.cpu.NMI(e.mem)
	}
	e.frames++
	return e.render()
}

// Handle applies a command. Stepping commands pause the session first.
func (e *Emulator) Handle(cmd Command) error {
	e.logger.Debug("Handling command", log.String("command", cmd.String()))

	switch cmd {
	case CommandExit:
		e.active = false
		return nil

	case CommandTogglePause:
		e.paused = !e.paused
		return nil

	case CommandStepFrame:
		e.paused = true
		return e.StepFrame()

	case CommandStepInstruction:
		e.paused = true
		return e.StepInstruction()

	default:
		return fmt.Errorf("unsupported command %d", cmd)
	}
}

// Run starts the session if needed and executes a frame every frame interval while
// not paused. It returns when the exit command was received, the context is done,
// the frame limit is reached or an instruction fails.
func (e *Emulator) Run(ctx context.Context, commands <-chan Command) error {
	if !e.active {
		if err := e.Start(); err != nil {
			return err
		}
	}

	interval := e.options.FrameInterval
	if interval <= 0 {
		interval = time.Second / options.DefaultFrameRate
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for e.active {
		select {
		case <-ctx.Done():
			return nil

		case cmd, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			if err := e.Handle(cmd); err != nil {
				return err
			}

		case <-ticker.C:
			if e.paused {
				continue
			}
			if err := e.StepFrame(); err != nil {
				return err
			}
		}

		if e.options.MaxFrames > 0 && e.frames >= e.options.MaxFrames {
			e.logger.Info("Frame limit reached", log.Uint64("frames", e.frames))
			return nil
		}
	}
	return nil
}

func (e *Emulator) step() error {
	if e.logger.Enabled(log.DebugLevel) {
		e.logger.Debug("Executing",
			log.String("pc", fmt.Sprintf("$%04X", e.cpu.PC)),
			log.String("instruction", e.currentInstruction()))
	}

	if err := e.cpu.Step(e.mem); err != nil {
		return fmt.Errorf("executing instruction: %w", err)
	}
	return nil
}

// render draws the display and status panel, it does nothing when running headless.
func (e *Emulator) render() error {
	if e.options.Output == nil {
		return nil
	}

	e.display.Read(e.mem)
	if err := e.display.Frame(e.options.Output, e.cpu, e.currentInstruction()); err != nil {
		return fmt.Errorf("rendering display: %w", err)
	}
	return nil
}

func (e *Emulator) currentInstruction() string {
	ins, err := disasm.Line(disasm.Converter{}, e.mem, e.cpu.PC)
	if err != nil {
		return fmt.Sprintf(".byte $%02X", ins.Bytes[0])
	}
	return ins.String()
}
