package cli

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/retroenv/emu6502/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func parseArgs(t *testing.T, args ...string) (options.Program, error) {
	t.Helper()

	oldArgs := os.Args
	oldStderr := os.Stderr
	t.Cleanup(func() {
		os.Args = oldArgs
		os.Stderr = oldStderr
	})

	// flag errors are printed to stderr
	devNull, err := os.Open(os.DevNull)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = devNull.Close() })
	os.Stderr = devNull

	os.Args = append([]string{"emu6502"}, args...)
	return ParseFlags()
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"test.bin"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.bin"},
				Timing:     options.Timing{InstructionsPerFrame: 100, FrameRate: 60},
			},
		},
		{
			name: "timing flags",
			args: []string{"-ipf", "500", "-fps", "30", "-frames", "10", "test.bin"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.bin"},
				Timing:     options.Timing{InstructionsPerFrame: 500, FrameRate: 30, MaxFrames: 10},
			},
		},
		{
			name: "behavior flags",
			args: []string{"-binary", "-nonmi", "-jmpbug", "-headless", "-disasm", "-debug", "-q", "test.nes"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.nes"},
				Flags: options.Flags{
					Binary:          true,
					Debug:           true,
					Disassemble:     true,
					Headless:        true,
					IndirectJumpBug: true,
					NoNMI:           true,
					Quiet:           true,
				},
				Timing: options.Timing{InstructionsPerFrame: 100, FrameRate: 60},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(t, tt.args...)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsUsageError(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing ROM file", nil},
		{"only flags", []string{"-debug"}},
		{"unknown flag", []string{"-unknown", "test.bin"}},
		{"flag after ROM file", []string{"test.bin", "-debug"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(t, tt.args...)
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
		})
	}
}

func TestParseFlagsValidation(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected error
	}{
		{"zero instructions per frame", []string{"-ipf", "0", "test.bin"}, errInvalidInstructionsPerFrame},
		{"negative instructions per frame", []string{"-ipf", "-5", "test.bin"}, errInvalidInstructionsPerFrame},
		{"zero frame rate", []string{"-fps", "0", "test.bin"}, errInvalidFrameRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(t, tt.args...)
			assert.True(t, errors.Is(err, tt.expected))
		})
	}
}

func TestUsageErrorShowUsage(t *testing.T) {
	oldStdout := os.Stdout
	t.Cleanup(func() { os.Stdout = oldStdout })

	r, w, err := os.Pipe()
	assert.NoError(t, err)
	os.Stdout = w

	_, err = parseArgs(t)
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
	usageErr.ShowUsage()
	assert.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "usage: emu6502 [options] <rom file>"))
	assert.True(t, strings.Contains(string(out), "-jmpbug"))
}
