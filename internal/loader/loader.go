// Package loader handles ROM file loading operations.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/emu6502/internal/cpu"
	"github.com/retroenv/emu6502/internal/options"
	"github.com/retroenv/retrogolib/nes/addressing"
	"github.com/retroenv/retrogolib/nes/cartridge"
)

// RomWindowSize is the size of the read-only memory window the image is mirrored into.
const RomWindowSize = cpu.MemorySize - addressing.CodeBaseAddress

var (
	// ErrEmptyImage is returned for ROM images without any data.
	ErrEmptyImage = errors.New("empty ROM image")
	// ErrImageTooLarge is returned for ROM images that do not fit into the ROM window.
	ErrImageTooLarge = errors.New("ROM image too large")
)

var inesMagic = []byte{'N', 'E', 'S', 0x1A}

// Load reads the input file of the options and returns a memory with the image
// mirrored into the ROM window. Files starting with an iNES header are parsed as
// cartridge unless binary mode is set, in which case the whole file is the image.
func Load(opts options.Program) (*cpu.Memory, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}

	image := data
	if !opts.Binary && bytes.HasPrefix(data, inesMagic) {
		cart, err := cartridge.LoadFile(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("loading cartridge: %w", err)
		}
		image = cart.PRG
	}

	return LoadImage(image)
}

// LoadImage returns a memory with the image repeated across the ROM window
// [0x8000, 0xFFFF]. Images smaller than the window are mirrored so that the end of
// the image lands on the interrupt vectors.
func LoadImage(image []byte) (*cpu.Memory, error) {
	if len(image) == 0 {
		return nil, ErrEmptyImage
	}
	if len(image) > RomWindowSize {
		return nil, fmt.Errorf("%w: %d bytes exceed the %d bytes ROM window", ErrImageTooLarge, len(image), RomWindowSize)
	}

	mem := cpu.NewMemory()
	window := make([]byte, RomWindowSize)
	for offset := 0; offset < RomWindowSize; offset += len(image) {
		copy(window[offset:], image)
	}
	mem.Load(addressing.CodeBaseAddress, window)
	return mem, nil
}
