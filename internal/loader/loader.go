// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/n64analyser/internal/options"
	"github.com/retroenv/n64analyser/internal/rom"
)

// Loader handles loading ROM images from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM image of the input file. If an end offset is set in the
// options, only the image up to that offset is read, rounded down to a
// multiple of the instruction size.
func (l *Loader) Load(opts options.Program) ([]byte, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	data, err := l.LoadFromReader(file, opts.EndOffset)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}
	return data, nil
}

// LoadFromReader reads a ROM image from the reader. A limit larger than 0
// truncates the image.
func (l *Loader) LoadFromReader(reader io.Reader, limit int64) ([]byte, error) {
	if limit > 0 {
		limit -= limit % rom.InstructionSize
		reader = io.LimitReader(reader, limit)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading rom data: %w", err)
	}
	return data, nil
}
