// Package compression locates compressed data segments in a ROM image by
// their magic identifiers.
package compression

import (
	"bytes"
	"context"
	"fmt"
	"runtime"

	"github.com/retroenv/n64analyser/internal/program"
	"github.com/retroenv/n64analyser/internal/rom"
	"golang.org/x/sync/errgroup"
)

// Format describes a compression format by its magic identifier.
type Format struct {
	Name  string
	Magic []byte
}

// Formats contains the supported compression formats in report order.
var Formats = []Format{
	{Name: "MIO0", Magic: []byte("MIO0")},
	{Name: "Yaz0", Magic: []byte("Yaz0")},
	{Name: "Yay0", Magic: []byte("Yay0")},
}

// alignment is the alignment of compressed segments in the image.
const alignment = rom.InstructionSize

// minChunkSize avoids splitting small images into many tiny scans.
const minChunkSize = 0x10000

// FindMagic returns the sorted, aligned offsets at which the magic starts.
// The image is split into chunks that are scanned in parallel.
func FindMagic(ctx context.Context, data, magic []byte) ([]int, error) {
	if len(magic) == 0 {
		return nil, nil
	}

	workers := runtime.GOMAXPROCS(0)
	chunkSize := max(minChunkSize, len(data)/workers)
	chunkSize = rom.RoundUp(chunkSize, alignment)

	chunks := (len(data) + chunkSize - 1) / chunkSize
	found := make([][]int, chunks)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range chunks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("scanning for %s: %w", magic, err)
			}
			start := i * chunkSize
			end := min(start+chunkSize, len(data))
			found[i] = scan(data, start, end, magic)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var offsets []int
	for _, chunk := range found {
		offsets = append(offsets, chunk...)
	}
	return offsets, nil
}

// scan returns the offsets in [start, end) at which the magic starts. The
// magic may extend past the end of the range.
func scan(data []byte, start, end int, magic []byte) []int {
	var offsets []int
	for offset := start; offset < end; offset += alignment {
		if bytes.HasPrefix(data[offset:], magic) {
			offsets = append(offsets, offset)
		}
	}
	return offsets
}

// FindAll returns the segments of all supported formats, grouped by format
// in the order of Formats and sorted by offset within a format.
func FindAll(ctx context.Context, data []byte) ([]program.CompressedSegment, error) {
	var segments []program.CompressedSegment
	for _, format := range Formats {
		offsets, err := FindMagic(ctx, data, format.Magic)
		if err != nil {
			return nil, err
		}
		for _, offset := range offsets {
			segments = append(segments, program.CompressedSegment{
				Offset: offset,
				Format: format.Name,
			})
		}
	}
	return segments, nil
}
