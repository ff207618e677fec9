// Package program represents the analysed layout of an N64 ROM.
package program

import (
	"github.com/retroenv/n64analyser/internal/rom"
)

// Checksums contains the CRC32 checksums to identify the image and the code
// that was found in it.
type Checksums struct {
	Code    uint32
	Overall uint32
}

// Program contains the results of analysing a ROM image.
type Program struct {
	Header    rom.Header
	ByteOrder rom.ByteOrder
	Size      int // size of the analysed image in bytes
	Checksums Checksums

	Regions []Region // discovered code regions, ordered by start offset

	// optional analysis results, nil if the analysis was not requested
	Compression []CompressedSegment
	NGrams      *NGramSummary
	Compiler    *CompilerReport
}

// New creates a new program for an analysed image.
func New(header rom.Header, order rom.ByteOrder, size int) *Program {
	return &Program{
		Header:    header,
		ByteOrder: order,
		Size:      size,
	}
}

// CodeSize returns the number of bytes covered by code regions.
func (p *Program) CodeSize() int {
	size := 0
	for _, region := range p.Regions {
		size += region.Size()
	}
	return size
}

// RSPRegions returns the number of regions that contain microcode.
func (p *Program) RSPRegions() int {
	count := 0
	for _, region := range p.Regions {
		if region.HasRSP {
			count++
		}
	}
	return count
}
