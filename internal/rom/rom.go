// Package rom provides access to the raw image of a Nintendo 64 cartridge.
package rom

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// InstructionSize is the size of a MIPS instruction in bytes.
	InstructionSize = 4

	// HeaderSize is the size of the cartridge header at the start of the image.
	HeaderSize = 0x40

	// IPL3End is the offset where the boot code ends. Game code and data
	// start at this offset.
	IPL3End = 0x1000

	// MinSize is the smallest image that contains at least one instruction
	// after the boot code.
	MinSize = IPL3End + InstructionSize
)

var (
	// ErrTooSmall is returned for images that are shorter than MinSize.
	ErrTooSmall = errors.New("rom image too small")
	// ErrUnaligned is returned for images whose size is not a multiple of
	// the instruction size.
	ErrUnaligned = errors.New("rom image size is not instruction aligned")
	// ErrUnknownByteOrder is returned when the byte order of an image
	// could not be determined.
	ErrUnknownByteOrder = errors.New("unknown rom byte order")
)

// Validate checks that the normalized image can be scanned for code.
func Validate(data []byte) error {
	if len(data) < MinSize {
		return fmt.Errorf("%w: %d bytes, expected at least %d", ErrTooSmall, len(data), MinSize)
	}
	if len(data)%InstructionSize != 0 {
		return fmt.Errorf("%w: %d bytes", ErrUnaligned, len(data))
	}
	return nil
}

// ReadWord returns the big endian word at the given offset. Offsets that
// do not leave room for a full word return 0.
func ReadWord(data []byte, offset int) uint32 {
	if offset < 0 || offset+InstructionSize > len(data) {
		return 0
	}
	return binary.BigEndian.Uint32(data[offset:])
}

// RoundDown aligns the value down to a multiple of alignment.
func RoundDown(value, alignment int) int {
	return value - value%alignment
}

// RoundUp aligns the value up to a multiple of alignment.
func RoundUp(value, alignment int) int {
	if rem := value % alignment; rem != 0 {
		return value + alignment - rem
	}
	return value
}
