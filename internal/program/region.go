package program

import "fmt"

// Region is a contiguous range of the ROM image that contains code.
// The range is half open, both offsets are instruction aligned.
type Region struct {
	RomStart int
	RomEnd   int
	HasRSP   bool // region contains signal processor microcode
}

// Size returns the size of the region in bytes.
func (r Region) Size() int {
	return r.RomEnd - r.RomStart
}

// Empty returns whether the region does not cover any bytes.
func (r Region) Empty() bool {
	return r.RomEnd <= r.RomStart
}

func (r Region) String() string {
	return fmt.Sprintf("[0x%06X, 0x%06X) rsp: %t", r.RomStart, r.RomEnd, r.HasRSP)
}
