// Package findcode discovers the code regions of a ROM image.
//
// Discovery starts at every plausible function return (jr $ra followed by
// a valid delay slot instruction), grows a region in both directions while
// the instructions are valid and trims it to start at a plausible function
// entry and to end with an unconditional branch and its delay slot.
// Neighbouring regions are stitched together when the gap between them is
// small and valid main processor code or signal processor microcode.
package findcode

import (
	"github.com/retroenv/n64analyser/internal/arch/mips"
	"github.com/retroenv/n64analyser/internal/options"
	"github.com/retroenv/n64analyser/internal/program"
	"github.com/retroenv/n64analyser/internal/rom"
	"github.com/retroenv/n64analyser/internal/startcheck"
	"github.com/retroenv/n64analyser/internal/validity"
	"github.com/retroenv/retrogolib/log"
)

// CheckThreshold is the maximum gap in bytes between two regions that is
// checked for stitching.
const CheckThreshold = 0x400 * rom.InstructionSize

// returnInstruction is the encoding of jr $ra.
const returnInstruction = 0x03E00008

type finder struct {
	data    []byte
	opts    options.Analyser
	logger  *log.Logger
	regions []program.Region
}

// FindCodeRegions returns the code regions of a big endian ROM image,
// ordered by their start offset. The image is not modified.
func FindCodeRegions(data []byte, opts options.Analyser) []program.Region {
	f := &finder{
		data:   data,
		opts:   opts,
		logger: opts.Logger,
	}
	f.run()
	return f.regions
}

func (f *finder) run() {
	markers := FindReturnLocations(f.data)

	for i := 0; i < len(markers); {
		marker := markers[i]
		lowerBound := rom.IPL3End
		if n := len(f.regions); n > 0 {
			lowerBound = max(lowerBound, f.regions[n-1].RomEnd)
		}
		if marker < lowerBound {
			i++
			continue
		}

		region := program.Region{
			RomStart: findCodeStart(f.data, marker, lowerBound),
			RomEnd:   findCodeEnd(f.data, marker),
		}
		i = skipMarkers(markers, i, region.RomEnd)

		f.trim(&region)
		if region.Empty() {
			f.debug("Discarding empty region", marker, marker)
			continue
		}
		f.regions = append(f.regions, region)
		f.stitch()

		last := &f.regions[len(f.regions)-1]
		if !last.HasRSP {
			continue
		}
		f.growMicrocode(last)
		f.trim(last)
		i = skipMarkers(markers, i, last.RomEnd)
		if last.Empty() {
			f.regions = f.regions[:len(f.regions)-1]
		}
	}
}

// FindReturnLocations returns the offsets of all jr $ra instructions after
// the boot code whose delay slot contains a valid instruction for either
// processor.
func FindReturnLocations(data []byte) []int {
	var locations []int
	for offset := rom.IPL3End; offset+rom.InstructionSize <= len(data); offset += rom.InstructionSize {
		if rom.ReadWord(data, offset) != returnInstruction {
			continue
		}

		delaySlot := offset + rom.InstructionSize
		if delaySlot+rom.InstructionSize > len(data) {
			break
		}
		word := rom.ReadWord(data, delaySlot)
		if validity.IsValidCPU(word) || validity.IsValidRSP(word) {
			locations = append(locations, offset)
		}
		offset = delaySlot // the delay slot can not be a return marker itself
	}
	return locations
}

// findCodeStart walks backwards from the offset while the preceding
// instructions are valid, not crossing the lower bound.
func findCodeStart(data []byte, offset, lowerBound int) int {
	for offset > lowerBound {
		previous := offset - rom.InstructionSize
		if !validity.IsValidCPU(rom.ReadWord(data, previous)) {
			break
		}
		offset = previous
	}
	return offset
}

// findCodeEnd walks forward from the offset while the instructions are
// valid and returns the exclusive end offset.
func findCodeEnd(data []byte, offset int) int {
	for offset+rom.InstructionSize <= len(data) && validity.IsValidCPU(rom.ReadWord(data, offset)) {
		offset += rom.InstructionSize
	}
	return offset
}

// skipMarkers returns the index of the first marker at or after end.
func skipMarkers(markers []int, index, end int) int {
	for index < len(markers) && markers[index] < end {
		index++
	}
	return index
}

// trim removes instructions that can not start a function and zero words
// from the start of the region and shrinks the end of the region until it
// ends with an unconditional branch followed by its delay slot.
func (f *finder) trim(region *program.Region) {
	start := region.RomStart + rom.InstructionSize*startcheck.CountInvalidStartInstructions(*region, f.data, f.opts)
	end := region.RomEnd

	for start < end && rom.ReadWord(f.data, start) == 0 {
		start += rom.InstructionSize
	}
	for end > start && !f.endsWithUnconditionalBranch(start, end) {
		end -= rom.InstructionSize
	}

	region.RomStart = start
	region.RomEnd = end
}

// endsWithUnconditionalBranch returns whether the second to last
// instruction of [start, end) is an unconditional branch.
func (f *finder) endsWithUnconditionalBranch(start, end int) bool {
	branch := end - 2*rom.InstructionSize
	if branch < start {
		return false
	}
	ins := mips.Decode(rom.ReadWord(f.data, branch), mips.CPU)
	return ins.IsUnconditionalBranch()
}

// stitch merges the last region into its predecessor if the gap between
// them is short and contains either valid code or microcode.
func (f *finder) stitch() {
	n := len(f.regions)
	if n < 2 {
		return
	}
	previous := &f.regions[n-2]
	current := f.regions[n-1]
	if current.RomStart-previous.RomEnd >= CheckThreshold {
		return
	}

	switch {
	case validity.CheckRange(f.data, previous.RomEnd, current.RomStart, mips.CPU):
		f.debug("Merging regions over code gap", previous.RomEnd, current.RomStart)

	case validity.CheckRange(f.data, previous.RomEnd, current.RomStart, mips.RSP):
		f.debug("Merging regions over microcode gap", previous.RomEnd, current.RomStart)
		previous.HasRSP = true

	default:
		return
	}

	previous.RomEnd = current.RomEnd
	f.regions = f.regions[:n-1]
}

// growMicrocode extends the region while the following words are valid
// microcode.
func (f *finder) growMicrocode(region *program.Region) {
	end := region.RomEnd
	for end+rom.InstructionSize <= len(f.data) && validity.IsValidRSP(rom.ReadWord(f.data, end)) {
		end += rom.InstructionSize
	}
	if end != region.RomEnd {
		f.debug("Growing microcode region", region.RomEnd, end)
	}
	region.RomEnd = end
}

func (f *finder) debug(msg string, start, end int) {
	if f.logger == nil {
		return
	}
	f.logger.Debug(msg, log.Hex("start", start), log.Hex("end", end))
}
