package findcode

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/retroenv/n64analyser/internal/options"
	"github.com/retroenv/n64analyser/internal/program"
	"github.com/retroenv/n64analyser/internal/rom"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

const invalidWord = 0xEC000000

// function is a minimal leaf function that saves and restores $ra.
var function = []uint32{
	0x27BDFFE8, // addiu $sp, $sp, -0x18
	0xAFBF0014, // sw $ra, 0x14($sp)
	0x00801021, // move $v0, $a0
	0x8FBF0014, // lw $ra, 0x14($sp)
	0x03E00008, // jr $ra
	0x27BD0018, // addiu $sp, $sp, 0x18
}

// microcode is CPU invalid but RSP valid.
var microcode = []uint32{
	0xC8812000, // lqv $v1[0], 0x0($a0)
	0x40882000, // mtc0 $t0, SP_STATUS
	0x4A031050, // vadd $v1, $v2, $v3[0]
	0x8C080000, // lw $t0, 0x0($zero)
	0x4A031050, // vadd $v1, $v2, $v3[0]
	0x8C080000, // lw $t0, 0x0($zero)
}

// newROM returns an image of the given size with invalid instructions
// after the boot code.
func newROM(size int) []byte {
	data := make([]byte, size)
	for offset := rom.IPL3End; offset+4 <= size; offset += 4 {
		binary.BigEndian.PutUint32(data[offset:], invalidWord)
	}
	return data
}

func put(data []byte, offset int, words ...uint32) int {
	for _, word := range words {
		binary.BigEndian.PutUint32(data[offset:], word)
		offset += 4
	}
	return offset
}

func find(t *testing.T, data []byte, weak bool) []program.Region {
	t.Helper()
	opts := options.Analyser{
		WeakUninitializedCheck: weak,
		Logger:                 log.NewTestLogger(t),
	}
	return FindCodeRegions(data, opts)
}

func TestFindCodeRegions_SingleFunction(t *testing.T) {
	data := newROM(0x2000)
	put(data, 0x1000, function...)

	regions := find(t, data, true)
	assert.Len(t, regions, 1)
	assert.Equal(t, program.Region{RomStart: 0x1000, RomEnd: 0x1018}, regions[0])
}

func TestFindCodeRegions_ReturnMarkerGating(t *testing.T) {
	data := newROM(0x2000)
	put(data, 0x1100, 0x27BDFFE8, 0x03E00008, invalidWord)

	assert.Empty(t, FindReturnLocations(data))
	assert.Empty(t, find(t, data, true))
}

func TestFindCodeRegions_EndTrim(t *testing.T) {
	data := newROM(0x2000)
	end := put(data, 0x1000, function...)
	put(data, end, 0x00851021, 0x00851021) // addu $v0, $a0, $a1

	regions := find(t, data, true)
	assert.Len(t, regions, 1)
	assert.Equal(t, 0x1000, regions[0].RomStart)
	assert.Equal(t, 0x1018, regions[0].RomEnd)
}

func TestFindCodeRegions_StartTrim(t *testing.T) {
	tests := []struct {
		name  string
		weak  bool
		start int
	}{
		{"weak policy keeps v0 read", true, 0x1100},
		{"strict policy trims v0 read", false, 0x1104},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := newROM(0x2000)
			// padding and an instruction reading an uninitialized register
			offset := put(data, 0x10F4, 0x00000000, 0x00000000, 0x01001021)
			offset = put(data, offset, 0x00402021) // addu $a0, $v0, $zero
			put(data, offset, function...)

			regions := find(t, data, tt.weak)
			assert.Len(t, regions, 1)
			assert.Equal(t, tt.start, regions[0].RomStart)
			assert.Equal(t, 0x111C, regions[0].RomEnd)
		})
	}
}

func TestFindCodeRegions_MicrocodeStitching(t *testing.T) {
	data := newROM(0x2000)
	offset := put(data, 0x1000, function...)
	offset = put(data, offset, microcode...)
	assert.Equal(t, 0x1030, offset)
	put(data, offset, function...)

	regions := find(t, data, true)
	assert.Len(t, regions, 1)
	assert.Equal(t, program.Region{RomStart: 0x1000, RomEnd: 0x1048, HasRSP: true}, regions[0])
}

func TestFindCodeRegions_MicrocodeGrowth(t *testing.T) {
	data := newROM(0x2000)
	offset := put(data, 0x1000, function...)
	offset = put(data, offset, microcode...)
	offset = put(data, offset, function...)
	// microcode tail ending with its own return
	put(data, offset, 0x4A031050, 0x03E00008, 0x4A031050)

	regions := find(t, data, true)
	assert.Len(t, regions, 1)
	assert.Equal(t, program.Region{RomStart: 0x1000, RomEnd: 0x1054, HasRSP: true}, regions[0])
}

func TestFindCodeRegions_SeparatedFunctions(t *testing.T) {
	data := newROM(0x4000)
	put(data, 0x1000, function...)
	put(data, 0x1020, function...)                // gap contains invalid words
	put(data, 0x1040+CheckThreshold, function...) // gap exceeds the check threshold

	regions := find(t, data, true)
	assert.Len(t, regions, 3)
	assert.Equal(t, program.Region{RomStart: 0x1000, RomEnd: 0x1018}, regions[0])
	assert.Equal(t, program.Region{RomStart: 0x1020, RomEnd: 0x1038}, regions[1])
	assert.Equal(t, program.Region{RomStart: 0x2040, RomEnd: 0x2058}, regions[2])
}

func TestFindCodeRegions_AdjacentFunctions(t *testing.T) {
	data := newROM(0x2000)
	offset := put(data, 0x1000, function...)
	offset = put(data, offset, 0, 0)
	put(data, offset, function...)

	regions := find(t, data, true)
	assert.Len(t, regions, 1)
	assert.Equal(t, program.Region{RomStart: 0x1000, RomEnd: 0x1038}, regions[0])
}

func TestFindCodeRegions_BufferEdges(t *testing.T) {
	// return at the very end without a delay slot
	data := newROM(0x1020)
	put(data, 0x1018, 0x27BDFFE8, 0x03E00008)
	assert.Empty(t, FindReturnLocations(data))

	// function ending exactly at the end of the buffer
	data = newROM(0x1018)
	put(data, 0x1000, function...)
	regions := find(t, data, true)
	assert.Len(t, regions, 1)
	assert.Equal(t, program.Region{RomStart: 0x1000, RomEnd: 0x1018}, regions[0])

	// buffers without room after the boot code
	assert.Empty(t, find(t, make([]byte, rom.IPL3End), true))
	assert.Empty(t, find(t, nil, true))
}

func TestStitch(t *testing.T) {
	tests := []struct {
		name    string
		gap     []uint32
		gapSize int
		merged  bool
		hasRSP  bool
	}{
		{name: "empty gap", merged: true},
		{name: "code gap", gap: []uint32{0, 0x00801021}, merged: true},
		{name: "microcode gap", gap: microcode, merged: true, hasRSP: true},
		{name: "invalid gap", gap: []uint32{invalidWord}},
		{name: "repeated loads", gap: []uint32{0x8C880000, 0x8C880000, 0x8C880000, 0x8C880000}},
		{name: "gap too large", gapSize: CheckThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]byte, 0x4000)
			gapSize := max(tt.gapSize, 4*len(tt.gap))
			put(data, 0x1018, tt.gap...)

			first := program.Region{RomStart: 0x1000, RomEnd: 0x1018}
			second := program.Region{RomStart: 0x1018 + gapSize, RomEnd: 0x1030 + gapSize}
			f := &finder{data: data, regions: []program.Region{first, second}}
			f.stitch()

			if !tt.merged {
				assert.Len(t, f.regions, 2)
				return
			}
			assert.Len(t, f.regions, 1)
			assert.Equal(t, first.RomStart, f.regions[0].RomStart)
			assert.Equal(t, second.RomEnd, f.regions[0].RomEnd)
			assert.Equal(t, tt.hasRSP, f.regions[0].HasRSP)
		})
	}
}

// randomROM builds an image from a mix of code fragments, microcode,
// padding and random words.
func randomROM(rng *rand.Rand, size int) []byte {
	data := newROM(size)
	offset := rom.IPL3End
	for offset+0x40 <= size {
		switch rng.Intn(5) {
		case 0:
			offset = put(data, offset, function...)
		case 1:
			offset = put(data, offset, microcode...)
		case 2:
			offset = put(data, offset, 0, 0, 0, 0)
		case 3:
			offset = put(data, offset, 0x03E00008, rng.Uint32())
		default:
			for range rng.Intn(8) + 1 {
				offset = put(data, offset, rng.Uint32())
			}
		}
	}
	return data
}

func TestFindCodeRegions_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(64))

	for range 20 {
		data := randomROM(rng, 0x3000+4*rng.Intn(0x400))
		opts := options.Analyser{WeakUninitializedCheck: rng.Intn(2) == 0}

		regions := FindCodeRegions(data, opts)
		for i, region := range regions {
			assert.True(t, region.RomStart < region.RomEnd, region.String())
			assert.True(t, region.RomStart >= rom.IPL3End, region.String())
			assert.True(t, region.RomEnd <= len(data), region.String())
			assert.Equal(t, 0, region.RomStart%rom.InstructionSize)
			assert.Equal(t, 0, region.RomEnd%rom.InstructionSize)
			if i > 0 {
				assert.True(t, regions[i-1].RomEnd <= region.RomStart, region.String())
			}
		}

		again := FindCodeRegions(data, opts)
		assert.Len(t, again, len(regions))
		for i := range again {
			assert.Equal(t, regions[i], again[i])
		}
	}
}
