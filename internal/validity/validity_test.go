package validity

import (
	"encoding/binary"
	"testing"

	"github.com/retroenv/n64analyser/internal/arch/mips"
	"github.com/retroenv/retrogolib/assert"
)

//nolint:funlen
func TestIsValidCPU(t *testing.T) {
	tests := []struct {
		name  string
		word  uint32
		valid bool
	}{
		{"jr ra", 0x03E00008, true},
		{"addiu sp", 0x27BDFFE8, true},
		{"sw ra", 0xAFBF0014, true},
		{"nop", 0x00000000, true},
		{"all ones", 0xFFFFFFFF, true},
		{"unknown opcode", 0xEC000000, false},
		{"extra bits", 0x03E00808, false},
		{"load from zero base", 0x8C080000, false},
		{"store to zero base", 0xAC080010, false},
		{"addu to zero", 0x00800021, false},
		{"addiu to zero", 0x24000001, false},
		{"lui to zero", 0x3C008000, false},
		{"mtc0 Context", 0x40882000, true},
		{"mtc0 reserved register 7", 0x40883800, false},
		{"mfc0 reserved register 21", 0x4008A800, false},
		{"ll", 0xC0880000, false},
		{"sc", 0xE0880000, false},
		{"lld", 0xD0880000, false},
		{"scd", 0xF0880000, false},
		{"syscall", 0x0000000C, false},
		{"cache op 5 type 0", 0xBCB40000, true},
		{"cache op 7", 0xBCBC0000, false},
		{"cache type 2", 0xBCA20000, false},
		{"lwc2", 0xC8812000, false},
		{"swc2", 0xE8812000, false},
		{"ldc2", 0xD8812000, false},
		{"sdc2", 0xF8812000, false},
		{"teq", 0x00A601B4, false},
		{"tgei", 0x04880001, false},
		{"ctc0", 0x40C82000, false},
		{"cfc0", 0x40482000, false},
		{"pref", 0xCC800000, false},
		{"lwc1", 0xC4840000, true},
		{"vadd", 0x4A031050, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidCPU(tt.word))
		})
	}
}

func TestIsValidRSP(t *testing.T) {
	tests := []struct {
		name  string
		word  uint32
		valid bool
	}{
		{"jr ra", 0x03E00008, true},
		{"load from zero base", 0x8C080000, true},
		{"vadd", 0x4A031050, true},
		{"lqv", 0xC8812000, true},
		{"mtc0 SP_STATUS", 0x40882000, true},
		{"mtc0 register 16", 0x40888000, false},
		{"addu to zero", 0x00800021, false},
		{"lwc1", 0xC4840000, false},
		{"swc1", 0xE4840000, false},
		{"cache", 0xBC800000, false},
		{"ctc0", 0x40C82000, false},
		{"cfc0", 0x40482000, false},
		{"mult", 0x00850018, false},
		{"unknown opcode", 0xEC000000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidRSP(tt.word))
		})
	}
}

func TestClassifiersAreTotal(t *testing.T) {
	// walk a spread of words through the whole 32 bit space
	for word := uint64(0); word <= 0xFFFFFFFF; word += 0x00010FFF {
		_ = IsValidCPU(uint32(word))
		_ = IsValidRSP(uint32(word))
	}
}

func words(values ...uint32) []byte {
	data := make([]byte, 4*len(values))
	for i, v := range values {
		binary.BigEndian.PutUint32(data[4*i:], v)
	}
	return data
}

func TestCheckRange(t *testing.T) {
	const lw = 0x8C880000 // lw $t0, 0($a0)

	tests := []struct {
		name    string
		data    []byte
		variant mips.Variant
		valid   bool
	}{
		{"empty", nil, mips.CPU, true},
		{"function", words(0x27BDFFE8, 0xAFBF0014, 0x8FBF0014, 0x03E00008, 0x27BD0018), mips.CPU, true},
		{"two identical loads", words(lw, lw), mips.CPU, true},
		{"three identical loads", words(lw, lw, lw), mips.CPU, false},
		{"four identical loads", words(lw, lw, lw, lw), mips.CPU, false},
		{"interrupted loads", words(lw, lw, 0x00801021, lw, lw), mips.CPU, true},
		{"identical arithmetic", words(0x00801021, 0x00801021, 0x00801021, 0x00801021), mips.CPU, true},
		{"identical zero words", words(0, 0, 0, 0, 0), mips.CPU, true},
		{"invalid word", words(0x27BDFFE8, 0xEC000000), mips.CPU, false},
		{"rsp code in cpu check", words(0x4A031050), mips.CPU, false},
		{"rsp code", words(0xC8812000, 0x40882000, 0x4A031050, 0x8C080000), mips.RSP, true},
		{"four identical rsp loads", words(lw, lw, lw, lw), mips.RSP, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, CheckRange(tt.data, 0, len(tt.data), tt.variant))
		})
	}
}

func TestCheckRangeClamps(t *testing.T) {
	data := words(0x27BDFFE8, 0xAFBF0014)
	assert.True(t, CheckRange(data, -8, 64, mips.CPU))
	assert.True(t, CheckRange(data, 8, 4, mips.CPU))
	assert.False(t, CheckRange(words(0x27BDFFE8, 0xEC000000), 0, 100, mips.CPU))
}

func FuzzClassifiers(f *testing.F) {
	for _, word := range []uint32{0x00000000, 0x03E00008, 0x4A031050, 0xC8812000, 0xFFFFFFFF} {
		f.Add(word)
	}
	f.Fuzz(func(t *testing.T, word uint32) {
		cpu := mips.Decode(word, mips.CPU)
		if IsValidCPU(word) {
			assert.True(t, cpu.IsValid())
		}
		rsp := mips.Decode(word, mips.RSP)
		if IsValidRSP(word) {
			assert.True(t, rsp.IsValid())
		}
	})
}
