// Package validity classifies instruction words as plausible code for the
// main processor or the signal processor.
package validity

import (
	"github.com/retroenv/n64analyser/internal/arch/mips"
	"github.com/retroenv/n64analyser/internal/rom"
)

// Cache instruction parameter limits.
const (
	maxCacheOperation = 6
	maxCacheType      = 1
)

// repeatLimit is the number of identical consecutive memory accesses that
// rejects a range.
const repeatLimit = 3

// IsValidCPU returns whether the word is plausible main processor code.
func IsValidCPU(word uint32) bool {
	return IsValid(mips.Decode(word, mips.CPU))
}

// IsValidRSP returns whether the word is plausible signal processor code.
func IsValidRSP(word uint32) bool {
	return IsValid(mips.Decode(word, mips.RSP))
}

// IsValid classifies a decoded instruction using the rules of the variant
// it was decoded for.
func IsValid(ins mips.Instruction) bool {
	if !ins.IsValid() || HasZeroOutput(ins) {
		return false
	}
	if ins.Variant() == mips.RSP {
		return isValidRSP(ins)
	}
	return isValidCPU(ins)
}

// HasZeroOutput returns whether the instruction writes a general purpose
// destination register that is $zero.
func HasZeroOutput(ins mips.Instruction) bool {
	if ins.ModifiesRd() && ins.Rd() == mips.Zero {
		return true
	}
	return ins.ModifiesRt() && ins.Rt() == mips.Zero
}

func isValidCPU(ins mips.Instruction) bool {
	if ins.DoesDereference() && ins.Rs() == mips.Zero {
		return false
	}
	if ins.IsTrap() {
		return false
	}

	switch ins.ID() {
	case mips.Mtc0, mips.Mfc0:
		_, ok := mips.Cop0RegisterName(mips.CPU, ins.Cop0Rd())
		return ok

	case mips.Cache:
		return ins.CacheOperation() <= maxCacheOperation && ins.CacheType() <= maxCacheType

	case mips.Ll, mips.Sc, mips.Lld, mips.Scd, mips.Syscall, // not used by N64 software
		mips.Lwc2, mips.Ldc2, mips.Swc2, mips.Sdc2, // no coprocessor 2
		mips.Ctc0, mips.Cfc0, mips.Pref:
		return false

	default:
		return true
	}
}

func isValidRSP(ins mips.Instruction) bool {
	switch ins.ID() {
	case mips.Mtc0, mips.Mfc0:
		_, ok := mips.Cop0RegisterName(mips.RSP, ins.Cop0Rd())
		return ok

	case mips.Lwc1, mips.Swc1, mips.Ctc0, mips.Cfc0, mips.Cache:
		return false

	default:
		return true
	}
}

// CheckRange returns whether every instruction word in [start, end) is
// valid for the variant. A range is also rejected when it contains
// repeatLimit or more identical loads or stores in a row. The range is
// clamped to the buffer.
func CheckRange(data []byte, start, end int, variant mips.Variant) bool {
	start = max(start, 0)
	end = min(end, len(data))

	var previous uint32
	run := 0
	for offset := start; offset+rom.InstructionSize <= end; offset += rom.InstructionSize {
		word := rom.ReadWord(data, offset)
		if run > 0 && word == previous {
			run++
		} else {
			previous = word
			run = 1
		}

		ins := mips.Decode(word, variant)
		if run >= repeatLimit && ins.DoesDereference() {
			return false
		}
		if !IsValid(ins) {
			return false
		}
	}
	return true
}
