// Package startcheck judges whether the leading instructions of a candidate
// code region are plausible function entry points.
package startcheck

import (
	"github.com/retroenv/n64analyser/internal/arch/mips"
	"github.com/retroenv/n64analyser/internal/options"
	"github.com/retroenv/n64analyser/internal/program"
	"github.com/retroenv/n64analyser/internal/rom"
	"github.com/retroenv/n64analyser/internal/validity"
)

// RegisterState tracks which registers hold a defined value at a function
// entry.
type RegisterState struct {
	gpr [32]bool
	fpr [32]bool
}

// NewRegisterState returns the register state at a function entry. Only
// the argument registers, the stack pointer and the return address are
// initialized. The weak policy additionally marks the return value
// registers as initialized.
func NewRegisterState(weak bool) *RegisterState {
	s := &RegisterState{}
	for _, r := range []mips.GPR{mips.Zero, mips.SP, mips.RA, mips.A0, mips.A1, mips.A2, mips.A3} {
		s.gpr[r] = true
	}
	for _, r := range []mips.FPR{mips.Fa0, mips.Fa0f, mips.Fa1, mips.Fa1f} {
		s.fpr[r] = true
	}

	if weak {
		s.gpr[mips.V0] = true
		s.fpr[mips.Fv0] = true
		s.fpr[mips.Fv0f] = true
	}
	return s
}

// GPRInitialized returns whether the general purpose register is initialized.
func (s *RegisterState) GPRInitialized(r mips.GPR) bool {
	return s.gpr[r&0x1F]
}

// FPRInitialized returns whether the floating point register is initialized.
func (s *RegisterState) FPRInitialized(r mips.FPR) bool {
	return s.fpr[r&0x1F]
}

// ReadsUninitialized returns whether the instruction reads a register that
// is not initialized.
func (s *RegisterState) ReadsUninitialized(ins mips.Instruction) bool {
	switch {
	case ins.ReadsRs() && !s.GPRInitialized(ins.Rs()),
		ins.ReadsRt() && !s.GPRInitialized(ins.Rt()),
		ins.ReadsRd() && !s.GPRInitialized(ins.Rd()),
		ins.ReadsFs() && !s.FPRInitialized(ins.Fs()),
		ins.ReadsFt() && !s.FPRInitialized(ins.Ft()),
		ins.ReadsFd() && !s.FPRInitialized(ins.Fd()):
		return true
	default:
		return false
	}
}

// IsInvalidStartInstruction returns whether a function can not start with
// the instruction.
func IsInvalidStartInstruction(ins mips.Instruction, state *RegisterState) bool {
	if !validity.IsValid(ins) {
		return true
	}

	switch ins.ID() {
	case mips.Nop:
		return true

	case mips.Jr:
		if ins.Rs() == mips.Zero {
			return true
		}

	case mips.Sll, mips.Srl, mips.Sra,
		mips.Dsll, mips.Dsll32, mips.Dsrl, mips.Dsrl32, mips.Dsra, mips.Dsra32:
		if ins.Rt() == mips.Zero && ins.Sa() != 0 {
			return true
		}

	case mips.Mthi, mips.Mtlo,
		mips.Bc1t, mips.Bc1f, mips.Bc1tl, mips.Bc1fl,
		mips.Add, mips.Addi, mips.Sub:
		return true
	}

	switch {
	case validity.HasZeroOutput(ins),
		state.ReadsUninitialized(ins),
		ins.IsUnconditionalBranch(),
		ins.DoesLink(),
		ins.DoesStore() && ins.Rs() == mips.RA:
		return true
	default:
		return false
	}
}

// CountInvalidStartInstructions returns the number of instructions at the
// start of the region that can not be the entry of a function. Every
// instruction is judged against the same entry register state.
func CountInvalidStartInstructions(region program.Region, data []byte, opts options.Analyser) int {
	state := NewRegisterState(opts.WeakUninitializedCheck)
	end := min(region.RomEnd, len(data))

	count := 0
	for offset := max(region.RomStart, 0); offset+rom.InstructionSize <= end; offset += rom.InstructionSize {
		ins := mips.Decode(rom.ReadWord(data, offset), mips.CPU)
		if !IsInvalidStartInstruction(ins, state) {
			break
		}
		count++
	}
	return count
}
