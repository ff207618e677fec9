// Package compiler guesses the toolchain that produced the code of a ROM.
//
// IDO emits the b pseudo instruction for unconditional branches inside of a
// function while GCC based toolchains use j, so comparing the counts of
// both instructions in the code regions gives a coarse hint.
package compiler

import (
	"github.com/retroenv/n64analyser/internal/arch/mips"
	"github.com/retroenv/n64analyser/internal/program"
	"github.com/retroenv/n64analyser/internal/rom"
	"github.com/retroenv/retrogolib/log"
)

// Analyser counts branch instructions of code regions.
type Analyser struct {
	logger *log.Logger
}

// New returns a new compiler analyser.
func New(logger *log.Logger) *Analyser {
	return &Analyser{logger: logger}
}

// Analyse counts the b and j instructions of every region and guesses the
// compiler from the totals.
func (a *Analyser) Analyse(data []byte, regions []program.Region) *program.CompilerReport {
	report := &program.CompilerReport{
		Regions: make([]program.BranchCounts, 0, len(regions)),
	}

	for _, region := range regions {
		counts := a.countBranches(data, region)
		report.Regions = append(report.Regions, counts)
		report.TotalB += counts.B
		report.TotalJ += counts.J
	}

	report.Guess = Guess(report.TotalB, report.TotalJ)
	a.logger.Debug("Compiler guess",
		log.Int("b", report.TotalB),
		log.Int("j", report.TotalJ),
		log.Stringer("compiler", report.Guess))
	return report
}

func (a *Analyser) countBranches(data []byte, region program.Region) program.BranchCounts {
	counts := program.BranchCounts{Region: region}
	end := min(region.RomEnd, len(data))

	for offset := region.RomStart; offset+rom.InstructionSize <= end; offset += rom.InstructionSize {
		ins := mips.Decode(rom.ReadWord(data, offset), mips.CPU)
		switch ins.ID() {
		case mips.B:
			counts.B++
		case mips.J:
			counts.J++
			a.logger.Debug("Found jump outside of a function",
				log.String("instruction", ins.Name()),
				log.Hex("offset", offset),
				log.Hex("word", ins.Word()))
		}
	}
	return counts
}

// Guess returns the likely compiler for the given branch counts.
func Guess(b, j int) program.Compiler {
	switch {
	case b == 0 && j == 0:
		return program.UnknownCompiler
	case j > b:
		return program.GCC
	default:
		return program.IDO
	}
}
