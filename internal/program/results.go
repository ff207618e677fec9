package program

import "github.com/retroenv/n64analyser/internal/arch/mips"

// CompressedSegment is the location of a compressed data block.
type CompressedSegment struct {
	Offset int
	Format string // Yaz0, Yay0 or MIO0
}

// NGram is a sequence of instruction IDs and the number of its occurrences.
type NGram struct {
	Sequence []mips.ID
	Count    int
}

// NGramSummary contains the most frequent instruction sequences of all
// code regions, sorted by descending count.
type NGramSummary struct {
	N            int // sequence length
	Instructions int // number of decoded instructions
	Distinct     int // number of distinct instruction IDs
	NGrams       []NGram
}

// Compiler identifies the toolchain that likely produced the code.
type Compiler int

// Known compilers.
const (
	UnknownCompiler Compiler = iota
	IDO
	GCC
)

func (c Compiler) String() string {
	switch c {
	case IDO:
		return "IDO"
	case GCC:
		return "GCC"
	default:
		return "unknown"
	}
}

// BranchCounts contains the number of b and j instructions of a region.
type BranchCounts struct {
	Region Region
	B      int
	J      int
}

// CompilerReport contains the branch statistics used to guess the compiler.
type CompilerReport struct {
	Regions []BranchCounts
	TotalB  int
	TotalJ  int
	Guess   Compiler
}
