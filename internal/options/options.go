// Package options contains the program options.
package options

import (
	"github.com/retroenv/retrogolib/log"
)

// Parameters contains file path options.
type Parameters struct {
	Input     string `flag:"i" usage:"input ROM file"`
	Output    string `flag:"o" usage:"output report file (default: stdout)"`
	Batch     string `flag:"batch" usage:"batch process files matching pattern (e.g. *.z64)"`
	ByteOrder string `flag:"byteorder" usage:"byte order of the input: z64, n64, v64 (default: auto-detect)"`
	End       string `flag:"end" usage:"only analyse the ROM up to this offset (hex or decimal)"`
}

// Flags contains behavior options.
type Flags struct {
	Weak        bool `flag:"weak" usage:"treat $v0 and $fv0 as initialized at function starts" default:"true"`
	NGrams      int  `flag:"ngrams" usage:"print the most frequent instruction sequences of this length"`
	Compression bool `flag:"compression" usage:"scan for Yaz0, Yay0 and MIO0 compressed segments"`
	Compiler    bool `flag:"compiler" usage:"print branch statistics and guess the compiler"`
	Verify      bool `flag:"verify" usage:"verify the invariants of the found code regions"`
	Debug       bool `flag:"debug" usage:"enable debug logging"`
	Quiet       bool `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	Exact bool `flag:"exact" usage:"print exact region boundaries instead of rounding to 16 bytes"`
}

// Program options of the analyser.
type Program struct {
	Parameters
	Flags
	OutputFlags

	EndOffset int64 // parsed End parameter, 0 if not set
	Columns   int   // width of the report output
}

// Analyser defines options to control the code region discovery.
type Analyser struct {
	// WeakUninitializedCheck additionally treats $v0, $fv0 and $fv0f as
	// initialized when judging function starts.
	WeakUninitializedCheck bool

	Logger *log.Logger // optional, receives debug traces of region merges
}

// NewAnalyser returns a new options instance with default options.
func NewAnalyser() Analyser {
	return Analyser{
		WeakUninitializedCheck: true,
	}
}
