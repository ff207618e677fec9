// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/n64analyser/internal/options"
	"github.com/retroenv/n64analyser/internal/rom"
)

// ParseFlags parses command line flags and returns program and analyser options
func ParseFlags() (options.Program, options.Analyser, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, options.Analyser{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Analyser{}, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Analyser{}, err
	}

	if opts.Batch == "" && len(args) > 0 {
		opts.Input = args[0]
	}

	analyserOptions := createAnalyserOptions(opts)
	return opts, analyserOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: n64analyser [options] <ROM file to analyse>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to analyse, please pass the file to analyse as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.ByteOrder != "" {
		order, err := rom.ParseByteOrder(opts.ByteOrder)
		if err != nil {
			return fmt.Errorf("invalid byte order: %w. Valid options: z64, n64, v64", err)
		}
		opts.ByteOrder = order.String()
	}

	if opts.End != "" {
		end, err := strconv.ParseUint(strings.TrimSpace(opts.End), 0, 63)
		if err != nil {
			return fmt.Errorf("invalid end offset '%s': %w", opts.End, err)
		}
		if end == 0 {
			return fmt.Errorf("invalid end offset '%s': must be larger than 0", opts.End)
		}
		opts.EndOffset = int64(end)
	}

	if opts.NGrams < 0 {
		return fmt.Errorf("invalid n-gram length %d: must not be negative", opts.NGrams)
	}
	return nil
}

// createAnalyserOptions creates analyser options based on program options
func createAnalyserOptions(opts options.Program) options.Analyser {
	analyserOptions := options.NewAnalyser()
	analyserOptions.WeakUninitializedCheck = opts.Weak
	return analyserOptions
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the output report file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .txt file naming, for example *.z64")
	flags.StringVar(&opts.ByteOrder, "byteorder", "", "byte order of the input (z64/n64/v64), detected from the ROM header if not given")
	flags.StringVar(&opts.End, "end", "", "only analyse the ROM up to this offset, accepts hex (0x) or decimal values")
	flags.BoolVar(&opts.Weak, "weak", true, "treat $v0 and $fv0 as initialized when judging function starts")
	flags.IntVar(&opts.NGrams, "ngrams", 0, "print the most frequent instruction sequences of the given length")
	flags.BoolVar(&opts.Compression, "compression", false, "scan for Yaz0, Yay0 and MIO0 compressed segments")
	flags.BoolVar(&opts.Compiler, "compiler", false, "print b and j statistics of the code regions and guess the compiler")
	flags.BoolVar(&opts.Exact, "exact", false, "print exact region boundaries instead of rounding them to 16 bytes")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the invariants of the found code regions")
}
