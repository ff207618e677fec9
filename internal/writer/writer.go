// Package writer implements the analysis report output.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/n64analyser/internal/compression"
	"github.com/retroenv/n64analyser/internal/program"
	"github.com/retroenv/n64analyser/internal/rom"
)

// regionAlignment is the boundary that reported regions are rounded to.
const regionAlignment = 0x10

// offsetWidth is the printed width of an offset in segment lists,
// including the separating space.
const offsetWidth = len("0x00000000 ")

// Writer writes the report of an analysed program.
type Writer struct {
	app     *program.Program
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	Exact     bool // print region boundaries without rounding
	Truncated bool // the image was cut at an end offset
	Columns   int  // width of the output, used to lay out offset lists
}

// New creates a new writer.
func New(app *program.Program, writer io.Writer, options Options) *Writer {
	return &Writer{
		app:     app,
		options: options,
		writer:  writer,
	}
}

// Write writes the complete report.
func (w Writer) Write() error {
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteRegions(); err != nil {
		return err
	}
	if w.app.NGrams != nil {
		if err := w.WriteNGrams(); err != nil {
			return err
		}
	}
	if w.app.Compression != nil {
		if err := w.WriteCompression(); err != nil {
			return err
		}
	}
	if w.app.Compiler != nil {
		if err := w.WriteCompiler(); err != nil {
			return err
		}
	}
	return nil
}

// WriteHeader writes the examined range, the cartridge identification and
// the CRC32 checksums.
func (w Writer) WriteHeader() error {
	examined := "Examining full rom"
	if w.options.Truncated {
		examined = "Examining"
	}
	if _, err := fmt.Fprintf(w.writer, "%s, range 0x%06X-0x%06X\n", examined, 0, w.app.Size); err != nil {
		return fmt.Errorf("writing examined range: %w", err)
	}

	header := w.app.Header
	if _, err := fmt.Fprintf(w.writer, "Title: %s, game code: %s, version: %d, byte order: %s\n",
		header.Title, header.GameCode(), header.Version, w.app.ByteOrder); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "Overall CRC32 checksum: %08x\n", w.app.Checksums.Overall); err != nil {
		return fmt.Errorf("writing overall checksum: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "Code CRC32 checksum: %08x\n", w.app.Checksums.Code); err != nil {
		return fmt.Errorf("writing code checksum: %w", err)
	}
	return nil
}

// WriteRegions writes the list of found code regions. Unless exact output
// is requested, the boundaries are rounded outwards to 16 bytes.
func (w Writer) WriteRegions() error {
	regions := w.app.Regions
	plural := "s"
	if len(regions) == 1 {
		plural = ""
	}
	if _, err := fmt.Fprintf(w.writer, "Found %d code region%s:\n", len(regions), plural); err != nil {
		return fmt.Errorf("writing region count: %w", err)
	}

	for _, region := range regions {
		start, end := region.RomStart, region.RomEnd
		if !w.options.Exact {
			start = rom.RoundDown(start, regionAlignment)
			end = rom.RoundUp(end, regionAlignment)
		}

		if _, err := fmt.Fprintf(w.writer, "  0x%08X to 0x%08X (0x%06X) rsp: %t\n",
			start, end, end-start, region.HasRSP); err != nil {
			return fmt.Errorf("writing region: %w", err)
		}

		if w.options.Exact && start%regionAlignment != 0 {
			if _, err := fmt.Fprintln(w.writer, "    warning: code region does not start at 16 byte alignment"); err != nil {
				return fmt.Errorf("writing alignment warning: %w", err)
			}
		}
	}
	return nil
}

// WriteNGrams writes the most frequent instruction sequences.
func (w Writer) WriteNGrams() error {
	summary := w.app.NGrams
	if _, err := fmt.Fprintf(w.writer, "\nMost frequent %d-grams (%d instructions, %d distinct):\n",
		summary.N, summary.Instructions, summary.Distinct); err != nil {
		return fmt.Errorf("writing n-gram summary: %w", err)
	}

	for _, ngram := range summary.NGrams {
		names := make([]string, len(ngram.Sequence))
		for i, id := range ngram.Sequence {
			names[i] = id.String()
		}
		if _, err := fmt.Fprintf(w.writer, "  %8d  %s\n", ngram.Count, strings.Join(names, " ")); err != nil {
			return fmt.Errorf("writing n-gram: %w", err)
		}
	}
	return nil
}

// WriteCompression writes the offsets of compressed segments, grouped by
// format and laid out in rows that fit the output width.
func (w Writer) WriteCompression() error {
	if _, err := fmt.Fprintln(w.writer, "\nCompressed segments:"); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}

	perLine := max(1, (w.options.Columns-4)/offsetWidth)

	for _, format := range compression.Formats {
		var offsets []int
		for _, segment := range w.app.Compression {
			if segment.Format == format.Name {
				offsets = append(offsets, segment.Offset)
			}
		}

		if _, err := fmt.Fprintf(w.writer, "  %s: %d\n", format.Name, len(offsets)); err != nil {
			return fmt.Errorf("writing segment count: %w", err)
		}
		if err := w.writeOffsets(offsets, perLine); err != nil {
			return err
		}
	}
	return nil
}

func (w Writer) writeOffsets(offsets []int, perLine int) error {
	for i := 0; i < len(offsets); i += perLine {
		row := offsets[i:min(i+perLine, len(offsets))]

		buf := &strings.Builder{}
		buf.WriteString("   ")
		for _, offset := range row {
			_, _ = fmt.Fprintf(buf, " 0x%08X", offset)
		}

		if _, err := fmt.Fprintln(w.writer, buf.String()); err != nil {
			return fmt.Errorf("writing offsets: %w", err)
		}
	}
	return nil
}

// WriteCompiler writes the b and j statistics and the compiler guess.
func (w Writer) WriteCompiler() error {
	report := w.app.Compiler
	if _, err := fmt.Fprintln(w.writer, "\nBranch statistics:"); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}

	for _, counts := range report.Regions {
		if _, err := fmt.Fprintf(w.writer, "  [0x%06X, 0x%06X): b: %4d, j: %4d\n",
			counts.Region.RomStart, counts.Region.RomEnd, counts.B, counts.J); err != nil {
			return fmt.Errorf("writing branch counts: %w", err)
		}
	}

	if _, err := fmt.Fprintf(w.writer, "Total: b: %4d, j: %4d\n", report.TotalB, report.TotalJ); err != nil {
		return fmt.Errorf("writing branch totals: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "Compiler guess: %s\n", report.Guess); err != nil {
		return fmt.Errorf("writing compiler guess: %w", err)
	}
	return nil
}
