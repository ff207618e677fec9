// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/n64analyser/internal/config"
	"github.com/retroenv/n64analyser/internal/options"
	"github.com/retroenv/n64analyser/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// reportExtension is the extension of generated report files.
const reportExtension = ".txt"

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, analyserOptions options.Analyser) (err error) {
	writer, columns, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer closeWriter(writer, &err)

	if opts.Columns == 0 {
		opts.Columns = columns
	}

	if _, err := pipeline.New(logger).Execute(ctx, opts, analyserOptions, writer); err != nil {
		return fmt.Errorf("analysing %s: %w", opts.Input, err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + reportExtension
}

// createWriter returns the report destination and its width in columns.
func createWriter(opts options.Program) (io.Writer, int, error) {
	if opts.Output == "" {
		return os.Stdout, config.OutputColumns(os.Stdout), nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, 0, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, config.DefaultColumns, nil
}

// closeWriter closes a file backed report writer. A close error is only
// returned through err if processing itself succeeded.
func closeWriter(writer io.Writer, err *error) {
	closer, ok := writer.(io.Closer)
	if !ok || writer == os.Stdout {
		return
	}
	if closeErr := closer.Close(); closeErr != nil && *err == nil {
		*err = fmt.Errorf("closing report: %w", closeErr)
	}
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("n64analyser", log.String("version", versionString(version, commit, date)))
}

// versionString shortens the commit hash and drops placeholder build dates.
func versionString(version, commit, date string) string {
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if strings.Contains(date, "unknown") {
		date = ""
	}
	return buildinfo.Version(version, commit, date)
}
