// Package pipeline orchestrates the analysis workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/retroenv/n64analyser/internal/app"
	"github.com/retroenv/n64analyser/internal/compiler"
	"github.com/retroenv/n64analyser/internal/compression"
	"github.com/retroenv/n64analyser/internal/detector"
	"github.com/retroenv/n64analyser/internal/findcode"
	"github.com/retroenv/n64analyser/internal/loader"
	"github.com/retroenv/n64analyser/internal/ngrams"
	"github.com/retroenv/n64analyser/internal/options"
	"github.com/retroenv/n64analyser/internal/program"
	"github.com/retroenv/n64analyser/internal/rom"
	"github.com/retroenv/n64analyser/internal/verification"
	"github.com/retroenv/n64analyser/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete analysis workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new analysis pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete analysis pipeline for the input file.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, analyserOpts options.Analyser, w io.Writer) (*program.Program, error) {
	data, err := p.loader.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("loading rom: %w", err)
	}

	return p.ExecuteWithROM(ctx, data, opts, analyserOpts, w)
}

// ExecuteWithROM runs the analysis pipeline with a pre-loaded ROM image.
// The image is converted in place to big endian byte order.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, data []byte, opts options.Program,
	analyserOpts options.Analyser, w io.Writer) (*program.Program, error) {

	order, err := p.detector.Detect(opts, data)
	if err != nil {
		return nil, fmt.Errorf("detecting byte order: %w", err)
	}
	if err := rom.Normalize(data, order); err != nil {
		return nil, fmt.Errorf("normalizing rom: %w", err)
	}
	if err := rom.Validate(data); err != nil {
		return nil, fmt.Errorf("validating rom: %w", err)
	}

	header, err := rom.ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("parsing header: %w", err)
	}
	app.PrintInfo(p.logger, opts, header, order, len(data))

	if analyserOpts.Logger == nil {
		analyserOpts.Logger = p.logger
	}

	result := program.New(header, order, len(data))
	result.Regions = findcode.FindCodeRegions(data, analyserOpts)
	result.Checksums = calculateChecksums(data, result.Regions)
	p.logger.Debug("Code regions found",
		log.Int("regions", len(result.Regions)),
		log.Int("rsp", result.RSPRegions()),
		log.Hex("code size", result.CodeSize()))

	if opts.Verify {
		if err := verification.VerifyRegions(p.logger, data, result.Regions); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	if err := p.runAnalyses(ctx, data, opts, result); err != nil {
		return nil, err
	}

	writerOpts := writer.Options{
		Exact:     opts.Exact,
		Truncated: opts.EndOffset > 0,
		Columns:   opts.Columns,
	}
	if err := writer.New(result, w, writerOpts).Write(); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}

	return result, nil
}

// runAnalyses runs the optional analyses of the found code regions.
func (p *Pipeline) runAnalyses(ctx context.Context, data []byte, opts options.Program, result *program.Program) error {
	if opts.NGrams > 0 {
		summary, err := ngrams.Summarize(ctx, data, result.Regions, opts.NGrams)
		if err != nil {
			return fmt.Errorf("summarizing n-grams: %w", err)
		}
		result.NGrams = summary
	}

	if opts.Compression {
		segments, err := compression.FindAll(ctx, data)
		if err != nil {
			return fmt.Errorf("scanning for compressed segments: %w", err)
		}
		if segments == nil {
			segments = []program.CompressedSegment{}
		}
		result.Compression = segments
	}

	if opts.Compiler {
		result.Compiler = compiler.New(p.logger).Analyse(data, result.Regions)
	}

	return nil
}

// calculateChecksums calculates the CRC32 checksums of the whole image and
// of the concatenated code regions.
func calculateChecksums(data []byte, regions []program.Region) program.Checksums {
	crc32q := crc32.MakeTable(crc32.IEEE)

	code := crc32.New(crc32q)
	for _, region := range regions {
		_, _ = code.Write(data[region.RomStart:region.RomEnd])
	}

	return program.Checksums{
		Code:    code.Sum32(),
		Overall: crc32.Checksum(data, crc32q),
	}
}
