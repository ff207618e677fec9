// Package app provides the main application helper for the analyser.
package app

import (
	"github.com/retroenv/n64analyser/internal/options"
	"github.com/retroenv/n64analyser/internal/rom"
	"github.com/retroenv/retrogolib/log"
)

// PrintInfo prints the information about the input file and the cartridge header.
func PrintInfo(logger *log.Logger, opts options.Program, header rom.Header, order rom.ByteOrder, size int) {
	if opts.Quiet {
		return
	}

	logger.Info("Processing N64 ROM",
		log.String("file", opts.Input),
		log.String("title", header.Title),
		log.String("game code", header.GameCode()),
		log.Uint8("version", header.Version),
		log.Stringer("byte order", order),
		log.Hex("size", size),
	)
	logger.Debug("Cartridge header",
		log.Hex("clock rate", header.ClockRate),
		log.Hex("boot address", header.BootAddress),
		log.Hex("libultra version", header.LibultraVersion),
		log.Hex("check code", header.CheckCode),
	)

	if opts.EndOffset > 0 && int64(size) < opts.EndOffset {
		logger.Warn("End offset is beyond the end of the ROM",
			log.Hex("end", opts.EndOffset),
			log.Hex("size", size))
	}
}
