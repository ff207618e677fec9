// Package detector handles ROM byte order detection.
package detector

import (
	"fmt"

	"github.com/retroenv/n64analyser/internal/options"
	"github.com/retroenv/n64analyser/internal/rom"
	"github.com/retroenv/retrogolib/log"
)

// Detector determines the byte order of ROM images from options, the image
// header or the file extension.
type Detector struct {
	logger *log.Logger
}

// New creates a new byte order detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the byte order of the image. An order passed in the
// options takes precedence, otherwise the header signature is checked.
// Images with an unknown header fall back to the order associated with the
// file extension.
func (d *Detector) Detect(opts options.Program, data []byte) (rom.ByteOrder, error) {
	if opts.ByteOrder != "" {
		order, err := rom.ParseByteOrder(opts.ByteOrder)
		if err != nil {
			return rom.UnknownOrder, fmt.Errorf("parsing byte order option: %w", err)
		}
		return order, nil
	}

	order, headerErr := rom.DetectByteOrder(data)
	if headerErr == nil {
		d.logger.Debug("Auto-detected byte order",
			log.Stringer("order", order),
			log.String("file", opts.Input))
		return order, nil
	}

	order, err := rom.ByteOrderFromExtension(opts.Input)
	if err != nil {
		return rom.UnknownOrder, headerErr
	}

	d.logger.Warn("Unknown ROM header, using byte order of file extension",
		log.Stringer("order", order),
		log.String("file", opts.Input))
	return order, nil
}
