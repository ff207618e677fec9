// Package config handles application configuration and setup
package config

import (
	"os"

	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// DefaultColumns is the report width used when the output is not a terminal.
const DefaultColumns = 80

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// OutputColumns returns the width of the terminal connected to the file or
// DefaultColumns if the file is not a terminal.
func OutputColumns(file *os.File) int {
	if file == nil {
		return DefaultColumns
	}
	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return DefaultColumns
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultColumns
	}
	return width
}
