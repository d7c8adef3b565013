package util

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger builds a timestamped JSON logger at the requested level,
// falling back to info on unparseable input.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger().Level(lvl)
}

// NewConsoleLogger is NewLogger with human-friendly console output, for
// interactive demo runs.
func NewConsoleLogger(level string) zerolog.Logger {
	return NewLogger(level).Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
