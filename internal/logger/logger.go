// Package logger provides logging utilities for cikit using the bullets library.
//
// Library packages stay silent unless a logger is handed to them. The
// constructors below are meant for callers and tests:
//
//	log := logger.NewLogger("debug")
//	cfg, err := config.Load(path, log)
//
//	silentLog := logger.NoLogger() // Suppresses all output
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sgaunet/bullets"
)

// Logger is the subset of [bullets.Logger] used by cikit packages.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

var _ Logger = (*bullets.Logger)(nil)

// ParseLevel maps a textual level to a bullets level.
// Unknown values fall back to info.
func ParseLevel(logLevel string) bullets.Level {
	switch strings.ToLower(strings.TrimSpace(logLevel)) {
	case "debug":
		return bullets.DebugLevel
	case "warn", "warning":
		return bullets.WarnLevel
	case "error":
		return bullets.ErrorLevel
	default:
		return bullets.InfoLevel
	}
}

// NewLogger creates a new logger that writes to stdout at the specified level.
//
// Parameters:
//   - logLevel: one of "debug", "info", "warn", "error" (defaults to "info" for unknown values)
func NewLogger(logLevel string) *bullets.Logger {
	return NewLoggerTo(os.Stdout, logLevel)
}

// NewLoggerTo is NewLogger with an explicit destination.
func NewLoggerTo(w io.Writer, logLevel string) *bullets.Logger {
	if w == nil {
		w = os.Stdout
	}
	log := bullets.New(w)
	log.SetLevel(ParseLevel(logLevel))
	return log
}

// NoLogger creates a logger that suppresses all output by setting the level to Fatal.
// Useful for tests and as the default when callers pass a nil logger.
func NoLogger() *bullets.Logger {
	log := bullets.New(io.Discard)
	log.SetLevel(bullets.FatalLevel)
	return log
}

// OrNoop returns log, or a silent logger when log is nil.
func OrNoop(log Logger) Logger {
	if log == nil {
		return NoLogger()
	}
	return log
}
