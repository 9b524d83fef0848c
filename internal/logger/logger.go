// Package logger configures the zerolog logger shared by the application.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds a zerolog.Logger honoring the LOG_LEVEL and LOG_COLORS settings.
// Accepted level names are verbose, info, warning, error and critical. With
// colors enabled output goes through a ConsoleWriter; otherwise plain JSON is
// written to stdout.
func New(level string, colors bool) zerolog.Logger {
	var out = zerolog.New(os.Stdout)
	if colors {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return out.Level(parseLevel(level)).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "verbose":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "critical":
		return zerolog.FatalLevel
	default:
		return zerolog.DebugLevel
	}
}
