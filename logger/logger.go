// Package logger builds the zerolog logger used by the catalog binaries.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Env   string // development -> console output, anything else -> JSON
	Level string // trace, debug, info, warn, error
	Out   io.Writer
}

// New creates a structured logger and installs it as the zerolog global.
func New(cfg Config) zerolog.Logger {
	var w io.Writer = os.Stdout
	if cfg.Out != nil {
		w = cfg.Out
	}
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w}
	}

	zl := zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
	log.Logger = zl
	return zl
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
