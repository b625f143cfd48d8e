package aoc

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogConfig configures the runner's logger.
type LogConfig struct {
	Level  string    // "debug", "info", ...; defaults to info
	Debug  bool      // forces debug level
	Output io.Writer // defaults to os.Stderr
}

func newLogger(cfg LogConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	}
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
	}).Level(level).With().Timestamp().Logger()
}
