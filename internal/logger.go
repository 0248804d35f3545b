package internal

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	globalLogger zerolog.Logger
	loggerOnce   sync.Once
	loggerSet    bool
)

// InitGlobalLogger configures the process-wide logger. Only the first call
// takes effect.
func InitGlobalLogger(level zerolog.Level, pretty bool) {
	loggerOnce.Do(func() {
		globalLogger = newLogger(level, pretty)
		loggerSet = true
	})
}

// GetLogger returns the global logger, falling back to a plain stderr logger
// at info level when InitGlobalLogger was never called.
func GetLogger() zerolog.Logger {
	if !loggerSet {
		return newLogger(zerolog.InfoLevel, false)
	}
	return globalLogger
}

func newLogger(level zerolog.Level, pretty bool) zerolog.Logger {
	var w io.Writer = os.Stderr
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// ParseLogLevel maps a config string to a zerolog level, defaulting to info.
func ParseLogLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}
