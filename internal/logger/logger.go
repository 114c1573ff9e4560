// Package logger configures the process-wide zerolog instance.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logger = zerolog.New(io.Discard)

// Init configures the global logger with the given level, writing
// console-formatted output to stderr.
func Init(level string) {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl := zerolog.InfoLevel

	switch strings.ToLower(level) {
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn", "warning":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}

	logger = zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	log.Logger = logger
}

// Get returns the global logger. Before Init it discards everything,
// which keeps packages under test quiet.
func Get() *zerolog.Logger {
	return &logger
}
