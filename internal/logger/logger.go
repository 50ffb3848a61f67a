package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	base  zerolog.Logger
	ready bool
)

// Init configures the global logger. Output goes to stderr so stdout only
// carries report lines.
//
// Environment variables (optional):
//   - LOG_LEVEL: debug|info|warn|error (default: warn)
//   - LOG_PRETTY: true|false (default: true)
func Init() {
	InitLevel(getenv("LOG_LEVEL", "warn"))
}

// InitLevel is Init with an explicit level, e.g. from the config file.
// LOG_LEVEL still wins when set.
func InitLevel(level string) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level = v
	}
	pretty := !strings.EqualFold(getenv("LOG_PRETTY", "true"), "false")

	zerolog.TimeFieldFormat = time.RFC3339Nano
	var w io.Writer = os.Stderr
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	base = zerolog.New(w).With().Timestamp().Logger().Level(parseLevel(level))
	ready = true
}

// L returns the global logger. Call Init() once on startup.
func L() *zerolog.Logger {
	if !ready {
		Init()
	}
	return &base
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
