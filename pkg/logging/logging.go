// Package logging configures colored structured logging with tint for the
// cvgen CLI.
//
// Usage:
//
//	logging.Setup("info", false) // colored output on stderr
//	logging.Setup("debug", true) // silent: everything discarded
//
// Rendered documents go to stdout, so all logging is kept on stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the default slog logger. level is one of debug, info, warn,
// error (unknown values fall back to info). With silent set, every log record
// is discarded regardless of level.
func Setup(level string, silent bool) {
	if silent {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      ParseLevel(level),
			TimeFormat: time.Kitchen,
		}),
	))
}

// ParseLevel maps a verbosity string to a slog level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
