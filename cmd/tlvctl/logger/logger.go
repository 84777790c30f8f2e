// Package logger holds tlvctl's global logger, discarding output until
// Init is called (tlvctl calls it from the root command's
// PersistentPreRun).
package logger

import (
	"io"
	"log/slog"
	"os"
)

// L is the global logger instance, initialized to discard all output.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures Init.
type Options struct {
	Enabled bool
	Level   slog.Level
}

// Init configures logging to stderr. Call it before any log calls. If
// opts.Enabled is false, output stays discarded.
func Init(opts Options) {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	L = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: opts.Level}))
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
