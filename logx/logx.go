// Package logx wires slog to a tinted file handler. Output never goes to
// the terminal; the render driver owns stdout.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// Setup builds a logger writing to file at the given level. An empty
// file path returns a discard logger and no closer.
func Setup(file, level string) (*slog.Logger, io.Closer, error) {
	if file == "" {
		return slog.New(slog.DiscardHandler), nil, nil
	}

	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info", "":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, nil, fmt.Errorf("unknown log level %q", level)
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	h := tint.NewHandler(f, &tint.Options{
		Level:   lvl,
		NoColor: true, // file output
	})
	return slog.New(h), f, nil
}
