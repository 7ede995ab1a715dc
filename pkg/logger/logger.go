package logger

import (
	"io"
	"log/slog"
	"os"
)

var Log *slog.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Init replaces Log with a JSON logger writing to stdout at the given level.
func Init(level int) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.Level(level),
	})
	Log = slog.New(handler)
}
