package logger

import (
	"log/slog"
	"os"
)

// Log is the process-wide structured logger. It defaults to a text handler
// so packages can log before Init runs (tests, early startup failures).
var Log = slog.Default()

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
