package logging

import (
	"io"
	"log/slog"
)

// Setup installs a JSON slog logger wrapped with ContextHandler as the default logger.
// Source locations are added at debug level.
func Setup(w io.Writer, level string) *slog.Logger {
	logLevel := slog.LevelInfo
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: logLevel, AddSource: logLevel <= slog.LevelDebug}
	baseHandler := slog.NewJSONHandler(w, opts)
	logger := slog.New(NewContextHandler(baseHandler))
	slog.SetDefault(logger)
	return logger
}
