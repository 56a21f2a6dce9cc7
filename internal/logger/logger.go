package logger

import (
	"log/slog"
	"os"

	"github.com/adithyagarapati/movie-analyzer/internal/config"
)

// Init installs the process logger: text output for development, JSON otherwise.
func Init(cfg config.Log) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	var handler slog.Handler
	if cfg.Debug || cfg.Env == "development" {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
