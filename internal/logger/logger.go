package logger

import (
	"io"
	"log/slog"
	"os"
)

const (
	EnvLocal = "local"
	EnvProd  = "production"
	EnvTest  = "test"
	EnvDev   = "development"
)

func SetupLogger(env string) *slog.Logger {
	return New(os.Stdout, env, nil)
}

// New builds the env-specific logger on w. A nil level keeps the env default.
func New(w io.Writer, env string, level slog.Leveler) *slog.Logger {
	var log *slog.Logger
	switch env {
	case EnvLocal:
		log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelOr(level, slog.LevelDebug)}))
	case EnvTest, EnvDev:
		log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: levelOr(level, slog.LevelDebug)}))
	case EnvProd:
		log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: levelOr(level, slog.LevelInfo)}))
	default:
		log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelOr(level, slog.LevelDebug)}))
	}
	return log
}

func levelOr(level slog.Leveler, fallback slog.Level) slog.Leveler {
	if level == nil {
		return fallback
	}
	return level
}
