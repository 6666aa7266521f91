package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"internhub/internal/config"
	"internhub/internal/logger"
	"internhub/internal/stubapi"
)

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad()

	log := logger.SetupLogger(cfg.Env)
	slog.SetDefault(log)
	slog.Info("config loaded",
		"env", cfg.Env,
		"addr", cfg.Stub.Address,
		"postgres", cfg.Stub.DSN != "",
		"seed", cfg.Stub.Seed,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var store stubapi.Store = stubapi.NewMemoryStore()
	if cfg.Stub.DSN != "" {
		pool, err := stubapi.NewPool(ctx, cfg.Stub.DSN)
		if err != nil {
			slog.Error("failed to connect to postgres", "err", err)
			os.Exit(1)
		}
		defer pool.Close()
		pg := stubapi.NewPostgresStore(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			slog.Error("failed to prepare schema", "err", err)
			os.Exit(1)
		}
		store = pg
	}

	handler := stubapi.NewHandler(store, stubapi.NewTokens(cfg.Stub.JWTSecret, cfg.Stub.TokenTTL))
	if cfg.Stub.Seed {
		if err := stubapi.Seed(ctx, handler); err != nil {
			slog.Error("failed to seed", "err", err)
			os.Exit(1)
		}
		slog.Info("seeded accounts", "student", "student@example.com", "company", "company@example.com")
	}

	srv := &http.Server{
		Addr:              cfg.Stub.Address,
		Handler:           stubapi.NewRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("starting stub api", "addr", cfg.Stub.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("stub api server error", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down stub api")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("stub api shutdown error", "err", err)
	}
}
