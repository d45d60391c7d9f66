package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alfagnish/users-api/internal/config"
	"github.com/alfagnish/users-api/internal/server"
	"github.com/alfagnish/users-api/internal/store"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	// 1. Load configuration from environment variables.
	cfg := config.Load()
	logger.Info("config",
		zap.String("listen", cfg.ListenAddr),
		zap.Duration("read_timeout", cfg.ReadTimeout),
		zap.Duration("idle_timeout", cfg.IdleTimeout),
	)

	// 2. Create the in-memory user store. It lives for the process
	// lifetime; there is no persistence.
	st := store.New()

	// 3. Set up the chi router with all handlers.
	handler := server.New(st, logger)

	// 4. Start the HTTP server.
	srv := &http.Server{
		Addr:        cfg.ListenAddr,
		Handler:     handler,
		ReadTimeout: cfg.ReadTimeout,
		IdleTimeout: cfg.IdleTimeout,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("users-api listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-done
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown error", zap.Error(err))
	}

	logger.Info("users-api stopped")
}
