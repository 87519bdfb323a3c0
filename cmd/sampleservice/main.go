package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/GarciaLabastidaMiguelAngel/commons/internal/config"
	"github.com/GarciaLabastidaMiguelAngel/commons/internal/server"
	"github.com/GarciaLabastidaMiguelAngel/commons/internal/telemetry"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/channel"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/session"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	shutdown, err := telemetry.InitTracer("commons-sample", logger)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown tracer", slog.String("error", err.Error()))
		}
	}()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	channels := channel.NewStaticRegistry(cfg.Channel.Records)
	sessions := session.NewMemoryStore()

	srv := server.New(cfg, logger, channels, sessions)
	httpServer := &http.Server{
		Addr:    srv.Addr(),
		Handler: srv.Router,
	}

	go func() {
		logger.Info("starting server", slog.Int("port", srv.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutdown signal received, stopping server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server shutdown complete")
}
