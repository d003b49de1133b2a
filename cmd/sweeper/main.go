package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"posterworks/internal/config"
	"posterworks/internal/infrastructure/logger"
	"posterworks/internal/infrastructure/mysql"
	"posterworks/internal/order"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	cleanupUC := order.NewCleanupUseCase(db, zapLogger)

	ctx, cancel := context.WithCancel(context.Background())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		zapLogger.Info("received shutdown signal")
		cancel()
	}()

	zapLogger.Info("cleanup sweeper started", zap.Duration("interval", cfg.Sweeper.Interval))

	ticker := time.NewTicker(cfg.Sweeper.Interval)
	defer ticker.Stop()

	// Sweep once at startup, then on the ticker.
	sweep(ctx, cleanupUC, zapLogger)
	for {
		select {
		case <-ctx.Done():
			zapLogger.Info("cleanup sweeper stopped")
			return
		case <-ticker.C:
			sweep(ctx, cleanupUC, zapLogger)
		}
	}
}

type sweeper interface {
	Sweep(ctx context.Context, now time.Time) (int, error)
}

func sweep(ctx context.Context, uc sweeper, zapLogger *zap.Logger) {
	if _, err := uc.Sweep(ctx, time.Now().UTC()); err != nil {
		zapLogger.Error("cleanup sweep failed", zap.Error(err))
	}
}
