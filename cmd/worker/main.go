package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/dinesync/pos-api/internal/config"
	"github.com/dinesync/pos-api/internal/infrastructure/database"
	"github.com/dinesync/pos-api/internal/infrastructure/queue"
	"github.com/dinesync/pos-api/internal/infrastructure/repository"
	"github.com/dinesync/pos-api/pkg/logger"
	"go.uber.org/zap"
)

// The worker binary runs the audit outbox consumer: it polls the outbox table
// and turns queued events into durable audit log records.
func main() {
	cfg := config.Load()

	logger.Init(cfg.App.LogLevel, cfg.App.Env)
	defer logger.Sync()

	if !cfg.Worker.Enabled {
		logger.Info("Audit worker is disabled, exiting")
		return
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	outboxRepo := repository.NewOutboxRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	worker, err := queue.NewWorker(
		outboxRepo,
		auditRepo,
		cfg.Worker.PollInterval,
		cfg.Worker.BatchSize,
		cfg.Worker.MaxRetries,
	)
	if err != nil {
		logger.Fatal("Failed to create audit worker", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Audit worker started",
		zap.Duration("poll_interval", cfg.Worker.PollInterval),
		zap.Int("batch_size", cfg.Worker.BatchSize),
	)

	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("Audit worker stopped with error", zap.Error(err))
	}

	logger.Info("Audit worker stopped")
}
