package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dinesync/pos-api/internal/domain/audit"
	"github.com/dinesync/pos-api/internal/domain/entity"
	"github.com/dinesync/pos-api/internal/domain/repository"
	"github.com/dinesync/pos-api/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Worker drains the outbox: it polls for PENDING events, claims each with a
// compare-and-set, writes the audit record and marks the event PUBLISHED.
// Delivery is at-least-once: a crash between claiming and publishing leaves
// the event to be retried, so the same logical event can occasionally produce
// two audit rows. That is tolerated; audit logs are append-only observational
// data, not transactional state.
type Worker struct {
	outboxRepo   repository.OutboxRepository
	auditRepo    repository.AuditLogRepository
	pollInterval time.Duration
	batchSize    int
	maxRetries   int
}

// NewWorker creates an audit outbox worker.
func NewWorker(
	outboxRepo repository.OutboxRepository,
	auditRepo repository.AuditLogRepository,
	pollInterval time.Duration,
	batchSize int,
	maxRetries int,
) (*Worker, error) {
	if outboxRepo == nil {
		return nil, fmt.Errorf("outbox repository is required")
	}
	if auditRepo == nil {
		return nil, fmt.Errorf("audit log repository is required")
	}
	if pollInterval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive")
	}
	if batchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive")
	}
	if maxRetries <= 0 {
		return nil, fmt.Errorf("max retries must be positive")
	}
	return &Worker{
		outboxRepo:   outboxRepo,
		auditRepo:    auditRepo,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		maxRetries:   maxRetries,
	}, nil
}

// Run polls until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.ProcessBatch(ctx); err != nil {
				logger.Error("Audit outbox batch processing failed", zap.Error(err))
			}
		}
	}
}

// ProcessBatch drains up to one batch of pending events. Exported so tests and
// one-shot invocations can drive the worker without the polling loop.
func (w *Worker) ProcessBatch(ctx context.Context) error {
	events, err := w.outboxRepo.GetPendingEvents(ctx, w.batchSize)
	if err != nil {
		return err
	}

	for _, event := range events {
		if err := w.outboxRepo.MarkEventProcessing(ctx, event.ID); err != nil {
			// Another worker claimed it first.
			logger.Debug("Skip outbox event", zap.String("event_id", event.ID.String()), zap.Error(err))
			continue
		}

		if err := w.consume(ctx, event); err != nil {
			logger.Warn("Audit event consume failed, will retry",
				zap.String("event_id", event.ID.String()),
				zap.Int("retry_count", event.RetryCount),
				zap.Error(err),
			)
			if failErr := w.outboxRepo.MarkEventFailed(ctx, event.ID, w.maxRetries); failErr != nil {
				logger.Error("Failed to mark outbox event as failed",
					zap.String("event_id", event.ID.String()),
					zap.Error(failErr),
				)
			}
			continue
		}

		if err := w.outboxRepo.MarkEventPublished(ctx, event.ID); err != nil {
			// The audit row exists but the event stays claimable; the retry
			// produces a duplicate audit row, which is acceptable.
			logger.Error("Failed to mark outbox event as published",
				zap.String("event_id", event.ID.String()),
				zap.Error(err),
			)
		}
	}

	return nil
}

// consume turns one queued event into a durable audit record.
func (w *Worker) consume(ctx context.Context, event entity.OutboxEvent) error {
	var payload audit.Event
	if err := json.Unmarshal([]byte(event.Payload), &payload); err != nil {
		return fmt.Errorf("unmarshal audit event %s: %w", event.ID, err)
	}

	var userID *uuid.UUID
	if payload.UserID != nil {
		id := *payload.UserID
		userID = &id
	}

	return w.auditRepo.Create(ctx, &entity.AuditLogEntry{
		UserID:       userID,
		Action:       payload.Action,
		ResourceType: payload.ResourceType,
		ResourceID:   payload.ResourceID,
		Payload:      string(payload.Payload),
		IP:           payload.IP,
		UserAgent:    payload.UserAgent,
	})
}
