package service

import (
	"context"

	"github.com/dinesync/pos-api/internal/domain/audit"
	"github.com/dinesync/pos-api/pkg/logger"
	"go.uber.org/zap"
)

// enqueueAudit hands an audit event to the queue on a best-effort basis. The
// primary mutation has already committed by the time this runs, so a failure
// here is logged and swallowed; it must never turn a successful operation into
// a reported failure.
func enqueueAudit(ctx context.Context, queue audit.Queue, event audit.Event) {
	if err := queue.Enqueue(ctx, event); err != nil {
		logger.Warn("Failed to enqueue audit event",
			zap.String("action", event.Action.String()),
			zap.String("resource_type", event.ResourceType),
			zap.String("resource_id", event.ResourceID),
			zap.Error(err),
		)
	}
}
