package repository

import (
	"context"

	"github.com/dinesync/pos-api/internal/domain/entity"
	"github.com/google/uuid"
)

// OutboxRepository defines the interface for the durable audit job queue.
// SaveEvent returns once the row is committed; processing happens later in a
// separate worker.
type OutboxRepository interface {
	SaveEvent(ctx context.Context, event *entity.OutboxEvent) error

	// GetPendingEvents returns up to limit PENDING events, oldest first.
	GetPendingEvents(ctx context.Context, limit int) ([]entity.OutboxEvent, error)

	// MarkEventProcessing claims a PENDING event with a compare-and-set so
	// concurrent workers never process the same event twice at once. Returns
	// an error when the event was already claimed.
	MarkEventProcessing(ctx context.Context, id uuid.UUID) error

	MarkEventPublished(ctx context.Context, id uuid.UUID) error

	// MarkEventFailed increments the retry count and returns the event to
	// PENDING, or parks it as FAILED once maxRetries is reached.
	MarkEventFailed(ctx context.Context, id uuid.UUID, maxRetries int) error
}
