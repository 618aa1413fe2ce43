// Package queue implements the audit event queue as a transactional outbox: a
// durable table of pending jobs written on enqueue and drained by a polling
// worker. The caller observes success as soon as the row commits, strictly
// before the audit record exists.
package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dinesync/pos-api/internal/domain/audit"
	"github.com/dinesync/pos-api/internal/domain/entity"
	"github.com/dinesync/pos-api/internal/domain/repository"
)

// AuditQueue durably queues audit events in the outbox table.
type AuditQueue struct {
	outboxRepo repository.OutboxRepository
}

// NewAuditQueue creates a new audit queue
func NewAuditQueue(outboxRepo repository.OutboxRepository) *AuditQueue {
	return &AuditQueue{outboxRepo: outboxRepo}
}

// Enqueue serializes the event and saves it as a PENDING outbox row. It
// returns once the row is committed, not once the audit record is written.
func (q *AuditQueue) Enqueue(ctx context.Context, event audit.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	return q.outboxRepo.SaveEvent(ctx, &entity.OutboxEvent{
		JobName: audit.JobName,
		Payload: string(payload),
	})
}

var _ audit.Queue = (*AuditQueue)(nil)
