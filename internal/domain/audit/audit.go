// Package audit defines the boundary between domain services and the audit
// trail: services describe a mutation as an Event and hand it to a Queue. They
// never write audit rows themselves, and they never wait for one to be
// written.
package audit

import (
	"context"
	"encoding/json"

	"github.com/dinesync/pos-api/internal/domain/enum"
	"github.com/google/uuid"
)

// JobName is the single job the audit queue carries.
const JobName = "createAuditLog"

// Event is a self-contained snapshot of one mutation. It carries the full
// affected entity, not a delta, so consumers need no other state and no
// cross-event ordering.
type Event struct {
	UserID       *uuid.UUID       `json:"user_id"`
	Action       enum.AuditAction `json:"action"`
	ResourceType string           `json:"resource_type"`
	ResourceID   string           `json:"resource_id"`
	Payload      json.RawMessage  `json:"payload"`
	IP           *string          `json:"ip"`
	UserAgent    *string          `json:"user_agent"`
}

// NewEvent builds an Event, serializing the entity snapshot. A snapshot that
// cannot be marshalled is recorded as JSON null rather than failing the event.
func NewEvent(userID *uuid.UUID, action enum.AuditAction, resourceType, resourceID string, snapshot interface{}) Event {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		payload = []byte("null")
	}
	return Event{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Payload:      payload,
	}
}

// Queue is the asynchronous channel decoupling a committed mutation from the
// durability of its audit record. Enqueue returns once the event is durably
// queued, not once it is processed. Callers treat an enqueue failure as
// strictly non-fatal: the primary mutation has already committed.
type Queue interface {
	Enqueue(ctx context.Context, event Event) error
}
