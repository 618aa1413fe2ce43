package repository

import (
	"context"

	"github.com/dinesync/pos-api/internal/domain/entity"
)

// AuditLogRepository defines the interface for audit log persistence. Entries
// are append-only: there is no update or delete.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *entity.AuditLogEntry) error
	ListByResource(ctx context.Context, resourceType, resourceID string) ([]entity.AuditLogEntry, error)
}
