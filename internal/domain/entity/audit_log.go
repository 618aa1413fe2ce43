package entity

import (
	"time"

	"github.com/dinesync/pos-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogEntry is an immutable fact record of one mutation. Rows are written
// only by the audit queue worker, never directly by a domain service, and are
// never updated or deleted. Because delivery is at-least-once, the same
// logical event may occasionally produce two rows; that is tolerated.
type AuditLogEntry struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID       *uuid.UUID       `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action       enum.AuditAction `gorm:"size:100;not null;index" json:"action"`
	ResourceType string           `gorm:"size:100;not null" json:"resource_type"`
	ResourceID   string           `gorm:"size:100;not null;index" json:"resource_id"`
	Payload      string           `gorm:"type:jsonb" json:"payload"`
	IP           *string          `gorm:"size:45" json:"ip,omitempty"`
	UserAgent    *string          `gorm:"size:500" json:"user_agent,omitempty"`
	CreatedAt    time.Time        `gorm:"autoCreateTime;index" json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new audit log entry
func (a *AuditLogEntry) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AuditLogEntry model
func (AuditLogEntry) TableName() string {
	return "audit_logs"
}
