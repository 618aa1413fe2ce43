package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OutboxStatus is the delivery state of a queued audit event
type OutboxStatus string

const (
	OutboxStatusPending    OutboxStatus = "PENDING"
	OutboxStatusProcessing OutboxStatus = "PROCESSING"
	OutboxStatusPublished  OutboxStatus = "PUBLISHED"
	OutboxStatusFailed     OutboxStatus = "FAILED"
)

// OutboxEvent is one durably queued audit job. Enqueue inserts a PENDING row
// and returns; a separate worker claims rows (PENDING -> PROCESSING), writes
// the audit record and marks them PUBLISHED. A failed consume returns the row
// to PENDING until MaxRetries is exhausted, after which it parks as FAILED.
type OutboxEvent struct {
	ID         uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	JobName    string       `gorm:"size:100;not null;index" json:"job_name"`
	Payload    string       `gorm:"type:jsonb;not null" json:"payload"`
	Status     OutboxStatus `gorm:"size:20;default:PENDING;not null;index" json:"status"`
	RetryCount int          `gorm:"default:0;not null" json:"retry_count"`
	CreatedAt  time.Time    `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new outbox event
func (e *OutboxEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OutboxEvent model
func (OutboxEvent) TableName() string {
	return "outbox_events"
}
