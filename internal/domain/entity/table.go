package entity

import (
	"time"

	"github.com/dinesync/pos-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Table is a physical dining table on the floor
type Table struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Number     int              `gorm:"uniqueIndex;not null" json:"number"`
	Capacity   int              `gorm:"not null" json:"capacity"`
	Status     enum.TableStatus `gorm:"default:0" json:"status"`
	AssignedTo *uuid.UUID       `gorm:"type:uuid;index" json:"assigned_to,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	DeletedAt  gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Waiter *User `gorm:"foreignKey:AssignedTo" json:"waiter,omitempty"`
}

// BeforeCreate generates a UUID before creating a new table
func (t *Table) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Table model
func (Table) TableName() string {
	return "tables"
}
