package entity

import (
	"time"

	"github.com/dinesync/pos-api/pkg/money"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItem is a sellable dish or drink
type MenuItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:150;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Price       money.Money    `gorm:"type:decimal(12,2);not null" json:"price"`
	ImageURL    *string        `gorm:"size:500" json:"image_url,omitempty"`
	IsAvailable bool           `gorm:"default:true" json:"is_available"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new menu item
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}
