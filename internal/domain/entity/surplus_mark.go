package entity

import (
	"time"

	"github.com/dinesync/pos-api/pkg/money"
	"github.com/dinesync/pos-api/pkg/schedule"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SurplusMark is a scheduled promotional discount window on one menu item.
// For a given menu item no two non-deleted marks may have intersecting
// [SurplusAt, SurplusUntil] windows. Whether a mark is "active" is never
// stored; it is recomputed from the clock on every read.
type SurplusMark struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	MenuItemID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_surplus_window" json:"menu_item_id"`
	MarkedBy     uuid.UUID      `gorm:"type:uuid;not null" json:"marked_by"`
	SurplusAt    time.Time      `gorm:"not null;index:idx_surplus_window" json:"surplus_at"`
	SurplusUntil time.Time      `gorm:"not null;index:idx_surplus_window" json:"surplus_until"`
	DiscountPct  money.Money    `gorm:"type:decimal(5,2);not null" json:"discount_pct"`
	Note         *string        `gorm:"type:text" json:"note,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	MenuItem MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new surplus mark
func (s *SurplusMark) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SurplusMark model
func (SurplusMark) TableName() string {
	return "surplus_marks"
}

// OverlapsWindow reports whether this mark's window intersects [start, end].
func (s *SurplusMark) OverlapsWindow(start, end time.Time) bool {
	return schedule.Overlaps(s.SurplusAt, s.SurplusUntil, start, end)
}

// IsActiveAt reports whether the mark's window contains the given instant and
// the mark is not soft-deleted. Menu item availability is checked by the
// repository query, which joins the menu item row.
func (s *SurplusMark) IsActiveAt(now time.Time) bool {
	if s.DeletedAt.Valid {
		return false
	}
	return schedule.Contains(s.SurplusAt, s.SurplusUntil, now)
}

// SalePrice derives the discounted price from the item's price, rounded to
// 2 decimal places.
func (s *SurplusMark) SalePrice(originalPrice money.Money) money.Money {
	discount := originalPrice.Percent(s.DiscountPct)
	return originalPrice.Sub(discount).Round2()
}
