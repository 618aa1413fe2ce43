package entity

import (
	"time"

	"github.com/dinesync/pos-api/internal/domain/enum"
	"github.com/dinesync/pos-api/pkg/money"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill is the financial settlement of exactly one order. The unique index on
// OrderID enforces one bill per order at the database level; once IsPaid is
// set the row is immutable except for the payment-confirmation fields.
//
// All monetary columns satisfy:
//
//	grand_total == (sub_total - discount_value + service_charge) + tax_amount
type Bill struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	OrderID       uuid.UUID         `gorm:"type:uuid;uniqueIndex;not null" json:"order_id"`
	SubTotal      money.Money       `gorm:"type:decimal(12,2);not null" json:"sub_total"`
	DiscountValue money.Money       `gorm:"type:decimal(12,2);default:0" json:"discount_value"`
	DiscountType  enum.DiscountType `gorm:"default:0" json:"discount_type"`
	ServiceCharge money.Money       `gorm:"type:decimal(12,2);default:0" json:"service_charge"`
	TaxPct        money.Money       `gorm:"type:decimal(5,2);not null" json:"tax_pct"`
	TaxAmount     money.Money       `gorm:"type:decimal(12,2);not null" json:"tax_amount"`
	GrandTotal    money.Money       `gorm:"type:decimal(12,2);not null" json:"grand_total"`
	PaymentMode   enum.PaymentMode  `gorm:"default:0" json:"payment_mode"`
	IsPaid        bool              `gorm:"default:false" json:"is_paid"`
	PaidAt        *time.Time        `json:"paid_at,omitempty"`
	DocumentURL   *string           `gorm:"size:500" json:"document_url,omitempty"`
	GeneratedBy   uuid.UUID         `gorm:"type:uuid;not null;index" json:"generated_by"`
	GeneratedAt   time.Time         `gorm:"not null" json:"generated_at"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}
