package entity

import (
	"time"

	"github.com/dinesync/pos-api/internal/domain/enum"
	"github.com/dinesync/pos-api/pkg/money"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is a guest's order for one sitting. The billing engine treats it as an
// immutable input: its subtotal feeds the bill calculator, and its status
// moves CREATED -> BILLED -> CLOSED as the settlement progresses.
type Order struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	TableID   *uuid.UUID       `gorm:"type:uuid;index" json:"table_id,omitempty"`
	Status    enum.OrderStatus `gorm:"default:0" json:"status"`
	SubTotal  money.Money      `gorm:"type:decimal(12,2);not null" json:"sub_total"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Table *Table      `gorm:"foreignKey:TableID" json:"table,omitempty"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// ItemsSubTotal recomputes the subtotal from the order's own line items.
func (o *Order) ItemsSubTotal() money.Money {
	total := money.Zero
	for _, item := range o.Items {
		total = total.Add(item.Total)
	}
	return total
}

// OrderItem is a line item in an order
type OrderItem struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	MenuItemID uuid.UUID      `gorm:"type:uuid;not null;index" json:"menu_item_id"`
	Quantity   int            `gorm:"not null" json:"quantity"`
	UnitPrice  money.Money    `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Total      money.Money    `gorm:"type:decimal(12,2);not null" json:"total"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	MenuItem MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
