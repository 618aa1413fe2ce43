package repository

import (
	"context"
	"time"

	"github.com/dinesync/pos-api/internal/domain/entity"
	"github.com/dinesync/pos-api/internal/domain/enum"
	"github.com/google/uuid"
)

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Bill, error)
	UpdateDocumentURL(ctx context.Context, id uuid.UUID, documentURL string) error
	MarkPaid(ctx context.Context, id uuid.UUID, mode enum.PaymentMode, paidAt time.Time) error
}
