package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dinesync/pos-api/internal/domain/entity"
	"github.com/dinesync/pos-api/internal/domain/enum"
	domainRepo "github.com/dinesync/pos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

// Create inserts the bill and moves its order to BILLED in one transaction,
// so a bill never exists against an un-billed order and vice versa.
func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bill).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Order{}).
			Where("id = ?", bill.OrderID).
			Update("status", enum.OrderStatusBilled).Error
	})
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).First(&bill, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) UpdateDocumentURL(ctx context.Context, id uuid.UUID, documentURL string) error {
	return r.db.WithContext(ctx).Model(&entity.Bill{}).
		Where("id = ?", id).
		Update("document_url", documentURL).Error
}

func (r *billRepository) MarkPaid(ctx context.Context, id uuid.UUID, mode enum.PaymentMode, paidAt time.Time) error {
	return r.db.WithContext(ctx).Model(&entity.Bill{}).
		Where("id = ? AND is_paid = ?", id, false).
		Updates(map[string]interface{}{
			"is_paid":      true,
			"paid_at":      paidAt,
			"payment_mode": mode,
		}).Error
}
