package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dinesync/pos-api/internal/domain/entity"
	domainRepo "github.com/dinesync/pos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type surplusRepository struct {
	db *gorm.DB
}

// NewSurplusRepository creates a new surplus mark repository
func NewSurplusRepository(db *gorm.DB) domainRepo.SurplusRepository {
	return &surplusRepository{db: db}
}

// CreateWithOverlapCheck runs the overlap existence check and the insert in a
// single SERIALIZABLE transaction. Two concurrent creations with intersecting
// windows for the same item cannot both commit: one serializes after the
// other and sees its row.
func (r *surplusRepository) CreateWithOverlapCheck(ctx context.Context, mark *entity.SurplusMark) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entity.SurplusMark
		err := tx.
			Where("menu_item_id = ?", mark.MenuItemID).
			Where("surplus_at <= ? AND surplus_until >= ?", mark.SurplusUntil, mark.SurplusAt).
			First(&existing).Error
		if err == nil {
			return domainRepo.ErrOverlappingWindow
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(mark).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

func (r *surplusRepository) FindOverlappingMark(ctx context.Context, menuItemID uuid.UUID, start, end time.Time) (*entity.SurplusMark, error) {
	var mark entity.SurplusMark
	err := r.db.WithContext(ctx).
		Where("menu_item_id = ?", menuItemID).
		Where("surplus_at <= ? AND surplus_until >= ?", end, start).
		First(&mark).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mark, nil
}

// FindActiveMarks applies the canonical activation predicate: the window
// contains now, the mark is not soft-deleted, and the menu item is available.
func (r *surplusRepository) FindActiveMarks(ctx context.Context, now time.Time) ([]entity.SurplusMark, error) {
	var marks []entity.SurplusMark
	err := r.db.WithContext(ctx).
		Joins("JOIN menu_items ON menu_items.id = surplus_marks.menu_item_id").
		Where("surplus_marks.surplus_at <= ? AND surplus_marks.surplus_until >= ?", now, now).
		Where("menu_items.is_available = ?", true).
		Preload("MenuItem").
		Order("surplus_marks.surplus_until ASC").
		Find(&marks).Error
	if err != nil {
		return nil, err
	}
	return marks, nil
}

func (r *surplusRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SurplusMark, error) {
	var mark entity.SurplusMark
	err := r.db.WithContext(ctx).First(&mark, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mark, nil
}

func (r *surplusRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.SurplusMark{}, "id = ?", id).Error
}
