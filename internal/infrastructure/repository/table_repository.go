package repository

import (
	"context"
	"errors"

	"github.com/dinesync/pos-api/internal/domain/entity"
	"github.com/dinesync/pos-api/internal/domain/enum"
	domainRepo "github.com/dinesync/pos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type tableRepository struct {
	db *gorm.DB
}

// NewTableRepository creates a new table repository
func NewTableRepository(db *gorm.DB) domainRepo.TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Create(ctx context.Context, table *entity.Table) error {
	return r.db.WithContext(ctx).Create(table).Error
}

func (r *tableRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Table, error) {
	var table entity.Table
	err := r.db.WithContext(ctx).Preload("Waiter").First(&table, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.TableStatus) (*entity.Table, error) {
	if err := r.db.WithContext(ctx).Model(&entity.Table{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *tableRepository) AssignWaiter(ctx context.Context, id uuid.UUID, waiterID uuid.UUID) (*entity.Table, error) {
	if err := r.db.WithContext(ctx).Model(&entity.Table{}).
		Where("id = ?", id).
		Update("assigned_to", waiterID).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *tableRepository) UnassignWaiter(ctx context.Context, id uuid.UUID) (*entity.Table, error) {
	if err := r.db.WithContext(ctx).Model(&entity.Table{}).
		Where("id = ?", id).
		Update("assigned_to", nil).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
