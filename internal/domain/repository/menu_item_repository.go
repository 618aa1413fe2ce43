package repository

import (
	"context"

	"github.com/dinesync/pos-api/internal/domain/entity"
	"github.com/google/uuid"
)

// MenuItemRepository defines the interface for menu item data operations
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
}
