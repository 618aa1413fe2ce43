package repository

import (
	"context"

	"github.com/dinesync/pos-api/internal/domain/entity"
	"github.com/dinesync/pos-api/internal/domain/enum"
	"github.com/google/uuid"
)

// TableRepository defines the interface for dining table data operations
type TableRepository interface {
	Create(ctx context.Context, table *entity.Table) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Table, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.TableStatus) (*entity.Table, error)
	AssignWaiter(ctx context.Context, id uuid.UUID, waiterID uuid.UUID) (*entity.Table, error)
	UnassignWaiter(ctx context.Context, id uuid.UUID) (*entity.Table, error)
}

// UserRepository defines the interface for user lookups. Account management
// lives outside this service; the engine only resolves referenced actors.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
