package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dinesync/pos-api/internal/domain/entity"
	"github.com/google/uuid"
)

// ErrOverlappingWindow is returned by CreateWithOverlapCheck when the new
// mark's window intersects an existing non-deleted mark for the same item.
var ErrOverlappingWindow = errors.New("overlapping surplus window for menu item")

// SurplusRepository defines the interface for surplus mark data operations
type SurplusRepository interface {
	// CreateWithOverlapCheck performs the overlap existence check and the
	// insert as one serializable transaction, so two concurrent creations for
	// the same item cannot both pass the check. Returns ErrOverlappingWindow
	// when the window is taken.
	CreateWithOverlapCheck(ctx context.Context, mark *entity.SurplusMark) error

	// FindOverlappingMark returns the first non-deleted mark for the item
	// whose window intersects [start, end], or nil when there is none.
	FindOverlappingMark(ctx context.Context, menuItemID uuid.UUID, start, end time.Time) (*entity.SurplusMark, error)

	// FindActiveMarks returns non-deleted marks whose window contains "now"
	// and whose menu item is currently available, soonest-ending first.
	FindActiveMarks(ctx context.Context, now time.Time) ([]entity.SurplusMark, error)

	GetByID(ctx context.Context, id uuid.UUID) (*entity.SurplusMark, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
