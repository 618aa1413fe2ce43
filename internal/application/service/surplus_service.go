package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dinesync/pos-api/internal/domain/audit"
	"github.com/dinesync/pos-api/internal/domain/entity"
	"github.com/dinesync/pos-api/internal/domain/enum"
	"github.com/dinesync/pos-api/internal/domain/repository"
	"github.com/dinesync/pos-api/pkg/logger"
	"github.com/dinesync/pos-api/pkg/money"
	"github.com/dinesync/pos-api/pkg/result"
	"github.com/dinesync/pos-api/pkg/schedule"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SurplusService schedules time-windowed promotional discounts on menu items
type SurplusService struct {
	surplusRepo  repository.SurplusRepository
	menuItemRepo repository.MenuItemRepository
	auditQueue   audit.Queue
	now          func() time.Time
}

// NewSurplusService creates a new surplus service
func NewSurplusService(
	surplusRepo repository.SurplusRepository,
	menuItemRepo repository.MenuItemRepository,
	auditQueue audit.Queue,
) *SurplusService {
	return &SurplusService{
		surplusRepo:  surplusRepo,
		menuItemRepo: menuItemRepo,
		auditQueue:   auditQueue,
		now:          time.Now,
	}
}

// CreateSurplusMarkInput represents the create surplus mark input
type CreateSurplusMarkInput struct {
	MenuItemID   uuid.UUID
	SurplusAt    time.Time
	SurplusUntil time.Time
	DiscountPct  money.Money
	Note         *string
}

// CreateSurplusMark schedules a promotion window for a menu item. The window
// must be well-formed and must not intersect any existing non-deleted window
// for the same item; the overlap check and the insert run as one serializable
// transaction in the repository.
func (s *SurplusService) CreateSurplusMark(ctx context.Context, input CreateSurplusMarkInput, markedBy uuid.UUID) result.Result[*entity.SurplusMark] {
	if err := schedule.ValidateWindow(input.SurplusAt, input.SurplusUntil, s.now()); err != nil {
		return result.Fail[*entity.SurplusMark](err.Error(), http.StatusUnprocessableEntity)
	}
	if !input.DiscountPct.IsPositive() || input.DiscountPct.Cmp(money.New(100)) > 0 {
		return result.Fail[*entity.SurplusMark]("Discount percentage must be greater than 0 and at most 100", http.StatusUnprocessableEntity)
	}

	menuItem, err := s.menuItemRepo.GetByID(ctx, input.MenuItemID)
	if err != nil {
		logger.Error("Error loading menu item for surplus mark", zap.String("menu_item_id", input.MenuItemID.String()), zap.Error(err))
		return result.Fail[*entity.SurplusMark]("Error creating Surplus Mark", http.StatusInternalServerError)
	}
	if menuItem == nil {
		return result.Fail[*entity.SurplusMark]("Menu item not found for surplus mark", http.StatusNotFound)
	}

	mark := &entity.SurplusMark{
		MenuItemID:   input.MenuItemID,
		MarkedBy:     markedBy,
		SurplusAt:    input.SurplusAt,
		SurplusUntil: input.SurplusUntil,
		DiscountPct:  input.DiscountPct,
		Note:         input.Note,
	}

	if err := s.surplusRepo.CreateWithOverlapCheck(ctx, mark); err != nil {
		if errors.Is(err, repository.ErrOverlappingWindow) {
			return result.Fail[*entity.SurplusMark]("This item already has a surplus sale scheduled during this time period", http.StatusConflict)
		}
		logger.Error("Error creating surplus mark", zap.String("menu_item_id", input.MenuItemID.String()), zap.Error(err))
		return result.Fail[*entity.SurplusMark]("Error creating Surplus Mark", http.StatusInternalServerError)
	}

	enqueueAudit(ctx, s.auditQueue, audit.NewEvent(&markedBy, enum.AuditActionSurplusMarkCreated, "SurplusMark", mark.ID.String(), mark))

	return result.Ok("Surplus mark created successfully", mark, http.StatusCreated)
}

// DailySpecial is an active promotion joined with its menu item pricing
type DailySpecial struct {
	ID            uuid.UUID   `json:"id"`
	MenuItemID    uuid.UUID   `json:"menu_item_id"`
	Name          string      `json:"name"`
	OriginalPrice money.Money `json:"original_price"`
	SalePrice     money.Money `json:"sale_price"`
	DiscountPct   money.Money `json:"discount_pct"`
	EndsAt        time.Time   `json:"ends_at"`
	ImageURL      *string     `json:"image_url,omitempty"`
	Note          *string     `json:"note,omitempty"`
}

// GetDailySpecials returns the promotions active at this instant. Activation
// is purely time-derived: the same mark can be active on one call and
// inactive on the next with no write in between.
func (s *SurplusService) GetDailySpecials(ctx context.Context) result.Result[[]DailySpecial] {
	marks, err := s.surplusRepo.FindActiveMarks(ctx, s.now())
	if err != nil {
		logger.Error("Error fetching active surplus marks", zap.Error(err))
		return result.Fail[[]DailySpecial]("Internal Server Error", http.StatusInternalServerError)
	}

	specials := make([]DailySpecial, 0, len(marks))
	for _, mark := range marks {
		specials = append(specials, DailySpecial{
			ID:            mark.ID,
			MenuItemID:    mark.MenuItemID,
			Name:          mark.MenuItem.Name,
			OriginalPrice: mark.MenuItem.Price,
			SalePrice:     mark.SalePrice(mark.MenuItem.Price),
			DiscountPct:   mark.DiscountPct,
			EndsAt:        mark.SurplusUntil,
			ImageURL:      mark.MenuItem.ImageURL,
			Note:          mark.Note,
		})
	}

	return result.Ok("Daily specials fetched", specials, http.StatusOK)
}

// DeleteSurplusMark soft-deletes a mark; the row is kept for the audit trail
func (s *SurplusService) DeleteSurplusMark(ctx context.Context, id uuid.UUID, userID uuid.UUID) result.Result[*entity.SurplusMark] {
	mark, err := s.surplusRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("Error loading surplus mark", zap.String("surplus_mark_id", id.String()), zap.Error(err))
		return result.Fail[*entity.SurplusMark]("Error deleting Surplus Mark", http.StatusInternalServerError)
	}
	if mark == nil {
		return result.Fail[*entity.SurplusMark]("Surplus mark not found", http.StatusNotFound)
	}

	if err := s.surplusRepo.SoftDelete(ctx, id); err != nil {
		logger.Error("Error deleting surplus mark", zap.String("surplus_mark_id", id.String()), zap.Error(err))
		return result.Fail[*entity.SurplusMark]("Error deleting Surplus Mark", http.StatusInternalServerError)
	}

	enqueueAudit(ctx, s.auditQueue, audit.NewEvent(&userID, enum.AuditActionSurplusMarkDeleted, "SurplusMark", mark.ID.String(), mark))

	return result.Ok("Surplus mark deleted successfully", mark, http.StatusOK)
}
