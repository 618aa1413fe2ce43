package repository

import (
	"context"
	"fmt"

	"github.com/dinesync/pos-api/internal/domain/entity"
	domainRepo "github.com/dinesync/pos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type outboxRepository struct {
	db *gorm.DB
}

// NewOutboxRepository creates a new outbox repository
func NewOutboxRepository(db *gorm.DB) domainRepo.OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) SaveEvent(ctx context.Context, event *entity.OutboxEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *outboxRepository) GetPendingEvents(ctx context.Context, limit int) ([]entity.OutboxEvent, error) {
	var events []entity.OutboxEvent
	err := r.db.WithContext(ctx).
		Where("status = ?", entity.OutboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("get pending outbox events: %w", err)
	}
	return events, nil
}

// MarkEventProcessing claims a pending event. The status guard in the WHERE
// clause makes the claim a compare-and-set: when two workers race, one sees
// zero affected rows and skips the event.
func (r *outboxRepository) MarkEventProcessing(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&entity.OutboxEvent{}).
		Where("id = ? AND status = ?", id, entity.OutboxStatusPending).
		Update("status", entity.OutboxStatusProcessing)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("outbox event %s not pending or already claimed", id)
	}
	return nil
}

func (r *outboxRepository) MarkEventPublished(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&entity.OutboxEvent{}).
		Where("id = ?", id).
		Update("status", entity.OutboxStatusPublished)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("outbox event %s not found", id)
	}
	return nil
}

func (r *outboxRepository) MarkEventFailed(ctx context.Context, id uuid.UUID, maxRetries int) error {
	var event entity.OutboxEvent
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return fmt.Errorf("find outbox event %s: %w", id, err)
	}

	newRetryCount := event.RetryCount + 1
	newStatus := entity.OutboxStatusFailed
	if newRetryCount < maxRetries {
		// Not exhausted yet: return the event to the pending pool for a
		// later poll cycle.
		newStatus = entity.OutboxStatusPending
	}

	return r.db.WithContext(ctx).Model(&entity.OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      newStatus,
			"retry_count": newRetryCount,
		}).Error
}
