package repository

import (
	"context"

	"github.com/dinesync/pos-api/internal/domain/entity"
	domainRepo "github.com/dinesync/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) domainRepo.AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *entity.AuditLogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditLogRepository) ListByResource(ctx context.Context, resourceType, resourceID string) ([]entity.AuditLogEntry, error) {
	var entries []entity.AuditLogEntry
	err := r.db.WithContext(ctx).
		Where("resource_type = ? AND resource_id = ?", resourceType, resourceID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
