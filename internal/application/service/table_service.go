package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dinesync/pos-api/internal/domain/audit"
	"github.com/dinesync/pos-api/internal/domain/entity"
	"github.com/dinesync/pos-api/internal/domain/enum"
	"github.com/dinesync/pos-api/internal/domain/repository"
	"github.com/dinesync/pos-api/pkg/logger"
	"github.com/dinesync/pos-api/pkg/result"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TableService handles the audited state changes of dining tables
type TableService struct {
	tableRepo  repository.TableRepository
	userRepo   repository.UserRepository
	auditQueue audit.Queue
}

// NewTableService creates a new table service
func NewTableService(
	tableRepo repository.TableRepository,
	userRepo repository.UserRepository,
	auditQueue audit.Queue,
) *TableService {
	return &TableService{
		tableRepo:  tableRepo,
		userRepo:   userRepo,
		auditQueue: auditQueue,
	}
}

// UpdateTableStatus moves a table through its floor states
func (s *TableService) UpdateTableStatus(ctx context.Context, tableID uuid.UUID, status enum.TableStatus, userID uuid.UUID) result.Result[*entity.Table] {
	table, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		logger.Error("Error loading table", zap.String("table_id", tableID.String()), zap.Error(err))
		return result.Fail[*entity.Table]("Error updating table status", http.StatusInternalServerError)
	}
	if table == nil {
		return result.Fail[*entity.Table]("Table not found", http.StatusNotFound)
	}

	updated, err := s.tableRepo.UpdateStatus(ctx, tableID, status)
	if err != nil {
		logger.Error("Error updating table status", zap.String("table_id", tableID.String()), zap.Error(err))
		return result.Fail[*entity.Table]("Error updating table status", http.StatusInternalServerError)
	}

	enqueueAudit(ctx, s.auditQueue, audit.NewEvent(&userID, enum.AuditActionTableStatusChanged, "Table", updated.ID.String(), updated))

	return result.Ok("Table status updated successfully", updated, http.StatusOK)
}

// AssignWaiter assigns a waiter to a table
func (s *TableService) AssignWaiter(ctx context.Context, tableID, waiterID, userID uuid.UUID) result.Result[*entity.Table] {
	waiter, err := s.userRepo.GetByID(ctx, waiterID)
	if err != nil {
		logger.Error("Error loading waiter", zap.String("waiter_id", waiterID.String()), zap.Error(err))
		return result.Fail[*entity.Table]("Error assigning table to waiter", http.StatusInternalServerError)
	}
	if waiter == nil {
		return result.Fail[*entity.Table](fmt.Sprintf("Assigned waiter %s does not exist", waiterID), http.StatusBadRequest)
	}

	table, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		logger.Error("Error loading table", zap.String("table_id", tableID.String()), zap.Error(err))
		return result.Fail[*entity.Table]("Error assigning table to waiter", http.StatusInternalServerError)
	}
	if table == nil {
		return result.Fail[*entity.Table]("Table not found", http.StatusNotFound)
	}

	updated, err := s.tableRepo.AssignWaiter(ctx, tableID, waiterID)
	if err != nil {
		logger.Error("Error assigning table to waiter", zap.String("table_id", tableID.String()), zap.Error(err))
		return result.Fail[*entity.Table]("Error assigning table to waiter", http.StatusInternalServerError)
	}

	enqueueAudit(ctx, s.auditQueue, audit.NewEvent(&userID, enum.AuditActionTableAssignedWaiter, "Table", updated.ID.String(), updated))

	return result.Ok("Table assigned to waiter successfully", updated, http.StatusOK)
}

// UnassignWaiter removes the waiter assignment from a table
func (s *TableService) UnassignWaiter(ctx context.Context, tableID, userID uuid.UUID) result.Result[*entity.Table] {
	table, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		logger.Error("Error loading table", zap.String("table_id", tableID.String()), zap.Error(err))
		return result.Fail[*entity.Table]("Error unassigning table from waiter", http.StatusInternalServerError)
	}
	if table == nil {
		return result.Fail[*entity.Table]("Table not found", http.StatusNotFound)
	}

	updated, err := s.tableRepo.UnassignWaiter(ctx, tableID)
	if err != nil {
		logger.Error("Error unassigning table from waiter", zap.String("table_id", tableID.String()), zap.Error(err))
		return result.Fail[*entity.Table]("Error unassigning table from waiter", http.StatusInternalServerError)
	}

	enqueueAudit(ctx, s.auditQueue, audit.NewEvent(&userID, enum.AuditActionTableUnassignedWaiter, "Table", updated.ID.String(), updated))

	return result.Ok("Table unassigned from waiter successfully", updated, http.StatusOK)
}
