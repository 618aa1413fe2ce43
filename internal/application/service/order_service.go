package service

import (
	"context"
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

// OrderService handles the billing-adjacent order lifecycle. Order intake
// itself lives outside this engine; here an order only moves BILLED -> CLOSED
// once its bill is settled.
type OrderService struct {
	orderRepo  repository.OrderRepository
	billRepo   repository.BillRepository
	auditQueue audit.Queue
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	billRepo repository.BillRepository,
	auditQueue audit.Queue,
) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		billRepo:   billRepo,
		auditQueue: auditQueue,
	}
}

// GetOrder retrieves an order with its line items
func (s *OrderService) GetOrder(ctx context.Context, orderID uuid.UUID) result.Result[*entity.Order] {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		logger.Error("Error loading order", zap.String("order_id", orderID.String()), zap.Error(err))
		return result.Fail[*entity.Order]("Error fetching Order", http.StatusInternalServerError)
	}
	if order == nil {
		return result.Fail[*entity.Order]("Order not found", http.StatusNotFound)
	}
	return result.Ok("Order fetched", order, http.StatusOK)
}

// CloseOrder closes a billed order once its bill has been paid
func (s *OrderService) CloseOrder(ctx context.Context, orderID, userID uuid.UUID) result.Result[*entity.Order] {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		logger.Error("Error loading order", zap.String("order_id", orderID.String()), zap.Error(err))
		return result.Fail[*entity.Order]("Error closing Order", http.StatusInternalServerError)
	}
	if order == nil {
		return result.Fail[*entity.Order]("Order not found", http.StatusNotFound)
	}
	if order.Status != enum.OrderStatusBilled {
		return result.Fail[*entity.Order]("Order must be billed before it can be closed", http.StatusConflict)
	}

	bill, err := s.billRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		logger.Error("Error loading bill for order", zap.String("order_id", orderID.String()), zap.Error(err))
		return result.Fail[*entity.Order]("Error closing Order", http.StatusInternalServerError)
	}
	if bill == nil || !bill.IsPaid {
		return result.Fail[*entity.Order]("Order's bill must be paid before closing", http.StatusConflict)
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, enum.OrderStatusClosed); err != nil {
		logger.Error("Error closing order", zap.String("order_id", orderID.String()), zap.Error(err))
		return result.Fail[*entity.Order]("Error closing Order", http.StatusInternalServerError)
	}
	order.Status = enum.OrderStatusClosed

	enqueueAudit(ctx, s.auditQueue, audit.NewEvent(&userID, enum.AuditActionOrderClosed, "Order", order.ID.String(), order))

	return result.Ok("Order closed successfully", order, http.StatusOK)
}
