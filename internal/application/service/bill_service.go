package service

import (
	"context"
	"net/http"
	"time"

	"github.com/dinesync/pos-api/internal/config"
	"github.com/dinesync/pos-api/internal/domain/audit"
	"github.com/dinesync/pos-api/internal/domain/entity"
	"github.com/dinesync/pos-api/internal/domain/enum"
	"github.com/dinesync/pos-api/internal/domain/repository"
	"github.com/dinesync/pos-api/pkg/billing"
	"github.com/dinesync/pos-api/pkg/logger"
	"github.com/dinesync/pos-api/pkg/money"
	"github.com/dinesync/pos-api/pkg/renderer"
	"github.com/dinesync/pos-api/pkg/result"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BillService turns orders into financial bills
type BillService struct {
	billRepo      repository.BillRepository
	orderRepo     repository.OrderRepository
	auditQueue    audit.Queue
	docRenderer   renderer.DocumentRenderer
	taxPct        money.Money
	serviceCharge money.Money
	now           func() time.Time
}

// NewBillService creates a new bill service. Tax rate and service charge come
// from configuration, not literals.
func NewBillService(
	billRepo repository.BillRepository,
	orderRepo repository.OrderRepository,
	auditQueue audit.Queue,
	docRenderer renderer.DocumentRenderer,
	billingCfg config.BillingConfig,
) *BillService {
	return &BillService{
		billRepo:      billRepo,
		orderRepo:     orderRepo,
		auditQueue:    auditQueue,
		docRenderer:   docRenderer,
		taxPct:        money.FromDecimal(billingCfg.TaxPct),
		serviceCharge: money.FromDecimal(billingCfg.ServiceCharge),
		now:           time.Now,
	}
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	OrderID       uuid.UUID
	DiscountType  enum.DiscountType
	DiscountValue money.Money
	PaymentMode   enum.PaymentMode
}

// CreateBill settles an order: it validates the discount, computes the
// breakdown, persists the bill (moving the order to BILLED in the same
// transaction), asks the document renderer for the settlement document, and
// queues a BILL_CREATED audit event.
func (s *BillService) CreateBill(ctx context.Context, input CreateBillInput, userID uuid.UUID) result.Result[*entity.Bill] {
	if input.DiscountValue.IsNegative() {
		return result.Fail[*entity.Bill]("Discount value cannot be negative", http.StatusUnprocessableEntity)
	}
	if input.DiscountType == enum.DiscountTypePercentage && input.DiscountValue.Cmp(money.New(100)) > 0 {
		return result.Fail[*entity.Bill]("Percentage discount cannot exceed 100", http.StatusUnprocessableEntity)
	}

	order, err := s.orderRepo.GetWithItems(ctx, input.OrderID)
	if err != nil {
		logger.Error("Error loading order for billing", zap.String("order_id", input.OrderID.String()), zap.Error(err))
		return result.Fail[*entity.Bill]("Error creating Bill", http.StatusInternalServerError)
	}
	if order == nil {
		return result.Fail[*entity.Bill]("Order not found to create Bill", http.StatusNotFound)
	}

	existing, err := s.billRepo.GetByOrderID(ctx, input.OrderID)
	if err != nil {
		logger.Error("Error checking existing bill", zap.String("order_id", input.OrderID.String()), zap.Error(err))
		return result.Fail[*entity.Bill]("Error creating Bill", http.StatusInternalServerError)
	}
	if existing != nil {
		return result.Fail[*entity.Bill]("Order already has a bill", http.StatusConflict)
	}

	breakdown := billing.Compute(order.SubTotal, input.DiscountType, input.DiscountValue, s.serviceCharge, s.taxPct).Rounded()

	bill := &entity.Bill{
		OrderID:       order.ID,
		SubTotal:      breakdown.SubTotal,
		DiscountValue: breakdown.DiscountAmount,
		DiscountType:  input.DiscountType,
		ServiceCharge: breakdown.ServiceCharge,
		TaxPct:        s.taxPct,
		TaxAmount:     breakdown.TaxAmount,
		GrandTotal:    breakdown.GrandTotal,
		PaymentMode:   input.PaymentMode,
		GeneratedBy:   userID,
		GeneratedAt:   s.now(),
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		logger.Error("Error creating bill", zap.String("order_id", input.OrderID.String()), zap.Error(err))
		return result.Fail[*entity.Bill]("Error creating Bill", http.StatusInternalServerError)
	}

	documentURL, err := s.docRenderer.GenerateDocument(ctx, bill)
	if err != nil {
		// The bill row is committed; only the document is missing. The url is
		// set only after the renderer succeeds.
		logger.Error("Error generating bill document", zap.String("bill_id", bill.ID.String()), zap.Error(err))
		return result.Fail[*entity.Bill]("Error generating bill document", http.StatusInternalServerError)
	}
	if err := s.billRepo.UpdateDocumentURL(ctx, bill.ID, documentURL); err != nil {
		logger.Error("Error updating bill document url", zap.String("bill_id", bill.ID.String()), zap.Error(err))
		return result.Fail[*entity.Bill]("Error updating Bill", http.StatusInternalServerError)
	}
	bill.DocumentURL = &documentURL

	enqueueAudit(ctx, s.auditQueue, audit.NewEvent(&userID, enum.AuditActionBillCreated, "Bill", bill.ID.String(), bill))

	return result.Ok("Bill created successfully", bill, http.StatusCreated)
}

// PayBill confirms payment of a bill. A paid bill is immutable except for the
// payment-confirmation fields set here.
func (s *BillService) PayBill(ctx context.Context, billID uuid.UUID, mode enum.PaymentMode, userID uuid.UUID) result.Result[*entity.Bill] {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		logger.Error("Error loading bill for payment", zap.String("bill_id", billID.String()), zap.Error(err))
		return result.Fail[*entity.Bill]("Error paying Bill", http.StatusInternalServerError)
	}
	if bill == nil {
		return result.Fail[*entity.Bill]("Bill not found", http.StatusNotFound)
	}
	if bill.IsPaid {
		return result.Fail[*entity.Bill]("Bill is already paid", http.StatusConflict)
	}

	paidAt := s.now()
	if err := s.billRepo.MarkPaid(ctx, billID, mode, paidAt); err != nil {
		logger.Error("Error marking bill paid", zap.String("bill_id", billID.String()), zap.Error(err))
		return result.Fail[*entity.Bill]("Error paying Bill", http.StatusInternalServerError)
	}
	bill.IsPaid = true
	bill.PaidAt = &paidAt
	bill.PaymentMode = mode

	enqueueAudit(ctx, s.auditQueue, audit.NewEvent(&userID, enum.AuditActionBillPaid, "Bill", bill.ID.String(), bill))

	return result.Ok("Bill paid successfully", bill, http.StatusOK)
}

// GetBill retrieves a bill by ID
func (s *BillService) GetBill(ctx context.Context, billID uuid.UUID) result.Result[*entity.Bill] {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		logger.Error("Error loading bill", zap.String("bill_id", billID.String()), zap.Error(err))
		return result.Fail[*entity.Bill]("Error fetching Bill", http.StatusInternalServerError)
	}
	if bill == nil {
		return result.Fail[*entity.Bill]("Bill not found", http.StatusNotFound)
	}
	return result.Ok("Bill fetched", bill, http.StatusOK)
}
