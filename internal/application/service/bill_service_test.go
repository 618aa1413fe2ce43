package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dinesync/pos-api/internal/config"
	"github.com/dinesync/pos-api/internal/domain/entity"
	"github.com/dinesync/pos-api/internal/domain/enum"
	"github.com/dinesync/pos-api/pkg/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBillingCfg = config.BillingConfig{
	TaxPct:        decimal.NewFromInt(13),
	ServiceCharge: decimal.NewFromInt(5),
}

type billFixture struct {
	svc       *BillService
	billRepo  *fakeBillRepo
	orderRepo *fakeOrderRepo
	queue     *fakeAuditQueue
	renderer  *fakeRenderer
}

func newBillFixture() *billFixture {
	f := &billFixture{
		billRepo:  newFakeBillRepo(),
		orderRepo: newFakeOrderRepo(),
		queue:     &fakeAuditQueue{},
		renderer:  &fakeRenderer{url: "https://docs.example.com/bills/1.pdf"},
	}
	f.billRepo.orderRepo = f.orderRepo
	f.svc = NewBillService(f.billRepo, f.orderRepo, f.queue, f.renderer, testBillingCfg)
	f.svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return f
}

func (f *billFixture) addOrder(subTotal string) *entity.Order {
	order := &entity.Order{ID: uuid.New(), SubTotal: money.MustFromString(subTotal)}
	f.orderRepo.orders[order.ID] = order
	return order
}

func TestCreateBill(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("computes and persists the reference breakdown", func(t *testing.T) {
		f := newBillFixture()
		order := f.addOrder("100")

		res := f.svc.CreateBill(ctx, CreateBillInput{
			OrderID:       order.ID,
			DiscountType:  enum.DiscountTypePercentage,
			DiscountValue: money.New(10),
			PaymentMode:   enum.PaymentModeCash,
		}, userID)

		require.True(t, res.Success, res.Message)
		assert.Equal(t, http.StatusCreated, res.StatusCode)

		bill := res.Data
		assert.Equal(t, "10.00", bill.DiscountValue.StringFixed2())
		assert.Equal(t, "12.35", bill.TaxAmount.StringFixed2())
		assert.Equal(t, "107.35", bill.GrandTotal.StringFixed2())
		assert.Equal(t, userID, bill.GeneratedBy)
		require.NotNil(t, bill.DocumentURL)
		assert.Equal(t, "https://docs.example.com/bills/1.pdf", *bill.DocumentURL)

		// The order moved to BILLED and a BILL_CREATED event was queued.
		assert.Equal(t, enum.OrderStatusBilled, f.orderRepo.orders[order.ID].Status)
		require.Len(t, f.queue.events, 1)
		assert.Equal(t, enum.AuditActionBillCreated, f.queue.events[0].Action)
		assert.Equal(t, bill.ID.String(), f.queue.events[0].ResourceID)
	})

	t.Run("rejects negative discount", func(t *testing.T) {
		f := newBillFixture()
		order := f.addOrder("100")

		res := f.svc.CreateBill(ctx, CreateBillInput{
			OrderID:       order.ID,
			DiscountType:  enum.DiscountTypeFixed,
			DiscountValue: money.MustFromString("-5"),
		}, userID)

		assert.True(t, res.IsFailure())
		assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
		assert.Empty(t, f.billRepo.bills)
	})

	t.Run("rejects percentage discount above 100", func(t *testing.T) {
		f := newBillFixture()
		order := f.addOrder("100")

		res := f.svc.CreateBill(ctx, CreateBillInput{
			OrderID:       order.ID,
			DiscountType:  enum.DiscountTypePercentage,
			DiscountValue: money.New(101),
		}, userID)

		assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	})

	t.Run("order not found", func(t *testing.T) {
		f := newBillFixture()

		res := f.svc.CreateBill(ctx, CreateBillInput{OrderID: uuid.New()}, userID)

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Equal(t, "Order not found to create Bill", res.Message)
	})

	t.Run("second bill for the same order conflicts", func(t *testing.T) {
		f := newBillFixture()
		order := f.addOrder("100")

		first := f.svc.CreateBill(ctx, CreateBillInput{OrderID: order.ID, PaymentMode: enum.PaymentModeCash}, userID)
		require.True(t, first.Success)

		second := f.svc.CreateBill(ctx, CreateBillInput{OrderID: order.ID, PaymentMode: enum.PaymentModeCard}, userID)
		assert.Equal(t, http.StatusConflict, second.StatusCode)
		assert.Equal(t, "Order already has a bill", second.Message)
		assert.Len(t, f.billRepo.bills, 1)
	})

	t.Run("renderer failure keeps the committed bill without a url", func(t *testing.T) {
		f := newBillFixture()
		f.renderer.err = errors.New("renderer unreachable")
		order := f.addOrder("100")

		res := f.svc.CreateBill(ctx, CreateBillInput{OrderID: order.ID}, userID)

		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		require.Len(t, f.billRepo.bills, 1)
		for _, bill := range f.billRepo.bills {
			assert.Nil(t, bill.DocumentURL)
		}
	})

	t.Run("audit enqueue failure does not fail the call", func(t *testing.T) {
		f := newBillFixture()
		f.queue.err = errors.New("outbox unavailable")
		order := f.addOrder("100")

		res := f.svc.CreateBill(ctx, CreateBillInput{OrderID: order.ID}, userID)

		assert.True(t, res.Success, res.Message)
		assert.Equal(t, http.StatusCreated, res.StatusCode)
	})
}

func TestPayBill(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("marks the bill paid and queues the event", func(t *testing.T) {
		f := newBillFixture()
		order := f.addOrder("100")
		created := f.svc.CreateBill(ctx, CreateBillInput{OrderID: order.ID}, userID)
		require.True(t, created.Success)
		f.queue.events = nil

		res := f.svc.PayBill(ctx, created.Data.ID, enum.PaymentModeCard, userID)

		require.True(t, res.Success, res.Message)
		assert.True(t, res.Data.IsPaid)
		assert.Equal(t, enum.PaymentModeCard, res.Data.PaymentMode)
		require.NotNil(t, res.Data.PaidAt)
		require.Len(t, f.queue.events, 1)
		assert.Equal(t, enum.AuditActionBillPaid, f.queue.events[0].Action)
	})

	t.Run("bill not found", func(t *testing.T) {
		f := newBillFixture()
		res := f.svc.PayBill(ctx, uuid.New(), enum.PaymentModeCash, userID)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("paying twice conflicts", func(t *testing.T) {
		f := newBillFixture()
		order := f.addOrder("100")
		created := f.svc.CreateBill(ctx, CreateBillInput{OrderID: order.ID}, userID)
		require.True(t, created.Success)

		first := f.svc.PayBill(ctx, created.Data.ID, enum.PaymentModeCash, userID)
		require.True(t, first.Success)

		second := f.svc.PayBill(ctx, created.Data.ID, enum.PaymentModeCash, userID)
		assert.Equal(t, http.StatusConflict, second.StatusCode)
		assert.Equal(t, "Bill is already paid", second.Message)
	})
}

func TestGetBill(t *testing.T) {
	ctx := context.Background()
	f := newBillFixture()

	res := f.svc.GetBill(ctx, uuid.New())
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	order := f.addOrder("40")
	created := f.svc.CreateBill(ctx, CreateBillInput{OrderID: order.ID}, uuid.New())
	require.True(t, created.Success)

	res = f.svc.GetBill(ctx, created.Data.ID)
	require.True(t, res.Success)
	assert.Equal(t, created.Data.ID, res.Data.ID)
}
