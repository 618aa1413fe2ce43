package service

// In-memory fakes for the repository and queue ports. Each fake stores rows in
// maps keyed by ID and exposes optional error hooks so tests can force
// transport-level failures.

import (
	"context"
	"time"

	"github.com/dinesync/pos-api/internal/domain/audit"
	"github.com/dinesync/pos-api/internal/domain/entity"
	"github.com/dinesync/pos-api/internal/domain/enum"
	"github.com/dinesync/pos-api/internal/domain/repository"
	"github.com/google/uuid"
)

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
	err    error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if f.err != nil {
		return f.err
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.orders[id], nil
}

func (f *fakeOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	if f.err != nil {
		return f.err
	}
	if order, ok := f.orders[id]; ok {
		order.Status = status
	}
	return nil
}

type fakeBillRepo struct {
	bills     map[uuid.UUID]*entity.Bill
	orderRepo *fakeOrderRepo
	createErr error
	getErr    error
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[uuid.UUID]*entity.Bill)}
}

// Create mirrors the repository contract: inserting a bill also moves its
// order to BILLED.
func (f *fakeBillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	if f.createErr != nil {
		return f.createErr
	}
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	f.bills[bill.ID] = bill
	if f.orderRepo != nil {
		if order, ok := f.orderRepo.orders[bill.OrderID]; ok {
			order.Status = enum.OrderStatusBilled
		}
	}
	return nil
}

func (f *fakeBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.bills[id], nil
}

func (f *fakeBillRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Bill, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, bill := range f.bills {
		if bill.OrderID == orderID {
			return bill, nil
		}
	}
	return nil, nil
}

func (f *fakeBillRepo) UpdateDocumentURL(ctx context.Context, id uuid.UUID, documentURL string) error {
	if bill, ok := f.bills[id]; ok {
		bill.DocumentURL = &documentURL
	}
	return nil
}

func (f *fakeBillRepo) MarkPaid(ctx context.Context, id uuid.UUID, mode enum.PaymentMode, paidAt time.Time) error {
	if bill, ok := f.bills[id]; ok {
		bill.IsPaid = true
		bill.PaymentMode = mode
		bill.PaidAt = &paidAt
	}
	return nil
}

type fakeMenuItemRepo struct {
	items map[uuid.UUID]*entity.MenuItem
	err   error
}

func newFakeMenuItemRepo() *fakeMenuItemRepo {
	return &fakeMenuItemRepo{items: make(map[uuid.UUID]*entity.MenuItem)}
}

func (f *fakeMenuItemRepo) Create(ctx context.Context, item *entity.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeMenuItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items[id], nil
}

func (f *fakeMenuItemRepo) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	if item, ok := f.items[id]; ok {
		item.IsAvailable = available
	}
	return nil
}

type fakeSurplusRepo struct {
	marks     map[uuid.UUID]*entity.SurplusMark
	active    []entity.SurplusMark
	createErr error
}

func newFakeSurplusRepo() *fakeSurplusRepo {
	return &fakeSurplusRepo{marks: make(map[uuid.UUID]*entity.SurplusMark)}
}

func (f *fakeSurplusRepo) CreateWithOverlapCheck(ctx context.Context, mark *entity.SurplusMark) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.marks {
		if existing.MenuItemID == mark.MenuItemID && !existing.DeletedAt.Valid &&
			existing.OverlapsWindow(mark.SurplusAt, mark.SurplusUntil) {
			return repository.ErrOverlappingWindow
		}
	}
	if mark.ID == uuid.Nil {
		mark.ID = uuid.New()
	}
	f.marks[mark.ID] = mark
	return nil
}

func (f *fakeSurplusRepo) FindOverlappingMark(ctx context.Context, menuItemID uuid.UUID, start, end time.Time) (*entity.SurplusMark, error) {
	for _, mark := range f.marks {
		if mark.MenuItemID == menuItemID && !mark.DeletedAt.Valid && mark.OverlapsWindow(start, end) {
			return mark, nil
		}
	}
	return nil, nil
}

func (f *fakeSurplusRepo) FindActiveMarks(ctx context.Context, now time.Time) ([]entity.SurplusMark, error) {
	return f.active, nil
}

func (f *fakeSurplusRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.SurplusMark, error) {
	mark, ok := f.marks[id]
	if !ok || mark.DeletedAt.Valid {
		return nil, nil
	}
	return mark, nil
}

func (f *fakeSurplusRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if mark, ok := f.marks[id]; ok {
		mark.DeletedAt.Time = time.Now()
		mark.DeletedAt.Valid = true
	}
	return nil
}

type fakeTableRepo struct {
	tables map[uuid.UUID]*entity.Table
}

func newFakeTableRepo() *fakeTableRepo {
	return &fakeTableRepo{tables: make(map[uuid.UUID]*entity.Table)}
}

func (f *fakeTableRepo) Create(ctx context.Context, table *entity.Table) error {
	if table.ID == uuid.Nil {
		table.ID = uuid.New()
	}
	f.tables[table.ID] = table
	return nil
}

func (f *fakeTableRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Table, error) {
	return f.tables[id], nil
}

func (f *fakeTableRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.TableStatus) (*entity.Table, error) {
	table := f.tables[id]
	table.Status = status
	return table, nil
}

func (f *fakeTableRepo) AssignWaiter(ctx context.Context, id uuid.UUID, waiterID uuid.UUID) (*entity.Table, error) {
	table := f.tables[id]
	table.AssignedTo = &waiterID
	return table, nil
}

func (f *fakeTableRepo) UnassignWaiter(ctx context.Context, id uuid.UUID) (*entity.Table, error) {
	table := f.tables[id]
	table.AssignedTo = nil
	return table, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

// fakeAuditQueue records enqueued events; err forces enqueue failures.
type fakeAuditQueue struct {
	events []audit.Event
	err    error
}

func (f *fakeAuditQueue) Enqueue(ctx context.Context, event audit.Event) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

// fakeRenderer returns a canned url or a forced error.
type fakeRenderer struct {
	url   string
	err   error
	calls int
}

func (f *fakeRenderer) GenerateDocument(ctx context.Context, bill *entity.Bill) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}
