package order

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/listing"
	"github.com/tyredepot/admin/internal/pkg"
)

// fakeOrderRepo implements domain.OrderRepository for testing.
type fakeOrderRepo struct {
	orders   []domain.Order
	err      error
	lists    int
	listAlls int
	updated  *domain.Order
	deleted  []uint
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id uint) (*domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			o := f.orders[i]
			o.ResolvePaymentStatus()
			return &o, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeOrderRepo) List(_ context.Context, req domain.PageRequest) (*domain.PageResult[domain.Order], error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lists++
	return pkg.PageLocally(f.orders, req), nil
}

func (f *fakeOrderRepo) ListAll(context.Context) ([]domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.listAlls++
	out := make([]domain.Order, len(f.orders))
	copy(out, f.orders)
	for i := range out {
		out[i].ResolvePaymentStatus()
	}
	return out, nil
}

func (f *fakeOrderRepo) Create(_ context.Context, o *domain.Order) error {
	if f.err != nil {
		return f.err
	}
	o.ID = uint(len(f.orders) + 1)
	f.orders = append(f.orders, *o)
	return nil
}

func (f *fakeOrderRepo) Update(_ context.Context, o *domain.Order) error {
	if f.err != nil {
		return f.err
	}
	f.updated = o
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id uint) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func seedOrders(n int) []domain.Order {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.Local)
	orders := make([]domain.Order, n)
	for i := 0; i < n; i++ {
		o := domain.Order{
			Number:        fmt.Sprintf("ORD-%04d", i+1),
			CustomerName:  fmt.Sprintf("Customer %d", i+1),
			CustomerEmail: fmt.Sprintf("customer%d@example.com", i+1),
			Status:        domain.OrderPending,
			Total:         100,
			OrderedAt:     base.AddDate(0, 0, i),
		}
		o.ID = uint(i + 1)
		if i%3 == 0 {
			o.Payments = []domain.Payment{{Status: "FULL", Amount: 100}}
		} else if i%3 == 1 {
			o.Payments = []domain.Payment{{Status: "PARTIAL", Amount: 40}}
		}
		orders[i] = o
	}
	return orders
}

func TestListOrders_Unfiltered_UsesServerPagination(t *testing.T) {
	repo := &fakeOrderRepo{orders: seedOrders(25)}
	svc := NewOrderService(repo)

	result, err := svc.ListOrders(context.Background(), domain.PageRequest{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lists != 1 || repo.listAlls != 0 {
		t.Errorf("lists = %d listAlls = %d; want 1 and 0", repo.lists, repo.listAlls)
	}
	if len(result.Items) != 10 {
		t.Errorf("items = %d; want 10", len(result.Items))
	}
	if result.TotalPages != 3 {
		t.Errorf("total pages = %d; want 3", result.TotalPages)
	}
}

func TestListOrders_WithSearch_FetchesAllAndFiltersLocally(t *testing.T) {
	repo := &fakeOrderRepo{orders: seedOrders(25)}
	svc := NewOrderService(repo)

	// Punctuation and case in the query are ignored.
	result, err := svc.ListOrders(context.Background(), domain.PageRequest{
		Page: 1, PageSize: 10, Search: "CUSTOMER-2@example",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.listAlls != 1 || repo.lists != 0 {
		t.Errorf("listAlls = %d lists = %d; want 1 and 0", repo.listAlls, repo.lists)
	}
	if result.Total != 1 {
		t.Fatalf("total = %d; want 1 (only customer2@example.com)", result.Total)
	}
	if result.Items[0].CustomerEmail != "customer2@example.com" {
		t.Errorf("matched %q; want customer2@example.com", result.Items[0].CustomerEmail)
	}
}

func TestListOrders_PaymentStatusFilter_MatchesResolvedValue(t *testing.T) {
	repo := &fakeOrderRepo{orders: seedOrders(9)}
	svc := NewOrderService(repo)

	result, err := svc.ListOrders(context.Background(), domain.PageRequest{
		Page: 1, PageSize: 10,
		Filter: map[string]string{"payment_status": "none"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Orders 3, 6, 9 have no payments.
	if result.Total != 3 {
		t.Fatalf("total = %d; want 3", result.Total)
	}
	for _, o := range result.Items {
		if o.PaymentStatus != listing.PaymentNone {
			t.Errorf("order %s payment status = %q; want NONE", o.Number, o.PaymentStatus)
		}
	}
}

func TestListOrders_AllFilterValuePassesEverything(t *testing.T) {
	repo := &fakeOrderRepo{orders: seedOrders(5)}
	svc := NewOrderService(repo)

	result, err := svc.ListOrders(context.Background(), domain.PageRequest{
		Page: 1, PageSize: 10,
		Filter: map[string]string{"status": "all"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 5 {
		t.Errorf("total = %d; want 5", result.Total)
	}
}

func TestListOrders_DateRangeFilter(t *testing.T) {
	repo := &fakeOrderRepo{orders: seedOrders(10)}
	svc := NewOrderService(repo).(*orderService)
	// Pin "now" to the third order's day so today matches exactly one order.
	svc.now = func() time.Time { return time.Date(2026, 8, 3, 18, 0, 0, 0, time.Local) }

	result, err := svc.ListOrders(context.Background(), domain.PageRequest{
		Page: 1, PageSize: 10,
		DateMode: string(listing.Today),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 1 {
		t.Fatalf("total = %d; want 1", result.Total)
	}
	if result.Items[0].Number != "ORD-0003" {
		t.Errorf("matched %q; want ORD-0003", result.Items[0].Number)
	}
}

func TestCreateOrder_AssignsNumberAndDefaults(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo)

	created, err := svc.CreateOrder(context.Background(), &domain.Order{
		CustomerName: "Alice",
		Total:        250,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Number == "" {
		t.Error("expected an order number to be assigned")
	}
	if created.Status != domain.OrderPending {
		t.Errorf("status = %q; want pending", created.Status)
	}
	if created.OrderedAt.IsZero() {
		t.Error("expected OrderedAt to be set")
	}
	if created.PaymentStatus != listing.PaymentNone {
		t.Errorf("payment status = %q; want NONE", created.PaymentStatus)
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{})

	tests := []struct {
		name  string
		order domain.Order
	}{
		{"empty customer name", domain.Order{CustomerName: "  ", Total: 10}},
		{"negative total", domain.Order{CustomerName: "Alice", Total: -1}},
		{"unknown status", domain.Order{CustomerName: "Alice", Total: 10, Status: "shipped"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := tt.order
			if _, err := svc.CreateOrder(context.Background(), &o); !domain.IsValidation(err) {
				t.Errorf("expected validation error, got: %v", err)
			}
		})
	}
}

func TestUpdateStatus_Success(t *testing.T) {
	repo := &fakeOrderRepo{orders: seedOrders(1)}
	svc := NewOrderService(repo)

	order, err := svc.UpdateStatus(context.Background(), 1, "Confirmed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != domain.OrderConfirmed {
		t.Errorf("status = %q; want confirmed", order.Status)
	}
	if repo.updated == nil {
		t.Error("expected the order to be persisted")
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{orders: seedOrders(1)})

	if _, err := svc.UpdateStatus(context.Background(), 1, "shipped"); !domain.IsValidation(err) {
		t.Errorf("expected validation error, got: %v", err)
	}
}

func TestUpdateStatus_CancelledOrderLocked(t *testing.T) {
	orders := seedOrders(1)
	orders[0].Status = domain.OrderCancelled
	svc := NewOrderService(&fakeOrderRepo{orders: orders})

	if _, err := svc.UpdateStatus(context.Background(), 1, "confirmed"); !domain.IsBusinessRule(err) {
		t.Errorf("expected business rule error, got: %v", err)
	}
}

func TestInvoice_RendersPDF(t *testing.T) {
	repo := &fakeOrderRepo{orders: seedOrders(1)}
	svc := NewOrderService(repo)

	data, filename, err := svc.Invoice(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("expected PDF output to start with %PDF header")
	}
	if filename != "INVOICE_ORD-0001.pdf" {
		t.Errorf("filename = %q; want INVOICE_ORD-0001.pdf", filename)
	}
}

func TestInvoice_NotFound(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{})

	if _, _, err := svc.Invoice(context.Background(), 99); !domain.IsNotFound(err) {
		t.Errorf("expected not found error, got: %v", err)
	}
}

func TestDeleteOrder_Forwarded(t *testing.T) {
	repo := &fakeOrderRepo{orders: seedOrders(1)}
	svc := NewOrderService(repo)

	if err := svc.DeleteOrder(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 1 {
		t.Errorf("deleted = %v; want [1]", repo.deleted)
	}
}
