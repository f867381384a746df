package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/listing"
	"github.com/tyredepot/admin/internal/pkg"
)

var validStatuses = map[string]bool{
	domain.OrderPending:   true,
	domain.OrderConfirmed: true,
	domain.OrderCompleted: true,
	domain.OrderCancelled: true,
}

// orderService implements domain.OrderService.
type orderService struct {
	repo domain.OrderRepository
	now  func() time.Time
}

// NewOrderService creates a new OrderService with the given repository.
func NewOrderService(repo domain.OrderRepository) domain.OrderService {
	return &orderService{repo: repo, now: time.Now}
}

// GetOrder retrieves an order by ID.
func (s *orderService) GetOrder(ctx context.Context, id uint) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// ListOrders returns a page of orders. Unfiltered requests page in the
// database. When a search term, categorical filter, or date range is
// active, every order is fetched once and filtered in memory, so text
// matching can normalize punctuation and payment status is matched on
// the resolved value rather than raw payment rows.
func (s *orderService) ListOrders(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Order], error) {
	if !req.HasFilters() {
		return s.repo.List(ctx, req)
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return pkg.PageLocally(all, req, orderPredicates(req, s.now())...), nil
}

// orderPredicates builds the in-memory filter set for a page request.
func orderPredicates(req domain.PageRequest, now time.Time) []listing.Predicate[domain.Order] {
	var preds []listing.Predicate[domain.Order]

	if req.Search != "" {
		q := req.Search
		preds = append(preds, func(o domain.Order) bool {
			return listing.TextMatch(q,
				o.Number, o.CustomerName, o.CustomerEmail, o.CustomerPhone)
		})
	}

	if status := req.Filter["status"]; status != "" {
		preds = append(preds, func(o domain.Order) bool {
			return listing.CategoricalMatch(status, o.Status)
		})
	}

	if payment := req.Filter["payment_status"]; payment != "" {
		preds = append(preds, func(o domain.Order) bool {
			return listing.CategoricalMatch(payment, string(o.PaymentStatus))
		})
	}

	if r := pkg.DateRange(req); r.IsActive() {
		preds = append(preds, func(o domain.Order) bool {
			return r.Contains(o.OrderedAt, now)
		})
	}

	return preds
}

// CreateOrder assigns an order number and persists the order.
func (s *orderService) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	order.CustomerName = strings.TrimSpace(order.CustomerName)
	if order.CustomerName == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "customer name is required", nil)
	}
	if order.Total < 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "total must not be negative", nil)
	}
	if order.Status == "" {
		order.Status = domain.OrderPending
	}
	if !validStatuses[order.Status] {
		return nil, domain.NewAppError(domain.CodeValidation, "unknown order status", nil)
	}
	if order.OrderedAt.IsZero() {
		order.OrderedAt = s.now()
	}
	if order.Number == "" {
		order.Number = newOrderNumber()
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	order.ResolvePaymentStatus()
	return order, nil
}

// UpdateStatus transitions an order to the given status.
func (s *orderService) UpdateStatus(ctx context.Context, id uint, status string) (*domain.Order, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !validStatuses[status] {
		return nil, domain.NewAppError(domain.CodeValidation, "unknown order status", nil)
	}

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status == domain.OrderCancelled && status != domain.OrderCancelled {
		return nil, domain.NewAppError(domain.CodeBusinessRule, "a cancelled order cannot change status", nil)
	}

	order.Status = status
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// DeleteOrder removes an order by ID.
func (s *orderService) DeleteOrder(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// Invoice renders the order's invoice PDF.
func (s *orderService) Invoice(ctx context.Context, id uint) ([]byte, string, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return buildInvoicePDF(order, s.now())
}

// newOrderNumber builds a short unique order number like ORD-1A2B3C4D.
func newOrderNumber() string {
	id := uuid.New()
	return fmt.Sprintf("ORD-%X", id[:4])
}
