package order

import (
	"context"

	"gorm.io/gorm"

	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/pkg"
)

// Allowed fields for sorting and filtering in List queries.
var (
	allowedSortFields   = []string{"id", "number", "customer_name", "status", "total", "ordered_at", "created_at"}
	allowedFilterFields = []string{"status"}
	searchFields        = []string{"number", "customer_name", "customer_email", "customer_phone"}
)

// orderRepository implements domain.OrderRepository using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new OrderRepository backed by the given GORM database.
func NewOrderRepository(db *gorm.DB) domain.OrderRepository {
	return &orderRepository{db: db}
}

// GetByID retrieves an order with its payments.
func (r *orderRepository) GetByID(ctx context.Context, id uint) (*domain.Order, error) {
	var order domain.Order
	if err := r.db.WithContext(ctx).Preload("Payments").First(&order, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	order.ResolvePaymentStatus()
	return &order, nil
}

// List returns a paginated, sorted, and filtered page of orders. Search
// matches raw column values in SQL; the hybrid path in the service layer
// handles normalized matching.
func (r *orderRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Order], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Order{}).
		Scopes(
			pkg.Filter(req, allowedFilterFields),
			pkg.Search(req, searchFields),
		)

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var orders []domain.Order
	if err := base.Preload("Payments").Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields),
	).Find(&orders).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	for i := range orders {
		orders[i].ResolvePaymentStatus()
	}

	return pkg.NewPageResult(orders, total, req), nil
}

// ListAll returns every order with payments, newest first.
func (r *orderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := r.db.WithContext(ctx).Preload("Payments").
		Order("ordered_at desc").Find(&orders).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	for i := range orders {
		orders[i].ResolvePaymentStatus()
	}
	return orders, nil
}

// Create inserts a new order together with its payments.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Update saves changes to an existing order.
func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	if err := r.db.WithContext(ctx).Save(order).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes an order and its payments.
func (r *orderRepository) Delete(ctx context.Context, id uint) error {
	return pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&domain.Payment{}).Error; err != nil {
			return pkg.MapDBError(err)
		}
		result := tx.Delete(&domain.Order{}, id)
		if result.Error != nil {
			return pkg.MapDBError(result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
