package domain

import (
	"context"
	"time"

	"github.com/tyredepot/admin/internal/listing"
)

// Order statuses.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Order represents a customer tyre/wheel order.
type Order struct {
	BaseModel
	Number        string    `gorm:"size:32;uniqueIndex;not null" json:"number"`
	CustomerName  string    `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string    `gorm:"size:255" json:"customer_email"`
	CustomerPhone string    `gorm:"size:32" json:"customer_phone"`
	Status        string    `gorm:"size:20;not null;default:pending" json:"status"`
	Total         float64   `gorm:"not null" json:"total"`
	OrderedAt     time.Time `gorm:"not null" json:"ordered_at"`
	Payments      []Payment `gorm:"foreignKey:OrderID" json:"payments"`

	// PaymentStatus is resolved from Payments once on load, so filters and
	// columns never re-derive it from the raw rows.
	PaymentStatus listing.PaymentStatus `gorm:"-" json:"payment_status"`
}

// ResolvePaymentStatus fills PaymentStatus from the Payments rows.
func (o *Order) ResolvePaymentStatus() {
	statuses := make([]string, len(o.Payments))
	for i, p := range o.Payments {
		statuses[i] = p.Status
	}
	o.PaymentStatus = listing.ResolvePayments(statuses)
}

// Payment is one payment recorded against an order.
type Payment struct {
	BaseModel
	OrderID uint    `gorm:"index;not null" json:"order_id"`
	Status  string  `gorm:"size:20;not null" json:"status"`
	Amount  float64 `gorm:"not null" json:"amount"`
}

// OrderRepository defines the data access interface for orders.
type OrderRepository interface {
	GetByID(ctx context.Context, id uint) (*Order, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Order], error)
	ListAll(ctx context.Context) ([]Order, error)
	Create(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id uint) error
}

// OrderService defines the business logic interface for orders.
type OrderService interface {
	GetOrder(ctx context.Context, id uint) (*Order, error)
	ListOrders(ctx context.Context, req PageRequest) (*PageResult[Order], error)
	CreateOrder(ctx context.Context, order *Order) (*Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*Order, error)
	DeleteOrder(ctx context.Context, id uint) error
	Invoice(ctx context.Context, id uint) (data []byte, filename string, err error)
}
