package order

// PaymentInput is one payment recorded when creating an order.
type PaymentInput struct {
	Status string  `json:"status" form:"status" binding:"required,oneof=FULL PARTIAL full partial"`
	Amount float64 `json:"amount" form:"amount" binding:"required,gt=0"`
}

// CreateOrderRequest represents the input for creating an order.
type CreateOrderRequest struct {
	CustomerName  string         `json:"customer_name" form:"customer_name" binding:"required,min=1,max=100"`
	CustomerEmail string         `json:"customer_email" form:"customer_email" binding:"omitempty,email"`
	CustomerPhone string         `json:"customer_phone" form:"customer_phone" binding:"omitempty,max=32"`
	Total         float64        `json:"total" binding:"required,gte=0"`
	Payments      []PaymentInput `json:"payments" binding:"omitempty,dive"`
}

// UpdateStatusRequest represents the input for an order status change.
type UpdateStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
}
