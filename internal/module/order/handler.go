package order

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/pkg"
)

// OrderHandler handles REST API requests for the order resource.
type OrderHandler struct {
	svc domain.OrderService
}

// NewOrderHandler creates a new OrderHandler with the given service.
func NewOrderHandler(svc domain.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// List handles GET /api/v1/orders.
func (h *OrderHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListOrders(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Get handles GET /api/v1/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	order, err := h.svc.GetOrder(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, order)
}

// Create handles POST /api/v1/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	order := &domain.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Total:         req.Total,
	}
	for _, p := range req.Payments {
		order.Payments = append(order.Payments, domain.Payment{Status: p.Status, Amount: p.Amount})
	}

	created, err := h.svc.CreateOrder(c.Request.Context(), order)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    created,
	})
}

// UpdateStatus handles PATCH /api/v1/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateStatusRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	order, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, order)
}

// Delete handles DELETE /api/v1/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteOrder(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// Invoice handles GET /api/v1/orders/:id/invoice. The PDF is streamed as
// an attachment.
func (h *OrderHandler) Invoice(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	data, filename, err := h.svc.Invoice(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
