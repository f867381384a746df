package order

import "github.com/gin-gonic/gin"

// OrderModule implements the app.Module interface for the order domain.
type OrderModule struct {
	handler *OrderHandler
}

// NewModule creates a new OrderModule with the given handler.
// Panics if h is nil.
func NewModule(h *OrderHandler) *OrderModule {
	if h == nil {
		panic("order.NewModule: handler must not be nil")
	}
	return &OrderModule{handler: h}
}

// RegisterRoutes registers order API routes on the protected group.
func (m *OrderModule) RegisterRoutes(_, protected *gin.RouterGroup) {
	orders := protected.Group("/orders")
	orders.GET("", m.handler.List)
	orders.POST("", m.handler.Create)
	orders.GET("/:id", m.handler.Get)
	orders.PATCH("/:id/status", m.handler.UpdateStatus)
	orders.DELETE("/:id", m.handler.Delete)
	orders.GET("/:id/invoice", m.handler.Invoice)
}
