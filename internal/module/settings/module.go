package settings

import "github.com/gin-gonic/gin"

// SettingsModule implements the app.Module interface for workshop services,
// taxes, and measurements.
type SettingsModule struct {
	handler *SettingsHandler
}

// NewModule creates a new SettingsModule with the given handler.
// Panics if h is nil.
func NewModule(h *SettingsHandler) *SettingsModule {
	if h == nil {
		panic("settings.NewModule: handler must not be nil")
	}
	return &SettingsModule{handler: h}
}

// RegisterRoutes registers settings API routes on the protected group.
func (m *SettingsModule) RegisterRoutes(_, protected *gin.RouterGroup) {
	services := protected.Group("/services")
	services.GET("", m.handler.ListServices)
	services.POST("", m.handler.CreateService)
	services.PUT("/:id", m.handler.UpdateService)
	services.PATCH("/:id/toggle", m.handler.ToggleService)
	services.DELETE("/:id", m.handler.DeleteService)

	taxes := protected.Group("/taxes")
	taxes.GET("", m.handler.ListTaxes)
	taxes.POST("", m.handler.CreateTax)
	taxes.PUT("/:id", m.handler.UpdateTax)
	taxes.PATCH("/:id/toggle", m.handler.ToggleTax)
	taxes.DELETE("/:id", m.handler.DeleteTax)

	measurements := protected.Group("/measurements")
	measurements.GET("", m.handler.ListMeasurements)
	measurements.POST("", m.handler.CreateMeasurement)
	measurements.PUT("/:id", m.handler.UpdateMeasurement)
	measurements.PATCH("/:id/toggle", m.handler.ToggleMeasurement)
	measurements.DELETE("/:id", m.handler.DeleteMeasurement)
}
