package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/pkg"
)

// SettingsHandler handles REST API requests for workshop services, taxes,
// and measurements.
type SettingsHandler struct {
	svc domain.SettingsService
}

// NewHandler creates a new SettingsHandler with the given service.
func NewHandler(svc domain.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

func created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    data,
	})
}

// ListServices handles GET /api/v1/services.
func (h *SettingsHandler) ListServices(c *gin.Context) {
	result, err := h.svc.ListServices(c.Request.Context(), pkg.ParsePageRequest(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// CreateService handles POST /api/v1/services.
func (h *SettingsHandler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	svc, err := h.svc.CreateService(c.Request.Context(), &domain.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}
	created(c, svc)
}

// UpdateService handles PUT /api/v1/services/:id.
func (h *SettingsHandler) UpdateService(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req ServiceRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	svc, err := h.svc.UpdateService(c.Request.Context(), id, &domain.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, svc)
}

// ToggleService handles PATCH /api/v1/services/:id/toggle.
func (h *SettingsHandler) ToggleService(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	svc, err := h.svc.ToggleService(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, svc)
}

// DeleteService handles DELETE /api/v1/services/:id.
func (h *SettingsHandler) DeleteService(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteService(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// ListTaxes handles GET /api/v1/taxes.
func (h *SettingsHandler) ListTaxes(c *gin.Context) {
	result, err := h.svc.ListTaxes(c.Request.Context(), pkg.ParsePageRequest(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// CreateTax handles POST /api/v1/taxes.
func (h *SettingsHandler) CreateTax(c *gin.Context) {
	var req TaxRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	tax, err := h.svc.CreateTax(c.Request.Context(), &domain.Tax{
		Name:       req.Name,
		Percentage: req.Percentage,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}
	created(c, tax)
}

// UpdateTax handles PUT /api/v1/taxes/:id.
func (h *SettingsHandler) UpdateTax(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req TaxRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	tax, err := h.svc.UpdateTax(c.Request.Context(), id, &domain.Tax{
		Name:       req.Name,
		Percentage: req.Percentage,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, tax)
}

// ToggleTax handles PATCH /api/v1/taxes/:id/toggle.
func (h *SettingsHandler) ToggleTax(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	tax, err := h.svc.ToggleTax(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, tax)
}

// DeleteTax handles DELETE /api/v1/taxes/:id.
func (h *SettingsHandler) DeleteTax(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteTax(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// ListMeasurements handles GET /api/v1/measurements.
func (h *SettingsHandler) ListMeasurements(c *gin.Context) {
	result, err := h.svc.ListMeasurements(c.Request.Context(), pkg.ParsePageRequest(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// CreateMeasurement handles POST /api/v1/measurements.
func (h *SettingsHandler) CreateMeasurement(c *gin.Context) {
	var req MeasurementRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	m, err := h.svc.CreateMeasurement(c.Request.Context(), &domain.Measurement{
		Type:  req.Type,
		Value: req.Value,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}
	created(c, m)
}

// UpdateMeasurement handles PUT /api/v1/measurements/:id.
func (h *SettingsHandler) UpdateMeasurement(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req MeasurementRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	m, err := h.svc.UpdateMeasurement(c.Request.Context(), id, &domain.Measurement{
		Type:  req.Type,
		Value: req.Value,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, m)
}

// ToggleMeasurement handles PATCH /api/v1/measurements/:id/toggle.
func (h *SettingsHandler) ToggleMeasurement(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	m, err := h.svc.ToggleMeasurement(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, m)
}

// DeleteMeasurement handles DELETE /api/v1/measurements/:id.
func (h *SettingsHandler) DeleteMeasurement(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteMeasurement(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}
