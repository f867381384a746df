package schedule

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/pkg"
)

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD payload date in the server's location.
func parseDate(raw string) (time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, domain.NewAppError(domain.CodeValidation, "date must be YYYY-MM-DD", nil)
	}
	return date, nil
}

// TimeSlotHandler handles REST API requests for the time slot resource.
type TimeSlotHandler struct {
	svc domain.TimeSlotService
}

// NewTimeSlotHandler creates a new TimeSlotHandler with the given service.
func NewTimeSlotHandler(svc domain.TimeSlotService) *TimeSlotHandler {
	return &TimeSlotHandler{svc: svc}
}

// List handles GET /api/v1/timeslots.
func (h *TimeSlotHandler) List(c *gin.Context) {
	slots, err := h.svc.ListTimeSlots(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, slots)
}

// Create handles POST /api/v1/timeslots.
func (h *TimeSlotHandler) Create(c *gin.Context) {
	var req TimeSlotRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	slot, err := h.svc.CreateTimeSlot(c.Request.Context(), &domain.TimeSlot{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Capacity:  req.Capacity,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    slot,
	})
}

// Update handles PUT /api/v1/timeslots/:id.
func (h *TimeSlotHandler) Update(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req TimeSlotRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	slot, err := h.svc.UpdateTimeSlot(c.Request.Context(), id, &domain.TimeSlot{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Capacity:  req.Capacity,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, slot)
}

// Toggle handles PATCH /api/v1/timeslots/:id/toggle.
func (h *TimeSlotHandler) Toggle(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	slot, err := h.svc.ToggleTimeSlot(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, slot)
}

// Delete handles DELETE /api/v1/timeslots/:id.
func (h *TimeSlotHandler) Delete(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteTimeSlot(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// HolidayHandler handles REST API requests for the holiday resource.
type HolidayHandler struct {
	svc domain.HolidayService
}

// NewHolidayHandler creates a new HolidayHandler with the given service.
func NewHolidayHandler(svc domain.HolidayService) *HolidayHandler {
	return &HolidayHandler{svc: svc}
}

// List handles GET /api/v1/holidays.
func (h *HolidayHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListHolidays(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Create handles POST /api/v1/holidays.
func (h *HolidayHandler) Create(c *gin.Context) {
	var req HolidayRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	holiday, err := h.svc.CreateHoliday(c.Request.Context(), &domain.Holiday{
		Name: req.Name,
		Date: date,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    holiday,
	})
}

// Update handles PUT /api/v1/holidays/:id.
func (h *HolidayHandler) Update(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req HolidayRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	holiday, err := h.svc.UpdateHoliday(c.Request.Context(), id, &domain.Holiday{
		Name: req.Name,
		Date: date,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, holiday)
}

// Delete handles DELETE /api/v1/holidays/:id.
func (h *HolidayHandler) Delete(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteHoliday(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// AppointmentHandler handles REST API requests for the appointment resource.
type AppointmentHandler struct {
	svc domain.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler with the given service.
func NewAppointmentHandler(svc domain.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

// List handles GET /api/v1/appointments.
func (h *AppointmentHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListAppointments(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Get handles GET /api/v1/appointments/:id.
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	appt, err := h.svc.GetAppointment(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, appt)
}

// Create handles POST /api/v1/appointments.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	appt, err := h.svc.CreateAppointment(c.Request.Context(), &domain.Appointment{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Date:          date,
		TimeSlotID:    req.TimeSlotID,
		Notes:         req.Notes,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    appt,
	})
}

// UpdateStatus handles PATCH /api/v1/appointments/:id/status.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateStatusRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	appt, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, appt)
}

// Delete handles DELETE /api/v1/appointments/:id.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteAppointment(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// Slots handles GET /api/v1/appointments/slots?date=YYYY-MM-DD.
func (h *AppointmentHandler) Slots(c *gin.Context) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	slots, err := h.svc.AvailableSlots(c.Request.Context(), date)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, slots)
}
