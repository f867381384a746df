package schedule

import "github.com/gin-gonic/gin"

// ScheduleModule implements the app.Module interface for appointments, time
// slots, and holidays.
type ScheduleModule struct {
	appointments *AppointmentHandler
	slots        *TimeSlotHandler
	holidays     *HolidayHandler
}

// NewModule creates a new ScheduleModule with the given handlers.
// Panics if any handler is nil.
func NewModule(appointments *AppointmentHandler, slots *TimeSlotHandler, holidays *HolidayHandler) *ScheduleModule {
	if appointments == nil || slots == nil || holidays == nil {
		panic("schedule.NewModule: handlers must not be nil")
	}
	return &ScheduleModule{appointments: appointments, slots: slots, holidays: holidays}
}

// RegisterRoutes registers schedule API routes on the protected group.
func (m *ScheduleModule) RegisterRoutes(_, protected *gin.RouterGroup) {
	appts := protected.Group("/appointments")
	appts.GET("", m.appointments.List)
	appts.POST("", m.appointments.Create)
	appts.GET("/slots", m.appointments.Slots)
	appts.GET("/:id", m.appointments.Get)
	appts.PATCH("/:id/status", m.appointments.UpdateStatus)
	appts.DELETE("/:id", m.appointments.Delete)

	slots := protected.Group("/timeslots")
	slots.GET("", m.slots.List)
	slots.POST("", m.slots.Create)
	slots.PUT("/:id", m.slots.Update)
	slots.PATCH("/:id/toggle", m.slots.Toggle)
	slots.DELETE("/:id", m.slots.Delete)

	holidays := protected.Group("/holidays")
	holidays.GET("", m.holidays.List)
	holidays.POST("", m.holidays.Create)
	holidays.PUT("/:id", m.holidays.Update)
	holidays.DELETE("/:id", m.holidays.Delete)
}
