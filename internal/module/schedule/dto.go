package schedule

// TimeSlotRequest is the payload for creating or updating a time slot.
type TimeSlotRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Capacity  int    `json:"capacity" binding:"required,gte=1"`
}

// HolidayRequest is the payload for creating or updating a holiday.
type HolidayRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

// AppointmentRequest is the payload for booking an appointment.
type AppointmentRequest struct {
	CustomerName  string `json:"customer_name" binding:"required,max=100"`
	CustomerEmail string `json:"customer_email" binding:"omitempty,email,max=255"`
	CustomerPhone string `json:"customer_phone" binding:"omitempty,max=32"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	TimeSlotID    uint   `json:"time_slot_id" binding:"required,gt=0"`
	Notes         string `json:"notes" binding:"omitempty,max=500"`
}

// UpdateStatusRequest is the payload for an appointment status change.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
