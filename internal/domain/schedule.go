package domain

import (
	"context"
	"time"
)

// Appointment statuses.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// TimeSlot is a bookable fitting-bay window with a daily capacity.
type TimeSlot struct {
	BaseModel
	StartTime string `gorm:"size:5;not null" json:"start_time"` // "HH:MM"
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
	Capacity  int    `gorm:"not null;default:1" json:"capacity"`
	IsActive  bool   `gorm:"not null;default:true" json:"is_active"`
}

// Holiday is a closed day; no appointments can be booked on it.
type Holiday struct {
	BaseModel
	Name string    `gorm:"size:100;not null" json:"name"`
	Date time.Time `gorm:"not null;uniqueIndex" json:"date"`
}

// Appointment is a customer fitting appointment in a time slot.
type Appointment struct {
	BaseModel
	CustomerName  string    `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string    `gorm:"size:255" json:"customer_email"`
	CustomerPhone string    `gorm:"size:32" json:"customer_phone"`
	Date          time.Time `gorm:"not null;index" json:"date"`
	TimeSlotID    uint      `gorm:"index;not null" json:"time_slot_id"`
	Status        string    `gorm:"size:20;not null;default:scheduled" json:"status"`
	Notes         string    `gorm:"size:500" json:"notes"`
}

// AvailableSlot is a time slot with its remaining capacity for one date.
type AvailableSlot struct {
	TimeSlot  TimeSlot `json:"time_slot"`
	Remaining int      `json:"remaining"`
}

// TimeSlotRepository defines the data access interface for time slots.
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *TimeSlot) error
	GetByID(ctx context.Context, id uint) (*TimeSlot, error)
	ListAll(ctx context.Context) ([]TimeSlot, error)
	Update(ctx context.Context, slot *TimeSlot) error
	Delete(ctx context.Context, id uint) error
}

// HolidayRepository defines the data access interface for holidays.
type HolidayRepository interface {
	Create(ctx context.Context, holiday *Holiday) error
	GetByID(ctx context.Context, id uint) (*Holiday, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Holiday], error)
	ExistsOn(ctx context.Context, date time.Time) (bool, error)
	Update(ctx context.Context, holiday *Holiday) error
	Delete(ctx context.Context, id uint) error
}

// AppointmentRepository defines the data access interface for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *Appointment) error
	GetByID(ctx context.Context, id uint) (*Appointment, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Appointment], error)
	ListAll(ctx context.Context) ([]Appointment, error)
	CountBooked(ctx context.Context, date time.Time, slotID uint) (int64, error)
	Update(ctx context.Context, appt *Appointment) error
	Delete(ctx context.Context, id uint) error
}

// TimeSlotService defines the business logic interface for time slots.
type TimeSlotService interface {
	ListTimeSlots(ctx context.Context) ([]TimeSlot, error)
	GetTimeSlot(ctx context.Context, id uint) (*TimeSlot, error)
	CreateTimeSlot(ctx context.Context, slot *TimeSlot) (*TimeSlot, error)
	UpdateTimeSlot(ctx context.Context, id uint, slot *TimeSlot) (*TimeSlot, error)
	ToggleTimeSlot(ctx context.Context, id uint) (*TimeSlot, error)
	DeleteTimeSlot(ctx context.Context, id uint) error
}

// HolidayService defines the business logic interface for holidays.
type HolidayService interface {
	ListHolidays(ctx context.Context, req PageRequest) (*PageResult[Holiday], error)
	CreateHoliday(ctx context.Context, holiday *Holiday) (*Holiday, error)
	UpdateHoliday(ctx context.Context, id uint, holiday *Holiday) (*Holiday, error)
	DeleteHoliday(ctx context.Context, id uint) error
}

// AppointmentService defines the business logic interface for appointments.
type AppointmentService interface {
	ListAppointments(ctx context.Context, req PageRequest) (*PageResult[Appointment], error)
	GetAppointment(ctx context.Context, id uint) (*Appointment, error)
	CreateAppointment(ctx context.Context, appt *Appointment) (*Appointment, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*Appointment, error)
	DeleteAppointment(ctx context.Context, id uint) error
	AvailableSlots(ctx context.Context, date time.Time) ([]AvailableSlot, error)
}
