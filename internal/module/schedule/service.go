package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/listing"
	"github.com/tyredepot/admin/internal/pkg"
)

var validAppointmentStatuses = map[string]bool{
	domain.AppointmentScheduled: true,
	domain.AppointmentCompleted: true,
	domain.AppointmentCancelled: true,
}

const slotTimeLayout = "15:04"

// timeSlotService implements domain.TimeSlotService.
type timeSlotService struct {
	repo domain.TimeSlotRepository
}

// NewTimeSlotService creates a new TimeSlotService with the given repository.
func NewTimeSlotService(repo domain.TimeSlotRepository) domain.TimeSlotService {
	return &timeSlotService{repo: repo}
}

func (s *timeSlotService) ListTimeSlots(ctx context.Context) ([]domain.TimeSlot, error) {
	return s.repo.ListAll(ctx)
}

func (s *timeSlotService) GetTimeSlot(ctx context.Context, id uint) (*domain.TimeSlot, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *timeSlotService) CreateTimeSlot(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	if err := validateTimeSlot(slot); err != nil {
		return nil, err
	}
	slot.IsActive = true
	if err := s.repo.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *timeSlotService) UpdateTimeSlot(ctx context.Context, id uint, in *domain.TimeSlot) (*domain.TimeSlot, error) {
	if err := validateTimeSlot(in); err != nil {
		return nil, err
	}
	slot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	slot.StartTime = in.StartTime
	slot.EndTime = in.EndTime
	slot.Capacity = in.Capacity
	if err := s.repo.Update(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *timeSlotService) ToggleTimeSlot(ctx context.Context, id uint) (*domain.TimeSlot, error) {
	slot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	slot.IsActive = !slot.IsActive
	if err := s.repo.Update(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *timeSlotService) DeleteTimeSlot(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func validateTimeSlot(slot *domain.TimeSlot) error {
	start, err := time.Parse(slotTimeLayout, slot.StartTime)
	if err != nil {
		return domain.NewAppError(domain.CodeValidation, "start time must be HH:MM", nil)
	}
	end, err := time.Parse(slotTimeLayout, slot.EndTime)
	if err != nil {
		return domain.NewAppError(domain.CodeValidation, "end time must be HH:MM", nil)
	}
	if !end.After(start) {
		return domain.NewAppError(domain.CodeValidation, "end time must be after start time", nil)
	}
	if slot.Capacity < 1 {
		return domain.NewAppError(domain.CodeValidation, "capacity must be at least 1", nil)
	}
	return nil
}

// holidayService implements domain.HolidayService.
type holidayService struct {
	repo domain.HolidayRepository
}

// NewHolidayService creates a new HolidayService with the given repository.
func NewHolidayService(repo domain.HolidayRepository) domain.HolidayService {
	return &holidayService{repo: repo}
}

func (s *holidayService) ListHolidays(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Holiday], error) {
	return s.repo.List(ctx, req)
}

func (s *holidayService) CreateHoliday(ctx context.Context, holiday *domain.Holiday) (*domain.Holiday, error) {
	if err := validateHoliday(holiday); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, holiday); err != nil {
		return nil, err
	}
	return holiday, nil
}

func (s *holidayService) UpdateHoliday(ctx context.Context, id uint, in *domain.Holiday) (*domain.Holiday, error) {
	if err := validateHoliday(in); err != nil {
		return nil, err
	}
	holiday, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	holiday.Name = in.Name
	holiday.Date = in.Date
	if err := s.repo.Update(ctx, holiday); err != nil {
		return nil, err
	}
	return holiday, nil
}

func (s *holidayService) DeleteHoliday(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func validateHoliday(holiday *domain.Holiday) error {
	holiday.Name = strings.TrimSpace(holiday.Name)
	if holiday.Name == "" {
		return domain.NewAppError(domain.CodeValidation, "holiday name is required", nil)
	}
	if holiday.Date.IsZero() {
		return domain.NewAppError(domain.CodeValidation, "holiday date is required", nil)
	}
	holiday.Date = dayStart(holiday.Date)
	return nil
}

// appointmentService implements domain.AppointmentService.
type appointmentService struct {
	appts    domain.AppointmentRepository
	slots    domain.TimeSlotRepository
	holidays domain.HolidayRepository
	now      func() time.Time
}

// NewAppointmentService creates a new AppointmentService with the given
// repositories.
func NewAppointmentService(appts domain.AppointmentRepository, slots domain.TimeSlotRepository, holidays domain.HolidayRepository) domain.AppointmentService {
	return &appointmentService{appts: appts, slots: slots, holidays: holidays, now: time.Now}
}

// ListAppointments serves unfiltered requests straight from SQL pagination
// and switches to full-fetch plus in-memory predicates when any filter is
// active, the same strategy the order list uses.
func (s *appointmentService) ListAppointments(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Appointment], error) {
	if !req.HasFilters() {
		return s.appts.List(ctx, req)
	}

	all, err := s.appts.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return pkg.PageLocally(all, req, appointmentPredicates(req, s.now())...), nil
}

func appointmentPredicates(req domain.PageRequest, now time.Time) []listing.Predicate[domain.Appointment] {
	var preds []listing.Predicate[domain.Appointment]

	if req.Search != "" {
		q := req.Search
		preds = append(preds, func(a domain.Appointment) bool {
			return listing.TextMatch(q, a.CustomerName, a.CustomerEmail, a.CustomerPhone)
		})
	}

	if status := req.Filter["status"]; status != "" {
		preds = append(preds, func(a domain.Appointment) bool {
			return listing.CategoricalMatch(status, a.Status)
		})
	}

	if r := pkg.DateRange(req); r.IsActive() {
		preds = append(preds, func(a domain.Appointment) bool {
			return r.Contains(a.Date, now)
		})
	}

	return preds
}

func (s *appointmentService) GetAppointment(ctx context.Context, id uint) (*domain.Appointment, error) {
	return s.appts.GetByID(ctx, id)
}

// CreateAppointment books a slot after checking holidays and remaining
// capacity.
func (s *appointmentService) CreateAppointment(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	appt.CustomerName = strings.TrimSpace(appt.CustomerName)
	if appt.CustomerName == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "customer name is required", nil)
	}
	if appt.Date.IsZero() {
		return nil, domain.NewAppError(domain.CodeValidation, "appointment date is required", nil)
	}
	appt.Date = dayStart(appt.Date)
	if appt.Status == "" {
		appt.Status = domain.AppointmentScheduled
	}
	if !validAppointmentStatuses[appt.Status] {
		return nil, domain.NewAppError(domain.CodeValidation, "unknown appointment status", nil)
	}

	slot, err := s.slots.GetByID(ctx, appt.TimeSlotID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeValidation, "time slot does not exist", nil)
		}
		return nil, err
	}
	if !slot.IsActive {
		return nil, domain.NewAppError(domain.CodeBusinessRule, "time slot is not bookable", nil)
	}

	closed, err := s.holidays.ExistsOn(ctx, appt.Date)
	if err != nil {
		return nil, err
	}
	if closed {
		return nil, domain.NewAppError(domain.CodeBusinessRule, "the shop is closed on that date", nil)
	}

	booked, err := s.appts.CountBooked(ctx, appt.Date, slot.ID)
	if err != nil {
		return nil, err
	}
	if booked >= int64(slot.Capacity) {
		return nil, domain.NewAppError(domain.CodeBusinessRule, "time slot is fully booked", nil)
	}

	if err := s.appts.Create(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *appointmentService) UpdateStatus(ctx context.Context, id uint, status string) (*domain.Appointment, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !validAppointmentStatuses[status] {
		return nil, domain.NewAppError(domain.CodeValidation, "unknown appointment status", nil)
	}

	appt, err := s.appts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	appt.Status = status
	if err := s.appts.Update(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *appointmentService) DeleteAppointment(ctx context.Context, id uint) error {
	return s.appts.Delete(ctx, id)
}

// AvailableSlots returns each active slot with its remaining capacity for
// the given day. A holiday has no available slots.
func (s *appointmentService) AvailableSlots(ctx context.Context, date time.Time) ([]domain.AvailableSlot, error) {
	if date.IsZero() {
		return nil, domain.NewAppError(domain.CodeValidation, "date is required", nil)
	}
	date = dayStart(date)

	closed, err := s.holidays.ExistsOn(ctx, date)
	if err != nil {
		return nil, err
	}
	if closed {
		return []domain.AvailableSlot{}, nil
	}

	slots, err := s.slots.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]domain.AvailableSlot, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsActive {
			continue
		}
		booked, err := s.appts.CountBooked(ctx, date, slot.ID)
		if err != nil {
			return nil, err
		}
		remaining := slot.Capacity - int(booked)
		if remaining < 0 {
			remaining = 0
		}
		available = append(available, domain.AvailableSlot{TimeSlot: slot, Remaining: remaining})
	}
	return available, nil
}
