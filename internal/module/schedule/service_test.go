package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/pkg"
)

// fakeSlotRepo implements domain.TimeSlotRepository for testing.
type fakeSlotRepo struct {
	slots   []domain.TimeSlot
	err     error
	updated *domain.TimeSlot
}

func (f *fakeSlotRepo) Create(_ context.Context, s *domain.TimeSlot) error {
	if f.err != nil {
		return f.err
	}
	s.ID = uint(len(f.slots) + 1)
	f.slots = append(f.slots, *s)
	return nil
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id uint) (*domain.TimeSlot, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.slots {
		if f.slots[i].ID == id {
			s := f.slots[i]
			return &s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSlotRepo) ListAll(context.Context) ([]domain.TimeSlot, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.TimeSlot, len(f.slots))
	copy(out, f.slots)
	return out, nil
}

func (f *fakeSlotRepo) Update(_ context.Context, s *domain.TimeSlot) error {
	if f.err != nil {
		return f.err
	}
	f.updated = s
	return nil
}

func (f *fakeSlotRepo) Delete(context.Context, uint) error { return f.err }

// fakeHolidayRepo implements domain.HolidayRepository for testing.
type fakeHolidayRepo struct {
	holidays []domain.Holiday
	err      error
}

func (f *fakeHolidayRepo) Create(_ context.Context, h *domain.Holiday) error {
	if f.err != nil {
		return f.err
	}
	h.ID = uint(len(f.holidays) + 1)
	f.holidays = append(f.holidays, *h)
	return nil
}

func (f *fakeHolidayRepo) GetByID(_ context.Context, id uint) (*domain.Holiday, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.holidays {
		if f.holidays[i].ID == id {
			h := f.holidays[i]
			return &h, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeHolidayRepo) List(_ context.Context, req domain.PageRequest) (*domain.PageResult[domain.Holiday], error) {
	if f.err != nil {
		return nil, f.err
	}
	return pkg.PageLocally(f.holidays, req), nil
}

func (f *fakeHolidayRepo) ExistsOn(_ context.Context, date time.Time) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, h := range f.holidays {
		if h.Date.Year() == date.Year() && h.Date.YearDay() == date.YearDay() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHolidayRepo) Update(context.Context, *domain.Holiday) error { return f.err }
func (f *fakeHolidayRepo) Delete(context.Context, uint) error            { return f.err }

// fakeApptRepo implements domain.AppointmentRepository for testing.
type fakeApptRepo struct {
	appts    []domain.Appointment
	booked   map[uint]int64
	err      error
	lists    int
	listAlls int
	updated  *domain.Appointment
}

func (f *fakeApptRepo) Create(_ context.Context, a *domain.Appointment) error {
	if f.err != nil {
		return f.err
	}
	a.ID = uint(len(f.appts) + 1)
	f.appts = append(f.appts, *a)
	return nil
}

func (f *fakeApptRepo) GetByID(_ context.Context, id uint) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.appts {
		if f.appts[i].ID == id {
			a := f.appts[i]
			return &a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeApptRepo) List(_ context.Context, req domain.PageRequest) (*domain.PageResult[domain.Appointment], error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lists++
	return pkg.PageLocally(f.appts, req), nil
}

func (f *fakeApptRepo) ListAll(context.Context) ([]domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.listAlls++
	out := make([]domain.Appointment, len(f.appts))
	copy(out, f.appts)
	return out, nil
}

func (f *fakeApptRepo) CountBooked(_ context.Context, _ time.Time, slotID uint) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.booked[slotID], nil
}

func (f *fakeApptRepo) Update(_ context.Context, a *domain.Appointment) error {
	if f.err != nil {
		return f.err
	}
	f.updated = a
	return nil
}

func (f *fakeApptRepo) Delete(context.Context, uint) error { return f.err }

func testSlot(id uint, start, end string, capacity int, active bool) domain.TimeSlot {
	s := domain.TimeSlot{StartTime: start, EndTime: end, Capacity: capacity, IsActive: active}
	s.ID = id
	return s
}

func bookingDate() time.Time {
	return time.Date(2026, 9, 14, 0, 0, 0, 0, time.Local)
}

func TestCreateTimeSlot_Validation(t *testing.T) {
	svc := NewTimeSlotService(&fakeSlotRepo{})

	tests := []struct {
		name string
		slot domain.TimeSlot
	}{
		{"bad start format", domain.TimeSlot{StartTime: "9am", EndTime: "10:00", Capacity: 1}},
		{"bad end format", domain.TimeSlot{StartTime: "09:00", EndTime: "late", Capacity: 1}},
		{"end before start", domain.TimeSlot{StartTime: "10:00", EndTime: "09:00", Capacity: 1}},
		{"end equals start", domain.TimeSlot{StartTime: "10:00", EndTime: "10:00", Capacity: 1}},
		{"zero capacity", domain.TimeSlot{StartTime: "09:00", EndTime: "10:00", Capacity: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.slot
			if _, err := svc.CreateTimeSlot(context.Background(), &s); !domain.IsValidation(err) {
				t.Errorf("expected validation error, got: %v", err)
			}
		})
	}
}

func TestCreateTimeSlot_Success(t *testing.T) {
	svc := NewTimeSlotService(&fakeSlotRepo{})

	slot, err := svc.CreateTimeSlot(context.Background(), &domain.TimeSlot{
		StartTime: "09:00", EndTime: "10:30", Capacity: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slot.IsActive {
		t.Error("expected a new slot to be active")
	}
}

func TestCreateHoliday_NormalizesToMidnight(t *testing.T) {
	svc := NewHolidayService(&fakeHolidayRepo{})

	holiday, err := svc.CreateHoliday(context.Background(), &domain.Holiday{
		Name: "Boxing Day",
		Date: time.Date(2026, 12, 26, 15, 30, 0, 0, time.Local),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if holiday.Date.Hour() != 0 || holiday.Date.Minute() != 0 {
		t.Errorf("date = %v; want local midnight", holiday.Date)
	}
}

func TestCreateHoliday_Validation(t *testing.T) {
	svc := NewHolidayService(&fakeHolidayRepo{})

	if _, err := svc.CreateHoliday(context.Background(), &domain.Holiday{Name: " "}); !domain.IsValidation(err) {
		t.Errorf("expected validation error for empty name, got: %v", err)
	}
	if _, err := svc.CreateHoliday(context.Background(), &domain.Holiday{Name: "X"}); !domain.IsValidation(err) {
		t.Errorf("expected validation error for zero date, got: %v", err)
	}
}

func newApptService(appts *fakeApptRepo, slots *fakeSlotRepo, holidays *fakeHolidayRepo) domain.AppointmentService {
	return NewAppointmentService(appts, slots, holidays)
}

func TestCreateAppointment_Success(t *testing.T) {
	slots := &fakeSlotRepo{slots: []domain.TimeSlot{testSlot(1, "09:00", "10:00", 2, true)}}
	appts := &fakeApptRepo{booked: map[uint]int64{1: 1}}
	svc := newApptService(appts, slots, &fakeHolidayRepo{})

	appt, err := svc.CreateAppointment(context.Background(), &domain.Appointment{
		CustomerName: "Alice",
		Date:         bookingDate().Add(10 * time.Hour),
		TimeSlotID:   1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.Status != domain.AppointmentScheduled {
		t.Errorf("status = %q; want scheduled", appt.Status)
	}
	if appt.Date.Hour() != 0 {
		t.Errorf("date = %v; want local midnight", appt.Date)
	}
}

func TestCreateAppointment_SlotFull(t *testing.T) {
	slots := &fakeSlotRepo{slots: []domain.TimeSlot{testSlot(1, "09:00", "10:00", 2, true)}}
	appts := &fakeApptRepo{booked: map[uint]int64{1: 2}}
	svc := newApptService(appts, slots, &fakeHolidayRepo{})

	_, err := svc.CreateAppointment(context.Background(), &domain.Appointment{
		CustomerName: "Alice", Date: bookingDate(), TimeSlotID: 1,
	})
	if !domain.IsBusinessRule(err) {
		t.Errorf("expected business rule error, got: %v", err)
	}
}

func TestCreateAppointment_OnHoliday(t *testing.T) {
	slots := &fakeSlotRepo{slots: []domain.TimeSlot{testSlot(1, "09:00", "10:00", 2, true)}}
	holidays := &fakeHolidayRepo{holidays: []domain.Holiday{{Name: "Closed", Date: bookingDate()}}}
	svc := newApptService(&fakeApptRepo{}, slots, holidays)

	_, err := svc.CreateAppointment(context.Background(), &domain.Appointment{
		CustomerName: "Alice", Date: bookingDate(), TimeSlotID: 1,
	})
	if !domain.IsBusinessRule(err) {
		t.Errorf("expected business rule error, got: %v", err)
	}
}

func TestCreateAppointment_InactiveSlot(t *testing.T) {
	slots := &fakeSlotRepo{slots: []domain.TimeSlot{testSlot(1, "09:00", "10:00", 2, false)}}
	svc := newApptService(&fakeApptRepo{}, slots, &fakeHolidayRepo{})

	_, err := svc.CreateAppointment(context.Background(), &domain.Appointment{
		CustomerName: "Alice", Date: bookingDate(), TimeSlotID: 1,
	})
	if !domain.IsBusinessRule(err) {
		t.Errorf("expected business rule error, got: %v", err)
	}
}

func TestCreateAppointment_UnknownSlot(t *testing.T) {
	svc := newApptService(&fakeApptRepo{}, &fakeSlotRepo{}, &fakeHolidayRepo{})

	_, err := svc.CreateAppointment(context.Background(), &domain.Appointment{
		CustomerName: "Alice", Date: bookingDate(), TimeSlotID: 9,
	})
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error, got: %v", err)
	}
}

func TestListAppointments_HybridSwitch(t *testing.T) {
	appts := &fakeApptRepo{appts: []domain.Appointment{
		{CustomerName: "Alice", Status: domain.AppointmentScheduled, Date: bookingDate()},
		{CustomerName: "Bob", Status: domain.AppointmentCancelled, Date: bookingDate()},
	}}
	svc := newApptService(appts, &fakeSlotRepo{}, &fakeHolidayRepo{})

	if _, err := svc.ListAppointments(context.Background(), domain.PageRequest{Page: 1, PageSize: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appts.lists != 1 || appts.listAlls != 0 {
		t.Errorf("unfiltered: lists = %d listAlls = %d; want 1 and 0", appts.lists, appts.listAlls)
	}

	result, err := svc.ListAppointments(context.Background(), domain.PageRequest{
		Page: 1, PageSize: 10,
		Filter: map[string]string{"status": "cancelled"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appts.listAlls != 1 {
		t.Errorf("filtered: listAlls = %d; want 1", appts.listAlls)
	}
	if result.Total != 1 {
		t.Errorf("total = %d; want 1 cancelled appointment", result.Total)
	}
}

func TestUpdateStatus_Appointment(t *testing.T) {
	appt := domain.Appointment{CustomerName: "Alice", Status: domain.AppointmentScheduled, Date: bookingDate()}
	appt.ID = 1
	appts := &fakeApptRepo{appts: []domain.Appointment{appt}}
	svc := newApptService(appts, &fakeSlotRepo{}, &fakeHolidayRepo{})

	updated, err := svc.UpdateStatus(context.Background(), 1, "Completed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.AppointmentCompleted {
		t.Errorf("status = %q; want completed", updated.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), 1, "vanished"); !domain.IsValidation(err) {
		t.Errorf("expected validation error, got: %v", err)
	}
}

func TestAvailableSlots_ComputesRemaining(t *testing.T) {
	slots := &fakeSlotRepo{slots: []domain.TimeSlot{
		testSlot(1, "09:00", "10:00", 3, true),
		testSlot(2, "10:00", "11:00", 2, true),
		testSlot(3, "11:00", "12:00", 2, false),
	}}
	appts := &fakeApptRepo{booked: map[uint]int64{1: 1, 2: 2}}
	svc := newApptService(appts, slots, &fakeHolidayRepo{})

	available, err := svc.AvailableSlots(context.Background(), bookingDate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(available) != 2 {
		t.Fatalf("slots = %d; want 2 (inactive slot excluded)", len(available))
	}
	if available[0].Remaining != 2 {
		t.Errorf("slot 1 remaining = %d; want 2", available[0].Remaining)
	}
	if available[1].Remaining != 0 {
		t.Errorf("slot 2 remaining = %d; want 0", available[1].Remaining)
	}
}

func TestAvailableSlots_HolidayIsEmpty(t *testing.T) {
	slots := &fakeSlotRepo{slots: []domain.TimeSlot{testSlot(1, "09:00", "10:00", 3, true)}}
	holidays := &fakeHolidayRepo{holidays: []domain.Holiday{{Name: "Closed", Date: bookingDate()}}}
	svc := newApptService(&fakeApptRepo{}, slots, holidays)

	available, err := svc.AvailableSlots(context.Background(), bookingDate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(available) != 0 {
		t.Errorf("slots = %d; want 0 on a holiday", len(available))
	}
}
