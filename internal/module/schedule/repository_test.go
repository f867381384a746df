package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/tyredepot/admin/internal/domain"
)

// setupTestDB creates an in-memory SQLite database with the schedule tables.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.TimeSlot{}, &domain.Holiday{}, &domain.Appointment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSlotRepo_ListAllOrderedByStart(t *testing.T) {
	repo := NewTimeSlotRepository(setupTestDB(t))
	ctx := context.Background()

	for _, s := range []*domain.TimeSlot{
		{StartTime: "14:00", EndTime: "15:00", Capacity: 2, IsActive: true},
		{StartTime: "09:00", EndTime: "10:00", Capacity: 2, IsActive: true},
	} {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	slots, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(slots) != 2 || slots[0].StartTime != "09:00" {
		t.Errorf("first slot = %+v; want the 09:00 slot first", slots[0])
	}
}

func TestHolidayRepo_ExistsOn(t *testing.T) {
	repo := NewHolidayRepository(setupTestDB(t))
	ctx := context.Background()

	date := time.Date(2026, 12, 25, 0, 0, 0, 0, time.Local)
	if err := repo.Create(ctx, &domain.Holiday{Name: "Christmas", Date: date}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Any time of day on the holiday matches.
	exists, err := repo.ExistsOn(ctx, date.Add(13*time.Hour))
	if err != nil {
		t.Fatalf("ExistsOn: %v", err)
	}
	if !exists {
		t.Error("expected the holiday to be found")
	}

	exists, err = repo.ExistsOn(ctx, date.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("ExistsOn: %v", err)
	}
	if exists {
		t.Error("the next day must not be a holiday")
	}
}

func TestHolidayRepo_DuplicateDate(t *testing.T) {
	repo := NewHolidayRepository(setupTestDB(t))
	ctx := context.Background()

	date := time.Date(2026, 12, 25, 0, 0, 0, 0, time.Local)
	if err := repo.Create(ctx, &domain.Holiday{Name: "Christmas", Date: date}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(ctx, &domain.Holiday{Name: "Also Christmas", Date: date})
	if !domain.IsAlreadyExists(err) {
		t.Errorf("expected AlreadyExists, got %v", err)
	}
}

func TestApptRepo_CountBookedSkipsCancelled(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.Local)
	for _, a := range []*domain.Appointment{
		{CustomerName: "Alice", Date: date, TimeSlotID: 1, Status: domain.AppointmentScheduled},
		{CustomerName: "Bob", Date: date, TimeSlotID: 1, Status: domain.AppointmentCancelled},
		{CustomerName: "Carol", Date: date.AddDate(0, 0, 1), TimeSlotID: 1, Status: domain.AppointmentScheduled},
		{CustomerName: "Dan", Date: date, TimeSlotID: 2, Status: domain.AppointmentScheduled},
	} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create(%s): %v", a.CustomerName, err)
		}
	}

	count, err := repo.CountBooked(ctx, date, 1)
	if err != nil {
		t.Fatalf("CountBooked: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d; want 1 (cancelled and other days/slots excluded)", count)
	}
}

func TestApptRepo_ListStatusFilterAndSearch(t *testing.T) {
	repo := NewAppointmentRepository(setupTestDB(t))
	ctx := context.Background()

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.Local)
	for _, a := range []*domain.Appointment{
		{CustomerName: "Alice", CustomerEmail: "alice@example.com", Date: date, TimeSlotID: 1, Status: domain.AppointmentScheduled},
		{CustomerName: "Bob", CustomerEmail: "bob@example.com", Date: date, TimeSlotID: 1, Status: domain.AppointmentCompleted},
	} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	page, err := repo.List(ctx, domain.PageRequest{
		Page: 1, PageSize: 10,
		Filter: map[string]string{"status": domain.AppointmentScheduled},
		Search: "alice",
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 1 {
		t.Errorf("total = %d; want 1", page.Total)
	}
}
