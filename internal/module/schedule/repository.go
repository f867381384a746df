package schedule

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/pkg"
)

// Allowed fields for sorting and filtering in List queries.
var (
	apptSortFields   = []string{"id", "customer_name", "date", "status", "created_at"}
	apptFilterFields = []string{"status", "time_slot_id"}
	apptSearchFields = []string{"customer_name", "customer_email", "customer_phone"}

	holidaySortFields   = []string{"id", "name", "date"}
	holidaySearchFields = []string{"name"}
)

// timeSlotRepository implements domain.TimeSlotRepository using GORM.
type timeSlotRepository struct {
	db *gorm.DB
}

// NewTimeSlotRepository creates a new TimeSlotRepository backed by the given GORM database.
func NewTimeSlotRepository(db *gorm.DB) domain.TimeSlotRepository {
	return &timeSlotRepository{db: db}
}

func (r *timeSlotRepository) Create(ctx context.Context, slot *domain.TimeSlot) error {
	if err := r.db.WithContext(ctx).Create(slot).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *timeSlotRepository) GetByID(ctx context.Context, id uint) (*domain.TimeSlot, error) {
	var slot domain.TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &slot, nil
}

// ListAll returns every time slot ordered by start time.
func (r *timeSlotRepository) ListAll(ctx context.Context) ([]domain.TimeSlot, error) {
	var slots []domain.TimeSlot
	if err := r.db.WithContext(ctx).Order("start_time asc").Find(&slots).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return slots, nil
}

func (r *timeSlotRepository) Update(ctx context.Context, slot *domain.TimeSlot) error {
	if err := r.db.WithContext(ctx).Save(slot).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *timeSlotRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.TimeSlot{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// holidayRepository implements domain.HolidayRepository using GORM.
type holidayRepository struct {
	db *gorm.DB
}

// NewHolidayRepository creates a new HolidayRepository backed by the given GORM database.
func NewHolidayRepository(db *gorm.DB) domain.HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) Create(ctx context.Context, holiday *domain.Holiday) error {
	if err := r.db.WithContext(ctx).Create(holiday).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *holidayRepository) GetByID(ctx context.Context, id uint) (*domain.Holiday, error) {
	var holiday domain.Holiday
	if err := r.db.WithContext(ctx).First(&holiday, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &holiday, nil
}

func (r *holidayRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Holiday], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Holiday{}).
		Scopes(pkg.Search(req, holidaySearchFields))

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var holidays []domain.Holiday
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, holidaySortFields),
	).Find(&holidays).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(holidays, total, req), nil
}

// ExistsOn reports whether the given calendar day is a holiday.
func (r *holidayRepository) ExistsOn(ctx context.Context, date time.Time) (bool, error) {
	day := dayStart(date)
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Holiday{}).
		Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1)).
		Count(&count).Error; err != nil {
		return false, pkg.MapDBError(err)
	}
	return count > 0, nil
}

func (r *holidayRepository) Update(ctx context.Context, holiday *domain.Holiday) error {
	if err := r.db.WithContext(ctx).Save(holiday).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *holidayRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Holiday{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// appointmentRepository implements domain.AppointmentRepository using GORM.
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new AppointmentRepository backed by the given GORM database.
func NewAppointmentRepository(db *gorm.DB) domain.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appt *domain.Appointment) error {
	if err := r.db.WithContext(ctx).Create(appt).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id uint) (*domain.Appointment, error) {
	var appt domain.Appointment
	if err := r.db.WithContext(ctx).First(&appt, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &appt, nil
}

func (r *appointmentRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Appointment], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Appointment{}).
		Scopes(
			pkg.Filter(req, apptFilterFields),
			pkg.Search(req, apptSearchFields),
		)

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var appts []domain.Appointment
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, apptSortFields),
	).Find(&appts).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(appts, total, req), nil
}

// ListAll returns every appointment, soonest first.
func (r *appointmentRepository) ListAll(ctx context.Context) ([]domain.Appointment, error) {
	var appts []domain.Appointment
	if err := r.db.WithContext(ctx).Order("date asc, id asc").Find(&appts).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return appts, nil
}

// CountBooked counts non-cancelled appointments for a slot on one day.
func (r *appointmentRepository) CountBooked(ctx context.Context, date time.Time, slotID uint) (int64, error) {
	day := dayStart(date)
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Appointment{}).
		Where("time_slot_id = ?", slotID).
		Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1)).
		Where("status <> ?", domain.AppointmentCancelled).
		Count(&count).Error; err != nil {
		return 0, pkg.MapDBError(err)
	}
	return count, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appt *domain.Appointment) error {
	if err := r.db.WithContext(ctx).Save(appt).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Appointment{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// dayStart returns local midnight of the given time.
func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
