package settings

import (
	"context"

	"gorm.io/gorm"

	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/pkg"
)

// Allowed fields for sorting and filtering in List queries.
var (
	serviceSortFields   = []string{"id", "name", "price", "created_at"}
	serviceFilterFields = []string{"is_active"}
	serviceSearchFields = []string{"name", "description"}

	taxSortFields   = []string{"id", "name", "percentage", "created_at"}
	taxFilterFields = []string{"is_active"}
	taxSearchFields = []string{"name"}

	measurementSortFields   = []string{"id", "type", "value", "created_at"}
	measurementFilterFields = []string{"type", "is_active"}
	measurementSearchFields = []string{"type", "value"}
)

// serviceRepository implements domain.ServiceRepository using GORM.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new ServiceRepository backed by the given GORM database.
func NewServiceRepository(db *gorm.DB) domain.ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, svc *domain.Service) error {
	if err := r.db.WithContext(ctx).Create(svc).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id uint) (*domain.Service, error) {
	var svc domain.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &svc, nil
}

func (r *serviceRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Service], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Service{}).
		Scopes(
			pkg.Filter(req, serviceFilterFields),
			pkg.Search(req, serviceSearchFields),
		)

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var services []domain.Service
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, serviceSortFields),
	).Find(&services).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(services, total, req), nil
}

func (r *serviceRepository) Update(ctx context.Context, svc *domain.Service) error {
	if err := r.db.WithContext(ctx).Save(svc).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Service{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// taxRepository implements domain.TaxRepository using GORM.
type taxRepository struct {
	db *gorm.DB
}

// NewTaxRepository creates a new TaxRepository backed by the given GORM database.
func NewTaxRepository(db *gorm.DB) domain.TaxRepository {
	return &taxRepository{db: db}
}

func (r *taxRepository) Create(ctx context.Context, tax *domain.Tax) error {
	if err := r.db.WithContext(ctx).Create(tax).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *taxRepository) GetByID(ctx context.Context, id uint) (*domain.Tax, error) {
	var tax domain.Tax
	if err := r.db.WithContext(ctx).First(&tax, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &tax, nil
}

func (r *taxRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Tax], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Tax{}).
		Scopes(
			pkg.Filter(req, taxFilterFields),
			pkg.Search(req, taxSearchFields),
		)

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var taxes []domain.Tax
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, taxSortFields),
	).Find(&taxes).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(taxes, total, req), nil
}

func (r *taxRepository) Update(ctx context.Context, tax *domain.Tax) error {
	if err := r.db.WithContext(ctx).Save(tax).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *taxRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Tax{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// measurementRepository implements domain.MeasurementRepository using GORM.
type measurementRepository struct {
	db *gorm.DB
}

// NewMeasurementRepository creates a new MeasurementRepository backed by the given GORM database.
func NewMeasurementRepository(db *gorm.DB) domain.MeasurementRepository {
	return &measurementRepository{db: db}
}

func (r *measurementRepository) Create(ctx context.Context, m *domain.Measurement) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *measurementRepository) GetByID(ctx context.Context, id uint) (*domain.Measurement, error) {
	var m domain.Measurement
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &m, nil
}

func (r *measurementRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Measurement], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Measurement{}).
		Scopes(
			pkg.Filter(req, measurementFilterFields),
			pkg.Search(req, measurementSearchFields),
		)

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var measurements []domain.Measurement
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, measurementSortFields),
	).Find(&measurements).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(measurements, total, req), nil
}

func (r *measurementRepository) Update(ctx context.Context, m *domain.Measurement) error {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *measurementRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Measurement{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
