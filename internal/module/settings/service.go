package settings

import (
	"context"
	"strings"

	"github.com/tyredepot/admin/internal/domain"
)

// settingsService implements domain.SettingsService.
type settingsService struct {
	services     domain.ServiceRepository
	taxes        domain.TaxRepository
	measurements domain.MeasurementRepository
}

// NewService creates a new SettingsService with the given repositories.
func NewService(services domain.ServiceRepository, taxes domain.TaxRepository, measurements domain.MeasurementRepository) domain.SettingsService {
	return &settingsService{services: services, taxes: taxes, measurements: measurements}
}

func (s *settingsService) ListServices(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Service], error) {
	return s.services.List(ctx, req)
}

func (s *settingsService) CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	if err := validateService(svc); err != nil {
		return nil, err
	}
	svc.IsActive = true
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *settingsService) UpdateService(ctx context.Context, id uint, in *domain.Service) (*domain.Service, error) {
	if err := validateService(in); err != nil {
		return nil, err
	}
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	svc.Name = in.Name
	svc.Description = in.Description
	svc.Price = in.Price
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *settingsService) ToggleService(ctx context.Context, id uint) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	svc.IsActive = !svc.IsActive
	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *settingsService) DeleteService(ctx context.Context, id uint) error {
	return s.services.Delete(ctx, id)
}

func (s *settingsService) ListTaxes(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Tax], error) {
	return s.taxes.List(ctx, req)
}

func (s *settingsService) CreateTax(ctx context.Context, tax *domain.Tax) (*domain.Tax, error) {
	if err := validateTax(tax); err != nil {
		return nil, err
	}
	tax.IsActive = true
	if err := s.taxes.Create(ctx, tax); err != nil {
		return nil, err
	}
	return tax, nil
}

func (s *settingsService) UpdateTax(ctx context.Context, id uint, in *domain.Tax) (*domain.Tax, error) {
	if err := validateTax(in); err != nil {
		return nil, err
	}
	tax, err := s.taxes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tax.Name = in.Name
	tax.Percentage = in.Percentage
	if err := s.taxes.Update(ctx, tax); err != nil {
		return nil, err
	}
	return tax, nil
}

func (s *settingsService) ToggleTax(ctx context.Context, id uint) (*domain.Tax, error) {
	tax, err := s.taxes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tax.IsActive = !tax.IsActive
	if err := s.taxes.Update(ctx, tax); err != nil {
		return nil, err
	}
	return tax, nil
}

func (s *settingsService) DeleteTax(ctx context.Context, id uint) error {
	return s.taxes.Delete(ctx, id)
}

func (s *settingsService) ListMeasurements(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Measurement], error) {
	return s.measurements.List(ctx, req)
}

func (s *settingsService) CreateMeasurement(ctx context.Context, m *domain.Measurement) (*domain.Measurement, error) {
	if err := validateMeasurement(m); err != nil {
		return nil, err
	}
	m.IsActive = true
	if err := s.measurements.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *settingsService) UpdateMeasurement(ctx context.Context, id uint, in *domain.Measurement) (*domain.Measurement, error) {
	if err := validateMeasurement(in); err != nil {
		return nil, err
	}
	m, err := s.measurements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Type = in.Type
	m.Value = in.Value
	if err := s.measurements.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *settingsService) ToggleMeasurement(ctx context.Context, id uint) (*domain.Measurement, error) {
	m, err := s.measurements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.IsActive = !m.IsActive
	if err := s.measurements.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *settingsService) DeleteMeasurement(ctx context.Context, id uint) error {
	return s.measurements.Delete(ctx, id)
}

func validateService(svc *domain.Service) error {
	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Name == "" {
		return domain.NewAppError(domain.CodeValidation, "service name is required", nil)
	}
	if svc.Price < 0 {
		return domain.NewAppError(domain.CodeValidation, "price must not be negative", nil)
	}
	return nil
}

func validateTax(tax *domain.Tax) error {
	tax.Name = strings.TrimSpace(tax.Name)
	if tax.Name == "" {
		return domain.NewAppError(domain.CodeValidation, "tax name is required", nil)
	}
	if tax.Percentage < 0 || tax.Percentage > 100 {
		return domain.NewAppError(domain.CodeValidation, "percentage must be between 0 and 100", nil)
	}
	return nil
}

func validateMeasurement(m *domain.Measurement) error {
	m.Type = strings.ToLower(strings.TrimSpace(m.Type))
	m.Value = strings.TrimSpace(m.Value)
	if m.Type == "" {
		return domain.NewAppError(domain.CodeValidation, "measurement type is required", nil)
	}
	if m.Value == "" {
		return domain.NewAppError(domain.CodeValidation, "measurement value is required", nil)
	}
	return nil
}
