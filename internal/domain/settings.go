package domain

import "context"

// Service is an offered workshop service (fitting, balancing, alignment).
type Service struct {
	BaseModel
	Name        string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string  `gorm:"size:500" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	IsActive    bool    `gorm:"not null;default:true" json:"is_active"`
}

// Tax is a named tax rate applied at checkout. Percentage is in [0, 100].
type Tax struct {
	BaseModel
	Name       string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Percentage float64 `gorm:"not null" json:"percentage"`
	IsActive   bool    `gorm:"not null;default:true" json:"is_active"`
}

// Measurement is a tyre/wheel measurement option (width, profile, rim size).
type Measurement struct {
	BaseModel
	Type     string `gorm:"size:50;not null;index:idx_measurement,unique" json:"type"`
	Value    string `gorm:"size:50;not null;index:idx_measurement,unique" json:"value"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}

// ServiceRepository defines the data access interface for workshop services.
type ServiceRepository interface {
	Create(ctx context.Context, svc *Service) error
	GetByID(ctx context.Context, id uint) (*Service, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Service], error)
	Update(ctx context.Context, svc *Service) error
	Delete(ctx context.Context, id uint) error
}

// TaxRepository defines the data access interface for taxes.
type TaxRepository interface {
	Create(ctx context.Context, tax *Tax) error
	GetByID(ctx context.Context, id uint) (*Tax, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Tax], error)
	Update(ctx context.Context, tax *Tax) error
	Delete(ctx context.Context, id uint) error
}

// MeasurementRepository defines the data access interface for measurements.
type MeasurementRepository interface {
	Create(ctx context.Context, m *Measurement) error
	GetByID(ctx context.Context, id uint) (*Measurement, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Measurement], error)
	Update(ctx context.Context, m *Measurement) error
	Delete(ctx context.Context, id uint) error
}

// SettingsService defines the business logic interface for workshop
// services, taxes, and measurements.
type SettingsService interface {
	ListServices(ctx context.Context, req PageRequest) (*PageResult[Service], error)
	CreateService(ctx context.Context, svc *Service) (*Service, error)
	UpdateService(ctx context.Context, id uint, svc *Service) (*Service, error)
	ToggleService(ctx context.Context, id uint) (*Service, error)
	DeleteService(ctx context.Context, id uint) error

	ListTaxes(ctx context.Context, req PageRequest) (*PageResult[Tax], error)
	CreateTax(ctx context.Context, tax *Tax) (*Tax, error)
	UpdateTax(ctx context.Context, id uint, tax *Tax) (*Tax, error)
	ToggleTax(ctx context.Context, id uint) (*Tax, error)
	DeleteTax(ctx context.Context, id uint) error

	ListMeasurements(ctx context.Context, req PageRequest) (*PageResult[Measurement], error)
	CreateMeasurement(ctx context.Context, m *Measurement) (*Measurement, error)
	UpdateMeasurement(ctx context.Context, id uint, m *Measurement) (*Measurement, error)
	ToggleMeasurement(ctx context.Context, id uint) (*Measurement, error)
	DeleteMeasurement(ctx context.Context, id uint) error
}
