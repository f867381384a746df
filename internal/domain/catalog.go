package domain

import "context"

// Brand represents a tyre/wheel manufacturer brand.
type Brand struct {
	BaseModel
	Name     string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	LogoPath string `gorm:"size:255" json:"logo_path"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}

// Product represents a sellable tyre or wheel product.
type Product struct {
	BaseModel
	Name      string  `gorm:"size:200;not null" json:"name"`
	BrandID   uint    `gorm:"index;not null" json:"brand_id"`
	Category  string  `gorm:"size:50;not null" json:"category"`
	Price     float64 `gorm:"not null" json:"price"`
	ImagePath string  `gorm:"size:255" json:"image_path"`
	IsActive  bool    `gorm:"not null;default:true" json:"is_active"`
}

// BrandRepository defines the data access interface for brands.
type BrandRepository interface {
	Create(ctx context.Context, brand *Brand) error
	GetByID(ctx context.Context, id uint) (*Brand, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Brand], error)
	Update(ctx context.Context, brand *Brand) error
	Delete(ctx context.Context, id uint) error
}

// ProductRepository defines the data access interface for products.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Product], error)
	CountByBrand(ctx context.Context, brandID uint) (int64, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
}

// BrandService defines the business logic interface for brands.
type BrandService interface {
	ListBrands(ctx context.Context, req PageRequest) (*PageResult[Brand], error)
	GetBrand(ctx context.Context, id uint) (*Brand, error)
	CreateBrand(ctx context.Context, brand *Brand) (*Brand, error)
	UpdateBrand(ctx context.Context, id uint, brand *Brand) (*Brand, error)
	ToggleBrand(ctx context.Context, id uint) (*Brand, error)
	DeleteBrand(ctx context.Context, id uint) error
}

// ProductService defines the business logic interface for products.
type ProductService interface {
	ListProducts(ctx context.Context, req PageRequest) (*PageResult[Product], error)
	GetProduct(ctx context.Context, id uint) (*Product, error)
	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	UpdateProduct(ctx context.Context, id uint, product *Product) (*Product, error)
	ToggleProduct(ctx context.Context, id uint) (*Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}
