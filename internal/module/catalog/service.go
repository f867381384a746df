package catalog

import (
	"context"
	"strings"

	"github.com/tyredepot/admin/internal/domain"
)

// brandService implements domain.BrandService.
type brandService struct {
	brands   domain.BrandRepository
	products domain.ProductRepository
}

// NewBrandService creates a new BrandService with the given repositories.
func NewBrandService(brands domain.BrandRepository, products domain.ProductRepository) domain.BrandService {
	return &brandService{brands: brands, products: products}
}

func (s *brandService) ListBrands(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Brand], error) {
	return s.brands.List(ctx, req)
}

func (s *brandService) GetBrand(ctx context.Context, id uint) (*domain.Brand, error) {
	return s.brands.GetByID(ctx, id)
}

func (s *brandService) CreateBrand(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	if err := validateBrand(brand); err != nil {
		return nil, err
	}
	brand.IsActive = true
	if err := s.brands.Create(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *brandService) UpdateBrand(ctx context.Context, id uint, in *domain.Brand) (*domain.Brand, error) {
	if err := validateBrand(in); err != nil {
		return nil, err
	}
	brand, err := s.brands.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	brand.Name = in.Name
	brand.LogoPath = in.LogoPath
	if err := s.brands.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *brandService) ToggleBrand(ctx context.Context, id uint) (*domain.Brand, error) {
	brand, err := s.brands.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	brand.IsActive = !brand.IsActive
	if err := s.brands.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// DeleteBrand removes a brand. Brands that still have products cannot be
// deleted.
func (s *brandService) DeleteBrand(ctx context.Context, id uint) error {
	count, err := s.products.CountByBrand(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.NewAppError(domain.CodeBusinessRule, "brand still has products", nil)
	}
	return s.brands.Delete(ctx, id)
}

func validateBrand(brand *domain.Brand) error {
	brand.Name = strings.TrimSpace(brand.Name)
	if brand.Name == "" {
		return domain.NewAppError(domain.CodeValidation, "brand name is required", nil)
	}
	return nil
}

// productService implements domain.ProductService.
type productService struct {
	products domain.ProductRepository
	brands   domain.BrandRepository
}

// NewProductService creates a new ProductService with the given repositories.
func NewProductService(products domain.ProductRepository, brands domain.BrandRepository) domain.ProductService {
	return &productService{products: products, brands: brands}
}

func (s *productService) ListProducts(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Product], error) {
	return s.products.List(ctx, req)
}

func (s *productService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := s.validateProduct(ctx, product); err != nil {
		return nil, err
	}
	product.IsActive = true
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uint, in *domain.Product) (*domain.Product, error) {
	if err := s.validateProduct(ctx, in); err != nil {
		return nil, err
	}
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Name = in.Name
	product.BrandID = in.BrandID
	product.Category = in.Category
	product.Price = in.Price
	product.ImagePath = in.ImagePath
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) ToggleProduct(ctx context.Context, id uint) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.IsActive = !product.IsActive
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uint) error {
	return s.products.Delete(ctx, id)
}

// validateProduct checks field constraints and that the referenced brand
// exists.
func (s *productService) validateProduct(ctx context.Context, product *domain.Product) error {
	product.Name = strings.TrimSpace(product.Name)
	product.Category = strings.ToLower(strings.TrimSpace(product.Category))
	if product.Name == "" {
		return domain.NewAppError(domain.CodeValidation, "product name is required", nil)
	}
	if product.Category == "" {
		return domain.NewAppError(domain.CodeValidation, "product category is required", nil)
	}
	if product.Price < 0 {
		return domain.NewAppError(domain.CodeValidation, "price must not be negative", nil)
	}
	if _, err := s.brands.GetByID(ctx, product.BrandID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "brand does not exist", nil)
		}
		return err
	}
	return nil
}
