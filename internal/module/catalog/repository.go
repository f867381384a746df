package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/pkg"
)

// Allowed fields for sorting and filtering in List queries.
var (
	brandSortFields   = []string{"id", "name", "created_at"}
	brandFilterFields = []string{"is_active"}
	brandSearchFields = []string{"name"}

	productSortFields   = []string{"id", "name", "category", "price", "created_at"}
	productFilterFields = []string{"brand_id", "category", "is_active"}
	productSearchFields = []string{"name"}
)

// brandRepository implements domain.BrandRepository using GORM.
type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository creates a new BrandRepository backed by the given GORM database.
func NewBrandRepository(db *gorm.DB) domain.BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	if err := r.db.WithContext(ctx).Create(brand).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *brandRepository) GetByID(ctx context.Context, id uint) (*domain.Brand, error) {
	var brand domain.Brand
	if err := r.db.WithContext(ctx).First(&brand, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &brand, nil
}

func (r *brandRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Brand], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Brand{}).
		Scopes(
			pkg.Filter(req, brandFilterFields),
			pkg.Search(req, brandSearchFields),
		)

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var brands []domain.Brand
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, brandSortFields),
	).Find(&brands).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(brands, total, req), nil
}

func (r *brandRepository) Update(ctx context.Context, brand *domain.Brand) error {
	if err := r.db.WithContext(ctx).Save(brand).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *brandRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Brand{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// productRepository implements domain.ProductRepository using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new ProductRepository backed by the given GORM database.
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Product], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Product{}).
		Scopes(
			pkg.Filter(req, productFilterFields),
			pkg.Search(req, productSearchFields),
		)

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var products []domain.Product
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, productSortFields),
	).Find(&products).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(products, total, req), nil
}

func (r *productRepository) CountByBrand(ctx context.Context, brandID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("brand_id = ?", brandID).Count(&count).Error; err != nil {
		return 0, pkg.MapDBError(err)
	}
	return count, nil
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Product{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
