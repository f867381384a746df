package content

import (
	"context"

	"gorm.io/gorm"

	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/pkg"
)

// Allowed fields for sorting and filtering in blog List queries.
var (
	blogSortFields   = []string{"id", "title", "slug", "created_at", "updated_at"}
	blogFilterFields = []string{"format", "is_published"}
	blogSearchFields = []string{"title", "slug"}
)

// blogRepository implements domain.BlogRepository using GORM.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new BlogRepository backed by the given GORM database.
func NewBlogRepository(db *gorm.DB) domain.BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	if err := r.db.WithContext(ctx).Create(blog).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id uint) (*domain.Blog, error) {
	var blog domain.Blog
	if err := r.db.WithContext(ctx).First(&blog, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &blog, nil
}

func (r *blogRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Blog], error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&domain.Blog{}).
		Scopes(
			pkg.Filter(req, blogFilterFields),
			pkg.Search(req, blogSearchFields),
		)

	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var blogs []domain.Blog
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, blogSortFields),
	).Find(&blogs).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(blogs, total, req), nil
}

func (r *blogRepository) Update(ctx context.Context, blog *domain.Blog) error {
	if err := r.db.WithContext(ctx).Save(blog).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Blog{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// bannerRepository implements domain.BannerRepository using GORM.
type bannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository creates a new BannerRepository backed by the given GORM database.
func NewBannerRepository(db *gorm.DB) domain.BannerRepository {
	return &bannerRepository{db: db}
}

func (r *bannerRepository) Create(ctx context.Context, banner *domain.Banner) error {
	if err := r.db.WithContext(ctx).Create(banner).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *bannerRepository) GetByID(ctx context.Context, id uint) (*domain.Banner, error) {
	var banner domain.Banner
	if err := r.db.WithContext(ctx).First(&banner, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &banner, nil
}

// ListAll returns every banner in display order.
func (r *bannerRepository) ListAll(ctx context.Context) ([]domain.Banner, error) {
	var banners []domain.Banner
	if err := r.db.WithContext(ctx).Order("sequence asc, id asc").Find(&banners).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return banners, nil
}

func (r *bannerRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Banner{}).
		Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, pkg.MapDBError(err)
	}
	return count, nil
}

func (r *bannerRepository) Update(ctx context.Context, banner *domain.Banner) error {
	if err := r.db.WithContext(ctx).Save(banner).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *bannerRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Banner{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateSequence rewrites the display order in one transaction. Position in
// orderedIDs becomes the banner's sequence; an unknown id aborts the whole
// update.
func (r *bannerRepository) UpdateSequence(ctx context.Context, orderedIDs []uint) error {
	return pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			result := tx.Model(&domain.Banner{}).Where("id = ?", id).Update("sequence", i)
			if result.Error != nil {
				return pkg.MapDBError(result.Error)
			}
			if result.RowsAffected == 0 {
				return domain.ErrNotFound
			}
		}
		return nil
	})
}
