package domain

import "context"

// Blog content formats.
const (
	BlogFormatHTML     = "html"
	BlogFormatMarkdown = "markdown"
	BlogFormatPlain    = "plain"
)

// Blog represents a blog post shown on the storefront.
type Blog struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title"`
	Slug        string `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Format      string `gorm:"size:20;not null;default:html" json:"format"`
	Content     string `gorm:"type:text" json:"content"`
	CoverPath   string `gorm:"size:255" json:"cover_path"`
	IsPublished bool   `gorm:"not null;default:false" json:"is_published"`
}

// Banner represents a storefront banner. Banners are displayed in Sequence
// order; at least one banner must remain active at all times.
type Banner struct {
	BaseModel
	Title     string `gorm:"size:200;not null" json:"title"`
	ImagePath string `gorm:"size:255;not null" json:"image_path"`
	Sequence  int    `gorm:"not null;default:0" json:"sequence"`
	IsActive  bool   `gorm:"not null;default:true" json:"is_active"`
}

// BlogRepository defines the data access interface for blog posts.
type BlogRepository interface {
	Create(ctx context.Context, blog *Blog) error
	GetByID(ctx context.Context, id uint) (*Blog, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Blog], error)
	Update(ctx context.Context, blog *Blog) error
	Delete(ctx context.Context, id uint) error
}

// BannerRepository defines the data access interface for banners.
type BannerRepository interface {
	Create(ctx context.Context, banner *Banner) error
	GetByID(ctx context.Context, id uint) (*Banner, error)
	ListAll(ctx context.Context) ([]Banner, error)
	CountActive(ctx context.Context) (int64, error)
	Update(ctx context.Context, banner *Banner) error
	Delete(ctx context.Context, id uint) error
	UpdateSequence(ctx context.Context, orderedIDs []uint) error
}

// BlogService defines the business logic interface for blog posts.
type BlogService interface {
	ListBlogs(ctx context.Context, req PageRequest) (*PageResult[Blog], error)
	GetBlog(ctx context.Context, id uint) (*Blog, error)
	CreateBlog(ctx context.Context, blog *Blog) (*Blog, error)
	UpdateBlog(ctx context.Context, id uint, blog *Blog) (*Blog, error)
	TogglePublished(ctx context.Context, id uint) (*Blog, error)
	DeleteBlog(ctx context.Context, id uint) error
}

// BannerService defines the business logic interface for banners.
type BannerService interface {
	ListBanners(ctx context.Context) ([]Banner, error)
	GetBanner(ctx context.Context, id uint) (*Banner, error)
	CreateBanner(ctx context.Context, banner *Banner) (*Banner, error)
	UpdateBanner(ctx context.Context, id uint, banner *Banner) (*Banner, error)
	ToggleBanner(ctx context.Context, id uint) (*Banner, error)
	DeleteBanner(ctx context.Context, id uint) error
	Reorder(ctx context.Context, orderedIDs []uint) ([]Banner, error)
}
