package content

import (
	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/pkg"
)

// BlogRequest is the payload for creating or updating a blog post.
type BlogRequest struct {
	Title     string `json:"title" binding:"required,max=200"`
	Slug      string `json:"slug" binding:"omitempty,max=200"`
	Format    string `json:"format" binding:"omitempty,oneof=html markdown plain"`
	Content   string `json:"content"`
	CoverPath string `json:"cover_path" binding:"omitempty,max=255"`
}

// BannerRequest is the payload for creating or updating a banner.
type BannerRequest struct {
	Title     string `json:"title" binding:"required,max=200"`
	ImagePath string `json:"image_path" binding:"required,max=255"`
}

// ReorderRequest carries the complete new banner display order.
type ReorderRequest struct {
	OrderedIDs []uint `json:"ordered_ids" binding:"required,min=1"`
}

// BlogResponse is a blog post with its cover resolved to an absolute URL.
type BlogResponse struct {
	domain.Blog
	CoverURL string `json:"cover_url"`
}

// BannerResponse is a banner with its image resolved to an absolute URL.
type BannerResponse struct {
	domain.Banner
	ImageURL string `json:"image_url"`
}

func newBlogResponse(b *domain.Blog, assetBase string) BlogResponse {
	return BlogResponse{Blog: *b, CoverURL: pkg.AssetURL(assetBase, b.CoverPath)}
}

func newBannerResponse(b *domain.Banner, assetBase string) BannerResponse {
	return BannerResponse{Banner: *b, ImageURL: pkg.AssetURL(assetBase, b.ImagePath)}
}

func newBlogPage(page *domain.PageResult[domain.Blog], assetBase string) *domain.PageResult[BlogResponse] {
	items := make([]BlogResponse, len(page.Items))
	for i := range page.Items {
		items[i] = newBlogResponse(&page.Items[i], assetBase)
	}
	return &domain.PageResult[BlogResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}

func newBannerList(banners []domain.Banner, assetBase string) []BannerResponse {
	items := make([]BannerResponse, len(banners))
	for i := range banners {
		items[i] = newBannerResponse(&banners[i], assetBase)
	}
	return items
}
