package catalog

import (
	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/pkg"
)

// BrandRequest is the payload for creating or updating a brand.
type BrandRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	LogoPath string `json:"logo_path" binding:"omitempty,max=255"`
}

// ProductRequest is the payload for creating or updating a product.
type ProductRequest struct {
	Name      string  `json:"name" binding:"required,max=200"`
	BrandID   uint    `json:"brand_id" binding:"required,gt=0"`
	Category  string  `json:"category" binding:"required,max=50"`
	Price     float64 `json:"price" binding:"gte=0"`
	ImagePath string  `json:"image_path" binding:"omitempty,max=255"`
}

// BrandResponse is a brand with its logo resolved to an absolute URL.
type BrandResponse struct {
	domain.Brand
	LogoURL string `json:"logo_url"`
}

// ProductResponse is a product with its image resolved to an absolute URL.
type ProductResponse struct {
	domain.Product
	ImageURL string `json:"image_url"`
}

func newBrandResponse(b *domain.Brand, assetBase string) BrandResponse {
	return BrandResponse{Brand: *b, LogoURL: pkg.AssetURL(assetBase, b.LogoPath)}
}

func newProductResponse(p *domain.Product, assetBase string) ProductResponse {
	return ProductResponse{Product: *p, ImageURL: pkg.AssetURL(assetBase, p.ImagePath)}
}

func newBrandPage(page *domain.PageResult[domain.Brand], assetBase string) *domain.PageResult[BrandResponse] {
	items := make([]BrandResponse, len(page.Items))
	for i := range page.Items {
		items[i] = newBrandResponse(&page.Items[i], assetBase)
	}
	return &domain.PageResult[BrandResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}

func newProductPage(page *domain.PageResult[domain.Product], assetBase string) *domain.PageResult[ProductResponse] {
	items := make([]ProductResponse, len(page.Items))
	for i := range page.Items {
		items[i] = newProductResponse(&page.Items[i], assetBase)
	}
	return &domain.PageResult[ProductResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}
