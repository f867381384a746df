package content

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/pkg"
)

// BlogHandler handles REST API requests for the blog resource.
type BlogHandler struct {
	svc       domain.BlogService
	assetBase string
}

// NewBlogHandler creates a new BlogHandler with the given service and public
// asset base URL.
func NewBlogHandler(svc domain.BlogService, assetBase string) *BlogHandler {
	return &BlogHandler{svc: svc, assetBase: assetBase}
}

// List handles GET /api/v1/blogs.
func (h *BlogHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListBlogs(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, newBlogPage(result, h.assetBase))
}

// Get handles GET /api/v1/blogs/:id.
func (h *BlogHandler) Get(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	blog, err := h.svc.GetBlog(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, newBlogResponse(blog, h.assetBase))
}

// Create handles POST /api/v1/blogs.
func (h *BlogHandler) Create(c *gin.Context) {
	var req BlogRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	blog, err := h.svc.CreateBlog(c.Request.Context(), &domain.Blog{
		Title:     req.Title,
		Slug:      req.Slug,
		Format:    req.Format,
		Content:   req.Content,
		CoverPath: req.CoverPath,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    newBlogResponse(blog, h.assetBase),
	})
}

// Update handles PUT /api/v1/blogs/:id.
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req BlogRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	blog, err := h.svc.UpdateBlog(c.Request.Context(), id, &domain.Blog{
		Title:     req.Title,
		Slug:      req.Slug,
		Format:    req.Format,
		Content:   req.Content,
		CoverPath: req.CoverPath,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, newBlogResponse(blog, h.assetBase))
}

// TogglePublished handles PATCH /api/v1/blogs/:id/toggle.
func (h *BlogHandler) TogglePublished(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	blog, err := h.svc.TogglePublished(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, newBlogResponse(blog, h.assetBase))
}

// Delete handles DELETE /api/v1/blogs/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteBlog(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// BannerHandler handles REST API requests for the banner resource.
type BannerHandler struct {
	svc       domain.BannerService
	assetBase string
}

// NewBannerHandler creates a new BannerHandler with the given service and
// public asset base URL.
func NewBannerHandler(svc domain.BannerService, assetBase string) *BannerHandler {
	return &BannerHandler{svc: svc, assetBase: assetBase}
}

// List handles GET /api/v1/banners. Banners are few and always shown
// together, so the list is not paginated.
func (h *BannerHandler) List(c *gin.Context) {
	banners, err := h.svc.ListBanners(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, newBannerList(banners, h.assetBase))
}

// Get handles GET /api/v1/banners/:id.
func (h *BannerHandler) Get(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	banner, err := h.svc.GetBanner(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, newBannerResponse(banner, h.assetBase))
}

// Create handles POST /api/v1/banners.
func (h *BannerHandler) Create(c *gin.Context) {
	var req BannerRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	banner, err := h.svc.CreateBanner(c.Request.Context(), &domain.Banner{
		Title:     req.Title,
		ImagePath: req.ImagePath,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    newBannerResponse(banner, h.assetBase),
	})
}

// Update handles PUT /api/v1/banners/:id.
func (h *BannerHandler) Update(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req BannerRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	banner, err := h.svc.UpdateBanner(c.Request.Context(), id, &domain.Banner{
		Title:     req.Title,
		ImagePath: req.ImagePath,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, newBannerResponse(banner, h.assetBase))
}

// Toggle handles PATCH /api/v1/banners/:id/toggle.
func (h *BannerHandler) Toggle(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	banner, err := h.svc.ToggleBanner(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, newBannerResponse(banner, h.assetBase))
}

// Delete handles DELETE /api/v1/banners/:id.
func (h *BannerHandler) Delete(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteBanner(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// Reorder handles PUT /api/v1/banners/sequence.
func (h *BannerHandler) Reorder(c *gin.Context) {
	var req ReorderRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	banners, err := h.svc.Reorder(c.Request.Context(), req.OrderedIDs)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, newBannerList(banners, h.assetBase))
}
