package content

import "github.com/gin-gonic/gin"

// ContentModule implements the app.Module interface for blogs and banners.
type ContentModule struct {
	blogs   *BlogHandler
	banners *BannerHandler
}

// NewModule creates a new ContentModule with the given handlers.
// Panics if either handler is nil.
func NewModule(blogs *BlogHandler, banners *BannerHandler) *ContentModule {
	if blogs == nil || banners == nil {
		panic("content.NewModule: handlers must not be nil")
	}
	return &ContentModule{blogs: blogs, banners: banners}
}

// RegisterRoutes registers content API routes on the protected group.
func (m *ContentModule) RegisterRoutes(_, protected *gin.RouterGroup) {
	blogs := protected.Group("/blogs")
	blogs.GET("", m.blogs.List)
	blogs.POST("", m.blogs.Create)
	blogs.GET("/:id", m.blogs.Get)
	blogs.PUT("/:id", m.blogs.Update)
	blogs.PATCH("/:id/toggle", m.blogs.TogglePublished)
	blogs.DELETE("/:id", m.blogs.Delete)

	banners := protected.Group("/banners")
	banners.GET("", m.banners.List)
	banners.POST("", m.banners.Create)
	banners.PUT("/sequence", m.banners.Reorder)
	banners.GET("/:id", m.banners.Get)
	banners.PUT("/:id", m.banners.Update)
	banners.PATCH("/:id/toggle", m.banners.Toggle)
	banners.DELETE("/:id", m.banners.Delete)
}
