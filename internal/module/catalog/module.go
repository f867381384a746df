package catalog

import "github.com/gin-gonic/gin"

// CatalogModule implements the app.Module interface for brands and products.
type CatalogModule struct {
	brands   *BrandHandler
	products *ProductHandler
}

// NewModule creates a new CatalogModule with the given handlers.
// Panics if either handler is nil.
func NewModule(brands *BrandHandler, products *ProductHandler) *CatalogModule {
	if brands == nil || products == nil {
		panic("catalog.NewModule: handlers must not be nil")
	}
	return &CatalogModule{brands: brands, products: products}
}

// RegisterRoutes registers catalog API routes on the protected group.
func (m *CatalogModule) RegisterRoutes(_, protected *gin.RouterGroup) {
	brands := protected.Group("/brands")
	brands.GET("", m.brands.List)
	brands.POST("", m.brands.Create)
	brands.GET("/:id", m.brands.Get)
	brands.PUT("/:id", m.brands.Update)
	brands.PATCH("/:id/toggle", m.brands.Toggle)
	brands.DELETE("/:id", m.brands.Delete)

	products := protected.Group("/products")
	products.GET("", m.products.List)
	products.POST("", m.products.Create)
	products.GET("/:id", m.products.Get)
	products.PUT("/:id", m.products.Update)
	products.PATCH("/:id/toggle", m.products.Toggle)
	products.DELETE("/:id", m.products.Delete)
}
