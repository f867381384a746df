package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tyredepot/admin/internal/domain"
	"github.com/tyredepot/admin/internal/pkg"
)

// BrandHandler handles REST API requests for the brand resource.
type BrandHandler struct {
	svc       domain.BrandService
	assetBase string
}

// NewBrandHandler creates a new BrandHandler with the given service and
// public asset base URL.
func NewBrandHandler(svc domain.BrandService, assetBase string) *BrandHandler {
	return &BrandHandler{svc: svc, assetBase: assetBase}
}

// List handles GET /api/v1/brands.
func (h *BrandHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListBrands(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, newBrandPage(result, h.assetBase))
}

// Get handles GET /api/v1/brands/:id.
func (h *BrandHandler) Get(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	brand, err := h.svc.GetBrand(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, newBrandResponse(brand, h.assetBase))
}

// Create handles POST /api/v1/brands.
func (h *BrandHandler) Create(c *gin.Context) {
	var req BrandRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	brand, err := h.svc.CreateBrand(c.Request.Context(), &domain.Brand{
		Name:     req.Name,
		LogoPath: req.LogoPath,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    newBrandResponse(brand, h.assetBase),
	})
}

// Update handles PUT /api/v1/brands/:id.
func (h *BrandHandler) Update(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req BrandRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	brand, err := h.svc.UpdateBrand(c.Request.Context(), id, &domain.Brand{
		Name:     req.Name,
		LogoPath: req.LogoPath,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, newBrandResponse(brand, h.assetBase))
}

// Toggle handles PATCH /api/v1/brands/:id/toggle.
func (h *BrandHandler) Toggle(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	brand, err := h.svc.ToggleBrand(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, newBrandResponse(brand, h.assetBase))
}

// Delete handles DELETE /api/v1/brands/:id.
func (h *BrandHandler) Delete(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteBrand(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// ProductHandler handles REST API requests for the product resource.
type ProductHandler struct {
	svc       domain.ProductService
	assetBase string
}

// NewProductHandler creates a new ProductHandler with the given service and
// public asset base URL.
func NewProductHandler(svc domain.ProductService, assetBase string) *ProductHandler {
	return &ProductHandler{svc: svc, assetBase: assetBase}
}

// List handles GET /api/v1/products.
func (h *ProductHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListProducts(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, newProductPage(result, h.assetBase))
}

// Get handles GET /api/v1/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	product, err := h.svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, newProductResponse(product, h.assetBase))
}

// Create handles POST /api/v1/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	product, err := h.svc.CreateProduct(c.Request.Context(), &domain.Product{
		Name:      req.Name,
		BrandID:   req.BrandID,
		Category:  req.Category,
		Price:     req.Price,
		ImagePath: req.ImagePath,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    newProductResponse(product, h.assetBase),
	})
}

// Update handles PUT /api/v1/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req ProductRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	product, err := h.svc.UpdateProduct(c.Request.Context(), id, &domain.Product{
		Name:      req.Name,
		BrandID:   req.BrandID,
		Category:  req.Category,
		Price:     req.Price,
		ImagePath: req.ImagePath,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, newProductResponse(product, h.assetBase))
}

// Toggle handles PATCH /api/v1/products/:id/toggle.
func (h *ProductHandler) Toggle(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	product, err := h.svc.ToggleProduct(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, newProductResponse(product, h.assetBase))
}

// Delete handles DELETE /api/v1/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := pkg.PathID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.DeleteProduct(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
