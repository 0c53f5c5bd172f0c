package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/sellaro/storefront/internal/domain/errors"
	"github.com/sellaro/storefront/internal/domain/model"
	"github.com/sellaro/storefront/internal/server/http/dto"
)

// CatalogHandler serves the public catalog and the admin CRUD surface.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Categories handles GET /api/v1/categories.
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		response = append(response, dto.CategoryResponse{ID: cat.ID, Name: cat.Name, Slug: cat.Slug})
	}
	c.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /api/v1/admin/categories.
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	category, err := h.facade.CreateCategory(c.Request.Context(), req.Name, req.Slug)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			c.Status(http.StatusConflict)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, dto.CategoryResponse{ID: category.ID, Name: category.Name, Slug: category.Slug})
}

// DeleteCategory handles DELETE /api/v1/admin/categories/:id.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

// Products handles GET /api/v1/products.
func (h *CatalogHandler) Products(c *gin.Context) {
	var categoryID int64
	if raw := c.Query("category_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		categoryID = parsed
	}

	products, err := h.facade.Products(c.Request.Context(), categoryID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(&p))
	}
	c.JSON(http.StatusOK, response)
}

// Product handles GET /api/v1/products/:slug.
func (h *CatalogHandler) Product(c *gin.Context) {
	product, variants, err := h.facade.ProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	detail := dto.ProductDetailResponse{
		Product:  toProductResponse(product),
		Variants: make([]dto.VariantResponse, 0, len(variants)),
	}
	for _, v := range variants {
		detail.Variants = append(detail.Variants, toVariantResponse(&v))
	}
	c.JSON(http.StatusOK, detail)
}

// CreateProduct handles POST /api/v1/admin/products.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product := productFromRequest(&req)
	created, err := h.facade.CreateProduct(c.Request.Context(), product)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			c.Status(http.StatusConflict)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(created))
}

// UpdateProduct handles PUT /api/v1/admin/products/:id.
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product := productFromRequest(&req)
	product.ID = id
	if err := h.facade.UpdateProduct(c.Request.Context(), product); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

// DeleteProduct handles DELETE /api/v1/admin/products/:id.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateVariant handles POST /api/v1/admin/variants.
func (h *CatalogHandler) CreateVariant(c *gin.Context) {
	var req dto.VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.ProductID == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	variant := variantFromRequest(&req)
	created, err := h.facade.CreateVariant(c.Request.Context(), variant)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, toVariantResponse(created))
}

// UpdateVariant handles PUT /api/v1/admin/variants/:id.
func (h *CatalogHandler) UpdateVariant(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	variant := variantFromRequest(&req)
	variant.ID = id
	if err := h.facade.UpdateVariant(c.Request.Context(), variant); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

// AdjustInventory handles PATCH /api/v1/admin/variants/:id/inventory.
func (h *CatalogHandler) AdjustInventory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.InventoryAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.AdjustInventory(c.Request.Context(), id, req.Delta); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInsufficientStock):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}

// DeleteVariant handles DELETE /api/v1/admin/variants/:id.
func (h *CatalogHandler) DeleteVariant(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.DeleteVariant(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

func productFromRequest(req *dto.ProductRequest) *model.Product {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return &model.Product{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Active:      active,
	}
}

func variantFromRequest(req *dto.VariantRequest) *model.Variant {
	return &model.Variant{
		ProductID:  req.ProductID,
		SKU:        req.SKU,
		Price:      req.Price,
		Cost:       req.Cost,
		Inventory:  req.Inventory,
		Properties: req.Properties,
	}
}

func toProductResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
	}
}

func toVariantResponse(v *model.Variant) dto.VariantResponse {
	return dto.VariantResponse{
		ID:         v.ID,
		ProductID:  v.ProductID,
		SKU:        v.SKU,
		Price:      v.Price,
		Inventory:  v.Inventory,
		Properties: v.Properties,
	}
}
