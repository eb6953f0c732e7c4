package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
	"github.com/tradewind/storefront/internal/server/http/dto"
)

// CatalogHandler serves the product catalogue.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Create handles POST /api/admin/products.
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Category == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Images:      req.Images,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	created, err := h.facade.CreateProduct(c.Request.Context(), product, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(created))
}

// Get handles GET /api/products/:productID.
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "productID")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

// List handles GET /api/products.
func (h *CatalogHandler) List(c *gin.Context) {
	filter := model.ProductFilter{
		CategoryName: c.Query("category"),
		SortBy:       c.Query("sort"),
		Descending:   c.Query("order") == "desc",
	}
	filter.Page, filter.Limit = pageParams(c)

	if v := c.Query("price_min"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.PriceMin = &f
		}
	}
	if v := c.Query("price_max"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.PriceMax = &f
		}
	}
	if v := c.Query("in_stock"); v == "true" {
		one := 1
		filter.StockMin = &one
	}
	if v := c.Query("sold"); v != "" {
		sold := v == "true"
		filter.Sold = &sold
	}

	products, total, err := h.facade.Products(c.Request.Context(), filter)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, toProductResponse(&products[i]))
	}

	c.JSON(http.StatusOK, dto.ProductListResponse{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	})
}

func toProductResponse(p *model.Product) dto.ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Images:        images,
		Price:         p.Price,
		Stock:         p.Stock,
		Category:      p.CategoryName,
		AverageRating: p.AverageRating,
		ReviewCount:   p.ReviewCount,
		Sold:          p.Sold,
	}
}
