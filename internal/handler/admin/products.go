// Package admin holds the token-gated management API handlers.
package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wicaksana/atelier/internal/domain"
	"github.com/wicaksana/atelier/internal/schema"
	"github.com/wicaksana/atelier/internal/service"
)

// ProductHandler manages the catalog.
type ProductHandler struct {
	products service.ProductService
}

func NewProductHandler(products service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type productBody struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Brand           *string  `json:"brand"`
	Price           *float64 `json:"price"`
	DiscountPercent *int     `json:"discount_percent"`
	StockQuantity   *int     `json:"stock_quantity"`
	CategoryID      *string  `json:"category_id"`
	Colors          []string `json:"colors"`
	Sizes           []string `json:"sizes"`
	ProductType     *string  `json:"product_type"`
	Published       *bool    `json:"published"`
}

// List handles GET /admin/products. Unlike the storefront, drafts are
// included.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.products.ListAllProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"products": products})
}

// Get handles GET /admin/products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.products.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Create handles POST /admin/products.
func (h *ProductHandler) Create(c echo.Context) error {
	var req productBody
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("admin.product.create", "malformed request body")
	}

	params := domain.CreateProductParams{
		Colors: req.Colors,
		Sizes:  req.Sizes,
	}
	if req.Name != nil {
		params.Name = *req.Name
	}
	if req.Description != nil {
		params.Description = *req.Description
	}
	if req.Brand != nil {
		params.Brand = *req.Brand
	}
	if req.Price != nil {
		params.Price = *req.Price
	}
	if req.DiscountPercent != nil {
		params.DiscountPercent = *req.DiscountPercent
	}
	if req.StockQuantity != nil {
		params.StockQuantity = *req.StockQuantity
	}
	if req.CategoryID != nil {
		params.CategoryID = *req.CategoryID
	}
	if req.ProductType != nil {
		params.ProductType = domain.ProductType(*req.ProductType)
	}
	if req.Published != nil {
		params.Published = *req.Published
	}

	p, err := h.products.CreateProduct(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// Update handles PATCH /admin/products/:id. Absent fields are left alone.
func (h *ProductHandler) Update(c echo.Context) error {
	var req productBody
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("admin.product.update", "malformed request body")
	}

	params := domain.UpdateProductParams{
		Name:            req.Name,
		Description:     req.Description,
		Brand:           req.Brand,
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		StockQuantity:   req.StockQuantity,
		CategoryID:      req.CategoryID,
		Colors:          req.Colors,
		Sizes:           req.Sizes,
		Published:       req.Published,
	}
	if req.ProductType != nil {
		pt := domain.ProductType(*req.ProductType)
		params.ProductType = &pt
	}

	if err := h.products.UpdateProduct(c.Request().Context(), c.Param("id"), params); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /admin/products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.products.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Import handles POST /admin/products/import: a JSON array of raw rows from
// an exported catalog. Valid rows are written; rejected rows come back with
// per-field reasons keyed by row index.
func (h *ProductHandler) Import(c echo.Context) error {
	var rows []schema.ProductRow
	if err := c.Bind(&rows); err != nil {
		return domain.Invalid("admin.product.import", "malformed request body")
	}
	if len(rows) == 0 {
		return domain.Invalid("admin.product.import", "no rows to import")
	}

	result, err := h.products.ImportProducts(c.Request().Context(), rows)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"imported": result.Imported,
		"rejected": result.Rejected,
	})
}
