package storefront

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wicaksana/atelier/internal/catalog"
	"github.com/wicaksana/atelier/internal/service"
	"github.com/wicaksana/atelier/internal/telemetry"
)

// ProductHandler serves the catalog endpoints.
type ProductHandler struct {
	products service.ProductService
	metrics  *telemetry.BusinessMetrics
}

func NewProductHandler(products service.ProductService, metrics *telemetry.BusinessMetrics) *ProductHandler {
	return &ProductHandler{products: products, metrics: metrics}
}

// List handles GET /api/products. Query parameters map onto the filter
// criteria; anything absent falls back to the match-all zero value.
func (h *ProductHandler) List(c echo.Context) error {
	criteria := parseCriteria(c)

	listing, err := h.products.ListProducts(c.Request().Context(), criteria)
	if err != nil {
		return err
	}

	if h.metrics != nil {
		h.metrics.CatalogSearches.WithLabelValues(dominantFilter(criteria)).Inc()
	}

	return c.JSON(http.StatusOK, echo.Map{
		"products": toProductList(listing.Products),
		"brands":   listing.Brands,
	})
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.products.GetPublishedProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	if h.metrics != nil {
		h.metrics.ProductViews.WithLabelValues(string(p.Type())).Inc()
	}
	return c.JSON(http.StatusOK, toProductJSON(p))
}

// Categories handles GET /api/categories.
func (h *ProductHandler) Categories(c echo.Context) error {
	categories, err := h.products.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	type categoryJSON struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	out := make([]categoryJSON, len(categories))
	for i, cat := range categories {
		out[i] = categoryJSON{ID: cat.ID, Name: cat.Name, Slug: cat.Slug}
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": out})
}

func parseCriteria(c echo.Context) catalog.Criteria {
	criteria := catalog.Criteria{
		Search:     c.QueryParam("q"),
		CategoryID: c.QueryParam("category"),
		Bucket:     catalog.PriceBucket(c.QueryParam("price")),
		Type:       catalog.TypeFilter(c.QueryParam("type")),
		Sort:       catalog.SortKey(c.QueryParam("sort")),
	}

	// brands may repeat (?brands=a&brands=b) or arrive comma-joined.
	for _, raw := range c.QueryParams()["brands"] {
		for _, brand := range strings.Split(raw, ",") {
			if brand = strings.TrimSpace(brand); brand != "" {
				criteria.Brands = append(criteria.Brands, brand)
			}
		}
	}

	return criteria
}

func dominantFilter(criteria catalog.Criteria) string {
	switch {
	case criteria.Search != "":
		return "search"
	case criteria.CategoryID != "" && criteria.CategoryID != "all":
		return "category"
	case len(criteria.Brands) > 0:
		return "brand"
	case criteria.Bucket != "" && criteria.Bucket != catalog.BucketAll:
		return "price"
	case criteria.Type != "" && criteria.Type != catalog.TypeAll:
		return "type"
	default:
		return "none"
	}
}
