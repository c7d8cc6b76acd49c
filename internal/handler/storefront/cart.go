package storefront

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wicaksana/atelier/internal/catalog"
	"github.com/wicaksana/atelier/internal/domain"
	"github.com/wicaksana/atelier/internal/service"
)

// CartHandler serves the session cart endpoints.
type CartHandler struct {
	carts service.CartService
}

func NewCartHandler(carts service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type cartItemJSON struct {
	ID        string      `json:"id"`
	Product   productJSON `json:"product"`
	Quantity  int         `json:"quantity"`
	Color     string      `json:"color,omitempty"`
	Size      string      `json:"size,omitempty"`
	LineTotal *float64    `json:"line_total"`
}

type cartJSON struct {
	Items     []cartItemJSON `json:"items"`
	Subtotal  float64        `json:"subtotal"`
	ItemCount int            `json:"item_count"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func toCartJSON(summary *domain.CartSummary) cartJSON {
	out := cartJSON{
		Items:     make([]cartItemJSON, len(summary.Items)),
		Subtotal:  summary.Subtotal,
		ItemCount: summary.ItemCount,
		UpdatedAt: summary.Cart.UpdatedAt,
	}
	for i, item := range summary.Items {
		out.Items[i] = cartItemJSON{
			ID:        item.ID,
			Product:   toProductJSON(item.Product),
			Quantity:  item.Quantity,
			Color:     item.Color,
			Size:      item.Size,
			LineTotal: finiteOrNil(catalog.EffectivePrice(item.Product) * float64(item.Quantity)),
		}
	}
	return out
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(c echo.Context) error {
	summary, err := h.carts.GetCart(c.Request().Context(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartJSON(summary))
}

// AddItem handles POST /api/cart/items. Quantity is a delta: positive adds,
// negative decrements, and decrementing a line to zero removes it.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
		Color     string `json:"color"`
		Size      string `json:"size"`
	}
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("cart.add", "malformed request body")
	}
	if req.ProductID == "" {
		return domain.NewValidationError("cart.add", "product_id", "is required")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	summary, err := h.carts.AddItem(c.Request().Context(), sessionID(c), req.ProductID, req.Quantity, req.Color, req.Size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartJSON(summary))
}

// UpdateItem handles PATCH /api/cart/items/:id with an absolute quantity.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("cart.update", "malformed request body")
	}

	summary, err := h.carts.SetItemQuantity(c.Request().Context(), sessionID(c), c.Param("id"), req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartJSON(summary))
}

// RemoveItem handles DELETE /api/cart/items/:id.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	summary, err := h.carts.RemoveItem(c.Request().Context(), sessionID(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartJSON(summary))
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.carts.ClearCart(c.Request().Context(), sessionID(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
