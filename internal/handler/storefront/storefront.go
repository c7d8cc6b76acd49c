// Package storefront holds the public JSON API handlers.
package storefront

import (
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/wicaksana/atelier/internal/catalog"
	"github.com/wicaksana/atelier/internal/domain"
)

const sessionCookie = "atelier_session"

// sessionID returns the cart session for this client, minting a cookie for
// first-time visitors.
func sessionID(c echo.Context) string {
	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int((30 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// productJSON is the wire shape of a catalog product.
type productJSON struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Brand           string   `json:"brand,omitempty"`
	Price           *float64 `json:"price"`
	EffectivePrice  *float64 `json:"effective_price"`
	DiscountPercent int      `json:"discount_percent"`
	StockQuantity   int      `json:"stock_quantity"`
	CategoryID      string   `json:"category_id,omitempty"`
	Colors          []string `json:"colors,omitempty"`
	Sizes           []string `json:"sizes,omitempty"`
	ProductType     string   `json:"product_type"`
	CreatedAt       *string  `json:"created_at,omitempty"`
}

func toProductJSON(p domain.Product) productJSON {
	out := productJSON{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Brand:           p.Brand,
		Price:           finiteOrNil(p.Price),
		EffectivePrice:  finiteOrNil(catalog.EffectivePrice(p)),
		DiscountPercent: p.DiscountPercent,
		StockQuantity:   p.StockQuantity,
		CategoryID:      p.CategoryID,
		Colors:          p.Colors,
		Sizes:           p.Sizes,
		ProductType:     string(p.Type()),
	}
	if !p.CreatedAt.IsZero() {
		s := p.CreatedAt.Format(time.RFC3339)
		out.CreatedAt = &s
	}
	return out
}

func toProductList(products []domain.Product) []productJSON {
	out := make([]productJSON, len(products))
	for i, p := range products {
		out[i] = toProductJSON(p)
	}
	return out
}

// finiteOrNil keeps malformed prices out of the JSON encoder, which cannot
// represent NaN or infinities.
func finiteOrNil(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
