package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicaksana/atelier/internal/domain"
)

type mockCartService struct {
	getCartFunc func(ctx context.Context, sessionID string) (*domain.CartSummary, error)
	addItemFunc func(ctx context.Context, sessionID, productID string, delta int, color, size string) (*domain.CartSummary, error)
	setQtyFunc  func(ctx context.Context, sessionID, itemID string, quantity int) (*domain.CartSummary, error)
	removeFunc  func(ctx context.Context, sessionID, itemID string) (*domain.CartSummary, error)
	clearFunc   func(ctx context.Context, sessionID string) error
	lastSession string
}

func emptySummary() *domain.CartSummary {
	return &domain.CartSummary{
		Cart:  domain.Cart{ID: "cart-1", UpdatedAt: time.Now()},
		Items: []domain.CartItem{},
	}
}

func (m *mockCartService) GetCart(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
	m.lastSession = sessionID
	if m.getCartFunc != nil {
		return m.getCartFunc(ctx, sessionID)
	}
	return emptySummary(), nil
}

func (m *mockCartService) AddItem(ctx context.Context, sessionID, productID string, delta int, color, size string) (*domain.CartSummary, error) {
	m.lastSession = sessionID
	if m.addItemFunc != nil {
		return m.addItemFunc(ctx, sessionID, productID, delta, color, size)
	}
	return emptySummary(), nil
}

func (m *mockCartService) SetItemQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*domain.CartSummary, error) {
	m.lastSession = sessionID
	if m.setQtyFunc != nil {
		return m.setQtyFunc(ctx, sessionID, itemID, quantity)
	}
	return emptySummary(), nil
}

func (m *mockCartService) RemoveItem(ctx context.Context, sessionID, itemID string) (*domain.CartSummary, error) {
	m.lastSession = sessionID
	if m.removeFunc != nil {
		return m.removeFunc(ctx, sessionID, itemID)
	}
	return emptySummary(), nil
}

func (m *mockCartService) ClearCart(ctx context.Context, sessionID string) error {
	m.lastSession = sessionID
	if m.clearFunc != nil {
		return m.clearFunc(ctx, sessionID)
	}
	return nil
}

func TestCartHandler_Get(t *testing.T) {
	t.Run("mints a session cookie for first-time visitors", func(t *testing.T) {
		mock := &mockCartService{}
		e := newTestServer()
		e.GET("/api/cart", NewCartHandler(mock).Get)

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, mock.lastSession)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, sessionCookie, cookies[0].Name)
		assert.Equal(t, mock.lastSession, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("reuses an existing session cookie", func(t *testing.T) {
		mock := &mockCartService{}
		e := newTestServer()
		e.GET("/api/cart", NewCartHandler(mock).Get)

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "session-42"})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "session-42", mock.lastSession)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("computes line totals from the effective price", func(t *testing.T) {
		mock := &mockCartService{
			getCartFunc: func(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
				return &domain.CartSummary{
					Cart: domain.Cart{ID: "cart-1"},
					Items: []domain.CartItem{{
						ID:       "item-1",
						Product:  domain.Product{ID: "p1", Name: "Batik Tote", Price: 100_000, DiscountPercent: 10},
						Quantity: 2,
					}},
					Subtotal:  180_000,
					ItemCount: 2,
				}, nil
			},
		}

		e := newTestServer()
		e.GET("/api/cart", NewCartHandler(mock).Get)

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"line_total":180000`)
		assert.Contains(t, rec.Body.String(), `"subtotal":180000`)
	})
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("missing quantity defaults to one", func(t *testing.T) {
		var gotDelta int
		mock := &mockCartService{
			addItemFunc: func(ctx context.Context, sessionID, productID string, delta int, color, size string) (*domain.CartSummary, error) {
				gotDelta = delta
				return emptySummary(), nil
			},
		}

		e := newTestServer()
		e.POST("/api/cart/items", NewCartHandler(mock).AddItem)

		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"product_id":"p1"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, gotDelta)
	})

	t.Run("missing product_id is a validation error", func(t *testing.T) {
		e := newTestServer()
		e.POST("/api/cart/items", NewCartHandler(&mockCartService{}).AddItem)

		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"quantity":2}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "product_id")
	})

	t.Run("variant selection passes through", func(t *testing.T) {
		var gotColor, gotSize string
		mock := &mockCartService{
			addItemFunc: func(ctx context.Context, sessionID, productID string, delta int, color, size string) (*domain.CartSummary, error) {
				gotColor, gotSize = color, size
				return emptySummary(), nil
			},
		}

		e := newTestServer()
		e.POST("/api/cart/items", NewCartHandler(mock).AddItem)

		body := `{"product_id":"p1","quantity":2,"color":"indigo","size":"M"}`
		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "indigo", gotColor)
		assert.Equal(t, "M", gotSize)
	})

	t.Run("out of stock maps to 409", func(t *testing.T) {
		mock := &mockCartService{
			addItemFunc: func(ctx context.Context, sessionID, productID string, delta int, color, size string) (*domain.CartSummary, error) {
				return nil, domain.ErrOutOfStock
			},
		}

		e := newTestServer()
		e.POST("/api/cart/items", NewCartHandler(mock).AddItem)

		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"product_id":"p1","quantity":99}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestCartHandler_UpdateItem(t *testing.T) {
	var gotItem string
	var gotQty int
	mock := &mockCartService{
		setQtyFunc: func(ctx context.Context, sessionID, itemID string, quantity int) (*domain.CartSummary, error) {
			gotItem, gotQty = itemID, quantity
			return emptySummary(), nil
		},
	}

	e := newTestServer()
	e.PATCH("/api/cart/items/:id", NewCartHandler(mock).UpdateItem)

	req := httptest.NewRequest(http.MethodPatch, "/api/cart/items/item-7", strings.NewReader(`{"quantity":5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "item-7", gotItem)
	assert.Equal(t, 5, gotQty)
}

func TestCartHandler_Clear(t *testing.T) {
	cleared := false
	mock := &mockCartService{
		clearFunc: func(ctx context.Context, sessionID string) error {
			cleared = true
			return nil
		},
	}

	e := newTestServer()
	e.DELETE("/api/cart", NewCartHandler(mock).Clear)

	req := httptest.NewRequest(http.MethodDelete, "/api/cart", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, cleared)
}
