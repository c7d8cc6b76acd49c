package storefront

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wicaksana/atelier/internal/domain"
	"github.com/wicaksana/atelier/internal/service"
)

// CheckoutHandler serves checkout and the voucher preview.
type CheckoutHandler struct {
	checkout service.CheckoutService
	carts    service.CartService
	vouchers service.VoucherService
}

func NewCheckoutHandler(checkout service.CheckoutService, carts service.CartService, vouchers service.VoucherService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, carts: carts, vouchers: vouchers}
}

// Checkout handles POST /api/checkout.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var req struct {
		VoucherCode string `json:"voucher_code"`
	}
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("checkout", "malformed request body")
	}

	result, err := h.checkout.Checkout(c.Request().Context(), sessionID(c), req.VoucherCode)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"order": orderJSON(result.Order),
		"payment": echo.Map{
			"client_secret": result.PaymentClientSecret,
		},
	})
}

// GetOrder handles GET /api/orders/:id.
func (h *CheckoutHandler) GetOrder(c echo.Context) error {
	order, err := h.checkout.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if order.SessionID != sessionID(c) {
		return domain.ErrOrderNotFound
	}
	return c.JSON(http.StatusOK, orderJSON(order))
}

// PreviewVoucher handles POST /api/vouchers/preview. The subtotal comes from
// the caller's cart, never from the request, so a client cannot preview
// against a fabricated amount. Rejection is part of the payload, not an
// error status.
func (h *CheckoutHandler) PreviewVoucher(c echo.Context) error {
	var req struct {
		Code string `json:"code"`
	}
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("voucher.preview", "malformed request body")
	}
	if req.Code == "" {
		return domain.NewValidationError("voucher.preview", "code", "is required")
	}

	summary, err := h.carts.GetCart(c.Request().Context(), sessionID(c))
	if err != nil {
		return err
	}

	result, err := h.vouchers.Preview(c.Request().Context(), req.Code, summary.Subtotal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"redeemable":      result.Redeemable(),
		"reason":          string(result.Reason),
		"discount_amount": result.DiscountAmount,
		"total":           result.Total,
	})
}

func orderJSON(order domain.Order) echo.Map {
	items := make([]echo.Map, len(order.Items))
	for i, item := range order.Items {
		items[i] = echo.Map{
			"product_id": item.ProductID,
			"name":       item.Name,
			"unit_price": item.UnitPrice,
			"quantity":   item.Quantity,
			"color":      item.Color,
			"size":       item.Size,
		}
	}
	return echo.Map{
		"id":              order.ID,
		"items":           items,
		"subtotal":        order.Subtotal,
		"discount_amount": order.DiscountAmount,
		"total":           order.Total,
		"voucher_code":    order.VoucherCode,
		"status":          string(order.Status),
		"created_at":      order.CreatedAt,
	}
}
