package admin

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wicaksana/atelier/internal/domain"
	"github.com/wicaksana/atelier/internal/service"
)

// VoucherHandler manages discount codes.
type VoucherHandler struct {
	vouchers service.VoucherService
}

func NewVoucherHandler(vouchers service.VoucherService) *VoucherHandler {
	return &VoucherHandler{vouchers: vouchers}
}

type voucherBody struct {
	Code           string     `json:"code"`
	DiscountType   *string    `json:"discount_type"`
	DiscountValue  *float64   `json:"discount_value"`
	MinOrderAmount *float64   `json:"min_order_amount"`
	MaxUses        *int       `json:"max_uses"`
	Active         *bool      `json:"active"`
	StartsAt       *time.Time `json:"starts_at"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

// List handles GET /admin/vouchers.
func (h *VoucherHandler) List(c echo.Context) error {
	vouchers, err := h.vouchers.ListVouchers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"vouchers": vouchers})
}

// Get handles GET /admin/vouchers/:code.
func (h *VoucherHandler) Get(c echo.Context) error {
	v, err := h.vouchers.GetVoucher(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// Create handles POST /admin/vouchers.
func (h *VoucherHandler) Create(c echo.Context) error {
	var req voucherBody
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("admin.voucher.create", "malformed request body")
	}

	params := domain.CreateVoucherParams{
		Code:      req.Code,
		MaxUses:   req.MaxUses,
		Active:    true,
		StartsAt:  req.StartsAt,
		ExpiresAt: req.ExpiresAt,
	}
	if req.DiscountType != nil {
		params.DiscountType = domain.DiscountType(*req.DiscountType)
	}
	if req.DiscountValue != nil {
		params.DiscountValue = *req.DiscountValue
	}
	if req.MinOrderAmount != nil {
		params.MinOrderAmount = *req.MinOrderAmount
	}
	if req.Active != nil {
		params.Active = *req.Active
	}

	v, err := h.vouchers.CreateVoucher(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, v)
}

// Update handles PATCH /admin/vouchers/:code.
func (h *VoucherHandler) Update(c echo.Context) error {
	var req voucherBody
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("admin.voucher.update", "malformed request body")
	}

	params := domain.UpdateVoucherParams{
		DiscountValue:  req.DiscountValue,
		MinOrderAmount: req.MinOrderAmount,
		MaxUses:        req.MaxUses,
		Active:         req.Active,
		StartsAt:       req.StartsAt,
		ExpiresAt:      req.ExpiresAt,
	}
	if req.DiscountType != nil {
		dt := domain.DiscountType(*req.DiscountType)
		params.DiscountType = &dt
	}

	if err := h.vouchers.UpdateVoucher(c.Request().Context(), c.Param("code"), params); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /admin/vouchers/:code.
func (h *VoucherHandler) Delete(c echo.Context) error {
	if err := h.vouchers.DeleteVoucher(c.Request().Context(), c.Param("code")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
