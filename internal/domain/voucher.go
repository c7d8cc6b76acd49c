package domain

import "time"

// DiscountType selects the voucher discount formula.
type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// Voucher is a discount code with eligibility rules and a discount formula.
// MaxUses, StartsAt and ExpiresAt are nil when the voucher has no usage cap
// or activity window.
type Voucher struct {
	Code           string
	DiscountType   DiscountType
	DiscountValue  float64
	MinOrderAmount float64
	MaxUses        *int
	UsedCount      int
	Active         bool
	StartsAt       *time.Time
	ExpiresAt      *time.Time
	CreatedAt      time.Time
}

// CreateVoucherParams contains parameters for creating a voucher.
type CreateVoucherParams struct {
	Code           string
	DiscountType   DiscountType
	DiscountValue  float64
	MinOrderAmount float64
	MaxUses        *int
	Active         bool
	StartsAt       *time.Time
	ExpiresAt      *time.Time
}

// UpdateVoucherParams contains parameters for updating a voucher.
// Pointer fields indicate optional updates (nil = no change).
type UpdateVoucherParams struct {
	DiscountType   *DiscountType
	DiscountValue  *float64
	MinOrderAmount *float64
	MaxUses        *int
	Active         *bool
	StartsAt       *time.Time
	ExpiresAt      *time.Time
}

// Voucher-specific errors.
var (
	ErrVoucherNotFound  = &Error{Code: ENOTFOUND, Message: "Voucher not found"}
	ErrVoucherExhausted = &Error{Code: ECONFLICT, Message: "Voucher usage limit reached"}
	ErrDuplicateVoucher = &Error{Code: ECONFLICT, Message: "Voucher code already exists"}
)
