// Package voucher implements the read-only discount eligibility and amount
// computation. It deliberately does not touch used_count: redemption and its
// atomicity live in the storage layer, this package only answers "would this
// code apply to this subtotal right now, and for how much".
package voucher

import (
	"time"

	"github.com/wicaksana/atelier/internal/domain"
)

// Reason explains why a voucher was not applied. The empty reason means the
// voucher is redeemable. Rejection is data, not an error: callers surface a
// specific message instead of silently ignoring the code.
type Reason string

const (
	ReasonInactive     Reason = "inactive"
	ReasonExpired      Reason = "expired"
	ReasonUsageCapped  Reason = "usage-capped"
	ReasonBelowMinimum Reason = "below-minimum"
)

// Result is the outcome of applying a voucher to a subtotal.
type Result struct {
	DiscountAmount float64
	Total          float64
	Reason         Reason
}

// Redeemable reports whether the result allowed a discount.
func (r Result) Redeemable() bool {
	return r.Reason == ""
}

// Apply determines whether v is currently redeemable against the subtotal
// and computes the discounted total. The final total is never negative: a
// fixed discount larger than the subtotal is clamped to the subtotal.
//
// A voucher whose activity window has not started yet reports
// ReasonInactive, same as one switched off by the admin.
func Apply(subtotal float64, v domain.Voucher, now time.Time) Result {
	if reason := eligibility(subtotal, v, now); reason != "" {
		return Result{Total: subtotal, Reason: reason}
	}

	var discount float64
	switch v.DiscountType {
	case domain.DiscountPercent:
		discount = subtotal * v.DiscountValue / 100
	case domain.DiscountFixed:
		discount = v.DiscountValue
	}

	if discount < 0 {
		discount = 0
	}
	if discount > subtotal {
		discount = subtotal
	}

	return Result{
		DiscountAmount: discount,
		Total:          subtotal - discount,
	}
}

func eligibility(subtotal float64, v domain.Voucher, now time.Time) Reason {
	if !v.Active {
		return ReasonInactive
	}
	if v.StartsAt != nil && now.Before(*v.StartsAt) {
		return ReasonInactive
	}
	if v.ExpiresAt != nil && !now.Before(*v.ExpiresAt) {
		return ReasonExpired
	}
	if v.MaxUses != nil && v.UsedCount >= *v.MaxUses {
		return ReasonUsageCapped
	}
	if subtotal < v.MinOrderAmount {
		return ReasonBelowMinimum
	}
	return ""
}
