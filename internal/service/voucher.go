package service

import (
	"context"
	"strings"
	"time"

	"github.com/wicaksana/atelier/internal/domain"
	"github.com/wicaksana/atelier/internal/repository"
	"github.com/wicaksana/atelier/internal/telemetry"
	"github.com/wicaksana/atelier/internal/voucher"
)

// VoucherService provides voucher preview and admin management. Preview is
// read-only; the actual redemption happens inside checkout so used_count only
// moves when an order is placed.
type VoucherService interface {
	// Preview applies the voucher to a subtotal without redeeming it.
	Preview(ctx context.Context, code string, subtotal float64) (voucher.Result, error)

	ListVouchers(ctx context.Context) ([]domain.Voucher, error)
	GetVoucher(ctx context.Context, code string) (domain.Voucher, error)
	CreateVoucher(ctx context.Context, params domain.CreateVoucherParams) (domain.Voucher, error)
	UpdateVoucher(ctx context.Context, code string, params domain.UpdateVoucherParams) error
	DeleteVoucher(ctx context.Context, code string) error
}

type voucherService struct {
	repo    repository.Querier
	metrics *telemetry.BusinessMetrics
	now     func() time.Time
}

// NewVoucherService creates the voucher service. metrics may be nil in tests.
func NewVoucherService(repo repository.Querier, metrics *telemetry.BusinessMetrics) VoucherService {
	return &voucherService{repo: repo, metrics: metrics, now: time.Now}
}

func (s *voucherService) Preview(ctx context.Context, code string, subtotal float64) (voucher.Result, error) {
	v, err := s.repo.GetVoucherByCode(ctx, code)
	if err != nil {
		return voucher.Result{}, err
	}

	result := voucher.Apply(subtotal, v, s.now())
	if !result.Redeemable() && s.metrics != nil {
		s.metrics.VoucherRejections.WithLabelValues(string(result.Reason)).Inc()
	}
	return result, nil
}

func (s *voucherService) ListVouchers(ctx context.Context) ([]domain.Voucher, error) {
	return s.repo.ListVouchers(ctx)
}

func (s *voucherService) GetVoucher(ctx context.Context, code string) (domain.Voucher, error) {
	return s.repo.GetVoucherByCode(ctx, code)
}

func (s *voucherService) CreateVoucher(ctx context.Context, params domain.CreateVoucherParams) (domain.Voucher, error) {
	if err := validateVoucherParams(params); err != nil {
		return domain.Voucher{}, err
	}
	return s.repo.CreateVoucher(ctx, params)
}

func (s *voucherService) UpdateVoucher(ctx context.Context, code string, params domain.UpdateVoucherParams) error {
	if params.DiscountValue != nil && *params.DiscountValue < 0 {
		return domain.NewValidationError("voucher.update", "discount_value", "must be non-negative")
	}
	return s.repo.UpdateVoucher(ctx, code, params)
}

func (s *voucherService) DeleteVoucher(ctx context.Context, code string) error {
	return s.repo.DeleteVoucher(ctx, code)
}

func validateVoucherParams(params domain.CreateVoucherParams) error {
	var err error

	if strings.TrimSpace(params.Code) == "" {
		err = domain.AddFieldError(err, "code", "is required")
	}
	switch params.DiscountType {
	case domain.DiscountPercent, domain.DiscountFixed:
	default:
		err = domain.AddFieldError(err, "discount_type", "must be \"percent\" or \"fixed\"")
	}
	if params.DiscountValue < 0 {
		err = domain.AddFieldError(err, "discount_value", "must be non-negative")
	}
	if params.DiscountType == domain.DiscountPercent && params.DiscountValue > 100 {
		err = domain.AddFieldError(err, "discount_value", "percent discount cannot exceed 100")
	}
	if params.MaxUses != nil && *params.MaxUses <= 0 {
		err = domain.AddFieldError(err, "max_uses", "must be positive when set")
	}
	if params.StartsAt != nil && params.ExpiresAt != nil && !params.ExpiresAt.After(*params.StartsAt) {
		err = domain.AddFieldError(err, "expires_at", "must be after starts_at")
	}

	return err
}
