package postgres

import (
	"context"
	"strings"

	"github.com/wicaksana/atelier/internal/domain"
)

const voucherColumns = `
	code, discount_type, discount_value, min_order_amount, max_uses,
	used_count, active, starts_at, expires_at, created_at`

func (s *Store) ListVouchers(ctx context.Context) ([]domain.Voucher, error) {
	rows, err := s.pool.Query(ctx, `SELECT`+voucherColumns+` FROM vouchers ORDER BY created_at DESC`)
	if err != nil {
		return nil, domain.Internal(err, "postgres.list_vouchers", "failed to list vouchers")
	}
	defer rows.Close()

	var vouchers []domain.Voucher
	for rows.Next() {
		var v domain.Voucher
		if err := rows.Scan(
			&v.Code, &v.DiscountType, &v.DiscountValue, &v.MinOrderAmount, &v.MaxUses,
			&v.UsedCount, &v.Active, &v.StartsAt, &v.ExpiresAt, &v.CreatedAt,
		); err != nil {
			return nil, domain.Internal(err, "postgres.list_vouchers", "failed to scan voucher")
		}
		vouchers = append(vouchers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "postgres.list_vouchers", "failed to read vouchers")
	}
	return vouchers, nil
}

func (s *Store) GetVoucherByCode(ctx context.Context, code string) (domain.Voucher, error) {
	var v domain.Voucher
	err := s.pool.QueryRow(ctx,
		`SELECT`+voucherColumns+` FROM vouchers WHERE code = $1`, normalizeCode(code),
	).Scan(
		&v.Code, &v.DiscountType, &v.DiscountValue, &v.MinOrderAmount, &v.MaxUses,
		&v.UsedCount, &v.Active, &v.StartsAt, &v.ExpiresAt, &v.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return domain.Voucher{}, domain.ErrVoucherNotFound
		}
		return domain.Voucher{}, domain.Internal(err, "postgres.get_voucher", "failed to get voucher")
	}
	return v, nil
}

func (s *Store) CreateVoucher(ctx context.Context, params domain.CreateVoucherParams) (domain.Voucher, error) {
	var v domain.Voucher
	err := s.pool.QueryRow(ctx, `
		INSERT INTO vouchers (
			code, discount_type, discount_value, min_order_amount,
			max_uses, active, starts_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING`+voucherColumns,
		normalizeCode(params.Code), string(params.DiscountType), params.DiscountValue,
		params.MinOrderAmount, params.MaxUses, params.Active, params.StartsAt, params.ExpiresAt,
	).Scan(
		&v.Code, &v.DiscountType, &v.DiscountValue, &v.MinOrderAmount, &v.MaxUses,
		&v.UsedCount, &v.Active, &v.StartsAt, &v.ExpiresAt, &v.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Voucher{}, domain.ErrDuplicateVoucher
		}
		return domain.Voucher{}, domain.Internal(err, "postgres.create_voucher", "failed to create voucher")
	}
	return v, nil
}

func (s *Store) UpdateVoucher(ctx context.Context, code string, params domain.UpdateVoucherParams) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE vouchers SET
			discount_type    = COALESCE($2, discount_type),
			discount_value   = COALESCE($3, discount_value),
			min_order_amount = COALESCE($4, min_order_amount),
			max_uses         = COALESCE($5, max_uses),
			active           = COALESCE($6, active),
			starts_at        = COALESCE($7, starts_at),
			expires_at       = COALESCE($8, expires_at)
		WHERE code = $1`,
		normalizeCode(code), (*string)(params.DiscountType), params.DiscountValue,
		params.MinOrderAmount, params.MaxUses, params.Active, params.StartsAt, params.ExpiresAt,
	)
	if err != nil {
		return domain.Internal(err, "postgres.update_voucher", "failed to update voucher")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVoucherNotFound
	}
	return nil
}

func (s *Store) DeleteVoucher(ctx context.Context, code string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM vouchers WHERE code = $1`, normalizeCode(code))
	if err != nil {
		return domain.Internal(err, "postgres.delete_voucher", "failed to delete voucher")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVoucherNotFound
	}
	return nil
}

// RedeemVoucher increments used_count behind the cap guard in a single
// statement, so two redemptions racing for the last use cannot both win.
func (s *Store) RedeemVoucher(ctx context.Context, code string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE vouchers
		SET used_count = used_count + 1
		WHERE code = $1
		  AND active
		  AND (max_uses IS NULL OR used_count < max_uses)`,
		normalizeCode(code),
	)
	if err != nil {
		return domain.Internal(err, "postgres.redeem_voucher", "failed to redeem voucher")
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a missing code from a capped or inactive one.
		var exists bool
		if err := s.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM vouchers WHERE code = $1)`, normalizeCode(code),
		).Scan(&exists); err != nil {
			return domain.Internal(err, "postgres.redeem_voucher", "failed to check voucher")
		}
		if !exists {
			return domain.ErrVoucherNotFound
		}
		return domain.ErrVoucherExhausted
	}
	return nil
}

func normalizeCode(code string) string {
	return strings.TrimSpace(code)
}
