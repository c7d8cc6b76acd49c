package postgres

import (
	"context"

	"github.com/wicaksana/atelier/internal/domain"
)

// CreateOrder writes the order, its items, and the stock decrements in one
// transaction. The stock update is guarded so a concurrent checkout cannot
// drive quantity below zero; a failed guard rolls the whole order back.
func (s *Store) CreateOrder(ctx context.Context, order domain.Order) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.Internal(err, "postgres.create_order", "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, session_id, subtotal, discount_amount, total, voucher_code, status)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7)`,
		order.ID, order.SessionID, order.Subtotal, order.DiscountAmount,
		order.Total, order.VoucherCode, string(order.Status),
	)
	if err != nil {
		return domain.Internal(err, "postgres.create_order", "failed to insert order")
	}

	for _, item := range order.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, name, unit_price, quantity, color, size)
			VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6, $7)`,
			order.ID, item.ProductID, item.Name, item.UnitPrice, item.Quantity, item.Color, item.Size,
		)
		if err != nil {
			return domain.Internal(err, "postgres.create_order", "failed to insert order item")
		}

		// Courses have no physical stock to decrement.
		tag, err := tx.Exec(ctx, `
			UPDATE products
			SET stock_quantity = CASE WHEN product_type = 'course'
			                          THEN stock_quantity
			                          ELSE stock_quantity - $2 END
			WHERE id = $1::uuid AND (product_type = 'course' OR stock_quantity >= $2)`,
			item.ProductID, item.Quantity,
		)
		if err != nil {
			return domain.Internal(err, "postgres.create_order", "failed to decrement stock")
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrOutOfStock
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Internal(err, "postgres.create_order", "failed to commit order")
	}
	return nil
}

func (s *Store) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	var o domain.Order
	err := s.pool.QueryRow(ctx, `
		SELECT id::text, session_id, subtotal, discount_amount, total, voucher_code, status, created_at
		FROM orders WHERE id = $1::uuid`,
		id,
	).Scan(&o.ID, &o.SessionID, &o.Subtotal, &o.DiscountAmount, &o.Total, &o.VoucherCode, &o.Status, &o.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, domain.Internal(err, "postgres.get_order", "failed to get order")
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id::text, order_id::text, product_id::text, name, unit_price, quantity, color, size
		FROM order_items WHERE order_id = $1::uuid`,
		id,
	)
	if err != nil {
		return domain.Order{}, domain.Internal(err, "postgres.get_order", "failed to list order items")
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Name,
			&item.UnitPrice, &item.Quantity, &item.Color, &item.Size,
		); err != nil {
			return domain.Order{}, domain.Internal(err, "postgres.get_order", "failed to scan order item")
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return domain.Order{}, domain.Internal(err, "postgres.get_order", "failed to read order items")
	}
	return o, nil
}
