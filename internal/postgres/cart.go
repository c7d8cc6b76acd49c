package postgres

import (
	"context"

	"github.com/wicaksana/atelier/internal/domain"
)

// cartItemColumns joins each item to its product so the service layer gets a
// fully hydrated domain.CartItem in one query.
const cartItemColumns = `
	ci.id::text, ci.cart_id::text, ci.quantity, ci.color, ci.size, ci.created_at,
	p.id::text, p.name, p.description, p.brand, p.price, p.discount_percent,
	p.stock_quantity, COALESCE(p.category_id::text, ''), p.colors, p.sizes,
	p.product_type, p.created_at, p.published`

func (s *Store) GetCartBySession(ctx context.Context, sessionID string) (domain.Cart, error) {
	var c domain.Cart
	err := s.pool.QueryRow(ctx,
		`SELECT id::text, session_id, created_at, updated_at FROM carts WHERE session_id = $1`,
		sessionID,
	).Scan(&c.ID, &c.SessionID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.Cart{}, domain.ErrCartNotFound
		}
		return domain.Cart{}, domain.Internal(err, "postgres.get_cart", "failed to get cart")
	}
	return c, nil
}

func (s *Store) CreateCart(ctx context.Context, sessionID string) (domain.Cart, error) {
	var c domain.Cart
	err := s.pool.QueryRow(ctx, `
		INSERT INTO carts (session_id) VALUES ($1)
		ON CONFLICT (session_id) DO UPDATE SET updated_at = now()
		RETURNING id::text, session_id, created_at, updated_at`,
		sessionID,
	).Scan(&c.ID, &c.SessionID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Cart{}, domain.Internal(err, "postgres.create_cart", "failed to create cart")
	}
	return c, nil
}

func (s *Store) GetCartItems(ctx context.Context, cartID string) ([]domain.CartItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT`+cartItemColumns+`
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1::uuid
		ORDER BY ci.created_at`,
		cartID,
	)
	if err != nil {
		return nil, domain.Internal(err, "postgres.get_cart_items", "failed to list cart items")
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		item, err := scanCartItem(rows)
		if err != nil {
			return nil, domain.Internal(err, "postgres.get_cart_items", "failed to scan cart item")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "postgres.get_cart_items", "failed to read cart items")
	}
	return items, nil
}

// FindCartItem looks up the line for one (product, color, size) combination.
func (s *Store) FindCartItem(ctx context.Context, cartID, productID, color, size string) (domain.CartItem, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT`+cartItemColumns+`
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1::uuid AND ci.product_id = $2::uuid
		  AND ci.color = $3 AND ci.size = $4`,
		cartID, productID, color, size,
	)
	item, err := scanCartItem(row)
	if err != nil {
		if isNoRows(err) {
			return domain.CartItem{}, domain.ErrCartItemNotFound
		}
		return domain.CartItem{}, domain.Internal(err, "postgres.find_cart_item", "failed to find cart item")
	}
	return item, nil
}

func (s *Store) GetCartItem(ctx context.Context, itemID string) (domain.CartItem, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT`+cartItemColumns+`
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.id = $1::uuid`,
		itemID,
	)
	item, err := scanCartItem(row)
	if err != nil {
		if isNoRows(err) {
			return domain.CartItem{}, domain.ErrCartItemNotFound
		}
		return domain.CartItem{}, domain.Internal(err, "postgres.get_cart_item", "failed to get cart item")
	}
	return item, nil
}

func (s *Store) InsertCartItem(ctx context.Context, item domain.CartItem) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO cart_items (cart_id, product_id, quantity, color, size)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5)`,
		item.CartID, item.Product.ID, item.Quantity, item.Color, item.Size,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// The merge invariant: the caller should have found the
			// existing line and incremented it instead.
			return domain.Conflict("postgres.insert_cart_item", "cart line for this variant already exists")
		}
		return domain.Internal(err, "postgres.insert_cart_item", "failed to insert cart item")
	}
	return nil
}

func (s *Store) UpdateCartItemQuantity(ctx context.Context, itemID string, quantity int) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE cart_items SET quantity = $2 WHERE id = $1::uuid`, itemID, quantity,
	)
	if err != nil {
		return domain.Internal(err, "postgres.update_cart_item", "failed to update cart item")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (s *Store) DeleteCartItem(ctx context.Context, itemID string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1::uuid`, itemID)
	if err != nil {
		return domain.Internal(err, "postgres.delete_cart_item", "failed to delete cart item")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (s *Store) ClearCart(ctx context.Context, cartID string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1::uuid`, cartID)
	if err != nil {
		return domain.Internal(err, "postgres.clear_cart", "failed to clear cart")
	}
	return nil
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCartItem(row rowScanner) (domain.CartItem, error) {
	var item domain.CartItem
	p := &item.Product
	err := row.Scan(
		&item.ID, &item.CartID, &item.Quantity, &item.Color, &item.Size, &item.CreatedAt,
		&p.ID, &p.Name, &p.Description, &p.Brand, &p.Price, &p.DiscountPercent,
		&p.StockQuantity, &p.CategoryID, &p.Colors, &p.Sizes,
		&p.ProductType, &p.CreatedAt, &p.Published,
	)
	return item, err
}
