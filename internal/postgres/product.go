package postgres

import (
	"context"

	"github.com/wicaksana/atelier/internal/domain"
)

const productColumns = `
	id::text, name, description, brand, price, discount_percent,
	stock_quantity, COALESCE(category_id::text, ''), colors, sizes,
	product_type, created_at, published`

// ListProducts returns products in insertion order. The catalog pipeline
// does its own filtering and sorting in memory, so this stays a plain scan.
func (s *Store) ListProducts(ctx context.Context, onlyPublished bool) ([]domain.Product, error) {
	query := `SELECT` + productColumns + ` FROM products`
	if onlyPublished {
		query += ` WHERE published`
	}
	query += ` ORDER BY inserted_seq`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, domain.Internal(err, "postgres.list_products", "failed to list products")
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Brand, &p.Price, &p.DiscountPercent,
			&p.StockQuantity, &p.CategoryID, &p.Colors, &p.Sizes,
			&p.ProductType, &p.CreatedAt, &p.Published,
		); err != nil {
			return nil, domain.Internal(err, "postgres.list_products", "failed to scan product")
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "postgres.list_products", "failed to read products")
	}
	return products, nil
}

func (s *Store) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	var p domain.Product
	err := s.pool.QueryRow(ctx,
		`SELECT`+productColumns+` FROM products WHERE id = $1::uuid`, id,
	).Scan(
		&p.ID, &p.Name, &p.Description, &p.Brand, &p.Price, &p.DiscountPercent,
		&p.StockQuantity, &p.CategoryID, &p.Colors, &p.Sizes,
		&p.ProductType, &p.CreatedAt, &p.Published,
	)
	if err != nil {
		if isNoRows(err) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, domain.Internal(err, "postgres.get_product", "failed to get product")
	}
	return p, nil
}

func (s *Store) CreateProduct(ctx context.Context, p domain.Product) error {
	// A zero CreatedAt means the creation time is unknown; the row then
	// gets the insertion time.
	var createdAt any
	if !p.CreatedAt.IsZero() {
		createdAt = p.CreatedAt
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO products (
			id, name, description, brand, price, discount_percent,
			stock_quantity, category_id, colors, sizes, product_type,
			created_at, published
		) VALUES (
			$1::uuid, $2, $3, $4, $5, $6, $7,
			NULLIF($8, '')::uuid, $9, $10, $11,
			COALESCE($12::timestamptz, now()), $13
		)`,
		p.ID, p.Name, p.Description, p.Brand, p.Price, p.DiscountPercent,
		p.StockQuantity, p.CategoryID, listOrEmpty(p.Colors), listOrEmpty(p.Sizes),
		string(p.Type()), createdAt, p.Published,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("postgres.create_product", "product id already exists")
		}
		return domain.Internal(err, "postgres.create_product", "failed to create product")
	}
	return nil
}

func (s *Store) UpdateProduct(ctx context.Context, id string, params domain.UpdateProductParams) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE products SET
			name             = COALESCE($2, name),
			description      = COALESCE($3, description),
			brand            = COALESCE($4, brand),
			price            = COALESCE($5, price),
			discount_percent = COALESCE($6, discount_percent),
			stock_quantity   = COALESCE($7, stock_quantity),
			category_id      = COALESCE(NULLIF($8, '')::uuid, category_id),
			colors           = COALESCE($9, colors),
			sizes            = COALESCE($10, sizes),
			product_type     = COALESCE($11, product_type),
			published        = COALESCE($12, published)
		WHERE id = $1::uuid`,
		id, params.Name, params.Description, params.Brand, params.Price,
		params.DiscountPercent, params.StockQuantity, params.CategoryID,
		params.Colors, params.Sizes, (*string)(params.ProductType), params.Published,
	)
	if err != nil {
		return domain.Internal(err, "postgres.update_product", "failed to update product")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM products WHERE id = $1::uuid`, id)
	if err != nil {
		return domain.Internal(err, "postgres.delete_product", "failed to delete product")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.pool.Query(ctx, `SELECT id::text, name, slug FROM categories ORDER BY name`)
	if err != nil {
		return nil, domain.Internal(err, "postgres.list_categories", "failed to list categories")
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, domain.Internal(err, "postgres.list_categories", "failed to scan category")
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "postgres.list_categories", "failed to read categories")
	}
	return categories, nil
}

// listOrEmpty maps a nil slice to an empty one so the text[] column never
// stores NULL.
func listOrEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
