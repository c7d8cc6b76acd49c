package domain

import "time"

// ProductType distinguishes physical products from courses in the storefront.
type ProductType string

const (
	ProductTypeProduct ProductType = "product"
	ProductTypeCourse  ProductType = "course"
)

// Product is a storefront catalog entry.
//
// Prices are rupiah amounts held as float64 because upstream rows (bulk
// imports, legacy data) can carry malformed values; the catalog pipeline is
// specified to tolerate NaN rather than reject the row. A zero CreatedAt
// means the creation time is unknown.
type Product struct {
	ID              string
	Name            string
	Description     string
	Brand           string
	Price           float64
	DiscountPercent int
	StockQuantity   int
	CategoryID      string
	Colors          []string
	Sizes           []string
	ProductType     ProductType
	CreatedAt       time.Time
	Published       bool
}

// Type returns the product type, defaulting to ProductTypeProduct when the
// tag is absent.
func (p Product) Type() ProductType {
	if p.ProductType == "" {
		return ProductTypeProduct
	}
	return p.ProductType
}

// HasColor reports whether the product declares the given color variant.
// A product with no declared colors accepts only the empty selection.
func (p Product) HasColor(color string) bool {
	if color == "" {
		return true
	}
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}

// HasSize reports whether the product declares the given size variant.
func (p Product) HasSize(size string) bool {
	if size == "" {
		return true
	}
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Category groups products for storefront filtering.
type Category struct {
	ID   string
	Name string
	Slug string
}

// CreateProductParams contains parameters for creating a product.
type CreateProductParams struct {
	Name            string
	Description     string
	Brand           string
	Price           float64
	DiscountPercent int
	StockQuantity   int
	CategoryID      string
	Colors          []string
	Sizes           []string
	ProductType     ProductType
	Published       bool
}

// UpdateProductParams contains parameters for updating a product.
// Pointer fields indicate optional updates (nil = no change).
type UpdateProductParams struct {
	Name            *string
	Description     *string
	Brand           *string
	Price           *float64
	DiscountPercent *int
	StockQuantity   *int
	CategoryID      *string
	Colors          []string
	Sizes           []string
	ProductType     *ProductType
	Published       *bool
}

// Product-specific errors.
var (
	ErrProductNotFound  = &Error{Code: ENOTFOUND, Message: "Product not found"}
	ErrCategoryNotFound = &Error{Code: ENOTFOUND, Message: "Category not found"}
	ErrInvalidPrice     = &Error{Code: EINVALID, Message: "Price must be non-negative"}
	ErrInvalidDiscount  = &Error{Code: EINVALID, Message: "Discount must be between 0 and 100"}
)
