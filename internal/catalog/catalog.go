// Package catalog implements the storefront product pipeline: a pure,
// synchronous filter -> sort -> aggregate transformation over an immutable
// product snapshot. Nothing here does I/O or holds state; every function is
// deterministic for a given (snapshot, criteria) pair so the caller can
// re-run it on every criteria change.
package catalog

import "github.com/wicaksana/atelier/internal/domain"

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	// SortDefault preserves insertion order.
	SortDefault   SortKey = "default"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNameAsc   SortKey = "name_asc"
	SortNameDesc  SortKey = "name_desc"
	// SortNewest orders by creation time descending. Products with an
	// unknown creation time sink to the end.
	SortNewest SortKey = "newest"
)

// PriceBucket is one of four half-open price ranges used for filtering.
// Lower bounds are inclusive: a product priced exactly 100000 belongs to
// Bucket100Kto500K, not BucketUnder100K.
type PriceBucket string

const (
	BucketAll        PriceBucket = "all"
	BucketUnder100K  PriceBucket = "under_100k"
	Bucket100Kto500K PriceBucket = "100k_500k"
	Bucket500Kto1M   PriceBucket = "500k_1m"
	BucketOver1M     PriceBucket = "over_1m"
)

// TypeFilter selects which product types pass the filter.
type TypeFilter string

const (
	TypeAll     TypeFilter = "all"
	TypeProduct TypeFilter = TypeFilter(domain.ProductTypeProduct)
	TypeCourse  TypeFilter = TypeFilter(domain.ProductTypeCourse)
)

// Criteria is one user-selected filter/sort state. The zero value matches
// everything in insertion order.
type Criteria struct {
	// Search is matched case-insensitively as a substring of a product's
	// name, description and brand.
	Search string

	// CategoryID filters to one category. Empty or "all" disables the rule.
	CategoryID string

	// Brands filters to products whose brand is in the set (logical OR).
	// An empty set disables the rule.
	Brands []string

	Bucket PriceBucket
	Type   TypeFilter
	Sort   SortKey
}
