package catalog

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/wicaksana/atelier/internal/domain"
)

// Sort returns a new slice with the products ordered per the sort key. Every
// ordering is stable: products with equal keys keep their prior relative
// order, so re-filtering never visually reshuffles ties. The input slice is
// not mutated.
func Sort(products []domain.Product, key SortKey) []domain.Product {
	out := slices.Clone(products)

	switch key {
	case "", SortDefault:
		// insertion order

	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return priceOrder(EffectivePrice(a), EffectivePrice(b))
		})

	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return priceOrder(EffectivePrice(b), EffectivePrice(a))
		})

	case SortNameAsc:
		cl := newNameCollator()
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return cl.CompareString(a.Name, b.Name)
		})

	case SortNameDesc:
		cl := newNameCollator()
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return cl.CompareString(b.Name, a.Name)
		})

	case SortNewest:
		// Descending by creation time. The zero time marks an unknown or
		// unparseable timestamp and therefore sinks to the end.
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}

	return out
}

// newNameCollator builds a locale-aware collator so accented names sort the
// way a person would alphabetize them, not by raw byte order. Collators are
// not safe for concurrent use, hence one per Sort call.
func newNameCollator() *collate.Collator {
	return collate.New(language.Indonesian, collate.Loose)
}
