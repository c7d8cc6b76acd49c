package catalog

import (
	"slices"

	"github.com/wicaksana/atelier/internal/domain"
)

// Brands returns the distinct non-empty brand names across the full
// (unfiltered) product set, sorted for stable UI presentation. Products
// without a brand contribute nothing.
func Brands(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0, len(products))
	for _, p := range products {
		if p.Brand == "" {
			continue
		}
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		out = append(out, p.Brand)
	}
	slices.Sort(out)
	return out
}
