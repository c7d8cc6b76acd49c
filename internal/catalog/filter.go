package catalog

import (
	"strings"

	"github.com/wicaksana/atelier/internal/domain"
)

// Filter reduces a product snapshot to the subset matching all active
// criteria, preserving the original relative order. The input slice is never
// mutated and the result is always a subsequence of it, so applying the same
// criteria twice yields the same result.
func Filter(products []domain.Product, c Criteria) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(c.Search))

	brands := make(map[string]struct{}, len(c.Brands))
	for _, b := range c.Brands {
		if b != "" {
			brands[b] = struct{}{}
		}
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matchesType(p, c.Type) {
			continue
		}
		if !matchesSearch(p, search) {
			continue
		}
		if !matchesCategory(p, c.CategoryID) {
			continue
		}
		if !matchesBrands(p, brands) {
			continue
		}
		if !InBucket(EffectivePrice(p), c.Bucket) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesType(p domain.Product, t TypeFilter) bool {
	if t == "" || t == TypeAll {
		return true
	}
	return TypeFilter(p.Type()) == t
}

// matchesSearch checks the case-folded search string against name,
// description and brand. Absent optional fields are skipped, never matched.
func matchesSearch(p domain.Product, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), search) {
		return true
	}
	if p.Description != "" && strings.Contains(strings.ToLower(p.Description), search) {
		return true
	}
	if p.Brand != "" && strings.Contains(strings.ToLower(p.Brand), search) {
		return true
	}
	return false
}

func matchesCategory(p domain.Product, categoryID string) bool {
	if categoryID == "" || categoryID == "all" {
		return true
	}
	return p.CategoryID == categoryID
}

// matchesBrands requires membership in a non-empty brand set. A product
// without a brand never matches a non-empty set.
func matchesBrands(p domain.Product, brands map[string]struct{}) bool {
	if len(brands) == 0 {
		return true
	}
	if p.Brand == "" {
		return false
	}
	_, ok := brands[p.Brand]
	return ok
}
