// Package cart implements the pure line-merge and total arithmetic the cart
// service and checkout build on. Functions here never mutate their inputs;
// the persistent cart in Postgres enforces the same invariants in SQL-backed
// form.
package cart

import (
	"slices"
	"strings"

	"github.com/wicaksana/atelier/internal/catalog"
	"github.com/wicaksana/atelier/internal/domain"
)

// Line is one (product, color, size) combination with a quantity.
type Line struct {
	Product  domain.Product
	Quantity int
	Color    string
	Size     string
}

// AddOrIncrement returns a new line list with delta applied for the given
// (product, color, size) combination. Lines are keyed on the composite
// (product id, color, size) with absent selections normalized to the empty
// string, so repeated adds with no selection reliably merge.
//
// If a matching line exists its quantity is incremented; an increment that
// drives the quantity to zero or below removes the line instead, which is
// how a "decrease quantity" control empties a line. If no line matches, a
// new one is appended — but only for a positive delta; a non-positive
// initial add is a no-op.
func AddOrIncrement(lines []Line, p domain.Product, delta int, color, size string) []Line {
	color, size = normalize(color), normalize(size)

	for i, l := range lines {
		if !sameLine(l, p.ID, color, size) {
			continue
		}

		q := l.Quantity + delta
		if q <= 0 {
			return slices.Delete(slices.Clone(lines), i, i+1)
		}

		out := slices.Clone(lines)
		out[i].Quantity = q
		return out
	}

	if delta <= 0 {
		return slices.Clone(lines)
	}

	out := slices.Clone(lines)
	return append(out, Line{Product: p, Quantity: delta, Color: color, Size: size})
}

// Total sums effective price times quantity over all lines. Distinct
// (color, size) lines for the same product are legitimately separate and
// each contributes its own amount.
func Total(lines []Line) float64 {
	var total float64
	for _, l := range lines {
		total += catalog.EffectivePrice(l.Product) * float64(l.Quantity)
	}
	return total
}

// SelectionAllowed reports whether the chosen color and size are among the
// product's declared variants. Products without declared variants accept
// only the empty selection.
func SelectionAllowed(p domain.Product, color, size string) bool {
	return p.HasColor(normalize(color)) && p.HasSize(normalize(size))
}

// normalize maps absent or whitespace-only selections to the empty string
// so "no color selected" always compares equal to "no color selected".
func normalize(s string) string {
	return strings.TrimSpace(s)
}

func sameLine(l Line, productID, color, size string) bool {
	return l.Product.ID == productID &&
		normalize(l.Color) == color &&
		normalize(l.Size) == size
}
