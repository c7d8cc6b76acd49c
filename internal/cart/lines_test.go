package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicaksana/atelier/internal/cart"
	"github.com/wicaksana/atelier/internal/domain"
)

var (
	shirt = domain.Product{
		ID:     "shirt",
		Name:   "Linen Shirt",
		Price:  100_000,
		Colors: []string{"white", "navy"},
		Sizes:  []string{"S", "M", "L"},
	}
	mug = domain.Product{
		ID:    "mug",
		Name:  "Ceramic Mug",
		Price: 100_000, DiscountPercent: 10,
	}
)

func TestAddOrIncrement_MergesSameCombination(t *testing.T) {
	lines := cart.AddOrIncrement(nil, shirt, 2, "white", "M")
	lines = cart.AddOrIncrement(lines, shirt, 3, "white", "M")

	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddOrIncrement_DistinctVariantsStaySeparate(t *testing.T) {
	lines := cart.AddOrIncrement(nil, shirt, 1, "white", "M")
	lines = cart.AddOrIncrement(lines, shirt, 1, "navy", "M")
	lines = cart.AddOrIncrement(lines, shirt, 1, "white", "L")

	assert.Len(t, lines, 3)
}

func TestAddOrIncrement_EmptySelectionMerges(t *testing.T) {
	// "no color selected" must match "no color selected" across calls,
	// including whitespace-only selections from sloppy clients.
	lines := cart.AddOrIncrement(nil, mug, 1, "", "")
	lines = cart.AddOrIncrement(lines, mug, 1, " ", "")

	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAddOrIncrement_DecrementRemovesAtZero(t *testing.T) {
	lines := cart.AddOrIncrement(nil, mug, 2, "", "")

	lines = cart.AddOrIncrement(lines, mug, -1, "", "")
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)

	lines = cart.AddOrIncrement(lines, mug, -1, "", "")
	assert.Empty(t, lines)
}

func TestAddOrIncrement_OverDecrementRemoves(t *testing.T) {
	lines := cart.AddOrIncrement(nil, mug, 2, "", "")
	lines = cart.AddOrIncrement(lines, mug, -5, "", "")

	assert.Empty(t, lines)
}

func TestAddOrIncrement_NonPositiveInitialAddIsNoOp(t *testing.T) {
	assert.Empty(t, cart.AddOrIncrement(nil, mug, 0, "", ""))
	assert.Empty(t, cart.AddOrIncrement(nil, mug, -3, "", ""))
}

func TestAddOrIncrement_DoesNotMutateInput(t *testing.T) {
	original := cart.AddOrIncrement(nil, mug, 2, "", "")

	cart.AddOrIncrement(original, mug, 3, "", "")
	cart.AddOrIncrement(original, mug, -2, "", "")

	require.Len(t, original, 1)
	assert.Equal(t, 2, original[0].Quantity)
}

func TestTotal(t *testing.T) {
	assert.Zero(t, cart.Total(nil))
	assert.Zero(t, cart.Total([]cart.Line{}))

	// 100k at 10% off, quantity 2: 180k.
	lines := cart.AddOrIncrement(nil, mug, 2, "", "")
	assert.InDelta(t, 180_000, cart.Total(lines), 1e-9)
}

func TestTotal_SeparateVariantLinesBothCount(t *testing.T) {
	lines := cart.AddOrIncrement(nil, shirt, 1, "white", "M")
	lines = cart.AddOrIncrement(lines, shirt, 2, "navy", "L")

	assert.InDelta(t, 300_000, cart.Total(lines), 1e-9)
}

func TestSelectionAllowed(t *testing.T) {
	assert.True(t, cart.SelectionAllowed(shirt, "white", "M"))
	assert.True(t, cart.SelectionAllowed(shirt, "", ""))
	assert.False(t, cart.SelectionAllowed(shirt, "red", "M"))
	assert.False(t, cart.SelectionAllowed(shirt, "white", "XXL"))

	// No declared variants: only the empty selection is valid.
	assert.True(t, cart.SelectionAllowed(mug, "", ""))
	assert.False(t, cart.SelectionAllowed(mug, "white", ""))
}
