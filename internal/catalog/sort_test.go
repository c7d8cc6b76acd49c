package catalog_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wicaksana/atelier/internal/catalog"
	"github.com/wicaksana/atelier/internal/domain"
)

func TestSort_Default_PreservesOrder(t *testing.T) {
	products := fixtureProducts()

	got := catalog.Sort(products, catalog.SortDefault)

	assert.Equal(t, ids(products), ids(got))
}

func TestSort_PriceAscending_UsesEffectivePrice(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Name: "A", Price: 200_000},
		{ID: "b", Name: "B", Price: 300_000, DiscountPercent: 60}, // effective 120k
		{ID: "c", Name: "C", Price: 150_000},
	}

	got := catalog.Sort(products, catalog.SortPriceAsc)

	assert.Equal(t, []string{"b", "c", "a"}, ids(got))
}

func TestSort_PriceDescending(t *testing.T) {
	products := fixtureProducts()

	got := catalog.Sort(products, catalog.SortPriceDesc)

	assert.Equal(t, []string{"p5", "p4", "p3", "p2", "p1"}, ids(got))
}

func TestSort_Stability_EqualPricesKeepRelativeOrder(t *testing.T) {
	products := []domain.Product{
		{ID: "x", Name: "X", Price: 100_000},
		{ID: "y", Name: "Y", Price: 100_000},
		{ID: "z", Name: "Z", Price: 100_000},
	}

	for _, key := range []catalog.SortKey{catalog.SortPriceAsc, catalog.SortPriceDesc} {
		got := catalog.Sort(products, key)
		assert.Equal(t, []string{"x", "y", "z"}, ids(got), "key %s", key)
	}
}

func TestSort_NameAscending_LocaleAware(t *testing.T) {
	products := []domain.Product{
		{ID: "2", Name: "Érable"},
		{ID: "3", Name: "Zinnia"},
		{ID: "1", Name: "Anggrek"},
		{ID: "4", Name: "edelweiss"},
	}

	got := catalog.Sort(products, catalog.SortNameAsc)

	// Byte-order sorting would push "Érable" past "Zinnia" and "edelweiss";
	// a collator keeps the accented and lowercase names alphabetical.
	assert.Equal(t, []string{"1", "4", "2", "3"}, ids(got))
}

func TestSort_NameDescending(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Name: "Anggrek"},
		{ID: "2", Name: "Melati"},
		{ID: "3", Name: "Zinnia"},
	}

	got := catalog.Sort(products, catalog.SortNameDesc)

	assert.Equal(t, []string{"3", "2", "1"}, ids(got))
}

func TestSort_Newest_UnknownTimestampSinks(t *testing.T) {
	products := []domain.Product{
		{ID: "old", Name: "Old", CreatedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "broken", Name: "Broken"}, // zero CreatedAt: unparseable upstream
		{ID: "new", Name: "New", CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	got := catalog.Sort(products, catalog.SortNewest)

	assert.Equal(t, []string{"new", "old", "broken"}, ids(got))
}

func TestSort_NaNPriceSinksBothDirections(t *testing.T) {
	products := []domain.Product{
		{ID: "nan", Name: "NaN", Price: math.NaN()},
		{ID: "a", Name: "A", Price: 50_000},
		{ID: "b", Name: "B", Price: 900_000},
	}

	asc := catalog.Sort(products, catalog.SortPriceAsc)
	assert.Equal(t, []string{"a", "b", "nan"}, ids(asc))

	desc := catalog.Sort(products, catalog.SortPriceDesc)
	assert.Equal(t, []string{"b", "a", "nan"}, ids(desc))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	products := fixtureProducts()
	before := ids(products)

	catalog.Sort(products, catalog.SortPriceAsc)

	assert.Equal(t, before, ids(products))
}

func TestSort_SameElementSet(t *testing.T) {
	products := fixtureProducts()

	got := catalog.Sort(products, catalog.SortNameAsc)

	assert.ElementsMatch(t, ids(products), ids(got))
}
