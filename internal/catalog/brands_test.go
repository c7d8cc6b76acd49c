package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wicaksana/atelier/internal/catalog"
	"github.com/wicaksana/atelier/internal/domain"
)

func TestBrands_UniqueAndSorted(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Name: "A", Brand: "Tanahliat"},
		{ID: "2", Name: "B", Brand: "Lokatara"},
		{ID: "3", Name: "C", Brand: "Tanahliat"},
		{ID: "4", Name: "D"}, // no brand: contributes nothing
		{ID: "5", Name: "E", Brand: "Arunika"},
	}

	got := catalog.Brands(products)

	assert.Equal(t, []string{"Arunika", "Lokatara", "Tanahliat"}, got)
}

func TestBrands_Empty(t *testing.T) {
	assert.Empty(t, catalog.Brands(nil))
	assert.Empty(t, catalog.Brands([]domain.Product{{ID: "1", Name: "Nameless"}}))
}
