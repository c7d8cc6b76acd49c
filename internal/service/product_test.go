package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicaksana/atelier/internal/catalog"
	"github.com/wicaksana/atelier/internal/domain"
	"github.com/wicaksana/atelier/internal/schema"
)

func TestListProducts_RunsPipelineOverPublishedSnapshot(t *testing.T) {
	repo := newFakeRepo()
	repo.addProduct(domain.Product{ID: "p1", Name: "Batik Tote Bag", Brand: "Lokatara", Price: 85_000, Published: true})
	repo.addProduct(domain.Product{ID: "p2", Name: "Teak Side Table", Brand: "Tanahliat", Price: 1_800_000, Published: true})
	repo.addProduct(domain.Product{ID: "p3", Name: "Hidden Draft", Brand: "Lokatara", Price: 10_000, Published: false})

	svc := NewProductService(repo)
	listing, err := svc.ListProducts(context.Background(), catalog.Criteria{
		Bucket: catalog.BucketUnder100K,
	})
	require.NoError(t, err)

	require.Len(t, listing.Products, 1)
	assert.Equal(t, "p1", listing.Products[0].ID, "unpublished products never enter the pipeline")
	assert.Equal(t, []string{"Lokatara", "Tanahliat"}, listing.Brands,
		"brand aggregate covers the whole published snapshot, not the filtered subset")
}

func TestGetPublishedProduct_HidesDrafts(t *testing.T) {
	repo := newFakeRepo()
	repo.addProduct(domain.Product{ID: "p1", Name: "Draft", Price: 1000, Published: false})

	svc := NewProductService(repo)
	_, err := svc.GetPublishedProduct(context.Background(), "p1")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestImportProducts_PartialFailureReportsRows(t *testing.T) {
	repo := newFakeRepo()
	svc := NewProductService(repo)

	result, err := svc.ImportProducts(context.Background(), []schema.ProductRow{
		{Name: "Rattan Lamp", Price: 250_000},
		{Price: 90_000},                                  // missing name
		{Name: "Bad Discount", Price: 1, DiscountPercent: 400}, // out of range
		{Name: "Ceramic Mug", Price: 120_000},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Rejected, 2)
	assert.Contains(t, result.Rejected[1], "name")
	assert.Contains(t, result.Rejected[2], "discount_percent")
}

func TestCreateProduct_Validation(t *testing.T) {
	repo := newFakeRepo()
	svc := NewProductService(repo)

	_, err := svc.CreateProduct(context.Background(), domain.CreateProductParams{Price: -5})
	require.Error(t, err)

	_, err = svc.CreateProduct(context.Background(), domain.CreateProductParams{
		Name: "Workshop", Price: 450_000, ProductType: "seminar",
	})
	require.Error(t, err)
	assert.Contains(t, domain.GetValidationFields(err), "product_type")
}
