// Package service contains the business logic between the HTTP handlers and
// the storage layer.
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/wicaksana/atelier/internal/catalog"
	"github.com/wicaksana/atelier/internal/domain"
	"github.com/wicaksana/atelier/internal/repository"
	"github.com/wicaksana/atelier/internal/schema"
)

// ProductListing is the storefront catalog response: the filtered, sorted
// product list plus the brand aggregate computed over the published set.
type ProductListing struct {
	Products []domain.Product
	Brands   []string
}

// ImportResult reports a bulk import: how many rows were written and which
// rows were rejected, keyed by row index.
type ImportResult struct {
	Imported int
	Rejected map[int]map[string]string
}

// ProductService provides catalog business logic.
type ProductService interface {
	// ListProducts runs the catalog pipeline over the published snapshot.
	ListProducts(ctx context.Context, criteria catalog.Criteria) (*ProductListing, error)

	// GetPublishedProduct returns one published product for the storefront.
	GetPublishedProduct(ctx context.Context, id string) (domain.Product, error)

	ListCategories(ctx context.Context) ([]domain.Category, error)

	// Admin operations see unpublished products too.
	ListAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	CreateProduct(ctx context.Context, params domain.CreateProductParams) (domain.Product, error)
	UpdateProduct(ctx context.Context, id string, params domain.UpdateProductParams) error
	DeleteProduct(ctx context.Context, id string) error

	// ImportProducts validates and writes a batch of raw rows. Invalid rows
	// are skipped and reported; valid rows are written regardless.
	ImportProducts(ctx context.Context, rows []schema.ProductRow) (*ImportResult, error)
}

type productService struct {
	repo repository.Querier
}

// NewProductService creates the catalog service.
func NewProductService(repo repository.Querier) ProductService {
	return &productService{repo: repo}
}

func (s *productService) ListProducts(ctx context.Context, criteria catalog.Criteria) (*ProductListing, error) {
	snapshot, err := s.repo.ListProducts(ctx, true)
	if err != nil {
		return nil, err
	}

	filtered := catalog.Filter(snapshot, criteria)
	sorted := catalog.Sort(filtered, criteria.Sort)

	// Brands come from the full published snapshot, not the filtered subset,
	// so the brand checkboxes stay stable while the user toggles them.
	return &ProductListing{
		Products: sorted,
		Brands:   catalog.Brands(snapshot),
	}, nil
}

func (s *productService) GetPublishedProduct(ctx context.Context, id string) (domain.Product, error) {
	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	if !p.Published {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func (s *productService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *productService) ListAllProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx, false)
}

func (s *productService) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *productService) CreateProduct(ctx context.Context, params domain.CreateProductParams) (domain.Product, error) {
	if err := validateProductParams(params); err != nil {
		return domain.Product{}, err
	}

	p := domain.Product{
		ID:              uuid.NewString(),
		Name:            params.Name,
		Description:     params.Description,
		Brand:           params.Brand,
		Price:           params.Price,
		DiscountPercent: params.DiscountPercent,
		StockQuantity:   params.StockQuantity,
		CategoryID:      params.CategoryID,
		Colors:          params.Colors,
		Sizes:           params.Sizes,
		ProductType:     params.ProductType,
		Published:       params.Published,
	}
	if p.ProductType == "" {
		p.ProductType = domain.ProductTypeProduct
	}

	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return domain.Product{}, err
	}
	return s.repo.GetProduct(ctx, p.ID)
}

func (s *productService) UpdateProduct(ctx context.Context, id string, params domain.UpdateProductParams) error {
	if params.Price != nil && *params.Price < 0 {
		return domain.ErrInvalidPrice
	}
	if params.DiscountPercent != nil && (*params.DiscountPercent < 0 || *params.DiscountPercent > 100) {
		return domain.ErrInvalidDiscount
	}
	return s.repo.UpdateProduct(ctx, id, params)
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *productService) ImportProducts(ctx context.Context, rows []schema.ProductRow) (*ImportResult, error) {
	result := &ImportResult{Rejected: make(map[int]map[string]string)}

	for i, row := range rows {
		p, err := schema.ParseProduct(row)
		if err != nil {
			if fields := domain.GetValidationFields(err); fields != nil {
				result.Rejected[i] = fields
				continue
			}
			return nil, err
		}

		if err := s.repo.CreateProduct(ctx, p); err != nil {
			if domain.IsCode(err, domain.ECONFLICT) {
				result.Rejected[i] = map[string]string{"id": "already exists"}
				continue
			}
			return nil, err
		}
		result.Imported++
	}

	return result, nil
}

func validateProductParams(params domain.CreateProductParams) error {
	if params.Name == "" {
		return domain.NewValidationError("product.create", "name", "is required")
	}
	if params.Price < 0 {
		return domain.ErrInvalidPrice
	}
	if params.DiscountPercent < 0 || params.DiscountPercent > 100 {
		return domain.ErrInvalidDiscount
	}
	switch params.ProductType {
	case "", domain.ProductTypeProduct, domain.ProductTypeCourse:
	default:
		return domain.NewValidationError("product.create", "product_type", "must be \"product\" or \"course\"")
	}
	return nil
}
