// Package schema is the parse-and-validate boundary between loosely typed
// rows (bulk imports, legacy exports) and the well-typed domain values the
// catalog pipeline assumes. Shape checking happens once here so the pure
// functions never re-check fields ad hoc.
package schema

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/wicaksana/atelier/internal/domain"
)

// ProductRow is the wire shape of one imported product row.
type ProductRow struct {
	ID              string   `json:"id"`
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description"`
	Brand           string   `json:"brand"`
	Price           float64  `json:"price" validate:"gte=0"`
	DiscountPercent int      `json:"discount_percent"`
	StockQuantity   int      `json:"stock_quantity"`
	CategoryID      string   `json:"category_id"`
	Colors          []string `json:"colors"`
	Sizes           []string `json:"sizes"`
	ProductType     string   `json:"product_type"`
	CreatedAt       string   `json:"created_at"`
	Published       bool     `json:"published"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// createdAtLayouts are the timestamp shapes seen in exports from the old
// hosted backend, most to least specific.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseProduct converts a raw row into a domain.Product, normalizing what
// can be normalized and rejecting what cannot:
//
//   - missing product type defaults to "product"; anything unknown is a
//     field error
//   - a discount outside [0, 100] is a field error (the pipeline would
//     clamp it, but an import should not smuggle bad data in)
//   - negative stock is floored at zero
//   - an unparseable created_at leaves the zero time, which the catalog
//     sorts as oldest; it is not an error
//   - a missing id gets a fresh UUID
func ParseProduct(row ProductRow) (domain.Product, error) {
	var fieldErr error

	if err := validate.Struct(row); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fieldErr = domain.AddFieldError(fieldErr, strings.ToLower(fe.Field()), validationMessage(fe))
			}
		} else {
			return domain.Product{}, domain.Internal(err, "schema.parse_product", "validator failed")
		}
	}

	if math.IsNaN(row.Price) || math.IsInf(row.Price, 0) {
		fieldErr = domain.AddFieldError(fieldErr, "price", "must be a finite number")
	}

	productType := domain.ProductType(strings.TrimSpace(row.ProductType))
	switch productType {
	case "":
		productType = domain.ProductTypeProduct
	case domain.ProductTypeProduct, domain.ProductTypeCourse:
	default:
		fieldErr = domain.AddFieldError(fieldErr, "product_type", "must be \"product\" or \"course\"")
	}

	if row.DiscountPercent < 0 || row.DiscountPercent > 100 {
		fieldErr = domain.AddFieldError(fieldErr, "discount_percent", "must be between 0 and 100")
	}

	if fieldErr != nil {
		return domain.Product{}, fieldErr
	}

	id := strings.TrimSpace(row.ID)
	if id == "" {
		id = uuid.NewString()
	}

	stock := row.StockQuantity
	if stock < 0 {
		stock = 0
	}

	return domain.Product{
		ID:              id,
		Name:            strings.TrimSpace(row.Name),
		Description:     row.Description,
		Brand:           strings.TrimSpace(row.Brand),
		Price:           row.Price,
		DiscountPercent: row.DiscountPercent,
		StockQuantity:   stock,
		CategoryID:      strings.TrimSpace(row.CategoryID),
		Colors:          cleanList(row.Colors),
		Sizes:           cleanList(row.Sizes),
		ProductType:     productType,
		CreatedAt:       parseCreatedAt(row.CreatedAt),
		Published:       row.Published,
	}, nil
}

// parseCreatedAt tries the known layouts and falls back to the zero time.
// Never an error: the sort stage treats the zero time as oldest.
func parseCreatedAt(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}
