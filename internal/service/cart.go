package service

import (
	"context"
	"errors"
	"strings"

	"github.com/wicaksana/atelier/internal/catalog"
	"github.com/wicaksana/atelier/internal/domain"
	"github.com/wicaksana/atelier/internal/repository"
	"github.com/wicaksana/atelier/internal/telemetry"
)

// CartService manages session-scoped carts. Adds merge on the
// (product, color, size) composite: a second add for the same combination
// increments the existing line instead of creating a duplicate.
type CartService interface {
	// GetCart returns the cart with items and computed totals, creating an
	// empty cart for new sessions.
	GetCart(ctx context.Context, sessionID string) (*domain.CartSummary, error)

	// AddItem applies a quantity delta for one (product, color, size)
	// combination. A negative delta decrements; reaching zero removes the
	// line. A non-positive delta for a combination not in the cart is a
	// no-op.
	AddItem(ctx context.Context, sessionID, productID string, delta int, color, size string) (*domain.CartSummary, error)

	// SetItemQuantity sets a line to an absolute quantity; zero or below
	// removes the line.
	SetItemQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*domain.CartSummary, error)

	RemoveItem(ctx context.Context, sessionID, itemID string) (*domain.CartSummary, error)
	ClearCart(ctx context.Context, sessionID string) error
}

type cartService struct {
	repo    repository.Querier
	metrics *telemetry.BusinessMetrics
}

// NewCartService creates the cart service. metrics may be nil in tests.
func NewCartService(repo repository.Querier, metrics *telemetry.BusinessMetrics) CartService {
	return &cartService{repo: repo, metrics: metrics}
}

func (s *cartService) GetCart(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
	cart, err := s.ensureCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, cart)
}

func (s *cartService) AddItem(ctx context.Context, sessionID, productID string, delta int, color, size string) (*domain.CartSummary, error) {
	color, size = strings.TrimSpace(color), strings.TrimSpace(size)

	cart, err := s.ensureCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Published {
		return nil, domain.ErrProductNotFound
	}
	if !product.HasColor(color) || !product.HasSize(size) {
		return nil, domain.ErrInvalidVariant
	}

	existing, err := s.repo.FindCartItem(ctx, cart.ID, productID, color, size)
	switch {
	case err == nil:
		if err := s.applyDelta(ctx, existing, product, delta); err != nil {
			return nil, err
		}
	case errors.Is(err, domain.ErrCartItemNotFound):
		// Merge invariant: only a positive delta creates a new line.
		if delta > 0 {
			if err := checkStock(product, delta); err != nil {
				return nil, err
			}
			item := domain.CartItem{CartID: cart.ID, Product: product, Quantity: delta, Color: color, Size: size}
			if err := s.repo.InsertCartItem(ctx, item); err != nil {
				return nil, err
			}
		}
	default:
		return nil, err
	}

	if delta > 0 && s.metrics != nil {
		s.metrics.CartItemsAdded.WithLabelValues(string(product.Type())).Inc()
	}

	return s.summarize(ctx, cart)
}

func (s *cartService) applyDelta(ctx context.Context, item domain.CartItem, product domain.Product, delta int) error {
	quantity := item.Quantity + delta
	if quantity <= 0 {
		return s.repo.DeleteCartItem(ctx, item.ID)
	}
	if err := checkStock(product, quantity); err != nil {
		return err
	}
	return s.repo.UpdateCartItemQuantity(ctx, item.ID, quantity)
}

func (s *cartService) SetItemQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*domain.CartSummary, error) {
	cart, err := s.ensureCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.GetCartItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.CartID != cart.ID {
		return nil, domain.ErrCartItemNotFound
	}

	if quantity <= 0 {
		if err := s.repo.DeleteCartItem(ctx, itemID); err != nil {
			return nil, err
		}
		return s.summarize(ctx, cart)
	}

	if err := checkStock(item.Product, quantity); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateCartItemQuantity(ctx, itemID, quantity); err != nil {
		return nil, err
	}
	return s.summarize(ctx, cart)
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID, itemID string) (*domain.CartSummary, error) {
	cart, err := s.ensureCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.GetCartItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.CartID != cart.ID {
		return nil, domain.ErrCartItemNotFound
	}

	if err := s.repo.DeleteCartItem(ctx, itemID); err != nil {
		return nil, err
	}
	return s.summarize(ctx, cart)
}

func (s *cartService) ClearCart(ctx context.Context, sessionID string) error {
	cart, err := s.repo.GetCartBySession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return nil
		}
		return err
	}
	return s.repo.ClearCart(ctx, cart.ID)
}

func (s *cartService) ensureCart(ctx context.Context, sessionID string) (domain.Cart, error) {
	if sessionID == "" {
		return domain.Cart{}, domain.Invalid("cart.session", "session id is required")
	}

	cart, err := s.repo.GetCartBySession(ctx, sessionID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, domain.ErrCartNotFound) {
		return domain.Cart{}, err
	}
	return s.repo.CreateCart(ctx, sessionID)
}

func (s *cartService) summarize(ctx context.Context, cart domain.Cart) (*domain.CartSummary, error) {
	items, err := s.repo.GetCartItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	summary := &domain.CartSummary{Cart: cart, Items: items}
	for _, item := range items {
		summary.Subtotal += catalog.EffectivePrice(item.Product) * float64(item.Quantity)
		summary.ItemCount += item.Quantity
	}
	return summary, nil
}

// checkStock rejects quantities the product cannot fulfill. Courses are not
// stock-limited.
func checkStock(p domain.Product, quantity int) error {
	if p.Type() == domain.ProductTypeCourse {
		return nil
	}
	if quantity > p.StockQuantity {
		return domain.ErrOutOfStock
	}
	return nil
}
