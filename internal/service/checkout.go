package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/wicaksana/atelier/internal/billing"
	"github.com/wicaksana/atelier/internal/catalog"
	"github.com/wicaksana/atelier/internal/domain"
	"github.com/wicaksana/atelier/internal/events"
	"github.com/wicaksana/atelier/internal/repository"
	"github.com/wicaksana/atelier/internal/telemetry"
	"github.com/wicaksana/atelier/internal/voucher"
)

// CheckoutResult is the outcome of a successful checkout: the persisted
// order and the client secret for confirming payment.
type CheckoutResult struct {
	Order               domain.Order
	PaymentClientSecret string
}

// CheckoutService turns a cart into an order: snapshot the cart, compute the
// subtotal, apply and redeem an optional voucher, persist the order with
// frozen prices, open a payment intent, and clear the cart.
type CheckoutService interface {
	Checkout(ctx context.Context, sessionID, voucherCode string) (*CheckoutResult, error)
	GetOrder(ctx context.Context, id string) (domain.Order, error)
}

type checkoutService struct {
	repo     repository.Querier
	provider billing.Provider
	events   events.Publisher
	metrics  *telemetry.BusinessMetrics
	now      func() time.Time
}

// NewCheckoutService creates the checkout service. metrics may be nil in
// tests.
func NewCheckoutService(repo repository.Querier, provider billing.Provider, publisher events.Publisher, metrics *telemetry.BusinessMetrics) CheckoutService {
	return &checkoutService{
		repo:     repo,
		provider: provider,
		events:   publisher,
		metrics:  metrics,
		now:      time.Now,
	}
}

func (s *checkoutService) Checkout(ctx context.Context, sessionID, voucherCode string) (*CheckoutResult, error) {
	cart, err := s.repo.GetCartBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.GetCartItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	var subtotal float64
	orderItems := make([]domain.OrderItem, len(items))
	for i, item := range items {
		unitPrice := catalog.EffectivePrice(item.Product)
		subtotal += unitPrice * float64(item.Quantity)
		orderItems[i] = domain.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			UnitPrice: unitPrice,
			Quantity:  item.Quantity,
			Color:     item.Color,
			Size:      item.Size,
		}
	}

	total := subtotal
	var discount float64
	if voucherCode != "" {
		discount, err = s.redeemVoucher(ctx, voucherCode, subtotal)
		if err != nil {
			return nil, err
		}
		total = subtotal - discount
	}

	order := domain.Order{
		ID:             uuid.NewString(),
		SessionID:      sessionID,
		Items:          orderItems,
		Subtotal:       subtotal,
		DiscountAmount: discount,
		Total:          total,
		VoucherCode:    voucherCode,
		Status:         domain.OrderStatusPending,
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	intent, err := s.provider.CreatePaymentIntent(ctx, billing.CreatePaymentIntentParams{
		Amount:      int64(math.Round(total)),
		Description: fmt.Sprintf("Order %s", order.ID),
		OrderID:     order.ID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.ClearCart(ctx, cart.ID); err != nil {
		return nil, err
	}

	s.events.Publish(events.SubjectOrderCreated, map[string]any{
		"order_id": order.ID,
		"total":    order.Total,
		"items":    len(order.Items),
	})
	if s.metrics != nil {
		s.metrics.OrdersCreated.Inc()
		s.metrics.OrderValue.Observe(order.Total)
		s.metrics.CartValue.Observe(subtotal)
	}

	stored, err := s.repo.GetOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return &CheckoutResult{
		Order:               stored,
		PaymentClientSecret: intent.ClientSecret,
	}, nil
}

// redeemVoucher validates the code against the subtotal and consumes one use.
// The consume step is a guarded update in storage, so two checkouts racing
// for the last use cannot both succeed.
func (s *checkoutService) redeemVoucher(ctx context.Context, code string, subtotal float64) (float64, error) {
	v, err := s.repo.GetVoucherByCode(ctx, code)
	if err != nil {
		return 0, err
	}

	result := voucher.Apply(subtotal, v, s.now())
	if !result.Redeemable() {
		if s.metrics != nil {
			s.metrics.VoucherRejections.WithLabelValues(string(result.Reason)).Inc()
		}
		return 0, domain.Invalid("checkout.voucher", voucherRejectionMessage(result.Reason))
	}

	if err := s.repo.RedeemVoucher(ctx, code); err != nil {
		if errors.Is(err, domain.ErrVoucherExhausted) && s.metrics != nil {
			s.metrics.VoucherRejections.WithLabelValues(string(voucher.ReasonUsageCapped)).Inc()
		}
		return 0, err
	}

	if s.metrics != nil {
		s.metrics.VoucherRedemptions.Inc()
	}
	return result.DiscountAmount, nil
}

func (s *checkoutService) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func voucherRejectionMessage(reason voucher.Reason) string {
	switch reason {
	case voucher.ReasonInactive:
		return "This voucher is not active"
	case voucher.ReasonExpired:
		return "This voucher has expired"
	case voucher.ReasonUsageCapped:
		return "This voucher has reached its usage limit"
	case voucher.ReasonBelowMinimum:
		return "Order total is below the voucher minimum"
	default:
		return "This voucher cannot be applied"
	}
}
