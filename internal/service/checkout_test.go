package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicaksana/atelier/internal/billing"
	"github.com/wicaksana/atelier/internal/domain"
	"github.com/wicaksana/atelier/internal/events"
)

func checkoutFixture(t *testing.T) (*fakeRepo, CheckoutService) {
	t.Helper()

	repo := newFakeRepo()
	repo.addProduct(domain.Product{
		ID: "p1", Name: "Ceramic Mug", Price: 120_000, StockQuantity: 8, Published: true,
	})
	repo.addProduct(domain.Product{
		ID: "p2", Name: "Batik Tote Bag", Price: 100_000, DiscountPercent: 10,
		StockQuantity: 5, Published: true,
	})

	carts := NewCartService(repo, nil)
	_, err := carts.AddItem(context.Background(), "sess", "p1", 1, "", "")
	require.NoError(t, err)
	_, err = carts.AddItem(context.Background(), "sess", "p2", 2, "", "")
	require.NoError(t, err)

	svc := NewCheckoutService(repo, billing.NewMockProvider(), events.NopPublisher{}, nil)
	return repo, svc
}

func TestCheckout_CreatesOrderWithFrozenPrices(t *testing.T) {
	repo, svc := checkoutFixture(t)

	result, err := svc.Checkout(context.Background(), "sess", "")
	require.NoError(t, err)

	order := result.Order
	// 120000 + 2 * 90000 (10% off 100000)
	assert.InDelta(t, 300_000, order.Subtotal, 1e-9)
	assert.InDelta(t, 300_000, order.Total, 1e-9)
	assert.Zero(t, order.DiscountAmount)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.NotEmpty(t, result.PaymentClientSecret)

	require.Len(t, order.Items, 2)
	for _, item := range order.Items {
		if item.ProductID == "p2" {
			assert.InDelta(t, 90_000, item.UnitPrice, 1e-9, "unit price frozen at effective price")
		}
	}

	assert.Equal(t, 7, repo.products["p1"].StockQuantity, "stock decremented")
	assert.Equal(t, 3, repo.products["p2"].StockQuantity)

	items, err := repo.GetCartItems(context.Background(), repo.carts["sess"].ID)
	require.NoError(t, err)
	assert.Empty(t, items, "cart cleared after checkout")
}

func TestCheckout_AppliesAndRedeemsVoucher(t *testing.T) {
	repo, svc := checkoutFixture(t)
	maxUses := 10
	repo.vouchers["HEMAT20"] = domain.Voucher{
		Code: "HEMAT20", DiscountType: domain.DiscountPercent, DiscountValue: 20,
		Active: true, MaxUses: &maxUses,
	}

	result, err := svc.Checkout(context.Background(), "sess", "HEMAT20")
	require.NoError(t, err)

	assert.InDelta(t, 60_000, result.Order.DiscountAmount, 1e-9)
	assert.InDelta(t, 240_000, result.Order.Total, 1e-9)
	assert.Equal(t, "HEMAT20", result.Order.VoucherCode)
	assert.Equal(t, 1, repo.vouchers["HEMAT20"].UsedCount, "redemption consumes one use")
}

func TestCheckout_RejectsIneligibleVoucher(t *testing.T) {
	repo, svc := checkoutFixture(t)
	past := time.Now().Add(-time.Hour)
	repo.vouchers["LATE"] = domain.Voucher{
		Code: "LATE", DiscountType: domain.DiscountFixed, DiscountValue: 50_000,
		Active: true, ExpiresAt: &past,
	}

	_, err := svc.Checkout(context.Background(), "sess", "LATE")
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
	assert.Zero(t, repo.vouchers["LATE"].UsedCount, "rejected voucher is not consumed")
}

func TestCheckout_UnknownVoucher(t *testing.T) {
	_, svc := checkoutFixture(t)

	_, err := svc.Checkout(context.Background(), "sess", "NOPE")
	assert.ErrorIs(t, err, domain.ErrVoucherNotFound)
}

func TestCheckout_EmptyCart(t *testing.T) {
	repo := newFakeRepo()
	_, err := repo.CreateCart(context.Background(), "sess")
	require.NoError(t, err)

	svc := NewCheckoutService(repo, billing.NewMockProvider(), events.NopPublisher{}, nil)
	_, err = svc.Checkout(context.Background(), "sess", "")
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCheckout_PaymentIntentAmountIsRoundedTotal(t *testing.T) {
	repo, _ := checkoutFixture(t)

	provider := billing.NewMockProvider()
	var gotAmount int64
	provider.CreatePaymentIntentFunc = func(ctx context.Context, params billing.CreatePaymentIntentParams) (*billing.PaymentIntent, error) {
		gotAmount = params.Amount
		return &billing.PaymentIntent{ID: "pi_1", ClientSecret: "secret"}, nil
	}

	svc := NewCheckoutService(repo, provider, events.NopPublisher{}, nil)
	_, err := svc.Checkout(context.Background(), "sess", "")
	require.NoError(t, err)

	assert.Equal(t, int64(300_000), gotAmount)
}
