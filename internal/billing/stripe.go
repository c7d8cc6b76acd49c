package billing

import (
	"context"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"github.com/wicaksana/atelier/internal/domain"
)

// StripeProvider implements Provider using the Stripe API.
type StripeProvider struct{}

var _ Provider = (*StripeProvider)(nil)

// NewStripeProvider configures the Stripe SDK with the secret key.
func NewStripeProvider(secretKey string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{}
}

func (s *StripeProvider) CreatePaymentIntent(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error) {
	piParams := &stripe.PaymentIntentParams{
		Params:      stripe.Params{Context: ctx},
		Amount:      stripe.Int64(params.Amount),
		Currency:    stripe.String(string(stripe.CurrencyIDR)),
		Description: stripe.String(params.Description),
	}
	piParams.AddMetadata("order_id", params.OrderID)

	pi, err := paymentintent.New(piParams)
	if err != nil {
		return nil, domain.Internal(err, "billing.create_payment_intent", "stripe payment intent creation failed")
	}
	return fromStripeIntent(pi), nil
}

func (s *StripeProvider) GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error) {
	pi, err := paymentintent.Get(id, &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, domain.Internal(err, "billing.get_payment_intent", "stripe payment intent lookup failed")
	}
	return fromStripeIntent(pi), nil
}

func fromStripeIntent(pi *stripe.PaymentIntent) *PaymentIntent {
	return &PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
		CreatedAt:    time.Unix(pi.Created, 0),
	}
}
