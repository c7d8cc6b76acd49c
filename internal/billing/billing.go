// Package billing abstracts the payment provider behind a small interface so
// checkout can run against Stripe in production and an in-memory mock in
// tests and local development.
package billing

import (
	"context"
	"time"
)

// Provider creates and retrieves payment intents for one-time charges.
type Provider interface {
	// CreatePaymentIntent registers a pending charge and returns the client
	// secret the frontend needs to confirm it.
	CreatePaymentIntent(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error)

	// GetPaymentIntent retrieves an existing payment intent by ID.
	GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error)
}

// CreatePaymentIntentParams contains parameters for creating a payment intent.
type CreatePaymentIntentParams struct {
	// Amount is the charge in rupiah. IDR is a zero-decimal currency, so
	// no minor-unit conversion happens here.
	Amount int64

	// Description appears on the customer statement and in the dashboard.
	Description string

	// OrderID links the intent back to the local order.
	OrderID string
}

// PaymentIntent is a pending or completed charge at the provider.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
	Status       string
	CreatedAt    time.Time
}
