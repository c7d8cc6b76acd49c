package billing

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wicaksana/atelier/internal/domain"
)

// MockProvider simulates successful payment flows without calling Stripe.
// Used by tests and by local development when no secret key is configured.
type MockProvider struct {
	// CreatePaymentIntentFunc overrides payment intent creation behavior.
	CreatePaymentIntentFunc func(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error)

	mu      sync.Mutex
	intents map[string]*PaymentIntent

	// CallLog tracks method calls for test assertions.
	CallLog []string
}

var _ Provider = (*MockProvider)(nil)

func NewMockProvider() *MockProvider {
	return &MockProvider{intents: make(map[string]*PaymentIntent)}
}

func (m *MockProvider) CreatePaymentIntent(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error) {
	if m.CreatePaymentIntentFunc != nil {
		return m.CreatePaymentIntentFunc(ctx, params)
	}

	pi := &PaymentIntent{
		ID:           "pi_" + uuid.NewString(),
		ClientSecret: "pi_secret_" + uuid.NewString(),
		Amount:       params.Amount,
		Currency:     "idr",
		Status:       "requires_payment_method",
		CreatedAt:    time.Now(),
	}

	m.mu.Lock()
	m.intents[pi.ID] = pi
	m.CallLog = append(m.CallLog, "CreatePaymentIntent")
	m.mu.Unlock()
	return pi, nil
}

func (m *MockProvider) GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallLog = append(m.CallLog, "GetPaymentIntent")
	pi, ok := m.intents[id]
	if !ok {
		return nil, domain.NotFound("billing.get_payment_intent", "payment intent", id)
	}
	return pi, nil
}
