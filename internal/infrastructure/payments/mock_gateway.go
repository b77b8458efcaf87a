package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bemu_storefront/internal/domain/entities"
	"bemu_storefront/internal/usecase/interfaces"
	"bemu_storefront/pkg/logger"
)

// MockGateway stands in for a real provider when PAYMENT_GATEWAY_MOCK is set. Sessions
// redirect straight to the success URL and webhooks are accepted without a signature.
type MockGateway struct {
	provider string
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MockGateway)(nil)

func NewMockGateway(provider string) *MockGateway {
	logger.Logger.Warn().Str("component", "payment").Str("layer", "gateway").Str("provider", provider).Msg("mock mode enabled")
	return &MockGateway{provider: provider, now: time.Now}
}

func (g *MockGateway) Provider() string { return g.provider }

func (g *MockGateway) CreateCheckoutSession(ctx context.Context, in interfaces.CheckoutSessionInput) (interfaces.ProviderSession, error) {
	id := "mock_" + strconv.FormatInt(g.now().UTC().UnixNano(), 10)
	logger.Component(ctx, "payment", "gateway").Info().
		Str("provider", g.provider).
		Str("checkout_id", in.CheckoutID).
		Str("session_id", id).
		Msg("mock session created")
	return interfaces.ProviderSession{
		ID:  id,
		URL: strings.ReplaceAll(in.SuccessURL, "{CHECKOUT_SESSION_ID}", id),
	}, nil
}

// mockNotification is the body accepted by the mock webhook.
type mockNotification struct {
	SessionID  string  `json:"session_id"`
	CheckoutID string  `json:"checkout_id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
}

func (g *MockGateway) ParseWebhook(_ context.Context, n interfaces.WebhookNotification) (entities.CompletedCheckout, error) {
	var body mockNotification
	if err := json.Unmarshal(n.Payload, &body); err != nil {
		return entities.CompletedCheckout{}, fmt.Errorf("%w: %v", interfaces.ErrWebhookSignature, err)
	}
	if body.SessionID == "" && body.CheckoutID == "" {
		return entities.CompletedCheckout{}, interfaces.ErrWebhookIgnored
	}
	ref := body.SessionID
	if ref == "" {
		ref = "mock_" + body.CheckoutID
	}
	return entities.CompletedCheckout{
		Provider:          g.provider,
		ProviderReference: ref,
		CheckoutID:        body.CheckoutID,
		CustomerEmail:     body.Email,
		CustomerName:      body.Name,
		AmountTotal:       body.Amount,
	}, nil
}
