package interfaces

import (
	"bemu_storefront/internal/domain/entities"
	"context"
	"errors"
	"net/url"
)

var (
	// ErrWebhookSignature is returned when a notification cannot be authenticated.
	ErrWebhookSignature        = errors.New("invalid webhook signature")
	ErrWebhookSignatureMissing = errors.New("missing webhook signature")
	// ErrWebhookIgnored marks notifications that are valid but carry nothing to process.
	ErrWebhookIgnored = errors.New("webhook event ignored")
)

// CheckoutSessionInput is everything a provider needs to host a checkout page.
type CheckoutSessionInput struct {
	CheckoutID string
	Lines      []entities.CheckoutLine
	Currency   string
	SuccessURL string
	CancelURL  string
	// NotificationURL is used by providers that take the webhook target per request.
	NotificationURL  string
	AllowedCountries []string
}

type ProviderSession struct {
	ID  string
	URL string
}

// WebhookNotification is a raw provider callback.
type WebhookNotification struct {
	Payload   []byte
	Signature string
	Query     url.Values
}

// IPaymentGateway abstracts hosted-checkout payment providers (Stripe, Mercado Pago).
type IPaymentGateway interface {
	Provider() string
	CreateCheckoutSession(ctx context.Context, in CheckoutSessionInput) (ProviderSession, error)
	// ParseWebhook authenticates a notification and returns the completed checkout it reports.
	// Notifications that are not a completed payment return ErrWebhookIgnored.
	ParseWebhook(ctx context.Context, n WebhookNotification) (entities.CompletedCheckout, error)
}
