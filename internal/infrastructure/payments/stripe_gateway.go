package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"bemu_storefront/internal/domain/entities"
	"bemu_storefront/internal/usecase/interfaces"
	"bemu_storefront/pkg/logger"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

const ProviderStripe = "stripe"

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

// StripeGateway creates hosted Stripe Checkout sessions and verifies their webhooks.
type StripeGateway struct {
	sessions      session.Client
	webhookSecret string
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey, webhookSecret string) (*StripeGateway, error) {
	return newStripeGateway(secretKey, webhookSecret, stripe.GetBackend(stripe.APIBackend))
}

func newStripeGateway(secretKey, webhookSecret string, backend stripe.Backend) (*StripeGateway, error) {
	if secretKey == "" {
		return nil, ErrMissingStripeSecretKey
	}
	return &StripeGateway{
		sessions:      session.Client{B: backend, Key: secretKey},
		webhookSecret: webhookSecret,
	}, nil
}

func (g *StripeGateway) Provider() string { return ProviderStripe }

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, in interfaces.CheckoutSessionInput) (interfaces.ProviderSession, error) {
	log := logger.Component(ctx, "payment", "gateway").With().Str("provider", ProviderStripe).Logger()

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		SuccessURL:         stripe.String(in.SuccessURL),
		CancelURL:          stripe.String(in.CancelURL),
		ClientReferenceID:  stripe.String(in.CheckoutID),
		PhoneNumberCollection: &stripe.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		},
	}
	if len(in.AllowedCountries) > 0 {
		params.ShippingAddressCollection = &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(in.AllowedCountries),
		}
	}
	for _, l := range in.Lines {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(l.ProductName),
		}
		if l.ImageURL != "" {
			product.Images = stripe.StringSlice([]string{l.ImageURL})
		}
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(in.Currency),
				ProductData: product,
				UnitAmount:  stripe.Int64(toCents(l.Price)),
			},
			Quantity: stripe.Int64(int64(l.Quantity)),
		})
	}
	params.AddMetadata("checkout_id", in.CheckoutID)
	params.Context = ctx

	s, err := g.sessions.New(params)
	if err != nil {
		log.Error().Err(err).Str("checkout_id", in.CheckoutID).Msg("create session failed")
		return interfaces.ProviderSession{}, err
	}
	log.Info().Str("checkout_id", in.CheckoutID).Str("session_id", s.ID).Msg("session created")
	return interfaces.ProviderSession{ID: s.ID, URL: s.URL}, nil
}

// ParseWebhook verifies the Stripe-Signature header and extracts checkout.session.completed events.
func (g *StripeGateway) ParseWebhook(ctx context.Context, n interfaces.WebhookNotification) (entities.CompletedCheckout, error) {
	if n.Signature == "" {
		return entities.CompletedCheckout{}, interfaces.ErrWebhookSignatureMissing
	}

	event, err := webhook.ConstructEventWithOptions(n.Payload, n.Signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		logger.Component(ctx, "payment", "gateway").Warn().Err(err).Msg("stripe signature verification failed")
		return entities.CompletedCheckout{}, fmt.Errorf("%w: %v", interfaces.ErrWebhookSignature, err)
	}

	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		return entities.CompletedCheckout{}, interfaces.ErrWebhookIgnored
	}

	var s stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
		return entities.CompletedCheckout{}, fmt.Errorf("decode checkout session: %w", err)
	}
	return completedFromStripeSession(s), nil
}

func completedFromStripeSession(s stripe.CheckoutSession) entities.CompletedCheckout {
	c := entities.CompletedCheckout{
		Provider:          ProviderStripe,
		ProviderReference: s.ID,
		CheckoutID:        s.ClientReferenceID,
		AmountTotal:       float64(s.AmountTotal) / 100,
	}
	if c.CheckoutID == "" {
		c.CheckoutID = s.Metadata["checkout_id"]
	}
	if d := s.CustomerDetails; d != nil {
		c.CustomerEmail = d.Email
		c.CustomerName = d.Name
		c.CustomerPhone = d.Phone
	}

	var addr *stripe.Address
	if s.ShippingDetails != nil && s.ShippingDetails.Address != nil {
		addr = s.ShippingDetails.Address
		if c.CustomerName == "" {
			c.CustomerName = s.ShippingDetails.Name
		}
	} else if s.CustomerDetails != nil {
		addr = s.CustomerDetails.Address
	}
	if addr != nil {
		c.ShippingAddress = &entities.ShippingAddress{
			Line1:      addr.Line1,
			Line2:      addr.Line2,
			City:       addr.City,
			State:      addr.State,
			PostalCode: addr.PostalCode,
			Country:    addr.Country,
		}
	}
	return c
}

func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}
