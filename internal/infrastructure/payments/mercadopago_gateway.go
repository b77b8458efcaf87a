package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bemu_storefront/internal/domain/entities"
	"bemu_storefront/internal/usecase/interfaces"
	"bemu_storefront/pkg/logger"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

const ProviderMercadoPago = "mercadopago"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type paymentGetter interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoGateway hosts checkouts as Mercado Pago preferences (Checkout Pro).
//
// Notifications are not trusted on their own: the payment is always fetched back
// from the API with our access token and only approved payments complete a checkout.
type MercadoPagoGateway struct {
	preferences preferenceCreator
	payments    paymentGetter
	sandbox     bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercado pago sdk config: %w", err)
	}
	logger.Logger.Info().Str("component", "payment").Str("layer", "gateway").Msg("Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
		sandbox:     strings.HasPrefix(accessToken, "TEST-"),
	}, nil
}

func (g *MercadoPagoGateway) Provider() string { return ProviderMercadoPago }

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, in interfaces.CheckoutSessionInput) (interfaces.ProviderSession, error) {
	log := logger.Component(ctx, "payment", "gateway").With().Str("provider", ProviderMercadoPago).Logger()

	items := make([]preference.ItemRequest, 0, len(in.Lines))
	for _, l := range in.Lines {
		items = append(items, preference.ItemRequest{
			ID:         l.ProductID,
			Title:      l.ProductName,
			Quantity:   l.Quantity,
			UnitPrice:  l.Price,
			CurrencyID: strings.ToUpper(in.Currency),
			PictureURL: l.ImageURL,
		})
	}

	// Mercado Pago appends its own query parameters; the checkout id stands in for the session placeholder.
	success := strings.ReplaceAll(in.SuccessURL, "{CHECKOUT_SESSION_ID}", in.CheckoutID)
	req := preference.Request{
		Items: items,
		BackURLs: &preference.BackURLsRequest{
			Success: success,
			Pending: success,
			Failure: in.CancelURL,
		},
		AutoReturn:        "approved",
		ExternalReference: in.CheckoutID,
		NotificationURL:   in.NotificationURL,
		Metadata:          map[string]any{"checkout_id": in.CheckoutID},
	}

	res, err := g.preferences.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("checkout_id", in.CheckoutID).Msg("create preference failed")
		return interfaces.ProviderSession{}, err
	}

	url := res.InitPoint
	if g.sandbox && res.SandboxInitPoint != "" {
		url = res.SandboxInitPoint
	}
	log.Info().Str("checkout_id", in.CheckoutID).Str("preference_id", res.ID).Msg("preference created")
	return interfaces.ProviderSession{ID: res.ID, URL: url}, nil
}

type mercadoPagoNotification struct {
	Type string `json:"type"`
	Data struct {
		ID any `json:"id"`
	} `json:"data"`
}

// ParseWebhook handles both the JSON body format ({"type":"payment","data":{"id":...}})
// and the legacy query format (?topic=payment&id=...).
func (g *MercadoPagoGateway) ParseWebhook(ctx context.Context, n interfaces.WebhookNotification) (entities.CompletedCheckout, error) {
	log := logger.Component(ctx, "payment", "gateway").With().Str("provider", ProviderMercadoPago).Logger()

	kind, rawID := notificationTarget(n)
	if kind != "payment" || rawID == "" {
		return entities.CompletedCheckout{}, interfaces.ErrWebhookIgnored
	}
	paymentID, err := strconv.Atoi(rawID)
	if err != nil {
		log.Warn().Str("payment_id", rawID).Msg("ignoring notification with non-numeric payment id")
		return entities.CompletedCheckout{}, interfaces.ErrWebhookIgnored
	}

	p, err := g.payments.Get(ctx, paymentID)
	if err != nil {
		log.Error().Err(err).Int("payment_id", paymentID).Msg("payment lookup failed")
		return entities.CompletedCheckout{}, fmt.Errorf("payment lookup %d: %w", paymentID, err)
	}
	if p.Status != "approved" {
		log.Debug().Int("payment_id", paymentID).Str("status", p.Status).Msg("payment not approved")
		return entities.CompletedCheckout{}, interfaces.ErrWebhookIgnored
	}

	name := strings.TrimSpace(p.Payer.FirstName + " " + p.Payer.LastName)
	return entities.CompletedCheckout{
		Provider:          ProviderMercadoPago,
		ProviderReference: strconv.Itoa(p.ID),
		CheckoutID:        p.ExternalReference,
		CustomerEmail:     p.Payer.Email,
		CustomerName:      name,
		AmountTotal:       p.TransactionAmount,
	}, nil
}

func notificationTarget(n interfaces.WebhookNotification) (kind, id string) {
	var body mercadoPagoNotification
	if len(n.Payload) > 0 && json.Unmarshal(n.Payload, &body) == nil {
		kind = body.Type
		switch v := body.Data.ID.(type) {
		case string:
			id = v
		case float64:
			id = strconv.FormatInt(int64(v), 10)
		}
	}
	if kind == "" {
		kind = firstNonEmpty(n.Query.Get("type"), n.Query.Get("topic"))
	}
	if id == "" {
		id = firstNonEmpty(n.Query.Get("data.id"), n.Query.Get("id"))
	}
	return kind, id
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
