package usecase

import (
	"bemu_storefront/internal/domain/entities"
	"bemu_storefront/internal/usecase/interfaces"
	"bemu_storefront/pkg/logger"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoCheckoutItems          = errors.New("no items provided")
	ErrMissingCheckoutFields    = errors.New("missing required fields in cart items")
	ErrCheckoutNotFound         = errors.New("checkout not found")
	ErrPaymentProviderNotFound  = errors.New("payment provider not configured")
	ErrPaymentGatewayFailed     = errors.New("payment gateway failed")
	ErrOrderWriteback           = errors.New("order writeback failed")
	ErrWebhookSignature         = interfaces.ErrWebhookSignature
	ErrWebhookSignatureMissing  = interfaces.ErrWebhookSignatureMissing
	ErrInvalidOrderStatusUpdate = errors.New("invalid order status")
)

// ShippingCountries are the destinations offered on the hosted checkout page.
var ShippingCountries = []string{"US", "CA", "GB", "AU", "DE", "FR", "ES", "IT", "NL"}

// CheckoutItemInput is a line as sent by the storefront. Price is re-read from the catalog.
type CheckoutItemInput struct {
	ProductID   string
	ProductName string
	Price       float64
	Quantity    int
	ImageURL    string
}

type CheckoutInput struct {
	Items  []CheckoutItemInput
	CartID string
}

type CheckoutSettings struct {
	Provider        string
	PublicBaseURL   string
	NotificationURL string
	Currency        string
}

// WebhookResult reports what a provider notification caused.
type WebhookResult struct {
	Processed     bool
	Duplicate     bool
	OrderRecordID string
}

type ICheckoutUseCase interface {
	CreateSession(ctx context.Context, in CheckoutInput) (entities.CheckoutSession, error)
	GetByID(ctx context.Context, id string) (entities.CheckoutSession, error)
	HandleWebhook(ctx context.Context, provider string, n interfaces.WebhookNotification) (WebhookResult, error)
	UpdateOrderStatus(ctx context.Context, orderRecordID string, status entities.OrderStatus) error
}

type CheckoutUseCase struct {
	checkouts interfaces.ICheckoutRepository
	orders    interfaces.IOrderRepository
	catalog   interfaces.ICatalogRepository
	carts     interfaces.ICartStore
	gateways  map[string]interfaces.IPaymentGateway
	publisher interfaces.IEventPublisher
	settings  CheckoutSettings
	now       func() time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	checkouts interfaces.ICheckoutRepository,
	orders interfaces.IOrderRepository,
	catalog interfaces.ICatalogRepository,
	carts interfaces.ICartStore,
	gateways []interfaces.IPaymentGateway,
	publisher interfaces.IEventPublisher,
	settings CheckoutSettings,
) *CheckoutUseCase {
	byName := make(map[string]interfaces.IPaymentGateway, len(gateways))
	for _, g := range gateways {
		if g != nil {
			byName[strings.ToLower(g.Provider())] = g
		}
	}
	if settings.Currency == "" {
		settings.Currency = "usd"
	}
	settings.PublicBaseURL = strings.TrimRight(settings.PublicBaseURL, "/")
	return &CheckoutUseCase{
		checkouts: checkouts,
		orders:    orders,
		catalog:   catalog,
		carts:     carts,
		gateways:  byName,
		publisher: publisher,
		settings:  settings,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *CheckoutUseCase) CreateSession(ctx context.Context, in CheckoutInput) (entities.CheckoutSession, error) {
	log := logger.Component(ctx, "checkout", "usecase")

	items := in.Items
	cartID := strings.TrimSpace(in.CartID)
	if cartID != "" {
		if u.carts == nil {
			return entities.CheckoutSession{}, ErrCartNotFound
		}
		cart, err := u.carts.Get(ctx, cartID)
		if err != nil {
			return entities.CheckoutSession{}, err
		}
		if cart.ID == "" {
			return entities.CheckoutSession{}, ErrCartNotFound
		}
		items = checkoutItemsFromCart(cart)
	}
	if len(items) == 0 {
		return entities.CheckoutSession{}, ErrNoCheckoutItems
	}
	for _, it := range items {
		if strings.TrimSpace(it.ProductID) == "" || strings.TrimSpace(it.ProductName) == "" || it.Price <= 0 || it.Quantity <= 0 {
			log.Info().Str("product_id", it.ProductID).Msg("checkout item missing fields")
			return entities.CheckoutSession{}, ErrMissingCheckoutFields
		}
	}

	lines, err := u.priceLines(ctx, items)
	if err != nil {
		return entities.CheckoutSession{}, err
	}

	gateway, ok := u.gateways[strings.ToLower(u.settings.Provider)]
	if !ok {
		log.Error().Str("provider", u.settings.Provider).Msg("payment provider not configured")
		return entities.CheckoutSession{}, ErrPaymentProviderNotFound
	}

	record := entities.CheckoutSession{
		ID:        uuid.NewString(),
		Provider:  gateway.Provider(),
		CartID:    cartID,
		Items:     lines,
		Currency:  u.settings.Currency,
		Status:    entities.CheckoutStatusPending,
		CreatedAt: u.now(),
	}
	record.AmountTotal = record.Total()

	ps, err := gateway.CreateCheckoutSession(ctx, interfaces.CheckoutSessionInput{
		CheckoutID:       record.ID,
		Lines:            lines,
		Currency:         u.settings.Currency,
		SuccessURL:       u.settings.PublicBaseURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:        u.settings.PublicBaseURL + "/products",
		NotificationURL:  u.settings.NotificationURL,
		AllowedCountries: ShippingCountries,
	})
	if err != nil {
		log.Error().Err(err).Str("checkout_id", record.ID).Str("provider", record.Provider).Msg("create provider session failed")
		return entities.CheckoutSession{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
	}
	record.ProviderSessionID = ps.ID
	record.URL = ps.URL

	created, err := u.checkouts.Create(ctx, record)
	if err != nil {
		log.Error().Err(err).Str("checkout_id", record.ID).Msg("persist checkout failed")
		return entities.CheckoutSession{}, err
	}
	log.Info().
		Str("checkout_id", created.ID).
		Str("provider", created.Provider).
		Str("session_id", created.ProviderSessionID).
		Float64("amount_total", created.AmountTotal).
		Msg("checkout session created")
	return created, nil
}

// priceLines replaces client-sent prices and names with catalog values.
func (u *CheckoutUseCase) priceLines(ctx context.Context, items []CheckoutItemInput) ([]entities.CheckoutLine, error) {
	lines := make([]entities.CheckoutLine, 0, len(items))
	for _, it := range items {
		p, err := u.catalog.GetProductByID(ctx, strings.TrimSpace(it.ProductID))
		if err != nil {
			return nil, err
		}
		if p.ID == "" {
			return nil, ErrProductNotFound
		}
		if !p.InStock {
			return nil, ErrProductOutOfStock
		}
		image := it.ImageURL
		if image == "" {
			image = p.PrimaryImageURL()
		}
		lines = append(lines, entities.CheckoutLine{
			ProductID:   p.ID,
			ProductName: p.Name,
			Price:       p.Price,
			Quantity:    it.Quantity,
			ImageURL:    image,
		})
	}
	return lines, nil
}

func (u *CheckoutUseCase) GetByID(ctx context.Context, id string) (entities.CheckoutSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CheckoutSession{}, ErrCheckoutNotFound
	}
	s, err := u.checkouts.GetByID(ctx, id)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if s.ID == "" {
		return entities.CheckoutSession{}, ErrCheckoutNotFound
	}
	return s, nil
}

// HandleWebhook verifies a provider notification and writes the paid order back.
// It is idempotent on the provider reference, so providers may retry safely.
func (u *CheckoutUseCase) HandleWebhook(ctx context.Context, provider string, n interfaces.WebhookNotification) (WebhookResult, error) {
	log := logger.Component(ctx, "checkout", "webhook").With().Str("provider", provider).Logger()

	gateway, ok := u.gateways[strings.ToLower(strings.TrimSpace(provider))]
	if !ok {
		return WebhookResult{}, ErrPaymentProviderNotFound
	}

	completed, err := gateway.ParseWebhook(ctx, n)
	if errors.Is(err, interfaces.ErrWebhookIgnored) {
		log.Debug().Msg("notification ignored")
		return WebhookResult{}, nil
	}
	if err != nil {
		log.Warn().Err(err).Msg("notification rejected")
		return WebhookResult{}, err
	}
	log = log.With().Str("order_id", completed.ProviderReference).Str("checkout_id", completed.CheckoutID).Logger()

	existing, err := u.orders.FindByOrderID(ctx, completed.ProviderReference)
	if err != nil {
		log.Error().Err(err).Msg("order lookup failed")
		return WebhookResult{}, fmt.Errorf("%w: %v", ErrOrderWriteback, err)
	}

	record, err := u.findCheckout(ctx, completed)
	if err != nil {
		log.Error().Err(err).Msg("checkout lookup failed")
		return WebhookResult{}, fmt.Errorf("%w: %v", ErrOrderWriteback, err)
	}

	if existing.ID != "" {
		log.Info().Str("order_record_id", existing.ID).Msg("order already written")
		if record.ID != "" && record.Status != entities.CheckoutStatusCompleted {
			if _, err := u.checkouts.MarkCompleted(ctx, record.ID, existing.ID, u.now()); err != nil {
				return WebhookResult{}, fmt.Errorf("%w: %v", ErrOrderWriteback, err)
			}
		}
		return WebhookResult{Duplicate: true, OrderRecordID: existing.ID}, nil
	}

	if record.ID == "" {
		// Still write the order so a paid checkout is never dropped.
		log.Warn().Msg("checkout record not found; writing order without items")
	}

	order := entities.Order{
		OrderID:         completed.ProviderReference,
		CustomerEmail:   completed.CustomerEmail,
		CustomerName:    completed.CustomerName,
		CustomerPhone:   completed.CustomerPhone,
		Total:           completed.AmountTotal,
		Status:          entities.OrderStatusPaid,
		ShippingAddress: completed.ShippingAddress,
		Items:           orderItemsFromCheckout(record),
		CreatedAt:       u.now(),
	}
	if order.Total == 0 {
		order.Total = record.Total()
	}

	created, err := u.orders.CreateOrder(ctx, order)
	if err != nil {
		log.Error().Err(err).Msg("create order failed")
		return WebhookResult{}, fmt.Errorf("%w: %v", ErrOrderWriteback, err)
	}

	if record.ID != "" {
		if _, err := u.checkouts.MarkCompleted(ctx, record.ID, created.ID, u.now()); err != nil {
			log.Error().Err(err).Msg("mark checkout completed failed")
			return WebhookResult{}, fmt.Errorf("%w: %v", ErrOrderWriteback, err)
		}
		if record.CartID != "" && u.carts != nil {
			if err := u.carts.Delete(ctx, record.CartID); err != nil {
				log.Warn().Err(err).Str("cart_id", record.CartID).Msg("clear cart failed")
			}
		}
	}

	u.publishOrderCreated(ctx, created, record, gateway.Provider())

	log.Info().Str("order_record_id", created.ID).Int("items", len(created.Items)).Float64("total", created.Total).Msg("order written")
	return WebhookResult{Processed: true, OrderRecordID: created.ID}, nil
}

func (u *CheckoutUseCase) findCheckout(ctx context.Context, c entities.CompletedCheckout) (entities.CheckoutSession, error) {
	if c.CheckoutID != "" {
		return u.checkouts.GetByID(ctx, c.CheckoutID)
	}
	if c.ProviderReference != "" {
		return u.checkouts.GetByProviderSessionID(ctx, c.ProviderReference)
	}
	return entities.CheckoutSession{}, nil
}

func (u *CheckoutUseCase) publishOrderCreated(ctx context.Context, order entities.Order, record entities.CheckoutSession, provider string) {
	if u.publisher == nil {
		return
	}
	event := entities.OrderCreatedEvent{
		EventID:       uuid.NewString(),
		OrderRecordID: order.ID,
		OrderID:       order.OrderID,
		CheckoutID:    record.ID,
		Provider:      provider,
		CustomerEmail: order.CustomerEmail,
		Total:         order.Total,
		Items:         order.Items,
		OccurredAt:    u.now(),
	}
	if err := u.publisher.PublishOrderCreated(ctx, event); err != nil {
		// The order is already stored; a lost event is not worth a provider retry.
		logger.Component(ctx, "checkout", "usecase").Error().Err(err).Str("order_id", order.OrderID).Msg("publish order created failed")
	}
}

func (u *CheckoutUseCase) UpdateOrderStatus(ctx context.Context, orderRecordID string, status entities.OrderStatus) error {
	orderRecordID = strings.TrimSpace(orderRecordID)
	if orderRecordID == "" || !status.Valid() {
		return ErrInvalidOrderStatusUpdate
	}
	return u.orders.UpdateOrderStatus(ctx, orderRecordID, status)
}

func checkoutItemsFromCart(cart entities.Cart) []CheckoutItemInput {
	out := make([]CheckoutItemInput, 0, len(cart.Items))
	for _, it := range cart.Items {
		out = append(out, CheckoutItemInput{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       it.Price,
			Quantity:    it.Quantity,
			ImageURL:    it.ImageURL,
		})
	}
	return out
}

func orderItemsFromCheckout(s entities.CheckoutSession) []entities.OrderItem {
	out := make([]entities.OrderItem, 0, len(s.Items))
	for _, l := range s.Items {
		out = append(out, entities.OrderItem{ProductID: l.ProductID, Quantity: l.Quantity, Price: l.Price})
	}
	return out
}
