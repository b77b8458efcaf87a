package routes

import (
	"context"
	"fmt"

	"bemu_storefront/internal/adapter/persistence/airtable"
	"bemu_storefront/internal/adapter/persistence/cache"
	"bemu_storefront/internal/adapter/persistence/repository"
	"bemu_storefront/internal/config"
	at "bemu_storefront/internal/infrastructure/airtable"
	"bemu_storefront/internal/infrastructure/database"
	"bemu_storefront/internal/infrastructure/messaging"
	"bemu_storefront/internal/infrastructure/metrics"
	"bemu_storefront/internal/infrastructure/payments"
	"bemu_storefront/internal/infrastructure/spreadsheet"
	"bemu_storefront/internal/usecase"
	"bemu_storefront/internal/usecase/interfaces"
	"bemu_storefront/pkg/logger"
)

// Dependencies are the use cases the HTTP layer serves.
type Dependencies struct {
	Catalog  usecase.ICatalogUseCase
	Drawer   usecase.IDrawerUseCase
	Cart     usecase.ICartUseCase
	Checkout usecase.ICheckoutUseCase
}

// buildDependencies connects the backing services and assembles the use cases.
// The returned cleanup closes whatever was opened.
func buildDependencies(ctx context.Context, cfg config.Config, m *metrics.Metrics) (Dependencies, func(), error) {
	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Logger.Warn().Err(err).Msg("Failed to close dependency")
			}
		}
	}

	airtableClient, err := at.NewClient(cfg.AirtableAPIKey, cfg.AirtableBaseID)
	if err != nil {
		return Dependencies{}, cleanup, fmt.Errorf("airtable: %w", err)
	}

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return Dependencies{}, cleanup, fmt.Errorf("dynamodb: %w", err)
	}

	redisClient := database.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if redisClient != nil {
		closers = append(closers, redisClient.Close)
	}

	var catalogRepo interfaces.ICatalogRepository = airtable.NewCatalogRepository(airtableClient)
	var cartStore interfaces.ICartStore = cache.NewMemoryCartStore()
	if redisClient != nil {
		catalogRepo = cache.NewCatalogCache(catalogRepo, redisClient, cfg.CatalogCacheTTL)
		cartStore = cache.NewRedisCartStore(redisClient, cfg.CartTTL)
	}
	orderRepo := airtable.NewOrderRepository(airtableClient)
	checkoutRepo := repository.NewCheckoutDynamoRepository(ddb, cfg.CheckoutsTable)

	var publisher interfaces.IEventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		p, err := messaging.NewPublisher(cfg.KafkaBrokers, cfg.KafkaOrdersTopic)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka publisher not configured - order events disabled")
		} else {
			publisher = p
			closers = append(closers, p.Close)
		}
	}

	drawerUseCase := usecase.NewDrawerUseCase(catalogRepo, spreadsheet.NewLayoutExporter(), m)

	deps := Dependencies{
		Catalog: usecase.NewCatalogUseCase(catalogRepo),
		Drawer:  drawerUseCase,
		Cart:    usecase.NewCartUseCase(cartStore, catalogRepo, drawerUseCase),
		Checkout: usecase.NewCheckoutUseCase(
			checkoutRepo,
			orderRepo,
			catalogRepo,
			cartStore,
			paymentGateways(cfg),
			publisher,
			usecase.CheckoutSettings{
				Provider:        cfg.PaymentProvider,
				PublicBaseURL:   cfg.PublicBaseURL,
				NotificationURL: cfg.MercadoPagoNotificationURL,
				Currency:        cfg.CheckoutCurrency,
			},
		),
	}
	return deps, cleanup, nil
}

// paymentGateways returns every provider that has credentials, or local fakes in mock mode.
func paymentGateways(cfg config.Config) []interfaces.IPaymentGateway {
	if cfg.PaymentGatewayMock {
		logger.Logger.Warn().Msg("Payment gateway mock enabled - no external payment calls will be made")
		return []interfaces.IPaymentGateway{
			payments.NewMockGateway(config.ProviderStripe),
			payments.NewMockGateway(config.ProviderMercadoPago),
		}
	}

	var gateways []interfaces.IPaymentGateway
	if stripeGateway, err := payments.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret); err != nil {
		logger.Logger.Warn().Err(err).Msg("Stripe gateway not configured")
	} else {
		gateways = append(gateways, stripeGateway)
	}
	if mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken); err != nil {
		logger.Logger.Warn().Err(err).Msg("Mercado Pago gateway not configured")
	} else {
		gateways = append(gateways, mpGateway)
	}
	return gateways
}
