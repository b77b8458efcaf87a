// Package config reads service settings from the environment.
//
// A .env file in the working directory is loaded by cmd/api before Load runs.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderStripe      = "stripe"
	ProviderMercadoPago = "mercadopago"
)

type Config struct {
	Port               int
	Env                string
	LogLevel           string
	PublicBaseURL      string
	CORSAllowedOrigins []string

	AirtableAPIKey string
	AirtableBaseID string

	PaymentProvider            string
	PaymentGatewayMock         bool
	StripeSecretKey            string
	StripeWebhookSecret        string
	MercadoPagoAccessToken     string
	MercadoPagoNotificationURL string
	CheckoutCurrency           string

	CheckoutsTable string

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CatalogCacheTTL time.Duration
	CartTTL         time.Duration

	KafkaBrokers     []string
	KafkaOrdersTopic string
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == "local"
}

// Load returns the configuration with defaults applied.
func Load() Config {
	return Config{
		Port:               getenvInt("PORT", 8080),
		Env:                strings.ToLower(getenvDefault("APP_ENV", "production")),
		LogLevel:           getenvDefault("LOG_LEVEL", "info"),
		PublicBaseURL:      strings.TrimRight(getenvDefault("PUBLIC_BASE_URL", "http://localhost:3000"), "/"),
		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),

		AirtableAPIKey: os.Getenv("AIRTABLE_API_KEY"),
		AirtableBaseID: os.Getenv("AIRTABLE_BASE_ID"),

		PaymentProvider:            strings.ToLower(getenvDefault("PAYMENT_PROVIDER", ProviderStripe)),
		PaymentGatewayMock:         IsPaymentGatewayMockEnabled(),
		StripeSecretKey:            os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret:        os.Getenv("STRIPE_WEBHOOK_SECRET"),
		MercadoPagoAccessToken:     os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		MercadoPagoNotificationURL: os.Getenv("MERCADOPAGO_NOTIFICATION_URL"),
		CheckoutCurrency:           strings.ToLower(getenvDefault("CHECKOUT_CURRENCY", "usd")),

		CheckoutsTable: getenvDefault("CHECKOUTS_TABLE", "checkouts"),

		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getenvInt("REDIS_DB", 0),
		CatalogCacheTTL: getenvDuration("CATALOG_CACHE_TTL", 60*time.Second),
		CartTTL:         getenvDuration("CART_TTL", 720*time.Hour),

		KafkaBrokers:     splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaOrdersTopic: getenvDefault("KAFKA_ORDERS_TOPIC", "orders.created"),
	}
}

// IsPaymentGatewayMockEnabled reports whether external payment calls are replaced by a local fake.
func IsPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
