package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_ENV", "PUBLIC_BASE_URL", "PAYMENT_PROVIDER", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "CATALOG_CACHE_TTL", "CART_TTL", "KAFKA_BROKERS", "CHECKOUTS_TABLE"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.PaymentProvider != ProviderStripe {
		t.Fatalf("expected stripe provider, got %s", cfg.PaymentProvider)
	}
	if cfg.CatalogCacheTTL != time.Minute || cfg.CartTTL != 720*time.Hour {
		t.Fatalf("unexpected ttls: %v %v", cfg.CatalogCacheTTL, cfg.CartTTL)
	}
	if cfg.KafkaBrokers != nil {
		t.Fatalf("expected no brokers, got %v", cfg.KafkaBrokers)
	}
	if cfg.CheckoutsTable != "checkouts" || cfg.PaymentGatewayMock {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PUBLIC_BASE_URL", "https://shop.example.com/")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("CART_TTL", "2h")
	t.Setenv("MERCADOPAGO_MOCK", "yes")

	cfg := Load()
	if cfg.Port != 9090 {
		t.Fatalf("expected 9090, got %d", cfg.Port)
	}
	if cfg.PublicBaseURL != "https://shop.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %s", cfg.PublicBaseURL)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "k2:9092" {
		t.Fatalf("unexpected brokers: %v", cfg.KafkaBrokers)
	}
	if cfg.CartTTL != 2*time.Hour || !cfg.PaymentGatewayMock {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
