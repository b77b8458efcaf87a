package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bemu_storefront/internal/adapter/http/handlers/mocks"
	"bemu_storefront/internal/adapter/http/middleware"
	"bemu_storefront/internal/config"
	"bemu_storefront/internal/domain/tiling"
	at "bemu_storefront/internal/infrastructure/airtable"
	"bemu_storefront/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServer struct {
	router http.Handler
	drawer *mocks.MockIDrawerUseCase
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	drawer := mocks.NewMockIDrawerUseCase(ctrl)
	deps := Dependencies{
		Catalog:  mocks.NewMockICatalogUseCase(ctrl),
		Drawer:   drawer,
		Cart:     mocks.NewMockICartUseCase(ctrl),
		Checkout: mocks.NewMockICheckoutUseCase(ctrl),
	}

	reg := prometheus.NewRegistry()
	router := setupRouter(deps, reg, metrics.New(reg))
	return testServer{
		router: withCORS(router, []string{"http://localhost:3000"}),
		drawer: drawer,
	}
}

func (s testServer) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/v1/ping", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_MetricsExposeRequests(t *testing.T) {
	s := newTestServer(t)

	s.do(http.MethodGet, "/v1/ping", "", nil)
	s.do(http.MethodGet, "/v1/nope", "", nil)
	w := s.do(http.MethodGet, "/metrics", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `storefront_http_requests_total{method="GET",route="/v1/ping",status="200"} 1`)
	assert.Contains(t, body, `storefront_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
}

func TestRouter_DrawerCalculate(t *testing.T) {
	s := newTestServer(t)
	s.drawer.EXPECT().Calculate(gomock.Any(), 21.0, 21.0).Return(tiling.Calculation{
		GridDimensions: tiling.GridDimensions{WidthUnits: 5, HeightUnits: 5},
	}, nil)

	w := s.do(http.MethodPost, "/v1/organiziro/calculate", `{"width_cm":"21","height_cm":"21"}`,
		map[string]string{"Content-Type": "application/json"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"width_units":5`)
}

func TestRouter_OrderStatusNotExposed(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPatch, "/v1/orders/rec1/status", `{"status":"shipped"}`,
		map[string]string{"Content-Type": "application/json"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_CORS(t *testing.T) {
	s := newTestServer(t)

	t.Run("allowed origin preflight", func(t *testing.T) {
		w := s.do(http.MethodOptions, "/v1/carts", "", map[string]string{
			"Origin":                        "http://localhost:3000",
			"Access-Control-Request-Method": http.MethodPost,
		})
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin gets no allow header", func(t *testing.T) {
		w := s.do(http.MethodOptions, "/v1/carts", "", map[string]string{
			"Origin":                        "https://evil.example",
			"Access-Control-Request-Method": http.MethodPost,
		})
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestPaymentGateways(t *testing.T) {
	t.Run("mock mode registers both providers", func(t *testing.T) {
		gateways := paymentGateways(config.Config{PaymentGatewayMock: true})
		require.Len(t, gateways, 2)
		assert.Equal(t, config.ProviderStripe, gateways[0].Provider())
		assert.Equal(t, config.ProviderMercadoPago, gateways[1].Provider())
	})

	t.Run("no credentials means no gateways", func(t *testing.T) {
		assert.Empty(t, paymentGateways(config.Config{}))
	})

	t.Run("credentials enable providers", func(t *testing.T) {
		gateways := paymentGateways(config.Config{
			StripeSecretKey:        "sk_test_123",
			StripeWebhookSecret:    "whsec_123",
			MercadoPagoAccessToken: "TEST-123",
		})
		var providers []string
		for _, g := range gateways {
			providers = append(providers, strings.ToLower(g.Provider()))
		}
		assert.ElementsMatch(t, []string{config.ProviderStripe, config.ProviderMercadoPago}, providers)
	})
}

func TestBuildDependencies_RequiresAirtable(t *testing.T) {
	_, cleanup, err := buildDependencies(t.Context(), config.Config{}, nil)
	defer cleanup()

	assert.ErrorIs(t, err, at.ErrNotConfigured)
}
