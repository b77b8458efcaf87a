package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"bemu_storefront/internal/adapter/http/handlers"
	"bemu_storefront/internal/adapter/http/middleware"
	"bemu_storefront/internal/config"
	"bemu_storefront/internal/infrastructure/metrics"
	"bemu_storefront/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	ServiceName = "bemu-storefront"

	PathMetrics = "/metrics"
	PathSwagger = "/swagger/*any"

	shutdownTimeout = 10 * time.Second
)

// Run will start the server
func Run() {
	cfg := config.Load()
	logger.Init(ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	deps, cleanup, err := buildDependencies(ctx, cfg, m)
	defer cleanup()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to startup the application")
	}

	router := setupRouter(deps, reg, m)
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           withCORS(router, cfg.CORSAllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Logger.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to startup the application")
		}
	}()

	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
}

// setupRouter registers middlewares and every route on a fresh engine.
func setupRouter(deps Dependencies, reg *prometheus.Registry, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, m)

	router.GET(PathSwagger, ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET(PathMetrics, gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)
	drawerHandler := handlers.NewDrawerHandler(deps.Drawer)
	cartHandler := handlers.NewCartHandler(deps.Cart)
	checkoutHandler := handlers.NewCheckoutHandler(deps.Checkout)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler, drawerHandler)
	addCartRoutes(v1, cartHandler)
	addCheckoutRoutes(v1, checkoutHandler)

	return router
}

func setMiddlewares(router *gin.Engine, m *metrics.Metrics) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Component(c.Request.Context(), "router", "http").Error().
			Interface("panic", recovered).
			Msg("Recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging())
	router.Use(middleware.Metrics(m))
}

// withCORS lets the storefront frontend call the API from a browser.
func withCORS(h http.Handler, allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Content-Disposition"},
		AllowCredentials: true,
	})
	return c.Handler(h)
}
