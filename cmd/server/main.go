package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/omkaralabs/divinestore/internal"
	"github.com/omkaralabs/divinestore/internal/catalog"
	"github.com/omkaralabs/divinestore/internal/domain"
	"github.com/omkaralabs/divinestore/internal/handler/storefront"
	"github.com/omkaralabs/divinestore/internal/middleware"
	"github.com/omkaralabs/divinestore/internal/order"
	"github.com/omkaralabs/divinestore/internal/router"
	"github.com/omkaralabs/divinestore/internal/service"
	"github.com/omkaralabs/divinestore/internal/telemetry"
	"github.com/omkaralabs/divinestore/internal/temple"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize metrics
	metrics := middleware.NewMetrics(cfg.Metrics.Namespace)
	business := telemetry.NewBusinessMetrics(cfg.Metrics.Namespace)

	// Initialize the static catalog and temple directory
	catalogService := catalog.NewDefaultService()
	templeDirectory := temple.NewDefaultDirectory()

	// Initialize the cart store
	cartService := service.NewCartService()

	// Record cart totals after every mutation
	cartService.Subscribe(func(summary domain.CartSummary) {
		business.CartValue.Observe(float64(summary.TotalPrice))
		if len(summary.Items) == 0 {
			business.CartCleared.Inc()
		}
	})

	// Initialize the simulated order sink
	logger.Info("Initializing order sink", "processing_delay", cfg.Checkout.ProcessingDelay)
	orderSink := order.NewSimulatedSink(cfg.Checkout.ProcessingDelay)

	// Initialize the checkout service
	checkoutService := service.NewCheckoutService(cartService, orderSink)

	// Initialize handlers
	productHandler := storefront.NewProductHandler(catalogService, business, logger)
	cartHandler := storefront.NewCartHandler(cartService, catalogService, business, logger)
	checkoutHandler := storefront.NewCheckoutHandler(checkoutService, cartService, business, logger)
	templeHandler := storefront.NewTempleHandler(templeDirectory, logger)

	// Create router and register routes
	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		router.CORS(cfg.CORS.AllowedOrigins),
		router.Logger(logger),
	)

	// Metrics endpoint (should be protected in production via firewall)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Preflight requests are answered by the CORS middleware in the chain.
	r.Handle(http.MethodOptions, "/api/", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	// Catalog
	r.Get("/api/products", productHandler.List)
	r.Get("/api/products/{id}", productHandler.Detail)
	r.Get("/api/categories", productHandler.Categories)

	// Cart
	r.Get("/api/cart", cartHandler.View)
	r.Post("/api/cart/items", cartHandler.Add)
	r.Put("/api/cart/items/{id}", cartHandler.Update)
	r.Delete("/api/cart/items/{id}", cartHandler.Remove)
	r.Post("/api/cart/open", cartHandler.SetOpen)

	// Checkout
	r.Get("/api/checkout", checkoutHandler.State)
	r.Post("/api/checkout", checkoutHandler.Begin)
	r.Post("/api/checkout/contact", checkoutHandler.Contact)
	r.Post("/api/checkout/shipping", checkoutHandler.Shipping)
	r.Post("/api/checkout/payment-method", checkoutHandler.PaymentMethod)
	r.Post("/api/checkout/back", checkoutHandler.Back)
	r.Post("/api/checkout/submit", checkoutHandler.Submit)

	// Temples
	r.Get("/api/temples", templeHandler.List)
	r.Get("/api/temples/{id}", templeHandler.Detail)

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting server", "address", addr, "env", cfg.Env)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
