package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hwcrafts/pcb-preorder/internal/checkout"
	"github.com/hwcrafts/pcb-preorder/internal/config"
	"github.com/hwcrafts/pcb-preorder/internal/handlers"
	"github.com/hwcrafts/pcb-preorder/internal/middleware"
	"github.com/hwcrafts/pcb-preorder/internal/payment"
	"github.com/hwcrafts/pcb-preorder/internal/telemetry"
	"github.com/hwcrafts/pcb-preorder/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting preorder server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"origin", cfg.Checkout.Origin,
		"currency", cfg.Checkout.Currency,
		"log_level", cfg.LogLevel,
	)

	// Initialize the payment provider and session builder
	provider := payment.NewStripeProvider(cfg.Stripe.SecretKey)
	builder := checkout.NewBuilder(provider, cfg.Checkout.Origin, cfg.Checkout.Currency, log)

	// Initialize handlers
	helloHandler := handlers.NewHelloHandler(log)
	orderHandler := handlers.NewOrderHandler(builder, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Checkout.Origin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register routes
	r.Get("/api/hello", helloHandler.ServeHTTP)
	r.Post("/submit-order", orderHandler.SubmitOrder)
	r.Method(http.MethodGet, "/metrics", telemetry.Handler())

	// Everything else is served from the static document root, with
	// directory listing enabled
	r.Handle("/*", http.FileServer(http.Dir(cfg.Static.Dir)))

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
