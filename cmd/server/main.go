package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spacesoft/enquiry/internal"
	"github.com/spacesoft/enquiry/internal/handler"
	"github.com/spacesoft/enquiry/internal/mail"
	"github.com/spacesoft/enquiry/internal/mail/mock"
	"github.com/spacesoft/enquiry/internal/metrics"
	"github.com/spacesoft/enquiry/internal/middleware"
	"github.com/spacesoft/enquiry/internal/service"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	if !cfg.MailConfigured() {
		logger.Warn("mail credentials missing; submissions will fail until GMAIL_USER and GMAIL_APP_PASSWORD are set")
	}

	// Initialize mail transport
	var sender mail.Sender
	switch cfg.MailProvider {
	case "mock":
		sender = mock.New(logger)
	default:
		sender = mail.NewGmailSender(mail.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.GmailUser,
			Password: cfg.GmailAppPassword,
		}, logger)
	}

	// Initialize service and handlers
	enquiryService := service.NewEnquiryService(sender, service.EnquiryConfig{
		User:      cfg.GmailUser,
		Password:  cfg.GmailAppPassword,
		LeadInbox: cfg.ContactToEmail,
	}, logger)
	enquiryHandler := handler.NewEnquiryHandler(enquiryService, logger)

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := handler.NewRouter(enquiryHandler, cfg.AllowedOrigins)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics (basic auth when configured)
	metricsAuth := middleware.NewMetricsAuthMiddleware(cfg.MetricsUsername, cfg.MetricsPassword)
	mux.Handle("GET /metrics", metricsAuth.Handler(promhttp.Handler()))

	// Middleware stack: request logging around metrics collection
	requestLogging := middleware.NewRequestLoggingMiddleware(logger)
	root := requestLogging.Handler(metrics.Middleware(mux))

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: root,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env, "mail_provider", cfg.MailProvider)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
		}
	}()

	<-sigChan
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
