package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"rishabgems/invoicegen/auth"
	"rishabgems/invoicegen/config"
	"rishabgems/invoicegen/handlers"
	"rishabgems/invoicegen/logging"
	"rishabgems/invoicegen/routes"
	"rishabgems/invoicegen/services"
	"rishabgems/invoicegen/utils"
)

func main() {
	cfg := config.LoadConfig()
	logging.SetupWithLevel(logging.LevelFromString(cfg.LogLevel))

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	if cfg.LoginPinHash == "" {
		slog.Warn("LOGIN_PIN_HASH not set, every login will be refused")
	}

	var uploader utils.Uploader
	if cfg.R2.Enabled() {
		r2, err := utils.NewR2Uploader(context.Background(), cfg.R2)
		if err != nil {
			slog.Error("Failed to initialize R2 uploader", "error", err)
			os.Exit(1)
		}
		uploader = r2
		slog.Info("Document upload enabled", "bucket", cfg.R2.Bucket)
	}

	invoiceService := services.NewInvoiceService(services.Options{
		CompanyName: cfg.CompanyName,
		BillPrefix:  cfg.BillPrefix,
		BillerName:  cfg.BillerName,
		DueDays:     cfg.DueDays,
	}, uploader,
		&utils.PDFRenderer{Timeout: cfg.ChromeTimeout},
		&utils.XLSXRenderer{},
	)

	authHandler := &handlers.AuthHandler{
		Pins:   auth.NewPinChecker(cfg.LoginPinHash),
		Tokens: auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL),
	}
	invoiceHandler := &handlers.InvoiceHandler{Service: invoiceService}

	router := gin.New()
	if cfg.NewRelicLicense != "" {
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelicAppName),
			newrelic.ConfigLicense(cfg.NewRelicLicense),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			slog.Warn("Failed to initialize New Relic", "error", err)
		} else {
			router.Use(nrgin.Middleware(app))
		}
	}

	routes.SetupRoutes(router, authHandler, invoiceHandler)

	slog.Info("Server running", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
