package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/bespoked-bikes/sales-backend/api/routes"
	commissionsvc "github.com/bespoked-bikes/sales-backend/internal/commissions"
	customersvc "github.com/bespoked-bikes/sales-backend/internal/customers"
	discountsvc "github.com/bespoked-bikes/sales-backend/internal/discounts"
	"github.com/bespoked-bikes/sales-backend/internal/pricing"
	productsvc "github.com/bespoked-bikes/sales-backend/internal/products"
	salesvc "github.com/bespoked-bikes/sales-backend/internal/sales"
	salespersonsvc "github.com/bespoked-bikes/sales-backend/internal/salespersons"
	"github.com/bespoked-bikes/sales-backend/pkg/config"
	"github.com/bespoked-bikes/sales-backend/pkg/db"
	"github.com/bespoked-bikes/sales-backend/pkg/logger"
	"github.com/bespoked-bikes/sales-backend/pkg/metrics"
	"github.com/bespoked-bikes/sales-backend/pkg/migrate"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	productRepo := productsvc.NewRepository(dbClient.DB())
	salespersonRepo := salespersonsvc.NewRepository(dbClient.DB())
	customerRepo := customersvc.NewRepository(dbClient.DB())
	saleRepo := salesvc.NewRepository(dbClient.DB())
	discountRepo := discountsvc.NewRepository(dbClient.DB())

	pricingEngine, err := pricing.NewEngine(discountRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create pricing engine", err)
		os.Exit(1)
	}

	productService, err := productsvc.NewService(productRepo, pricingEngine)
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}
	salespersonService, err := salespersonsvc.NewService(salespersonRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create salesperson service", err)
		os.Exit(1)
	}
	customerService, err := customersvc.NewService(customerRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create customer service", err)
		os.Exit(1)
	}
	saleService, err := salesvc.NewService(saleRepo, dbClient, productRepo, salespersonRepo, customerRepo, pricingEngine)
	if err != nil {
		logg.Error(context.Background(), "failed to create sale service", err)
		os.Exit(1)
	}
	discountService, err := discountsvc.NewService(discountRepo, productRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create discount service", err)
		os.Exit(1)
	}
	commissionService, err := commissionsvc.NewService(salespersonRepo, saleRepo, cfg.Reporting.CommissionYear)
	if err != nil {
		logg.Error(context.Background(), "failed to create commission service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			httpMetrics,
			registry,
			productService,
			salespersonService,
			customerService,
			saleService,
			discountService,
			commissionService,
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		ctx = logg.WithField(ctx, "signal", sig.String())
		logg.Info(ctx, "shutting down api server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}
