package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bespoked-bikes/sales-backend/api/controllers"
	"github.com/bespoked-bikes/sales-backend/api/middleware"
	commissionsvc "github.com/bespoked-bikes/sales-backend/internal/commissions"
	customersvc "github.com/bespoked-bikes/sales-backend/internal/customers"
	discountsvc "github.com/bespoked-bikes/sales-backend/internal/discounts"
	productsvc "github.com/bespoked-bikes/sales-backend/internal/products"
	salesvc "github.com/bespoked-bikes/sales-backend/internal/sales"
	salespersonsvc "github.com/bespoked-bikes/sales-backend/internal/salespersons"
	"github.com/bespoked-bikes/sales-backend/pkg/config"
	"github.com/bespoked-bikes/sales-backend/pkg/db"
	"github.com/bespoked-bikes/sales-backend/pkg/logger"
	"github.com/bespoked-bikes/sales-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	metricsGatherer prometheus.Gatherer,
	productService productsvc.Service,
	salespersonService salespersonsvc.Service,
	customerService customersvc.Service,
	saleService salesvc.Service,
	discountService discountsvc.Service,
	commissionService commissionsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if metricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metricsGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(productService, logg))
			r.Get("/{productId}", controllers.GetProduct(productService, logg))
			r.Put("/{productId}", controllers.UpdateProduct(productService, logg))
		})

		r.Route("/salespersons", func(r chi.Router) {
			r.Get("/", controllers.ListSalespersons(salespersonService, logg))
			r.Get("/{salespersonId}", controllers.GetSalesperson(salespersonService, logg))
			r.Put("/{salespersonId}", controllers.UpdateSalesperson(salespersonService, logg))
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.ListCustomers(customerService, logg))
			r.Get("/{customerId}", controllers.GetCustomer(customerService, logg))
			r.Put("/{customerId}", controllers.UpdateCustomer(customerService, logg))
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", controllers.ListSales(saleService, logg))
			r.Post("/", controllers.CreateSale(saleService, logg))
		})

		r.Get("/reports/quarterly-commissions", controllers.QuarterlyCommissions(commissionService, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Post("/products", controllers.CreateProduct(productService, logg))
		r.Post("/salespersons", controllers.CreateSalesperson(salespersonService, logg))
		r.Post("/customers", controllers.CreateCustomer(customerService, logg))

		r.Route("/discounts", func(r chi.Router) {
			r.Get("/", controllers.ListDiscounts(discountService, logg))
			r.Post("/", controllers.CreateDiscount(discountService, logg))
			r.Put("/{discountId}", controllers.UpdateDiscount(discountService, logg))
		})
	})

	return r
}
