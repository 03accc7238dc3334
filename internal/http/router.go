package httpx

import (
	"encoding/json"
	"net/http"

	"rebill/internal/config"
	"rebill/internal/http/handlers"
	middlewarex "rebill/internal/http/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDependencies holds all dependencies for the HTTP router
type RouterDependencies struct {
	Config   config.Cfg
	Rebill   handlers.RebillAPI
	Gatherer prometheus.Gatherer // defaults to prometheus.DefaultGatherer
}

// NewRouter creates the gateway router
func NewRouter(deps RouterDependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
		})
	})

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// API routes are only mounted when a token is configured
	if deps.Rebill == nil || deps.Config.Sec.AdminToken == "" {
		return r
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarex.BearerAuth(deps.Config.Sec.AdminToken))

		r.Post("/customers", handlers.CustomerAdd(deps.Rebill))
		r.Route("/customers/{customerID}", func(r chi.Router) {
			r.Get("/", handlers.CustomerGet(deps.Rebill))
			r.Put("/", handlers.CustomerEdit(deps.Rebill))
			r.Delete("/", handlers.CustomerDelete(deps.Rebill))

			r.Route("/payments/{rebillID}", func(r chi.Router) {
				r.Get("/", handlers.PaymentGet(deps.Rebill))
				r.Delete("/", handlers.PaymentDelete(deps.Rebill))
				r.Get("/transactions", handlers.Transactions(deps.Rebill))
				r.Get("/transactions/next", handlers.TransactionNext(deps.Rebill))
			})
		})

		r.Post("/payments", handlers.PaymentAdd(deps.Rebill))
		r.Put("/payments/{rebillID}", handlers.PaymentEdit(deps.Rebill))
	})

	return r
}
