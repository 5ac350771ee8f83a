package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/bespoked-bikes/sales-backend/pkg/config"
)

// CORS returns middleware that applies the configured allowed origin
// policy.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler
}
