package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the given origins ("*" for any) and the admin key header.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", AdminKeyHeader},
		MaxAge:         86400,
	})
}
