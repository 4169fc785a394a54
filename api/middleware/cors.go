package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/angelmondragon/groupdrive-backend/pkg/types"
)

var defaultCORSOrigins = []string{"*"}

// CORS applies the allowed origin policy. Credentials are only allowed when
// the origins are explicit.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = defaultCORSOrigins
	}
	wildcard := false
	for _, o := range origins {
		if o == "*" {
			wildcard = true
			break
		}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Idempotency-Key", types.RequestIDHeader, "X-Requested-With"},
		ExposedHeaders:   []string{types.RequestIDHeader},
		AllowCredentials: !wildcard,
		MaxAge:           300,
	}).Handler
}
