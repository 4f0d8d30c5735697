package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows cross-origin calls from allowedOrigins ("*" for any origin).
func CORS(allowedOrigins []string, allowAuthorization bool) func(http.Handler) http.Handler {
	headers := []string{"Content-Type"}
	if allowAuthorization {
		headers = append(headers, "Authorization")
	}

	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders: headers,
		MaxAge:         86400,
	}).Handler
}
