package middleware

import (
	"net/http"
	"slices"
	"strings"
)

const (
	corsAllowedMethods = "GET, POST, PUT, OPTIONS"
	corsAllowedHeaders = "Accept, Authorization, Content-Type, X-Requested-With"
	corsExposedHeaders = "X-Correlation-ID"
	corsMaxAgeSeconds  = "86400"
)

// Cors libera as origens configuradas em CORS_ALLOWED_ORIGINS; "*" aceita qualquer origem.
// Requisições OPTIONS são respondidas aqui e nunca chegam à autenticação.
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAny := slices.Contains(allowedOrigins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			w.Header().Add("Vary", "Origin")

			if origin != "" && (allowAny || slices.Contains(allowedOrigins, origin)) {
				headers := w.Header()
				headers.Set("Access-Control-Allow-Origin", origin)
				headers.Set("Access-Control-Allow-Methods", corsAllowedMethods)
				headers.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
				headers.Set("Access-Control-Expose-Headers", corsExposedHeaders)
				headers.Set("Access-Control-Allow-Credentials", "true")
				headers.Set("Access-Control-Max-Age", corsMaxAgeSeconds)
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
