package middleware

import (
	"net/http"
	"strings"

	"flighttrack/logbook/internal/auth"
	"flighttrack/logbook/internal/config"
)

// AuthMiddleware resolves the owner for every request. With auth disabled
// (local single-user deployments) every request maps to the local owner;
// otherwise a valid bearer token is required.
func AuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.AuthDisabled {
				ctx := auth.SetUserClaims(r.Context(), auth.LocalClaims{})
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Unauthorized. Missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := auth.ParseToken(strings.TrimPrefix(authHeader, "Bearer "), cfg.JWTSecret)
			if err != nil {
				http.Error(w, "Unauthorized. Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
