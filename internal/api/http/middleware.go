package http

import (
	"context"
	"net/http"
	"strings"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/logger"
	"hotelier-backend/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "staff-claims"

// StaffClaimsFromContext returns the authenticated staff claims placed
// on the request context by the auth middleware.
func StaffClaimsFromContext(ctx context.Context) (*security.StaffClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*security.StaffClaims)
	return claims, ok
}

// AuthMiddleware validates the bearer token on every request and
// injects the staff claims into the request context. Only access
// tokens are accepted here; refresh tokens go to the refresh endpoint.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authorization token is not provided"})
				return
			}

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid token"})
				return
			}
			if claims.Type != security.TokenTypeAccess {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "access token required"})
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a handler on the staff role carried in the token.
// An admin passes every role check.
func RequireRole(role domain.StaffRole, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := StaffClaimsFromContext(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
			return
		}
		if claims.Role != string(role) && claims.Role != string(domain.StaffRoleAdmin) {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "insufficient role"})
			return
		}
		next(w, r)
	}
}

// LoggingMiddleware logs each request at debug level.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("HTTP request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	token := header
	if len(token) > 7 && strings.ToUpper(token[0:7]) == "BEARER " {
		token = token[7:]
	}
	return token, token != ""
}
