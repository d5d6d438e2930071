package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mavesys/foodcourt-api/shared/auth"
)

type contextKey struct{}

var userIDKey = contextKey{}

var (
	errMissingHeader = errors.New("missing authorization header")
	errInvalidHeader = errors.New("invalid authorization header format")
)

// RequireAuth validates the bearer token on protected routes and stores the
// authenticated user ID in the request context. A missing header is answered
// with 403, an invalid or expired token with 400.
func RequireAuth(jwtAuth auth.JWTAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := extractUserID(r, jwtAuth)
			if err != nil {
				if errors.Is(err, errMissingHeader) {
					writeMessage(w, http.StatusForbidden, "Access denied, no token provided")
					return
				}
				writeMessage(w, http.StatusBadRequest, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user ID set by RequireAuth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func extractUserID(r *http.Request, jwtAuth auth.JWTAuthenticator) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errMissingHeader
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errInvalidHeader
	}

	claims := &auth.AccessClaims{}
	if _, err := jwtAuth.ValidateTokenWithClaims(parts[1], claims); err != nil {
		return "", err
	}

	return claims.UserID, nil
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
