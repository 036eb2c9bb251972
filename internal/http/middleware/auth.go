package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/aria-finance/analytics/internal/http/respond"
)

type contextKey string

const userIDKey contextKey = "userID"

// WithUserID returns a context carrying the verified user id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserID extracts the verified user id set by Auth.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// Auth validates the Bearer token and injects the user id into the request
// context. Requests without a valid session are rejected with 401 before any
// report handler runs.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			tokenStr, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenStr == "" {
				respond.Error(w, http.StatusUnauthorized, "Not authorized, no token")
				return
			}

			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}

				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				respond.Error(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			subject, err := token.Claims.GetSubject()
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			userID, err := uuid.Parse(subject)
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
