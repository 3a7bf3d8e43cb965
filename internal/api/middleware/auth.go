// Package middleware holds the cross-cutting HTTP middleware of the API.
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	"github.com/m04kA/TurfBookingService/internal/domain"
)

type contextKey string

const userContextKey contextKey = "auth_user"

// Claims is the JWT payload issued by the identity provider.
type Claims struct {
	UserID int64  `json:"uid"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Logger is the logging surface the middleware needs.
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth validates the Bearer token and puts the authenticated user into the
// request context.
func Auth(secret string, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, "missing bearer token")
				return
			}

			raw := strings.TrimPrefix(header, "Bearer ")
			claims := &Claims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				log.Warn("%s %s - invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, "invalid token")
				return
			}

			user := &domain.User{
				ID:    claims.UserID,
				Name:  claims.Name,
				Phone: claims.Phone,
				Role:  domain.Role(claims.Role),
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly rejects requests whose authenticated user is not an admin.
// Must be mounted after Auth.
func AdminOnly(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, "missing bearer token")
				return
			}
			if !user.IsAdmin() {
				log.Warn("%s %s - admin access denied for user=%d", r.Method, r.URL.Path, user.ID)
				handlers.RespondForbidden(w, "admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext extracts the authenticated user placed by Auth.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok
}

// GenerateToken signs a token for the given user. Used by tests and
// operational tooling; the production tokens come from the identity provider.
func GenerateToken(secret string, user *domain.User, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		Name:   user.Name,
		Phone:  user.Phone,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
