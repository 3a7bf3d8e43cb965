package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

const testSecret = "test-secret"

type noopLogger struct{}

func (noopLogger) Warn(string, ...interface{}) {}

func authedRequest(t *testing.T, user *domain.User) *http.Request {
	t.Helper()

	token, err := GenerateToken(testSecret, user, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/mybookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuth_RoundTrip(t *testing.T) {
	var seen *domain.User
	handler := Auth(testSecret, noopLogger{})(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = UserFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, &domain.User{
		ID:    7,
		Name:  "Ramesh Kumar",
		Phone: "+919876543210",
		Role:  domain.RoleUser,
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, int64(7), seen.ID)
	assert.Equal(t, "Ramesh Kumar", seen.Name)
	assert.Equal(t, domain.RoleUser, seen.Role)
}

func TestAuth_MissingToken(t *testing.T) {
	handler := Auth(testSecret, noopLogger{})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_WrongSecret(t *testing.T) {
	handler := Auth("other-secret", noopLogger{})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, &domain.User{ID: 7, Role: domain.RoleUser}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	token, err := GenerateToken(testSecret, &domain.User{ID: 7, Role: domain.RoleUser}, -time.Minute)
	require.NoError(t, err)

	handler := Auth(testSecret, noopLogger{})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly(t *testing.T) {
	reached := false
	handler := Auth(testSecret, noopLogger{})(AdminOnly(noopLogger{})(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			reached = true
		})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, &domain.User{ID: 1, Role: domain.RoleAdmin}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)

	reached = false
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, &domain.User{ID: 7, Role: domain.RoleUser}))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}
