package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentaride/internal/auth"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func protectedHandler(t *testing.T, gotEmail *string) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if email, ok := r.Context().Value(auth.AdminEmailKey).(string); ok {
			*gotEmail = email
		}
		w.WriteHeader(http.StatusOK)
	})
	return auth.AdminAuthMiddleware(testSecret)(next)
}

func TestAdminAuthMiddleware(t *testing.T) {
	t.Run("valid token passes and exposes the admin email", func(t *testing.T) {
		var gotEmail string
		handler := protectedHandler(t, &gotEmail)

		token := signedToken(t, testSecret, jwt.MapClaims{
			"admin_id": 1,
			"email":    "admin@rentaride.test",
			"exp":      time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/admin/reservations", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "admin@rentaride.test", gotEmail)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		var gotEmail string
		handler := protectedHandler(t, &gotEmail)

		req := httptest.NewRequest(http.MethodGet, "/admin/reservations", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret rejected", func(t *testing.T) {
		var gotEmail string
		handler := protectedHandler(t, &gotEmail)

		token := signedToken(t, "other-secret", jwt.MapClaims{
			"email": "admin@rentaride.test",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/admin/reservations", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		var gotEmail string
		handler := protectedHandler(t, &gotEmail)

		token := signedToken(t, testSecret, jwt.MapClaims{
			"email": "admin@rentaride.test",
			"exp":   time.Now().Add(-time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/admin/reservations", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		var gotEmail string
		handler := protectedHandler(t, &gotEmail)

		req := httptest.NewRequest(http.MethodGet, "/admin/reservations", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
