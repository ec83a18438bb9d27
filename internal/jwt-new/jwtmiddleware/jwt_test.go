package jwtmiddleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/clorywears/storefront/internal/jwt-new/jwtmiddleware"
)

const testSecret = "testsecret"

// createTestToken создаёт JWT-токен с заданным email и секретом.
func createTestToken(email, secret string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestJWTMiddleware_MissingAuthorization(t *testing.T) {
	middleware := jwtmiddleware.NewJWTMiddleware(testSecret)
	handler := middleware(okHandler())

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code, "Expected unauthorized status when no token provided")
	assert.True(t, strings.Contains(rr.Body.String(), "Missing Authorization Bearer token."))
	assert.True(t, strings.Contains(rr.Body.String(), `"ok":false`), "Errors should use the common envelope")
}

func TestJWTMiddleware_InvalidAuthorizationFormat(t *testing.T) {
	middleware := jwtmiddleware.NewJWTMiddleware(testSecret)
	handler := middleware(okHandler())

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "InvalidFormat")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code, "Expected unauthorized status for invalid token format")
}

func TestJWTMiddleware_InvalidToken(t *testing.T) {
	middleware := jwtmiddleware.NewJWTMiddleware(testSecret)
	handler := middleware(okHandler())

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer invalid.token.value")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code, "Expected unauthorized status for invalid token")
	assert.True(t, strings.Contains(rr.Body.String(), "Invalid token."))
}

func TestJWTMiddleware_WrongSecret(t *testing.T) {
	tokenStr, err := createTestToken("owner@clorywears.com", "othersecret")
	assert.NoError(t, err)

	middleware := jwtmiddleware.NewJWTMiddleware(testSecret)
	handler := middleware(okHandler())

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestJWTMiddleware_MissingEmailClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "123"})
	tokenStr, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)

	middleware := jwtmiddleware.NewJWTMiddleware(testSecret)
	handler := middleware(okHandler())

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code, "Token without email claim must be rejected")
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	tokenStr, err := createTestToken("Owner@CloryWears.com", testSecret)
	assert.NoError(t, err)

	middleware := jwtmiddleware.NewJWTMiddleware(testSecret)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := jwtmiddleware.FromContext(r.Context())
		if !ok {
			http.Error(w, "email not found", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(email))
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "Expected OK status for valid token")
	assert.Equal(t, "owner@clorywears.com", rr.Body.String(), "Email should be lowercased")
}

func TestFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), jwtmiddleware.EmailKey, "owner@clorywears.com")
	email, ok := jwtmiddleware.FromContext(ctx)
	assert.True(t, ok, "Expected to retrieve email from context")
	assert.Equal(t, "owner@clorywears.com", email)
}
