package jwtmiddleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const EmailKey contextKey = "email"

// NewJWTMiddleware создаёт middleware для проверки bearer-токена провайдера
// аутентификации. Из валидного токена извлекается email и кладется в контекст;
// принадлежность email к администраторам проверяется дальше по allow-list таблице.
func NewJWTMiddleware(secret string) func(http.Handler) http.Handler {
	if secret == "" {
		panic("jwt secret is not set")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Извлекаем токен из заголовка Authorization (формат: "Bearer <token>")
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "Missing Authorization Bearer token.")
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				unauthorized(w, "Missing Authorization Bearer token.")
				return
			}
			tokenStr := strings.TrimSpace(parts[1])

			// Парсинг и проверка токена
			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				// Проверка алгоритма
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				unauthorized(w, "Invalid token.")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				unauthorized(w, "Invalid token.")
				return
			}

			email, ok := claims["email"].(string)
			if !ok || email == "" {
				unauthorized(w, "Invalid token.")
				return
			}

			// Устанавливаем email в контекст запроса
			ctx := context.WithValue(r.Context(), EmailKey, strings.ToLower(email))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext извлекает email аутентифицированного пользователя из контекста.
func FromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok
}

// unauthorized пишет отказ в общем для API конверте ошибки.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	fmt.Fprintf(w, `{"ok":false,"message":%q}`, message)
}
