package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/JMN-BookingService/internal/api/handlers"
)

const msgUnauthorized = "требуется авторизация оператора"

type contextKey string

const sessionTokenKey contextKey = "sessionToken"

// SessionVerifier интерфейс проверки сессионного токена
type SessionVerifier interface {
	Verify(token string) bool
}

// AdminAuth проверяет заголовок Authorization: Bearer <token> и пропускает
// только запросы с действующей сессией оператора. Токен кладётся в контекст.
func AdminAuth(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" || !verifier.Verify(token) {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), sessionTokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionToken возвращает сессионный токен из контекста запроса
func GetSessionToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(sessionTokenKey).(string)
	return token, ok
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
