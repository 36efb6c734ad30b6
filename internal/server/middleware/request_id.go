// Проставление request id для сквозной трассировки запросов в логах
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// HeaderRequestID — заголовок, в котором request id возвращается клиенту.
const HeaderRequestID = "X-Request-Id"

type ctxKeyRequestID struct{}

// RequestIDFromContext достаёт request id из контекста запроса.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKeyRequestID{}).(string)
	return id, ok
}

// RequestIDMiddleware генерирует uuid на каждый запрос, кладёт его в контекст
// и дублирует в заголовок ответа. Если клиент прислал свой X-Request-Id,
// используется присланный.
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
			}

			ctx := context.WithValue(r.Context(), ctxKeyRequestID{}, id)
			w.Header().Set(HeaderRequestID, id)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
