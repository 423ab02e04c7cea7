package middleware

import (
	"net/http"

	"blogadmin/internal/reqctx"

	"github.com/google/uuid"
)

// RequestID кладёт идентификатор запроса в контекст и в заголовок ответа.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-Id")
		if rid == "" {
			rid = uuid.NewString()
		}

		ctx := reqctx.WithRequestID(r.Context(), rid)
		w.Header().Set("X-Request-Id", rid)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
