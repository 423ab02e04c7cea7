package middleware

import (
	"net/http"
	"strings"

	"blogadmin/internal/logger"
	"blogadmin/internal/reqctx"
	"blogadmin/internal/utils"
	helpers "blogadmin/internal/utils/helpers"

	"go.uber.org/zap"
)

// JWTAuth пропускает только access-токены: refresh-токен на access-эндпоинте
// отклоняется, и наоборот (см. хендлер обновления токена).
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.WithCtx(r.Context()).Warn("JWTAuth: отсутствует access token")
				helpers.Error(w, http.StatusUnauthorized, "access token needed")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			subject, tokenType, err := utils.ParseToken(secret, tokenString)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("JWTAuth: неверный или просроченный токен", zap.Error(err))
				helpers.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			if tokenType != utils.TokenTypeAccess {
				logger.WithCtx(r.Context()).Warn("JWTAuth: ожидался access-токен",
					zap.String("token_type", tokenType))
				helpers.Error(w, http.StatusUnauthorized, "access token needed")
				return
			}

			ctx := reqctx.WithSubject(r.Context(), subject)

			logger.WithCtx(ctx).Debug("JWTAuth: токен валиден", zap.String("subject", subject))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
