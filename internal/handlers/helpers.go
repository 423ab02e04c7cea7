package handlers

import (
	"net/http"
	"strconv"

	"blogadmin/internal/reqctx"
	"blogadmin/internal/services"
)

// subjectFromRequest — идентичность из access-токена (id строкой или "main").
func subjectFromRequest(r *http.Request) (string, bool) {
	return reqctx.GetSubject(r.Context())
}

// adminIDFromRequest требует, чтобы субъект был валидным id админа.
// Сентинел "main" и мусор отклоняются — маршрут ответит 401 "access token needed".
func adminIDFromRequest(r *http.Request) (int, bool) {
	subject, ok := reqctx.GetSubject(r.Context())
	if !ok {
		return 0, false
	}
	return services.AdminIDFromSubject(subject)
}

// parsePageLimit разбирает query-параметры пагинации.
// Нецелые и неположительные значения — одна и та же ошибка 400.
func parsePageLimit(r *http.Request) (page, limit int, ok bool) {
	pageStr := r.URL.Query().Get("page")
	if pageStr == "" {
		pageStr = "1"
	}
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		limitStr = "10"
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return 0, 0, false
	}
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		return 0, 0, false
	}
	return page, limit, true
}
