package handlers

import (
	"net/http"

	"blogadmin/internal/pagination"
	"blogadmin/internal/services"
	helpers "blogadmin/internal/utils/helpers"
)

// PublicArticleHandler — публичные (неаутентифицированные) операции чтения.
// Симметричен ArticleHandler, но без привязки к владельцу.
type PublicArticleHandler struct {
	articleService *services.ArticleService
}

func NewPublicArticleHandler(articleService *services.ArticleService) *PublicArticleHandler {
	return &PublicArticleHandler{articleService: articleService}
}

// GetByID godoc
// @Summary Получить статью по ID
// @Tags public-article
// @Produce json
// @Param id path int true "ID статьи"
// @Success 200 {object} models.Article
// @Failure 404 {string} string "article not found"
// @Router /api/public-article/get-article/{id} [get]
func (h *PublicArticleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := articleID(r)
	if !ok {
		helpers.Error(w, http.StatusNotFound, "article not found")
		return
	}

	a, err := h.articleService.GetPublicByID(r.Context(), id)
	if err != nil {
		articleError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, a)
}

// GetAll godoc
// @Summary Все статьи (по возрастанию ID)
// @Tags public-article
// @Produce json
// @Success 200 {array} models.Article
// @Router /api/public-article/get-all-articles [get]
func (h *PublicArticleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.articleService.GetAllPublic(r.Context())
	if err != nil {
		articleError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, list)
}

// Pagination godoc
// @Summary Все статьи постранично
// @Tags public-article
// @Produce json
// @Param page query int false "Номер страницы (с 1)"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {string} string "page and limit must be an integer"
// @Router /api/public-article/pagination/article-pagination [get]
func (h *PublicArticleHandler) Pagination(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := parsePageLimit(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "page and limit must be an integer")
		return
	}

	list, err := h.articleService.GetAllPublic(r.Context())
	if err != nil {
		articleError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, pagination.Paginate(list, page, limit))
}

func (h *PublicArticleHandler) search(w http.ResponseWriter, r *http.Request, target string) {
	search := r.URL.Query().Get("search-string")
	if search == "" {
		helpers.Error(w, http.StatusBadRequest, "search-string needed")
		return
	}

	list, err := h.articleService.SearchPublic(r.Context(), search, target)
	if err != nil {
		articleError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, list)
}

// Search godoc
// @Summary Поиск по всем статьям (заголовок и текст)
// @Tags public-article
// @Produce json
// @Param search-string query string true "Подстрока поиска"
// @Success 200 {array} models.Article
// @Failure 400 {string} string "search-string needed"
// @Router /api/public-article/search [get]
func (h *PublicArticleHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, "article")
}

// TitleSearch godoc
// @Summary Поиск по заголовкам всех статей
// @Tags public-article
// @Produce json
// @Param search-string query string true "Подстрока поиска"
// @Success 200 {array} models.Article
// @Router /api/public-article/search/title [get]
func (h *PublicArticleHandler) TitleSearch(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, "title")
}

// BodySearch godoc
// @Summary Поиск по тексту всех статей
// @Tags public-article
// @Produce json
// @Param search-string query string true "Подстрока поиска"
// @Success 200 {array} models.Article
// @Router /api/public-article/search/body [get]
func (h *PublicArticleHandler) BodySearch(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, "body")
}

// SearchPagination godoc
// @Summary Поиск по всем статьям постранично
// @Tags public-article
// @Produce json
// @Param search-string query string true "Подстрока поиска"
// @Param search-target query string true "article | title | body"
// @Param page query int false "Номер страницы (с 1)"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {string} string "unacceptable search target"
// @Router /api/public-article/pagination/article-search [get]
func (h *PublicArticleHandler) SearchPagination(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search-string")
	target := r.URL.Query().Get("search-target")
	if search == "" || target == "" {
		helpers.Error(w, http.StatusBadRequest, "all values needed")
		return
	}
	if !services.ValidSearchTarget(target) {
		helpers.Error(w, http.StatusBadRequest, "unacceptable search target")
		return
	}

	page, limit, ok := parsePageLimit(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "page and limit must be an integer")
		return
	}

	list, err := h.articleService.SearchPublic(r.Context(), search, target)
	if err != nil {
		articleError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, pagination.Paginate(list, page, limit))
}
