package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"blogadmin/internal/logger"
	"blogadmin/internal/pagination"
	"blogadmin/internal/services"
	helpers "blogadmin/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ArticleHandler struct {
	articleService *services.ArticleService
}

func NewArticleHandler(articleService *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

type createArticleRequest struct {
	Title    string  `json:"title"`
	Body     string  `json:"body"`
	ImageURL *string `json:"image_url"`
}

type updateBodyRequest struct {
	Body string `json:"body"`
}

type updateTitleRequest struct {
	Title string `json:"title"`
}

type updateImageURLRequest struct {
	ImageURL string `json:"image_url"`
}

type updateArticleRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url"`
}

func articleID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil && id > 0
}

// articleError переводит ошибки сервиса статей в статус и конверт ответа.
func articleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrTitleTooShort),
		errors.Is(err, services.ErrBodyTooShort),
		errors.Is(err, services.ErrTitleExists),
		errors.Is(err, services.ErrBadSearchTarget):
		helpers.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrArticleNotFound):
		helpers.Error(w, http.StatusNotFound, err.Error())
	default:
		logger.WithCtx(r.Context()).Error("Ошибка операции со статьёй", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "something went wrong")
	}
}

// Create godoc
// @Summary Создать статью
// @Tags article
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body createArticleRequest true "Данные статьи"
// @Success 201 {string} string "article created successfully"
// @Failure 400 {string} string "an article with this title already exists"
// @Router /api/article/create-article [post]
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromRequest(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "access token needed")
		return
	}

	var req createArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "title and body required")
		return
	}
	if req.Title == "" || req.Body == "" {
		helpers.Error(w, http.StatusBadRequest, "title and body required")
		return
	}

	if err := h.articleService.Create(r.Context(), adminID, req.Title, req.Body, req.ImageURL); err != nil {
		articleError(w, r, err)
		return
	}

	helpers.Message(w, http.StatusCreated, "article created successfully")
}

// GetByID godoc
// @Summary Получить свою статью по ID
// @Tags article
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID статьи"
// @Success 200 {object} models.Article
// @Failure 404 {string} string "article not found"
// @Router /api/article/get-article/{id} [get]
func (h *ArticleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromRequest(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "access token needed")
		return
	}

	id, ok := articleID(r)
	if !ok {
		helpers.Error(w, http.StatusNotFound, "article not found")
		return
	}

	a, err := h.articleService.GetByID(r.Context(), id, adminID)
	if err != nil {
		articleError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, a)
}

// GetAll godoc
// @Summary Все свои статьи (по возрастанию ID)
// @Tags article
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.Article
// @Router /api/article/get-all-articles [get]
func (h *ArticleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromRequest(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "access token needed")
		return
	}

	list, err := h.articleService.GetAll(r.Context(), adminID)
	if err != nil {
		articleError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, list)
}

// Pagination godoc
// @Summary Свои статьи постранично
// @Tags article
// @Security ApiKeyAuth
// @Produce json
// @Param page query int false "Номер страницы (с 1)"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {string} string "page and limit must be an integer"
// @Router /api/article/pagination/article-pagination [get]
func (h *ArticleHandler) Pagination(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromRequest(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "access token needed")
		return
	}

	page, limit, ok := parsePageLimit(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "page and limit must be an integer")
		return
	}

	list, err := h.articleService.GetAll(r.Context(), adminID)
	if err != nil {
		articleError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, pagination.Paginate(list, page, limit))
}

func (h *ArticleHandler) search(w http.ResponseWriter, r *http.Request, target string) {
	adminID, ok := adminIDFromRequest(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "access token needed")
		return
	}

	search := r.URL.Query().Get("search-string")
	if search == "" {
		helpers.Error(w, http.StatusBadRequest, "search-string needed")
		return
	}

	list, err := h.articleService.Search(r.Context(), adminID, search, target)
	if err != nil {
		articleError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, list)
}

// Search godoc
// @Summary Поиск по своим статьям (заголовок и текст)
// @Tags article
// @Security ApiKeyAuth
// @Produce json
// @Param search-string query string true "Подстрока поиска"
// @Success 200 {array} models.Article
// @Failure 400 {string} string "search-string needed"
// @Router /api/article/search [get]
func (h *ArticleHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, "article")
}

// TitleSearch godoc
// @Summary Поиск по заголовкам своих статей
// @Tags article
// @Security ApiKeyAuth
// @Produce json
// @Param search-string query string true "Подстрока поиска"
// @Success 200 {array} models.Article
// @Router /api/article/search/title [get]
func (h *ArticleHandler) TitleSearch(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, "title")
}

// BodySearch godoc
// @Summary Поиск по тексту своих статей
// @Tags article
// @Security ApiKeyAuth
// @Produce json
// @Param search-string query string true "Подстрока поиска"
// @Success 200 {array} models.Article
// @Router /api/article/search/body [get]
func (h *ArticleHandler) BodySearch(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, "body")
}

// SearchPagination godoc
// @Summary Поиск по своим статьям постранично
// @Tags article
// @Security ApiKeyAuth
// @Produce json
// @Param search-string query string true "Подстрока поиска"
// @Param search-target query string true "article | title | body"
// @Param page query int false "Номер страницы (с 1)"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {string} string "unacceptable search target"
// @Router /api/article/pagination/article-search [get]
func (h *ArticleHandler) SearchPagination(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromRequest(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "access token needed")
		return
	}

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

	list, err := h.articleService.Search(r.Context(), adminID, search, target)
	if err != nil {
		articleError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, pagination.Paginate(list, page, limit))
}

// UpdateBody godoc
// @Summary Обновить текст статьи
// @Tags article
// @Security ApiKeyAuth
// @Accept json
// @Param id path int true "ID статьи"
// @Param input body updateBodyRequest true "Новый текст"
// @Success 200 {string} string "article body has been updated"
// @Router /api/article/update/update-body/{id} [patch]
func (h *ArticleHandler) UpdateBody(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromRequest(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "access token needed")
		return
	}

	id, ok := articleID(r)
	if !ok {
		helpers.Error(w, http.StatusNotFound, "article not found")
		return
	}

	var req updateBodyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Body == "" {
		helpers.Error(w, http.StatusBadRequest, "body required")
		return
	}

	if err := h.articleService.UpdateBody(r.Context(), id, adminID, req.Body); err != nil {
		articleError(w, r, err)
		return
	}

	helpers.Message(w, http.StatusOK, "article body has been updated")
}

// UpdateTitle godoc
// @Summary Обновить заголовок статьи
// @Tags article
// @Security ApiKeyAuth
// @Accept json
// @Param id path int true "ID статьи"
// @Param input body updateTitleRequest true "Новый заголовок"
// @Success 200 {string} string "article title has been updated"
// @Failure 400 {string} string "an article with this title already exists"
// @Router /api/article/update/update-title/{id} [patch]
func (h *ArticleHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromRequest(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "access token needed")
		return
	}

	id, ok := articleID(r)
	if !ok {
		helpers.Error(w, http.StatusNotFound, "article not found")
		return
	}

	var req updateTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		helpers.Error(w, http.StatusBadRequest, "title required")
		return
	}

	if err := h.articleService.UpdateTitle(r.Context(), id, adminID, req.Title); err != nil {
		articleError(w, r, err)
		return
	}

	helpers.Message(w, http.StatusOK, "article title has been updated")
}

// UpdateImageURL godoc
// @Summary Обновить image_url статьи
// @Tags article
// @Security ApiKeyAuth
// @Accept json
// @Param id path int true "ID статьи"
// @Param input body updateImageURLRequest true "Новый image_url"
// @Success 200 {string} string "article image url has been updated"
// @Router /api/article/update/update-image-url/{id} [patch]
func (h *ArticleHandler) UpdateImageURL(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromRequest(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "access token needed")
		return
	}

	id, ok := articleID(r)
	if !ok {
		helpers.Error(w, http.StatusNotFound, "article not found")
		return
	}

	var req updateImageURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ImageURL == "" {
		helpers.Error(w, http.StatusBadRequest, "image_url required")
		return
	}

	if err := h.articleService.UpdateImageURL(r.Context(), id, adminID, req.ImageURL); err != nil {
		articleError(w, r, err)
		return
	}

	helpers.Message(w, http.StatusOK, "article image url has been updated")
}

// UpdateAll godoc
// @Summary Обновить статью целиком
// @Tags article
// @Security ApiKeyAuth
// @Accept json
// @Param id path int true "ID статьи"
// @Param input body updateArticleRequest true "Заголовок, текст и image_url"
// @Success 200 {string} string "article has been updated"
// @Router /api/article/update/update-article/{id} [put]
func (h *ArticleHandler) UpdateAll(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromRequest(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "access token needed")
		return
	}

	id, ok := articleID(r)
	if !ok {
		helpers.Error(w, http.StatusNotFound, "article not found")
		return
	}

	var req updateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "all values required")
		return
	}
	if req.Title == "" || req.Body == "" || req.ImageURL == "" {
		helpers.Error(w, http.StatusBadRequest, "all values required")
		return
	}

	if err := h.articleService.UpdateAll(r.Context(), id, adminID, req.Title, req.Body, req.ImageURL); err != nil {
		articleError(w, r, err)
		return
	}

	helpers.Message(w, http.StatusOK, "article has been updated")
}

// DeleteImageURL godoc
// @Summary Удалить image_url статьи
// @Tags article
// @Security ApiKeyAuth
// @Param id path int true "ID статьи"
// @Success 200 {string} string "image url has been deleted"
// @Failure 404 {string} string "article not found"
// @Router /api/article/delete/delete-image-url/{id} [delete]
func (h *ArticleHandler) DeleteImageURL(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromRequest(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "access token needed")
		return
	}

	id, ok := articleID(r)
	if !ok {
		helpers.Error(w, http.StatusNotFound, "article not found")
		return
	}

	if err := h.articleService.DeleteImageURL(r.Context(), id, adminID); err != nil {
		articleError(w, r, err)
		return
	}

	helpers.Message(w, http.StatusOK, "image url has been deleted")
}

// Delete godoc
// @Summary Удалить статью
// @Tags article
// @Security ApiKeyAuth
// @Param id path int true "ID статьи"
// @Success 200 {string} string "article has been deleted"
// @Failure 404 {string} string "article not found"
// @Router /api/article/delete/{id} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromRequest(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "access token needed")
		return
	}

	id, ok := articleID(r)
	if !ok {
		helpers.Error(w, http.StatusNotFound, "article not found")
		return
	}

	if err := h.articleService.Delete(r.Context(), id, adminID); err != nil {
		articleError(w, r, err)
		return
	}

	helpers.Message(w, http.StatusOK, "article has been deleted")
}
