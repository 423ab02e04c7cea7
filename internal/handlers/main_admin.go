package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogadmin/internal/logger"
	"blogadmin/internal/services"
	helpers "blogadmin/internal/utils/helpers"

	"go.uber.org/zap"
)

type MainAdminHandler struct {
	authService *services.AuthService
}

func NewMainAdminHandler(authService *services.AuthService) *MainAdminHandler {
	return &MainAdminHandler{authService: authService}
}

type deleteAdminRequest struct {
	Email string `json:"email"`
}

// CreateMainAdmin godoc
// @Summary Бутстрап: создать main-админа из конфигурации
// @Tags main-admin
// @Produce json
// @Success 201 {string} string "default main admin created successfully"
// @Failure 400 {string} string "admin type already exists"
// @Router /api/main-admin/create-main-admin [get]
func (h *MainAdminHandler) CreateMainAdmin(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.CreateMainAdmin(r.Context()); err != nil {
		if errors.Is(err, services.ErrMainAdminExists) {
			helpers.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.WithCtx(r.Context()).Error("Ошибка бутстрапа main-админа", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	helpers.Message(w, http.StatusCreated, "default main admin created successfully")
}

// AdminToken godoc
// @Summary Выдать main-токен (субъект "main")
// @Tags main-admin
// @Security ApiKeyAuth
// @Produce json
// @Success 201 {object} map[string]string
// @Failure 401 {string} string "admin not authorized"
// @Failure 404 {string} string "admin does not exists"
// @Router /api/main-admin/token/admin-token [get]
func (h *MainAdminHandler) AdminToken(w http.ResponseWriter, r *http.Request) {
	subject, ok := subjectFromRequest(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "access token needed")
		return
	}

	token, err := h.authService.IssueMainToken(r.Context(), subject)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAdminNotFound):
			helpers.Error(w, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrNotAuthorized):
			helpers.Error(w, http.StatusUnauthorized, err.Error())
		default:
			logger.WithCtx(r.Context()).Error("Ошибка выдачи main-токена", zap.Error(err))
			helpers.Error(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	logger.WithCtx(r.Context()).Info("Выдан main-токен", zap.String("subject", subject))
	helpers.JSON(w, http.StatusCreated, map[string]string{"admin_token": token})
}

// DeleteAdmin godoc
// @Summary Удалить sub-админа по email (только main)
// @Tags main-admin
// @Security ApiKeyAuth
// @Accept json
// @Param input body deleteAdminRequest true "Email удаляемого админа"
// @Success 200 {string} string "admin deleted successfully"
// @Failure 401 {string} string "admin not authorized"
// @Failure 404 {string} string "admin does not exists"
// @Router /api/main-admin/delete/delete-admin [delete]
func (h *MainAdminHandler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	subject, ok := subjectFromRequest(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "access token needed")
		return
	}

	isMain, err := h.authService.IsMain(r.Context(), subject)
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка проверки привилегии", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}
	if !isMain {
		helpers.Error(w, http.StatusUnauthorized, "admin not authorized")
		return
	}

	var req deleteAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		helpers.Error(w, http.StatusBadRequest, "email required")
		return
	}

	if err := h.authService.DeleteAdminByEmail(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, services.ErrAdminNotFound):
			helpers.Error(w, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrNotAuthorized):
			helpers.Error(w, http.StatusUnauthorized, err.Error())
		default:
			logger.WithCtx(r.Context()).Error("Ошибка удаления админа", zap.Error(err))
			helpers.Error(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	helpers.Message(w, http.StatusOK, "admin deleted successfully")
}
