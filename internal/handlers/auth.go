package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"blogadmin/internal/config"
	"blogadmin/internal/logger"
	"blogadmin/internal/services"
	"blogadmin/internal/utils"
	helpers "blogadmin/internal/utils/helpers"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Type      string     `json:"type"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	Token     tokenPair  `json:"token"`
}

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type createAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updatePasswordRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"new_password"`
}

type updateEmailRequest struct {
	NewEmail string `json:"new_email"`
}

type updateNameRequest struct {
	NewName string `json:"new_name"`
}

// Login godoc
// @Summary Вход админа
// @Tags admin
// @Accept json
// @Produce json
// @Param input body loginRequest true "Email и пароль"
// @Success 200 {object} loginResponse
// @Failure 400 {string} string "invalid password"
// @Failure 404 {string} string "admin does not exists"
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный JSON в Login", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "email and password are needed")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		helpers.Error(w, http.StatusBadRequest, "email and password are needed")
		return
	}

	access, refresh, admin, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAdminNotFound):
			helpers.Error(w, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrInvalidPassword):
			helpers.Error(w, http.StatusBadRequest, err.Error())
		default:
			logger.WithCtx(r.Context()).Error("Ошибка входа", zap.Error(err))
			helpers.Error(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	helpers.JSON(w, http.StatusOK, loginResponse{
		ID:        admin.ID,
		Name:      admin.Name,
		Email:     admin.Email,
		Type:      admin.Type,
		CreatedAt: admin.CreatedAt,
		UpdatedAt: admin.UpdatedAt,
		Token: tokenPair{
			AccessToken:  access,
			RefreshToken: refresh,
		},
	})
}

// CreateAdmin godoc
// @Summary Создать sub-админа (только main)
// @Tags admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body createAdminRequest true "Данные нового админа"
// @Success 201 {string} string "admin created successfully"
// @Failure 400 {string} string "Ошибка валидации"
// @Failure 401 {string} string "not authorized"
// @Router /api/admin/create-admin [post]
func (h *AuthHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
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
		helpers.Error(w, http.StatusUnauthorized, "not authorized")
		return
	}

	var req createAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "all values needed")
		return
	}
	if req.Name == "" || req.Password == "" || req.Email == "" {
		helpers.Error(w, http.StatusBadRequest, "all values needed")
		return
	}

	if err := h.authService.CreateSubAdmin(r.Context(), req.Name, req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrNameTooShort),
			errors.Is(err, services.ErrPasswordTooShort),
			errors.Is(err, services.ErrInvalidEmail),
			errors.Is(err, services.ErrEmailExists):
			helpers.Error(w, http.StatusBadRequest, err.Error())
		default:
			logger.WithCtx(r.Context()).Error("Ошибка создания админа", zap.Error(err))
			helpers.Error(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	helpers.Message(w, http.StatusCreated, "admin created successfully")
}

// UpdatePassword godoc
// @Summary Сменить свой пароль
// @Tags admin
// @Security ApiKeyAuth
// @Accept json
// @Param input body updatePasswordRequest true "Текущий и новый пароль"
// @Success 200 {string} string "password has been updated successfully"
// @Failure 400 {string} string "password length is less than 5"
// @Failure 401 {string} string "invalid password"
// @Router /api/admin/update/password [patch]
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromRequest(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "access token needed")
		return
	}

	var req updatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "all values needed")
		return
	}
	if req.Password == "" || req.NewPassword == "" {
		helpers.Error(w, http.StatusBadRequest, "all values needed")
		return
	}

	if err := h.authService.UpdatePassword(r.Context(), adminID, req.Password, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrAdminNotFound), errors.Is(err, services.ErrInvalidPassword):
			helpers.Error(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, services.ErrPasswordTooShort):
			helpers.Error(w, http.StatusBadRequest, err.Error())
		default:
			logger.WithCtx(r.Context()).Error("Ошибка смены пароля", zap.Error(err))
			helpers.Error(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	helpers.Message(w, http.StatusOK, "password has been updated successfully")
}

// UpdateEmail godoc
// @Summary Сменить свой email
// @Tags admin
// @Security ApiKeyAuth
// @Accept json
// @Param input body updateEmailRequest true "Новый email"
// @Success 200 {string} string "email has been updated successfully"
// @Failure 400 {string} string "new email is invalid"
// @Router /api/admin/update/email [patch]
func (h *AuthHandler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromRequest(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "access token needed")
		return
	}

	var req updateEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "new email required")
		return
	}
	if req.NewEmail == "" {
		helpers.Error(w, http.StatusBadRequest, "new email required")
		return
	}

	if err := h.authService.UpdateEmail(r.Context(), adminID, req.NewEmail); err != nil {
		switch {
		case errors.Is(err, services.ErrAdminNotFound):
			helpers.Error(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, services.ErrEmailInUse), errors.Is(err, services.ErrInvalidEmail):
			helpers.Error(w, http.StatusBadRequest, err.Error())
		default:
			logger.WithCtx(r.Context()).Error("Ошибка смены email", zap.Error(err))
			helpers.Error(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	helpers.Message(w, http.StatusOK, "email has been updated successfully")
}

// UpdateName godoc
// @Summary Сменить своё имя
// @Tags admin
// @Security ApiKeyAuth
// @Accept json
// @Param input body updateNameRequest true "Новое имя"
// @Success 200 {string} string "name has been updated successfully"
// @Failure 400 {string} string "name length is less than 2"
// @Router /api/admin/update/name [patch]
func (h *AuthHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromRequest(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "access token needed")
		return
	}

	var req updateNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "new name required")
		return
	}
	if req.NewName == "" {
		helpers.Error(w, http.StatusBadRequest, "new name required")
		return
	}

	if err := h.authService.UpdateName(r.Context(), adminID, req.NewName); err != nil {
		switch {
		case errors.Is(err, services.ErrAdminNotFound):
			helpers.Error(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, services.ErrNameTooShort):
			helpers.Error(w, http.StatusBadRequest, err.Error())
		default:
			logger.WithCtx(r.Context()).Error("Ошибка смены имени", zap.Error(err))
			helpers.Error(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	helpers.Message(w, http.StatusOK, "name has been updated successfully")
}

// AccessToken godoc
// @Summary Обновить access-токен по refresh-токену
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 201 {object} map[string]string
// @Failure 401 {string} string "refresh token needed"
// @Router /api/admin/token/access-token [get]
func (h *AuthHandler) AccessToken(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		helpers.Error(w, http.StatusUnauthorized, "refresh token needed")
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	subject, tokenType, err := utils.ParseToken(h.cfg.JWTSecret, tokenString)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный refresh token", zap.Error(err))
		helpers.Error(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}
	// Access-токен здесь не принимается — только refresh.
	if tokenType != utils.TokenTypeRefresh {
		helpers.Error(w, http.StatusUnauthorized, "refresh token needed")
		return
	}

	access, err := h.authService.NewAccessToken(r.Context(), subject)
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			helpers.Error(w, http.StatusNotFound, err.Error())
			return
		}
		logger.WithCtx(r.Context()).Error("Ошибка генерации токена", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	logger.WithCtx(r.Context()).Info("Access-токен обновлён", zap.String("subject", subject))
	helpers.JSON(w, http.StatusCreated, map[string]string{"access_token": access})
}
