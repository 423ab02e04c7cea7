package services

import (
	"blogadmin/internal/config"
	"blogadmin/internal/logger"
	"blogadmin/internal/models"
	"blogadmin/internal/repository"
	"blogadmin/internal/utils"
	"context"
	"strconv"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
	"go.uber.org/zap"
)

type AuthService struct {
	repo AdminRepo
	cfg  *config.Config
}

func NewAuthService(repo AdminRepo, cfg *config.Config) *AuthService {
	return &AuthService{repo: repo, cfg: cfg}
}

type AdminRepo interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetByType(ctx context.Context, adminType string) (*models.Admin, error)
	GetByID(ctx context.Context, id int) (*models.Admin, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) (bool, error)
	UpdateEmail(ctx context.Context, id int, email string) (bool, error)
	UpdateName(ctx context.Context, id int, name string) (bool, error)
	DeleteByEmail(ctx context.Context, email string) (bool, error)
}

// AdminIDFromSubject разбирает субъект токена как id админа.
// Сентинел "main" — не id записи, для него возвращается false.
func AdminIDFromSubject(subject string) (int, bool) {
	if subject == "" || subject == utils.MainSubject {
		return 0, false
	}
	id, err := strconv.Atoi(subject)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// Login проверяет пароль и выдаёт пару access/refresh токенов.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, string, *models.Admin, error) {
	log := logger.WithCtx(ctx)
	log.Info("Попытка входа (service)", zap.String("email", email))

	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		log.Error("Ошибка поиска админа (service)", zap.Error(err))
		return "", "", nil, err
	}
	if admin == nil {
		log.Warn("Админ не найден (service)", zap.String("email", email))
		return "", "", nil, ErrAdminNotFound
	}

	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		log.Warn("Неверный пароль (service)", zap.String("email", email))
		return "", "", nil, ErrInvalidPassword
	}

	subject := strconv.Itoa(admin.ID)

	accessToken, err := utils.GenerateToken(s.cfg.JWTSecret, subject, s.cfg.AccessTTL(), utils.TokenTypeAccess)
	if err != nil {
		log.Error("Ошибка генерации access-токена", zap.Error(err))
		return "", "", nil, err
	}

	refreshToken, err := utils.GenerateToken(s.cfg.JWTSecret, subject, s.cfg.RefreshTTL(), utils.TokenTypeRefresh)
	if err != nil {
		log.Error("Ошибка генерации refresh-токена", zap.Error(err))
		return "", "", nil, err
	}

	log.Info("Вход выполнен (service)", zap.Int("admin_id", admin.ID), zap.String("type", admin.Type))
	return accessToken, refreshToken, admin, nil
}

// CreateSubAdmin создаёт sub-админа. Вызывается только после проверки main-привилегии.
func (s *AuthService) CreateSubAdmin(ctx context.Context, name, email, password string) error {
	log := logger.WithCtx(ctx)
	log.Info("Создание sub-админа (service)", zap.String("email", email))

	if utf8.RuneCountInString(name) < 2 {
		return ErrNameTooShort
	}
	if utf8.RuneCountInString(password) < 5 {
		return ErrPasswordTooShort
	}
	if !govalidator.IsEmail(email) {
		return ErrInvalidEmail
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailExists
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Error("Ошибка хеширования пароля (service)", zap.Error(err))
		return err
	}

	admin := &models.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Type:         models.AdminTypeSub,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		// Уникальный индекс по email закрывает гонку "проверили — создали".
		if repository.IsUniqueViolation(err) {
			return ErrEmailExists
		}
		return err
	}

	log.Info("Sub-админ создан (service)", zap.Int("admin_id", admin.ID))
	return nil
}

// CreateMainAdmin — бутстрап: единственный main-админ из конфигурации.
func (s *AuthService) CreateMainAdmin(ctx context.Context) error {
	log := logger.WithCtx(ctx)
	log.Info("Бутстрап main-админа (service)")

	if s.cfg.MainAdminPassword == "" {
		return ErrBootstrapOff
	}

	existing, err := s.repo.GetByType(ctx, models.AdminTypeMain)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrMainAdminExists
	}

	hash, err := utils.HashPassword(s.cfg.MainAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Name:         s.cfg.MainAdminName,
		Email:        s.cfg.MainAdminEmail,
		PasswordHash: hash,
		Type:         models.AdminTypeMain,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		if repository.IsUniqueViolation(err) {
			return ErrMainAdminExists
		}
		return err
	}

	log.Info("Main-админ создан (service)", zap.Int("admin_id", admin.ID))
	return nil
}

// UpdatePassword меняет пароль после проверки текущего.
func (s *AuthService) UpdatePassword(ctx context.Context, adminID int, password, newPassword string) error {
	log := logger.WithCtx(ctx)

	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrAdminNotFound
	}

	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		log.Warn("Неверный текущий пароль (service)", zap.Int("admin_id", adminID))
		return ErrInvalidPassword
	}
	if utf8.RuneCountInString(newPassword) < 5 {
		return ErrPasswordTooShort
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	changed, err := s.repo.UpdatePassword(ctx, adminID, hash)
	if err != nil {
		return err
	}
	if !changed {
		return ErrNothingChanged
	}

	log.Info("Пароль обновлён (service)", zap.Int("admin_id", adminID))
	return nil
}

func (s *AuthService) UpdateEmail(ctx context.Context, adminID int, newEmail string) error {
	log := logger.WithCtx(ctx)

	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrAdminNotFound
	}

	taken, err := s.repo.GetByEmail(ctx, newEmail)
	if err != nil {
		return err
	}
	if taken != nil {
		return ErrEmailInUse
	}

	if !govalidator.IsEmail(newEmail) {
		return ErrInvalidEmail
	}

	changed, err := s.repo.UpdateEmail(ctx, adminID, newEmail)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return ErrEmailInUse
		}
		return err
	}
	if !changed {
		return ErrNothingChanged
	}

	log.Info("Email обновлён (service)", zap.Int("admin_id", adminID))
	return nil
}

func (s *AuthService) UpdateName(ctx context.Context, adminID int, newName string) error {
	log := logger.WithCtx(ctx)

	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrAdminNotFound
	}

	if utf8.RuneCountInString(newName) < 2 {
		return ErrNameTooShort
	}

	changed, err := s.repo.UpdateName(ctx, adminID, newName)
	if err != nil {
		return err
	}
	if !changed {
		return ErrNothingChanged
	}

	log.Info("Имя обновлено (service)", zap.Int("admin_id", adminID))
	return nil
}

// NewAccessToken выдаёт свежий access-токен по валидному refresh-субъекту.
func (s *AuthService) NewAccessToken(ctx context.Context, subject string) (string, error) {
	id, ok := AdminIDFromSubject(subject)
	if !ok {
		return "", ErrAdminNotFound
	}

	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if admin == nil {
		return "", ErrAdminNotFound
	}

	return utils.GenerateToken(s.cfg.JWTSecret, subject, s.cfg.AccessTTL(), utils.TokenTypeAccess)
}

// IssueMainToken выдаёт access-токен с зарезервированным субъектом "main".
// Доступно только админу, чья запись имеет тип main.
func (s *AuthService) IssueMainToken(ctx context.Context, subject string) (string, error) {
	id, ok := AdminIDFromSubject(subject)
	if !ok {
		return "", ErrAdminNotFound
	}

	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if admin == nil {
		return "", ErrAdminNotFound
	}
	if admin.Type != models.AdminTypeMain {
		return "", ErrNotAuthorized
	}

	return utils.GenerateToken(s.cfg.JWTSecret, utils.MainSubject, s.cfg.AccessTTL(), utils.TokenTypeAccess)
}

// IsMain — единая стратегия проверки привилегии: всегда резолвим запись
// и смотрим на её тип. Для сентинела "main" резолвим запись по типу.
func (s *AuthService) IsMain(ctx context.Context, subject string) (bool, error) {
	if subject == utils.MainSubject {
		admin, err := s.repo.GetByType(ctx, models.AdminTypeMain)
		if err != nil {
			return false, err
		}
		return admin != nil, nil
	}

	id, ok := AdminIDFromSubject(subject)
	if !ok {
		return false, nil
	}

	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return admin != nil && admin.Type == models.AdminTypeMain, nil
}

// GetAdmin резолвит запись по субъекту access-токена.
func (s *AuthService) GetAdmin(ctx context.Context, subject string) (*models.Admin, error) {
	id, ok := AdminIDFromSubject(subject)
	if !ok {
		return nil, ErrAdminNotFound
	}

	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}
	return admin, nil
}

// DeleteAdminByEmail удаляет sub-админа. Запись типа main удалить нельзя.
func (s *AuthService) DeleteAdminByEmail(ctx context.Context, email string) error {
	log := logger.WithCtx(ctx)

	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrAdminNotFound
	}
	if admin.Type == models.AdminTypeMain {
		return ErrNotAuthorized
	}

	ok, err := s.repo.DeleteByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNothingChanged
	}

	log.Info("Админ удалён (service)", zap.String("email", email))
	return nil
}
