package repository

import (
	"blogadmin/internal/logger"
	"blogadmin/internal/models"
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type AdminRepository struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

// IsUniqueViolation — нарушение уникального индекса (email админа, заголовок статьи).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	logger.WithCtx(ctx).Info("Создание админа (repo)", zap.String("email", admin.Email), zap.String("type", admin.Type))
	query := `
	INSERT INTO admins (name, email, password_hash, type, created_at, updated_at)
	VALUES ($1, $2, $3, $4, NOW(), NULL)
	RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		admin.Name,
		admin.Email,
		admin.PasswordHash,
		admin.Type,
	).Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка создания админа (repo)", zap.Error(err))
	}
	return err
}

const adminColumns = `id, name, email, password_hash, type, created_at, updated_at`

func (r *AdminRepository) scanAdmin(row pgx.Row) (*models.Admin, error) {
	var a models.Admin
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.PasswordHash,
		&a.Type,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		// Отсутствие записи — не ошибка: явный пустой результат.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	logger.WithCtx(ctx).Debug("Поиск админа по email (repo)", zap.String("email", email))
	query := `SELECT ` + adminColumns + ` FROM admins WHERE email = $1`
	return r.scanAdmin(r.db.QueryRow(ctx, query, email))
}

func (r *AdminRepository) GetByType(ctx context.Context, adminType string) (*models.Admin, error) {
	logger.WithCtx(ctx).Debug("Поиск админа по типу (repo)", zap.String("type", adminType))
	query := `SELECT ` + adminColumns + ` FROM admins WHERE type = $1 LIMIT 1`
	return r.scanAdmin(r.db.QueryRow(ctx, query, adminType))
}

func (r *AdminRepository) GetByID(ctx context.Context, id int) (*models.Admin, error) {
	logger.WithCtx(ctx).Debug("Поиск админа по ID (repo)", zap.Int("admin_id", id))
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`
	return r.scanAdmin(r.db.QueryRow(ctx, query, id))
}

// UpdatePassword возвращает true, только если запись реально изменилась.
// Установка того же значения — это "ничего не изменено" (семантика modified count).
func (r *AdminRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) (bool, error) {
	query := `
	UPDATE admins SET password_hash = $2, updated_at = NOW()
	WHERE id = $1 AND password_hash IS DISTINCT FROM $2`
	tag, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка обновления пароля (repo)", zap.Int("admin_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *AdminRepository) UpdateEmail(ctx context.Context, id int, email string) (bool, error) {
	query := `
	UPDATE admins SET email = $2, updated_at = NOW()
	WHERE id = $1 AND email IS DISTINCT FROM $2`
	tag, err := r.db.Exec(ctx, query, id, email)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка обновления email (repo)", zap.Int("admin_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *AdminRepository) UpdateName(ctx context.Context, id int, name string) (bool, error) {
	query := `
	UPDATE admins SET name = $2, updated_at = NOW()
	WHERE id = $1 AND name IS DISTINCT FROM $2`
	tag, err := r.db.Exec(ctx, query, id, name)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка обновления имени (repo)", zap.Int("admin_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *AdminRepository) DeleteByEmail(ctx context.Context, email string) (bool, error) {
	logger.WithCtx(ctx).Info("Удаление админа по email (repo)", zap.String("email", email))
	tag, err := r.db.Exec(ctx, `DELETE FROM admins WHERE email = $1`, email)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка удаления админа (repo)", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
