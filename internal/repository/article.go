package repository

import (
	"blogadmin/internal/logger"
	"blogadmin/internal/models"
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Цели поиска: "article" — заголовок ИЛИ текст, "title"/"body" — только одно поле.
const (
	SearchTargetArticle = "article"
	SearchTargetTitle   = "title"
	SearchTargetBody    = "body"
)

type ArticleRepository struct {
	db *pgxpool.Pool
}

func NewArticleRepository(db *pgxpool.Pool) *ArticleRepository {
	return &ArticleRepository{db: db}
}

const articleColumns = `id, title, body, image_url, admin_id, created_at, updated_at`

// escapeLike экранирует метасимволы LIKE: пользовательский ввод ищется
// как буквальная подстрока, а не как шаблон.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func (r *ArticleRepository) Create(ctx context.Context, a *models.Article) error {
	logger.WithCtx(ctx).Info("Создание статьи (repo)", zap.String("title", a.Title), zap.Int("admin_id", a.AdminID))
	query := `
	INSERT INTO articles (title, body, image_url, admin_id, created_at, updated_at)
	VALUES ($1, $2, $3, $4, NOW(), NULL)
	RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		a.Title,
		a.Body,
		a.ImageURL,
		a.AdminID,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка создания статьи (repo)", zap.Error(err))
	}
	return err
}

func (r *ArticleRepository) scanArticle(row pgx.Row) (*models.Article, error) {
	var a models.Article
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Body,
		&a.ImageURL,
		&a.AdminID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArticleRepository) scanArticles(rows pgx.Rows) ([]*models.Article, error) {
	defer rows.Close()
	list := []*models.Article{}
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Body,
			&a.ImageURL,
			&a.AdminID,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// GetByID — только статья указанного владельца.
func (r *ArticleRepository) GetByID(ctx context.Context, id int64, adminID int) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1 AND admin_id = $2`
	return r.scanArticle(r.db.QueryRow(ctx, query, id, adminID))
}

// GetByTitle ищет по точному заголовку среди всех статей (проверка уникальности).
func (r *ArticleRepository) GetByTitle(ctx context.Context, title string) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE title = $1`
	return r.scanArticle(r.db.QueryRow(ctx, query, title))
}

func (r *ArticleRepository) GetAllByAdmin(ctx context.Context, adminID int) ([]*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE admin_id = $1 ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query, adminID)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения статей админа (repo)", zap.Int("admin_id", adminID), zap.Error(err))
		return nil, err
	}
	return r.scanArticles(rows)
}

func (r *ArticleRepository) GetPublicByID(ctx context.Context, id int64) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	return r.scanArticle(r.db.QueryRow(ctx, query, id))
}

func (r *ArticleRepository) GetAllPublic(ctx context.Context) ([]*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения всех статей (repo)", zap.Error(err))
		return nil, err
	}
	return r.scanArticles(rows)
}

func searchCondition(target string, argN int) string {
	arg := "$" + strconv.Itoa(argN)
	switch target {
	case SearchTargetTitle:
		return "title ILIKE " + arg
	case SearchTargetBody:
		return "body ILIKE " + arg
	default:
		return "(title ILIKE " + arg + " OR body ILIKE " + arg + ")"
	}
}

// SearchByAdmin — регистронезависимый поиск подстроки по статьям владельца.
func (r *ArticleRepository) SearchByAdmin(ctx context.Context, adminID int, search, target string) ([]*models.Article, error) {
	pattern := "%" + escapeLike(search) + "%"
	query := `SELECT ` + articleColumns + ` FROM articles WHERE admin_id = $1 AND ` +
		searchCondition(target, 2) + ` ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query, adminID, pattern)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка поиска статей админа (repo)", zap.Int("admin_id", adminID), zap.Error(err))
		return nil, err
	}
	return r.scanArticles(rows)
}

// SearchPublic — то же самое без ограничения по владельцу.
func (r *ArticleRepository) SearchPublic(ctx context.Context, search, target string) ([]*models.Article, error) {
	pattern := "%" + escapeLike(search) + "%"
	query := `SELECT ` + articleColumns + ` FROM articles WHERE ` +
		searchCondition(target, 1) + ` ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query, pattern)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка публичного поиска статей (repo)", zap.Error(err))
		return nil, err
	}
	return r.scanArticles(rows)
}

// Обновления возвращают true, только если строка реально изменилась
// (см. комментарий в admin.go про семантику modified count).

func (r *ArticleRepository) UpdateTitle(ctx context.Context, id int64, adminID int, title string) (bool, error) {
	query := `
	UPDATE articles SET title = $3, updated_at = NOW()
	WHERE id = $1 AND admin_id = $2 AND title IS DISTINCT FROM $3`
	tag, err := r.db.Exec(ctx, query, id, adminID, title)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка обновления заголовка (repo)", zap.Int64("article_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ArticleRepository) UpdateBody(ctx context.Context, id int64, adminID int, body string) (bool, error) {
	query := `
	UPDATE articles SET body = $3, updated_at = NOW()
	WHERE id = $1 AND admin_id = $2 AND body IS DISTINCT FROM $3`
	tag, err := r.db.Exec(ctx, query, id, adminID, body)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка обновления текста (repo)", zap.Int64("article_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ArticleRepository) UpdateImageURL(ctx context.Context, id int64, adminID int, imageURL *string) (bool, error) {
	query := `
	UPDATE articles SET image_url = $3, updated_at = NOW()
	WHERE id = $1 AND admin_id = $2 AND image_url IS DISTINCT FROM $3`
	tag, err := r.db.Exec(ctx, query, id, adminID, imageURL)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка обновления image_url (repo)", zap.Int64("article_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ArticleRepository) UpdateAll(ctx context.Context, id int64, adminID int, title, body string, imageURL *string) (bool, error) {
	query := `
	UPDATE articles SET title = $3, body = $4, image_url = $5, updated_at = NOW()
	WHERE id = $1 AND admin_id = $2
	  AND (title IS DISTINCT FROM $3 OR body IS DISTINCT FROM $4 OR image_url IS DISTINCT FROM $5)`
	tag, err := r.db.Exec(ctx, query, id, adminID, title, body, imageURL)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка полного обновления статьи (repo)", zap.Int64("article_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id int64, adminID int) (bool, error) {
	logger.WithCtx(ctx).Info("Удаление статьи (repo)", zap.Int64("article_id", id), zap.Int("admin_id", adminID))
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1 AND admin_id = $2`, id, adminID)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка удаления статьи (repo)", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
