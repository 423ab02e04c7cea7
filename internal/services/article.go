package services

import (
	"blogadmin/internal/logger"
	"blogadmin/internal/models"
	"blogadmin/internal/repository"
	"context"
	"unicode/utf8"

	"go.uber.org/zap"
)

type ArticleService struct {
	repo ArticleRepo
}

func NewArticleService(repo ArticleRepo) *ArticleService {
	return &ArticleService{repo: repo}
}

type ArticleRepo interface {
	Create(ctx context.Context, a *models.Article) error
	GetByID(ctx context.Context, id int64, adminID int) (*models.Article, error)
	GetByTitle(ctx context.Context, title string) (*models.Article, error)
	GetAllByAdmin(ctx context.Context, adminID int) ([]*models.Article, error)
	GetPublicByID(ctx context.Context, id int64) (*models.Article, error)
	GetAllPublic(ctx context.Context) ([]*models.Article, error)
	SearchByAdmin(ctx context.Context, adminID int, search, target string) ([]*models.Article, error)
	SearchPublic(ctx context.Context, search, target string) ([]*models.Article, error)
	UpdateTitle(ctx context.Context, id int64, adminID int, title string) (bool, error)
	UpdateBody(ctx context.Context, id int64, adminID int, body string) (bool, error)
	UpdateImageURL(ctx context.Context, id int64, adminID int, imageURL *string) (bool, error)
	UpdateAll(ctx context.Context, id int64, adminID int, title, body string, imageURL *string) (bool, error)
	Delete(ctx context.Context, id int64, adminID int) (bool, error)
}

// ValidSearchTarget — допустимые значения query-параметра search-target.
func ValidSearchTarget(target string) bool {
	switch target {
	case repository.SearchTargetArticle, repository.SearchTargetTitle, repository.SearchTargetBody:
		return true
	}
	return false
}

func (s *ArticleService) validateTitle(ctx context.Context, title string) error {
	if utf8.RuneCountInString(title) < 3 {
		return ErrTitleTooShort
	}
	// Заголовок уникален глобально, независимо от владельца.
	existing, err := s.repo.GetByTitle(ctx, title)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrTitleExists
	}
	return nil
}

func (s *ArticleService) Create(ctx context.Context, adminID int, title, body string, imageURL *string) error {
	log := logger.WithCtx(ctx)
	log.Info("Создание статьи (service)", zap.Int("admin_id", adminID), zap.String("title", title))

	if err := s.validateTitle(ctx, title); err != nil {
		return err
	}
	if utf8.RuneCountInString(body) < 3 {
		return ErrBodyTooShort
	}

	a := &models.Article{
		Title:    title,
		Body:     body,
		ImageURL: imageURL,
		AdminID:  adminID,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		if repository.IsUniqueViolation(err) {
			return ErrTitleExists
		}
		return err
	}

	log.Info("Статья создана (service)", zap.Int64("article_id", a.ID))
	return nil
}

func (s *ArticleService) GetByID(ctx context.Context, id int64, adminID int) (*models.Article, error) {
	a, err := s.repo.GetByID(ctx, id, adminID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrArticleNotFound
	}
	return a, nil
}

func (s *ArticleService) GetAll(ctx context.Context, adminID int) ([]*models.Article, error) {
	return s.repo.GetAllByAdmin(ctx, adminID)
}

func (s *ArticleService) Search(ctx context.Context, adminID int, search, target string) ([]*models.Article, error) {
	if !ValidSearchTarget(target) {
		return nil, ErrBadSearchTarget
	}
	return s.repo.SearchByAdmin(ctx, adminID, search, target)
}

func (s *ArticleService) GetPublicByID(ctx context.Context, id int64) (*models.Article, error) {
	a, err := s.repo.GetPublicByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrArticleNotFound
	}
	return a, nil
}

func (s *ArticleService) GetAllPublic(ctx context.Context) ([]*models.Article, error) {
	return s.repo.GetAllPublic(ctx)
}

func (s *ArticleService) SearchPublic(ctx context.Context, search, target string) ([]*models.Article, error) {
	if !ValidSearchTarget(target) {
		return nil, ErrBadSearchTarget
	}
	return s.repo.SearchPublic(ctx, search, target)
}

func (s *ArticleService) UpdateTitle(ctx context.Context, id int64, adminID int, title string) error {
	log := logger.WithCtx(ctx)

	if err := s.validateTitle(ctx, title); err != nil {
		return err
	}

	changed, err := s.repo.UpdateTitle(ctx, id, adminID, title)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return ErrTitleExists
		}
		return err
	}
	if !changed {
		return ErrNothingChanged
	}

	log.Info("Заголовок статьи обновлён (service)", zap.Int64("article_id", id))
	return nil
}

func (s *ArticleService) UpdateBody(ctx context.Context, id int64, adminID int, body string) error {
	log := logger.WithCtx(ctx)

	if utf8.RuneCountInString(body) < 3 {
		return ErrBodyTooShort
	}

	changed, err := s.repo.UpdateBody(ctx, id, adminID, body)
	if err != nil {
		return err
	}
	if !changed {
		return ErrNothingChanged
	}

	log.Info("Текст статьи обновлён (service)", zap.Int64("article_id", id))
	return nil
}

func (s *ArticleService) UpdateImageURL(ctx context.Context, id int64, adminID int, imageURL string) error {
	changed, err := s.repo.UpdateImageURL(ctx, id, adminID, &imageURL)
	if err != nil {
		return err
	}
	if !changed {
		return ErrNothingChanged
	}
	return nil
}

func (s *ArticleService) UpdateAll(ctx context.Context, id int64, adminID int, title, body, imageURL string) error {
	log := logger.WithCtx(ctx)

	if err := s.validateTitle(ctx, title); err != nil {
		return err
	}
	if utf8.RuneCountInString(body) < 3 {
		return ErrBodyTooShort
	}

	changed, err := s.repo.UpdateAll(ctx, id, adminID, title, body, &imageURL)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return ErrTitleExists
		}
		return err
	}
	if !changed {
		return ErrNothingChanged
	}

	log.Info("Статья обновлена целиком (service)", zap.Int64("article_id", id))
	return nil
}

// DeleteImageURL обнуляет image_url. Сначала проверяем, что статья
// существует у владельца — иначе 404, а не "ничего не изменилось".
func (s *ArticleService) DeleteImageURL(ctx context.Context, id int64, adminID int) error {
	a, err := s.repo.GetByID(ctx, id, adminID)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrArticleNotFound
	}

	changed, err := s.repo.UpdateImageURL(ctx, id, adminID, nil)
	if err != nil {
		return err
	}
	if !changed {
		return ErrNothingChanged
	}
	return nil
}

func (s *ArticleService) Delete(ctx context.Context, id int64, adminID int) error {
	log := logger.WithCtx(ctx)

	a, err := s.repo.GetByID(ctx, id, adminID)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrArticleNotFound
	}

	ok, err := s.repo.Delete(ctx, id, adminID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNothingChanged
	}

	log.Info("Статья удалена (service)", zap.Int64("article_id", id), zap.Int("admin_id", adminID))
	return nil
}
