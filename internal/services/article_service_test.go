package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"blogadmin/internal/models"
)

type mockArticleRepo struct {
	articles []*models.Article
	nextID   int64

	titleUpdated bool
	bodyUpdated  bool
	imageUpdated bool
	allUpdated   bool
	deletedID    int64
}

func (m *mockArticleRepo) Create(_ context.Context, a *models.Article) error {
	m.nextID++
	a.ID = m.nextID
	m.articles = append(m.articles, a)
	return nil
}

func (m *mockArticleRepo) GetByID(_ context.Context, id int64, adminID int) (*models.Article, error) {
	for _, a := range m.articles {
		if a.ID == id && a.AdminID == adminID {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockArticleRepo) GetByTitle(_ context.Context, title string) (*models.Article, error) {
	for _, a := range m.articles {
		if a.Title == title {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockArticleRepo) GetAllByAdmin(_ context.Context, adminID int) ([]*models.Article, error) {
	var out []*models.Article
	for _, a := range m.articles {
		if a.AdminID == adminID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockArticleRepo) GetPublicByID(_ context.Context, id int64) (*models.Article, error) {
	for _, a := range m.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockArticleRepo) GetAllPublic(_ context.Context) ([]*models.Article, error) {
	return m.articles, nil
}

func (m *mockArticleRepo) matches(a *models.Article, search, target string) bool {
	s := strings.ToLower(search)
	inTitle := strings.Contains(strings.ToLower(a.Title), s)
	inBody := strings.Contains(strings.ToLower(a.Body), s)
	switch target {
	case "title":
		return inTitle
	case "body":
		return inBody
	default:
		return inTitle || inBody
	}
}

func (m *mockArticleRepo) SearchByAdmin(_ context.Context, adminID int, search, target string) ([]*models.Article, error) {
	var out []*models.Article
	for _, a := range m.articles {
		if a.AdminID == adminID && m.matches(a, search, target) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockArticleRepo) SearchPublic(_ context.Context, search, target string) ([]*models.Article, error) {
	var out []*models.Article
	for _, a := range m.articles {
		if m.matches(a, search, target) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockArticleRepo) UpdateTitle(_ context.Context, id int64, adminID int, title string) (bool, error) {
	m.titleUpdated = true
	return true, nil
}

func (m *mockArticleRepo) UpdateBody(_ context.Context, id int64, adminID int, body string) (bool, error) {
	m.bodyUpdated = true
	return true, nil
}

func (m *mockArticleRepo) UpdateImageURL(_ context.Context, id int64, adminID int, imageURL *string) (bool, error) {
	m.imageUpdated = true
	return true, nil
}

func (m *mockArticleRepo) UpdateAll(_ context.Context, id int64, adminID int, title, body string, imageURL *string) (bool, error) {
	m.allUpdated = true
	return true, nil
}

func (m *mockArticleRepo) Delete(_ context.Context, id int64, adminID int) (bool, error) {
	for i, a := range m.articles {
		if a.ID == id && a.AdminID == adminID {
			m.articles = append(m.articles[:i], m.articles[i+1:]...)
			m.deletedID = id
			return true, nil
		}
	}
	return false, nil
}

func seedArticles(repo *mockArticleRepo) {
	ctx := context.Background()
	repo.Create(ctx, &models.Article{Title: "Первая статья", Body: "Текст про Go", AdminID: 1})
	repo.Create(ctx, &models.Article{Title: "Вторая статья", Body: "Текст про Postgres", AdminID: 1})
	repo.Create(ctx, &models.Article{Title: "Чужая статья", Body: "Текст про Go и не только", AdminID: 2})
}

func TestArticleCreate_Validation(t *testing.T) {
	repo := &mockArticleRepo{}
	seedArticles(repo)
	s := NewArticleService(repo)
	ctx := context.Background()

	if err := s.Create(ctx, 1, "ab", "нормальный текст", nil); !errors.Is(err, ErrTitleTooShort) {
		t.Errorf("короткий заголовок: ожидали ErrTitleTooShort, получили %v", err)
	}
	if err := s.Create(ctx, 1, "Новая статья", "ab", nil); !errors.Is(err, ErrBodyTooShort) {
		t.Errorf("короткий текст: ожидали ErrBodyTooShort, получили %v", err)
	}
	if err := s.Create(ctx, 1, "Первая статья", "нормальный текст", nil); !errors.Is(err, ErrTitleExists) {
		t.Errorf("дубликат заголовка: ожидали ErrTitleExists, получили %v", err)
	}
	// Дубликат чужого заголовка тоже запрещён.
	if err := s.Create(ctx, 1, "Чужая статья", "нормальный текст", nil); !errors.Is(err, ErrTitleExists) {
		t.Errorf("чужой заголовок: ожидали ErrTitleExists, получили %v", err)
	}
}

func TestArticleCreate_Success(t *testing.T) {
	repo := &mockArticleRepo{}
	s := NewArticleService(repo)

	img := "https://example.com/pic.png"
	if err := s.Create(context.Background(), 1, "Новая статья", "нормальный текст", &img); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(repo.articles) != 1 || repo.articles[0].AdminID != 1 {
		t.Fatalf("статья не сохранилась: %+v", repo.articles)
	}
	if repo.articles[0].ImageURL == nil || *repo.articles[0].ImageURL != img {
		t.Error("image_url потерялся при создании")
	}
}

func TestArticleGetByID_OwnerScoped(t *testing.T) {
	repo := &mockArticleRepo{}
	seedArticles(repo)
	s := NewArticleService(repo)
	ctx := context.Background()

	a, err := s.GetByID(ctx, 1, 1)
	if err != nil || a.Title != "Первая статья" {
		t.Errorf("своя статья: a=%+v err=%v", a, err)
	}

	// Чужая статья для владельца невидима.
	if _, err := s.GetByID(ctx, 3, 1); !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("чужая статья: ожидали ErrArticleNotFound, получили %v", err)
	}

	// Публичное чтение владельца не проверяет.
	if a, err := s.GetPublicByID(ctx, 3); err != nil || a.Title != "Чужая статья" {
		t.Errorf("публичное чтение: a=%+v err=%v", a, err)
	}
}

func TestArticleSearch(t *testing.T) {
	repo := &mockArticleRepo{}
	seedArticles(repo)
	s := NewArticleService(repo)
	ctx := context.Background()

	if _, err := s.Search(ctx, 1, "go", "nonsense"); !errors.Is(err, ErrBadSearchTarget) {
		t.Errorf("ожидали ErrBadSearchTarget, получили %v", err)
	}

	list, err := s.Search(ctx, 1, "go", "body")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Первая статья" {
		t.Errorf("поиск по своим статьям: %+v", list)
	}

	public, err := s.SearchPublic(ctx, "go", "body")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(public) != 2 {
		t.Errorf("публичный поиск должен видеть всех авторов, получили %d", len(public))
	}
}

func TestArticleUpdateTitle(t *testing.T) {
	repo := &mockArticleRepo{}
	seedArticles(repo)
	s := NewArticleService(repo)
	ctx := context.Background()

	if err := s.UpdateTitle(ctx, 1, 1, "Вторая статья"); !errors.Is(err, ErrTitleExists) {
		t.Errorf("занятый заголовок: ожидали ErrTitleExists, получили %v", err)
	}
	if err := s.UpdateTitle(ctx, 1, 1, "Обновлённая статья"); err != nil {
		t.Errorf("неожиданная ошибка: %v", err)
	}
	if !repo.titleUpdated {
		t.Error("репозиторий не получил обновление заголовка")
	}
}

func TestArticleDelete(t *testing.T) {
	repo := &mockArticleRepo{}
	seedArticles(repo)
	s := NewArticleService(repo)
	ctx := context.Background()

	// Чужую статью удалить нельзя, ответ 404-семантики.
	if err := s.Delete(ctx, 3, 1); !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("чужая статья: ожидали ErrArticleNotFound, получили %v", err)
	}
	if err := s.Delete(ctx, 1, 1); err != nil {
		t.Errorf("неожиданная ошибка: %v", err)
	}
	if repo.deletedID != 1 {
		t.Errorf("ожидали удаление id=1, deletedID=%d", repo.deletedID)
	}
}

func TestArticleDeleteImageURL_NotFoundFirst(t *testing.T) {
	repo := &mockArticleRepo{}
	seedArticles(repo)
	s := NewArticleService(repo)
	ctx := context.Background()

	if err := s.DeleteImageURL(ctx, 99, 1); !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("ожидали ErrArticleNotFound, получили %v", err)
	}
	if err := s.DeleteImageURL(ctx, 1, 1); err != nil {
		t.Errorf("неожиданная ошибка: %v", err)
	}
	if !repo.imageUpdated {
		t.Error("репозиторий не получил обнуление image_url")
	}
}

func TestValidSearchTarget(t *testing.T) {
	for _, target := range []string{"article", "title", "body"} {
		if !ValidSearchTarget(target) {
			t.Errorf("%q должен быть допустимым", target)
		}
	}
	for _, target := range []string{"", "Article", "everything"} {
		if ValidSearchTarget(target) {
			t.Errorf("%q не должен быть допустимым", target)
		}
	}
}
