package services

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"blogadmin/internal/config"
	"blogadmin/internal/models"
	"blogadmin/internal/utils"
)

type mockAdminRepo struct {
	admins []*models.Admin

	createErr error
	created   *models.Admin
	deleted   string

	passwordChanged bool
	emailChanged    bool
	nameChanged     bool
}

func (m *mockAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	if m.createErr != nil {
		return m.createErr
	}
	admin.ID = len(m.admins) + 1
	m.admins = append(m.admins, admin)
	m.created = admin
	return nil
}

func (m *mockAdminRepo) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	for _, a := range m.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockAdminRepo) GetByType(_ context.Context, adminType string) (*models.Admin, error) {
	for _, a := range m.admins {
		if a.Type == adminType {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockAdminRepo) GetByID(_ context.Context, id int) (*models.Admin, error) {
	for _, a := range m.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockAdminRepo) UpdatePassword(_ context.Context, id int, hash string) (bool, error) {
	m.passwordChanged = true
	return true, nil
}

func (m *mockAdminRepo) UpdateEmail(_ context.Context, id int, email string) (bool, error) {
	m.emailChanged = true
	return true, nil
}

func (m *mockAdminRepo) UpdateName(_ context.Context, id int, name string) (bool, error) {
	m.nameChanged = true
	return true, nil
}

func (m *mockAdminRepo) DeleteByEmail(_ context.Context, email string) (bool, error) {
	for i, a := range m.admins {
		if a.Email == email {
			m.admins = append(m.admins[:i], m.admins[i+1:]...)
			m.deleted = email
			return true, nil
		}
	}
	return false, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		MainAdminName:     "ChiChi",
		MainAdminEmail:    "chichi@email.com",
		MainAdminPassword: "boss-password",
	}
}

func seededAdmin(t *testing.T, id int, email, password, adminType string) *models.Admin {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("хеширование пароля: %v", err)
	}
	return &models.Admin{ID: id, Name: "Тест", Email: email, PasswordHash: hash, Type: adminType}
}

func TestLogin_Success(t *testing.T) {
	repo := &mockAdminRepo{admins: []*models.Admin{
		seededAdmin(t, 7, "sub@example.com", "secret1", models.AdminTypeSub),
	}}
	s := NewAuthService(repo, testConfig())

	access, refresh, admin, err := s.Login(context.Background(), "sub@example.com", "secret1")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if admin.ID != 7 {
		t.Errorf("ожидали admin.ID=7, получили %d", admin.ID)
	}

	subject, kind, err := utils.ParseToken("test-secret", access)
	if err != nil || subject != "7" || kind != utils.TokenTypeAccess {
		t.Errorf("access-токен: subject=%q kind=%q err=%v", subject, kind, err)
	}
	subject, kind, err = utils.ParseToken("test-secret", refresh)
	if err != nil || subject != "7" || kind != utils.TokenTypeRefresh {
		t.Errorf("refresh-токен: subject=%q kind=%q err=%v", subject, kind, err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &mockAdminRepo{admins: []*models.Admin{
		seededAdmin(t, 1, "sub@example.com", "secret1", models.AdminTypeSub),
	}}
	s := NewAuthService(repo, testConfig())

	_, _, _, err := s.Login(context.Background(), "sub@example.com", "wrong")
	if !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("ожидали ErrInvalidPassword, получили %v", err)
	}
}

func TestLogin_NotFound(t *testing.T) {
	s := NewAuthService(&mockAdminRepo{}, testConfig())

	_, _, _, err := s.Login(context.Background(), "nobody@example.com", "secret1")
	if !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("ожидали ErrAdminNotFound, получили %v", err)
	}
}

func TestCreateSubAdmin_Validation(t *testing.T) {
	s := NewAuthService(&mockAdminRepo{}, testConfig())
	ctx := context.Background()

	cases := []struct {
		name     string
		n, e, p  string
		expected error
	}{
		{"короткое имя", "a", "ok@example.com", "secret1", ErrNameTooShort},
		{"короткий пароль", "Вася", "ok@example.com", "1234", ErrPasswordTooShort},
		{"кривой email", "Вася", "not-an-email", "secret1", ErrInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := s.CreateSubAdmin(ctx, tc.n, tc.e, tc.p); !errors.Is(err, tc.expected) {
				t.Errorf("ожидали %v, получили %v", tc.expected, err)
			}
		})
	}
}

func TestCreateSubAdmin_Success(t *testing.T) {
	repo := &mockAdminRepo{}
	s := NewAuthService(repo, testConfig())

	if err := s.CreateSubAdmin(context.Background(), "Вася", "vasya@example.com", "secret1"); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if repo.created == nil || repo.created.Type != models.AdminTypeSub {
		t.Fatalf("ожидали созданного sub-админа, получили %+v", repo.created)
	}
	if repo.created.PasswordHash == "secret1" {
		t.Error("пароль должен храниться хешем")
	}
}

func TestCreateSubAdmin_DuplicateEmail(t *testing.T) {
	repo := &mockAdminRepo{admins: []*models.Admin{
		seededAdmin(t, 1, "vasya@example.com", "secret1", models.AdminTypeSub),
	}}
	s := NewAuthService(repo, testConfig())

	err := s.CreateSubAdmin(context.Background(), "Вася", "vasya@example.com", "secret1")
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("ожидали ErrEmailExists, получили %v", err)
	}
}

func TestCreateMainAdmin(t *testing.T) {
	repo := &mockAdminRepo{}
	s := NewAuthService(repo, testConfig())
	ctx := context.Background()

	if err := s.CreateMainAdmin(ctx); err != nil {
		t.Fatalf("первый бутстрап должен пройти: %v", err)
	}
	if repo.created.Type != models.AdminTypeMain || repo.created.Email != "chichi@email.com" {
		t.Errorf("неверная запись main-админа: %+v", repo.created)
	}

	if err := s.CreateMainAdmin(ctx); !errors.Is(err, ErrMainAdminExists) {
		t.Errorf("повторный бутстрап: ожидали ErrMainAdminExists, получили %v", err)
	}
}

func TestCreateMainAdmin_BootstrapOff(t *testing.T) {
	cfg := testConfig()
	cfg.MainAdminPassword = ""
	s := NewAuthService(&mockAdminRepo{}, cfg)

	if err := s.CreateMainAdmin(context.Background()); !errors.Is(err, ErrBootstrapOff) {
		t.Errorf("ожидали ErrBootstrapOff, получили %v", err)
	}
}

func TestUpdatePassword(t *testing.T) {
	repo := &mockAdminRepo{admins: []*models.Admin{
		seededAdmin(t, 3, "sub@example.com", "secret1", models.AdminTypeSub),
	}}
	s := NewAuthService(repo, testConfig())
	ctx := context.Background()

	if err := s.UpdatePassword(ctx, 3, "wrong", "newpass"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("неверный текущий пароль: ожидали ErrInvalidPassword, получили %v", err)
	}
	if err := s.UpdatePassword(ctx, 3, "secret1", "1234"); !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("короткий новый пароль: ожидали ErrPasswordTooShort, получили %v", err)
	}
	if err := s.UpdatePassword(ctx, 3, "secret1", "newpass"); err != nil {
		t.Errorf("неожиданная ошибка: %v", err)
	}
	if !repo.passwordChanged {
		t.Error("репозиторий не получил обновление пароля")
	}
	if err := s.UpdatePassword(ctx, 99, "secret1", "newpass"); !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("несуществующий админ: ожидали ErrAdminNotFound, получили %v", err)
	}
}

func TestUpdateEmail_Taken(t *testing.T) {
	repo := &mockAdminRepo{admins: []*models.Admin{
		seededAdmin(t, 1, "first@example.com", "secret1", models.AdminTypeSub),
		seededAdmin(t, 2, "second@example.com", "secret1", models.AdminTypeSub),
	}}
	s := NewAuthService(repo, testConfig())

	err := s.UpdateEmail(context.Background(), 1, "second@example.com")
	if !errors.Is(err, ErrEmailInUse) {
		t.Errorf("ожидали ErrEmailInUse, получили %v", err)
	}
}

func TestAdminIDFromSubject(t *testing.T) {
	cases := []struct {
		subject string
		id      int
		ok      bool
	}{
		{"7", 7, true},
		{"main", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{"0", 0, false},
		{"-3", 0, false},
	}
	for _, tc := range cases {
		id, ok := AdminIDFromSubject(tc.subject)
		if id != tc.id || ok != tc.ok {
			t.Errorf("AdminIDFromSubject(%q) = (%d, %v), ожидали (%d, %v)", tc.subject, id, ok, tc.id, tc.ok)
		}
	}
}

func TestIsMain(t *testing.T) {
	repo := &mockAdminRepo{admins: []*models.Admin{
		seededAdmin(t, 1, "boss@example.com", "secret1", models.AdminTypeMain),
		seededAdmin(t, 2, "sub@example.com", "secret1", models.AdminTypeSub),
	}}
	s := NewAuthService(repo, testConfig())
	ctx := context.Background()

	cases := []struct {
		subject string
		want    bool
	}{
		{"1", true},
		{"2", false},
		{"main", true},
		{"99", false},
		{"garbage", false},
	}
	for _, tc := range cases {
		got, err := s.IsMain(ctx, tc.subject)
		if err != nil {
			t.Fatalf("IsMain(%q): %v", tc.subject, err)
		}
		if got != tc.want {
			t.Errorf("IsMain(%q) = %v, ожидали %v", tc.subject, got, tc.want)
		}
	}
}

func TestIsMain_SentinelWithoutMainRecord(t *testing.T) {
	s := NewAuthService(&mockAdminRepo{}, testConfig())

	got, err := s.IsMain(context.Background(), "main")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if got {
		t.Error("сентинел без записи main не должен давать привилегию")
	}
}

func TestIssueMainToken(t *testing.T) {
	repo := &mockAdminRepo{admins: []*models.Admin{
		seededAdmin(t, 1, "boss@example.com", "secret1", models.AdminTypeMain),
		seededAdmin(t, 2, "sub@example.com", "secret1", models.AdminTypeSub),
	}}
	s := NewAuthService(repo, testConfig())
	ctx := context.Background()

	token, err := s.IssueMainToken(ctx, "1")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	subject, kind, err := utils.ParseToken("test-secret", token)
	if err != nil || subject != utils.MainSubject || kind != utils.TokenTypeAccess {
		t.Errorf("admin-токен: subject=%q kind=%q err=%v", subject, kind, err)
	}

	if _, err := s.IssueMainToken(ctx, "2"); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("sub-админ: ожидали ErrNotAuthorized, получили %v", err)
	}
	if _, err := s.IssueMainToken(ctx, "main"); !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("сентинел не резолвится в id: ожидали ErrAdminNotFound, получили %v", err)
	}
}

func TestNewAccessToken(t *testing.T) {
	repo := &mockAdminRepo{admins: []*models.Admin{
		seededAdmin(t, 5, "sub@example.com", "secret1", models.AdminTypeSub),
	}}
	s := NewAuthService(repo, testConfig())
	ctx := context.Background()

	token, err := s.NewAccessToken(ctx, "5")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	subject, kind, err := utils.ParseToken("test-secret", token)
	if err != nil || subject != "5" || kind != utils.TokenTypeAccess {
		t.Errorf("токен: subject=%q kind=%q err=%v", subject, kind, err)
	}

	if _, err := s.NewAccessToken(ctx, strconv.Itoa(99)); !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("удалённый админ: ожидали ErrAdminNotFound, получили %v", err)
	}
}

func TestDeleteAdminByEmail(t *testing.T) {
	repo := &mockAdminRepo{admins: []*models.Admin{
		seededAdmin(t, 1, "boss@example.com", "secret1", models.AdminTypeMain),
		seededAdmin(t, 2, "sub@example.com", "secret1", models.AdminTypeSub),
	}}
	s := NewAuthService(repo, testConfig())
	ctx := context.Background()

	if err := s.DeleteAdminByEmail(ctx, "boss@example.com"); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("main-запись: ожидали ErrNotAuthorized, получили %v", err)
	}
	if err := s.DeleteAdminByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("несуществующий: ожидали ErrAdminNotFound, получили %v", err)
	}
	if err := s.DeleteAdminByEmail(ctx, "sub@example.com"); err != nil {
		t.Errorf("неожиданная ошибка: %v", err)
	}
	if repo.deleted != "sub@example.com" {
		t.Errorf("репозиторий не удалил запись, deleted=%q", repo.deleted)
	}
}
