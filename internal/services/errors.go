package services

import "errors"

// Тексты ошибок видны клиенту в JSON-ответе, поэтому они на английском.
var (
	ErrAdminNotFound    = errors.New("admin does not exists")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrNameTooShort     = errors.New("name length is less than 2")
	ErrPasswordTooShort = errors.New("password length is less than 5")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmailExists      = errors.New("email already exists")
	ErrEmailInUse       = errors.New("email already in use")
	ErrMainAdminExists  = errors.New("admin type already exists")
	ErrNotAuthorized    = errors.New("admin not authorized")
	ErrNothingChanged   = errors.New("something went wrong")
	ErrBootstrapOff     = errors.New("main admin password is not configured")

	ErrTitleTooShort   = errors.New("title length must be greater than 2")
	ErrBodyTooShort    = errors.New("body length must be greater than 2")
	ErrTitleExists     = errors.New("an article with this title already exists")
	ErrArticleNotFound = errors.New("article not found")
	ErrBadSearchTarget = errors.New("unacceptable search target")
)
