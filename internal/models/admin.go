package models

import "time"

const (
	AdminTypeMain = "main"
	AdminTypeSub  = "sub"
)

type Admin struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Type         string     `json:"type"` // main | sub
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}
