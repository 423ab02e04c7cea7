package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	// MainSubject — зарезервированная идентичность главного админа.
	// Это не id записи: попытка разобрать её как id должна мягко провалиться.
	MainSubject = "main"
)

var ErrInvalidToken = errors.New("invalid token")

// GenerateToken создаёт JWT с субъектом (id админа строкой или "main")
// и типом токена (access | refresh).
func GenerateToken(secret, subject string, duration time.Duration, tokenType string) (string, error) {
	claims := jwt.MapClaims{
		"sub":        subject,
		"token_type": tokenType,
		"exp":        time.Now().Add(duration).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken проверяет подпись и срок жизни, возвращает субъект и тип токена.
func ParseToken(secret, tokenString string) (subject, tokenType string, err error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}

	subject, ok1 := claims["sub"].(string)
	tokenType, ok2 := claims["token_type"].(string)
	if !ok1 || !ok2 {
		return "", "", ErrInvalidToken
	}

	return subject, tokenType, nil
}
