package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// User — пользователь сервиса. Админ видит чужие отчёты сопоставления.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password is too short")
)

// UserRepository — порт хранения пользователей.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
}

// TokenIssuer выпускает токен доступа для пользователя; скрывает от
// use case конкретный формат (JWT).
type TokenIssuer interface {
	Issue(ctx context.Context, user User) (string, error)
}
