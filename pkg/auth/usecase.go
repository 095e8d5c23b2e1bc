package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

// UseCase — регистрация и вход.
type UseCase interface {
	Register(ctx context.Context, email, password string) (Result, error)
	Login(ctx context.Context, email, password string) (Result, error)
}

// Result — пользователь и выпущенный для него токен.
type Result struct {
	User  User
	Token string
}

type service struct {
	users  UserRepository
	tokens TokenIssuer
}

func NewService(users UserRepository, tokens TokenIssuer) UseCase {
	return &service{users: users, tokens: tokens}
}

func (s *service) Register(ctx context.Context, email, password string) (Result, error) {
	email = normalizeEmail(email)
	if email == "" {
		return Result{}, ErrInvalidCredentials
	}
	if len(password) < minPasswordLen {
		return Result{}, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Result{}, err
	}
	user := User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	// уникальность email обеспечивает хранилище
	if err := s.users.Create(ctx, user); err != nil {
		return Result{}, err
	}
	return s.withToken(ctx, user)
}

func (s *service) Login(ctx context.Context, email, password string) (Result, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return Result{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return Result{}, ErrInvalidCredentials
	}
	return s.withToken(ctx, user)
}

func (s *service) withToken(ctx context.Context, user User) (Result, error) {
	token, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return Result{}, err
	}
	return Result{User: user, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
