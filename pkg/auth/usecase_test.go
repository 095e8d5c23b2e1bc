package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUsers struct {
	byEmail map[string]User
}

func newMemUsers() *memUsers { return &memUsers{byEmail: map[string]User{}} }

func (m *memUsers) Create(_ context.Context, u User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return ErrUserAlreadyExists
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

type staticTokens struct{}

func (staticTokens) Issue(context.Context, User) (string, error) { return "test-token", nil }

func TestRegisterAndLogin(t *testing.T) {
	users := newMemUsers()
	svc := NewService(users, staticTokens{})

	res, err := svc.Register(context.Background(), "  User@Example.COM ", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", res.User.Email)
	assert.Equal(t, "test-token", res.Token)
	// в хранилище лежит bcrypt-хэш, не сам пароль
	stored := users.byEmail["user@example.com"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")))

	login, err := svc.Login(context.Background(), "user@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newMemUsers(), staticTokens{})
	_, err := svc.Register(context.Background(), "a@b.c", "long enough pass")
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), "A@B.C", "long enough pass")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc := NewService(newMemUsers(), staticTokens{})
	_, err := svc.Register(context.Background(), "a@b.c", strings.Repeat("x", minPasswordLen-1))
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := NewService(newMemUsers(), staticTokens{})
	_, err := svc.Register(context.Background(), "a@b.c", "long enough pass")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "a@b.c", "wrong password!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// незнакомый email не должен отличаться от неверного пароля
	_, err = svc.Login(context.Background(), "nobody@b.c", "whatever pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
