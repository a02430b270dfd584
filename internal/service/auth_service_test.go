package service

import (
	"testing"

	"github.com/pollhive/backend/internal/dto"
	"github.com/pollhive/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users  map[string]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User), nextID: 1}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, NewTokenService("test-secret", 1))

	resp, err := svc.Register(dto.RegisterRequest{Username: "alice", Email: "a@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.User.Username)

	// The stored hash is never the plaintext password.
	stored := repo.users["alice"]
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)

	login, err := svc.Login(dto.LoginRequest{Username: "alice", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, stored.ID, login.User.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), NewTokenService("test-secret", 1))

	_, err := svc.Register(dto.RegisterRequest{Username: "alice", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.Register(dto.RegisterRequest{Username: "alice", Password: "different"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginRejections(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, NewTokenService("test-secret", 1))

	_, err := svc.Register(dto.RegisterRequest{Username: "alice", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.Login(dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// An unknown user gets the same error as a bad password.
	_, err = svc.Login(dto.LoginRequest{Username: "nobody", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
