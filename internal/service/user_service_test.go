package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"taskboard/internal/auth"
	"taskboard/internal/repository/sqlite"
)

func newUserService(t *testing.T) (UserService, *auth.TokenService) {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewUserRepository(db)
	require.NoError(t, repo.Init(context.Background()))

	hasher := auth.NewHasherWithCost(bcrypt.MinCost)
	tokens := auth.NewTokenService("test-signing-secret", 30*time.Minute)
	return NewUserService(repo, hasher, tokens), tokens
}

func TestUserServiceRegister(t *testing.T) {
	svc, _ := newUserService(t)

	user, err := svc.Register(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	assert.Positive(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash, "hash must never leave the service")
}

func TestUserServiceRegisterDuplicate(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "another1")
	assert.ErrorIs(t, err, ErrUserExists)

	// original credentials still work
	_, err = svc.Login(ctx, "alice", "secret1")
	assert.NoError(t, err)
}

func TestUserServiceRegisterValidation(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"username too short", "ab", "secret1"},
		{"username too long", string(make([]byte, 51)), "secret1"},
		{"password too short", "alice", "12345"},
		{"password over bcrypt limit", "alice", string(make([]byte, 73))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.username, tc.password)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUserServiceLogin(t *testing.T) {
	svc, tokens := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestUserServiceLoginUniformFailure(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "alice", "wrong")
	_, unknownUser := svc.Login(ctx, "bob", "secret1")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}
