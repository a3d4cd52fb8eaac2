// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/drivenpass/drivenpass/internal/config"
	"github.com/drivenpass/drivenpass/internal/logger"
	"github.com/drivenpass/drivenpass/internal/store"
	"github.com/drivenpass/drivenpass/internal/utils"
	"github.com/drivenpass/drivenpass/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	listFn        func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func newTestAuthService(repo store.UserRepository) AuthService {
	return NewAuthService(repo, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "drivenpass",
		TokenDuration: time.Hour,
		BcryptCost:    utils.MinBcryptCost,
	}, logger.Nop())
}

func TestRegisterUser_Success(t *testing.T) {
	var storedUser models.User
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			storedUser = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	created, err := svc.RegisterUser(context.Background(), models.User{
		Email:    "john@example.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "john@example.com", created.Email)

	// only the bcrypt digest reaches the repository
	assert.Empty(t, storedUser.Password)
	require.NotEmpty(t, storedUser.PasswordHash)
	assert.NotEqual(t, "secret1", storedUser.PasswordHash)
	assert.True(t, utils.NewHasher(utils.MinBcryptCost).Verify(storedUser.PasswordHash, "secret1"))
}

func TestRegisterUser_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		user    models.User
		missing []string
	}{
		{name: "no email", user: models.User{Password: "secret1"}, missing: []string{"email"}},
		{name: "no password", user: models.User{Email: "john@example.com"}, missing: []string{"password"}},
		{name: "nothing at all", user: models.User{}, missing: []string{"email", "password"}},
	}

	svc := newTestAuthService(&mockUserRepository{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.user)

			var missingErr *MissingFieldsError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, tt.missing, missingErr.Fields)
		})
	}
}

func TestRegisterUser_PasswordTooShort(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.RegisterUser(context.Background(), models.User{
		Email:    "john@example.com",
		Password: "short",
	})

	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.User{
		Email:    "john@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.NewHasher(utils.MinBcryptCost).Hash("secret1")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 42, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	token, err := svc.Login(context.Background(), models.User{
		Email:    "john@example.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.UserID)

	// the issued token must round-trip through ParseToken
	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "john@example.com", parsed.Email)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.User{
		Email:    "nobody@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := utils.NewHasher(utils.MinBcryptCost).Hash("secret1")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 42, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err = svc.Login(context.Background(), models.User{
		Email:    "john@example.com",
		Password: "wrong-password",
	})

	// identical to the unknown-email failure on purpose
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.User{Email: "john@example.com"})

	var missingErr *MissingFieldsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"password"}, missingErr.Fields)
}

func TestListUsers(t *testing.T) {
	repo := &mockUserRepository{
		listFn: func(ctx context.Context) ([]models.User, error) {
			return []models.User{
				{UserID: 1, Email: "john@example.com"},
				{UserID: 2, Email: "jane@example.com"},
			}, nil
		},
	}
	svc := newTestAuthService(repo)

	users, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "john@example.com", users[0].Email)
}

func TestListUsers_StorageError(t *testing.T) {
	repo := &mockUserRepository{
		listFn: func(ctx context.Context) ([]models.User, error) {
			return nil, errors.New("db is down")
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.ListUsers(context.Background())

	require.Error(t, err)
}

func TestParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	tests := []struct {
		name        string
		tokenString string
	}{
		{name: "garbage", tokenString: "not.a.token"},
		{name: "empty", tokenString: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), tt.tokenString)

			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
