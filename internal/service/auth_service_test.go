package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posterforge/internal/config"
	"posterforge/internal/database"
	"posterforge/internal/repository"
)

func newTestRepository(t *testing.T) *repository.Repository {
	t.Helper()

	cfg := &config.Config{Store: config.Store{DataDir: t.TempDir()}}
	store, err := database.Connect(cfg)
	require.NoError(t, err)

	return repository.NewRepository(store)
}

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()

	cfg := &config.Config{
		JWTSecretKey:         "test-secret-key",
		AccessTokenDuration:  2 * time.Hour,
		RefreshTokenDuration: 168 * time.Hour,
	}

	return NewAuthService(newTestRepository(t).User, cfg)
}

func TestRegisterThenLogin_SameUserID(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	registered, _, _, err := svc.Register(ctx, "test@example.com", "password123")
	require.NoError(t, err)

	loggedIn, accessToken, refreshToken, err := svc.Login(ctx, "test@example.com", "password123")
	require.NoError(t, err)

	assert.Equal(t, registered.ID, loggedIn.ID)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
}

func TestRegister_EmptyInput(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "", "password123")
	assert.ErrorIs(t, err, ErrEmptyCredentials)

	_, _, _, err = svc.Register(ctx, "test@example.com", "")
	assert.ErrorIs(t, err, ErrEmptyCredentials)
}

func TestRegister_Duplicate(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "test@example.com", "password123")
	require.NoError(t, err)

	_, _, _, err = svc.Register(ctx, "test@example.com", "совсем другой пароль")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_UniformFailure(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "test@example.com", "password123")
	require.NoError(t, err)

	// неизвестный email и неверный пароль дают одну и ту же ошибку
	_, _, _, wrongPassword := svc.Login(ctx, "test@example.com", "wrong-password")
	_, _, _, unknownEmail := svc.Login(ctx, "unknown@example.com", "password123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLogin_AccessTokenClaims(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	registered, _, _, err := svc.Register(ctx, "test@example.com", "password123")
	require.NoError(t, err)

	_, accessToken, _, err := svc.Login(ctx, "test@example.com", "password123")
	require.NoError(t, err)

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret-key"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(registered.ID), claims["userId"])
	assert.Equal(t, "test@example.com", claims["email"])
}

func TestRefreshTokens_Rotation(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	registered, _, refreshToken, err := svc.Register(ctx, "test@example.com", "password123")
	require.NoError(t, err)

	user, accessToken, newRefreshToken, err := svc.RefreshTokens(ctx, refreshToken)
	require.NoError(t, err)

	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, accessToken)
	assert.NotEqual(t, refreshToken, newRefreshToken)

	// старый токен больше не действует
	_, _, _, err = svc.RefreshTokens(ctx, refreshToken)
	assert.Error(t, err)
}
