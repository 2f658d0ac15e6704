package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/pkg/config"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

func newAuthServiceForTest(t *testing.T) (AuthServiceInterface, *mockUserRepo, *mockCacheRepo) {
	t.Helper()
	userRepo := newMockUserRepo()
	cacheRepo := newMockCacheRepo()
	cfg := &config.AuthConfig{
		MaxLoginAttempts: 3,
		LockoutDuration:  15 * time.Minute,
	}
	svc := NewAuthService(userRepo, cacheRepo, zap.NewNop(), cfg)
	return svc, userRepo, cacheRepo
}

func seedUser(t *testing.T, repo *mockUserRepo, username, password string) uint64 {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	id, err := repo.CreateUser(context.Background(), &entities.User{
		Username: username,
		Password: hashed,
		Role:     "Manager",
	})
	require.NoError(t, err)
	return id
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, userRepo, _ := newAuthServiceForTest(t)
	userID := seedUser(t, userRepo, "admin", "admin123")

	user, err := svc.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "admin", user.Username)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, _ := newAuthServiceForTest(t)
	seedUser(t, userRepo, "admin", "admin123")

	_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUserSameError(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t)

	// Несуществующий логин и неверный пароль дают одинаковую ошибку.
	_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Login_LockoutAfterMaxAttempts(t *testing.T) {
	svc, userRepo, _ := newAuthServiceForTest(t)
	seedUser(t, userRepo, "admin", "admin123")

	for i := 0; i < 3; i++ {
		_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "wrong-password"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	// Четвёртая попытка блокируется ещё до проверки пароля,
	// даже если пароль верный.
	_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "admin123"})
	require.Error(t, err)
	httpErr, ok := err.(*apperrors.HttpError)
	require.True(t, ok)
	assert.Equal(t, 429, httpErr.Code)
}

func TestAuthService_Login_SuccessResetsAttempts(t *testing.T) {
	svc, userRepo, cacheRepo := newAuthServiceForTest(t)
	seedUser(t, userRepo, "admin", "admin123")

	for i := 0; i < 2; i++ {
		_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "wrong-password"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	_, err = cacheRepo.Get(context.Background(), "login_attempts:admin")
	assert.Error(t, err, "успешный вход должен сбрасывать счётчик попыток")
}

func TestAuthService_RefreshTokenRevocation(t *testing.T) {
	svc, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	jti := "d2c1a8a0-0000-4000-8000-000000000000"
	assert.False(t, svc.IsRefreshTokenRevoked(ctx, jti))

	require.NoError(t, svc.RevokeRefreshToken(ctx, jti, time.Hour))
	assert.True(t, svc.IsRefreshTokenRevoked(ctx, jti))

	// Пустой jti никогда не считается отозванным.
	assert.False(t, svc.IsRefreshTokenRevoked(ctx, ""))
	assert.NoError(t, svc.RevokeRefreshToken(ctx, "", time.Hour))
}
