package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/config"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*entities.User, error)
	GetUserByID(ctx context.Context, userID uint64) (*entities.User, error)
	RevokeRefreshToken(ctx context.Context, jti string, ttl time.Duration) error
	IsRefreshTokenRevoked(ctx context.Context, jti string) bool
}

type AuthService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
	cfg       *config.AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cfg *config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cfg:       cfg,
	}
}

// Login сверяет пароль с хешем. Сообщение об ошибке одинаковое и для
// несуществующего логина, и для неверного пароля — наружу ничего не утекает.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*entities.User, error) {
	logger := s.logger.With(zap.String("username", payload.Username))

	// Блокировка по количеству неудачных попыток.
	attemptsKey := fmt.Sprintf("login_attempts:%s", payload.Username)
	attemptsStr, _ := s.cacheRepo.Get(ctx, attemptsKey)
	if attempts, _ := strconv.Atoi(attemptsStr); attempts >= s.cfg.MaxLoginAttempts {
		logger.Warn("Превышено количество попыток входа")
		return nil, apperrors.NewHttpError(
			http.StatusTooManyRequests,
			fmt.Sprintf("Слишком много попыток. Попробуйте через %.0f минут.", s.cfg.LockoutDuration.Minutes()),
			nil,
			nil,
		)
	}

	user, err := s.userRepo.FindUserByUsername(ctx, payload.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.registerFailedAttempt(ctx, attemptsKey)
			logger.Warn("Попытка входа с несуществующим логином")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		s.registerFailedAttempt(ctx, attemptsKey)
		logger.Warn("Неверный пароль")
		return nil, apperrors.ErrInvalidCredentials
	}

	// Успешный вход сбрасывает счётчик.
	if err := s.cacheRepo.Del(ctx, attemptsKey); err != nil {
		logger.Debug("Не удалось сбросить счётчик попыток", zap.Error(err))
	}

	logger.Info("Пользователь успешно вошёл в систему", zap.Uint64("userID", user.ID))
	return user, nil
}

func (s *AuthService) registerFailedAttempt(ctx context.Context, attemptsKey string) {
	attempts, err := s.cacheRepo.Incr(ctx, attemptsKey)
	if err != nil {
		s.logger.Debug("Не удалось увеличить счётчик попыток", zap.Error(err))
		return
	}
	if attempts == 1 {
		s.cacheRepo.Expire(ctx, attemptsKey, s.cfg.LockoutDuration)
	}
}

func (s *AuthService) GetUserByID(ctx context.Context, userID uint64) (*entities.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// RevokeRefreshToken заносит jti в список отозванных до истечения срока токена.
func (s *AuthService) RevokeRefreshToken(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return nil
	}
	key := fmt.Sprintf("revoked_refresh:%s", jti)
	return s.cacheRepo.Set(ctx, key, "revoked", ttl)
}

func (s *AuthService) IsRefreshTokenRevoked(ctx context.Context, jti string) bool {
	if jti == "" {
		return false
	}
	key := fmt.Sprintf("revoked_refresh:%s", jti)
	_, err := s.cacheRepo.Get(ctx, key)
	return err == nil
}
