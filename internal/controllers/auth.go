package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	jwtSvc      service.JWTService
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		jwtSvc:      jwtSvc,
		logger:      logger,
	}
}

func (ctrl *AuthController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *AuthController) setRefreshCookie(c echo.Context, token string, maxAge time.Duration) {
	cookie := &http.Cookie{
		Name:     "refreshToken",
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
	c.SetCookie(cookie)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Login: ошибка привязки данных", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Неверный формат данных для входа"))
	}

	if err := c.Validate(&payload); err != nil {
		ctrl.logger.Error("Login: ошибка валидации данных", zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	user, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Warn("Login: ошибка авторизации", zap.String("username", payload.Username), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	accessToken, refreshToken, err := ctrl.jwtSvc.GenerateTokens(user.ID)
	if err != nil {
		ctrl.logger.Error("Login: не удалось сгенерировать токены", zap.Uint64("userID", user.ID), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	ctrl.setRefreshCookie(c, refreshToken, ctrl.jwtSvc.GetRefreshTokenTTL())

	body := dto.AuthResponseDTO{
		AccessToken: accessToken,
		User: dto.UserPublicDTO{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
	}
	return utils.SuccessResponse(c, body, "Авторизация прошла успешно", http.StatusOK)
}

func (ctrl *AuthController) RefreshToken(c echo.Context) error {
	cookie, err := c.Cookie("refreshToken")
	if err != nil {
		return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
	}

	claims, err := ctrl.jwtSvc.ValidateToken(cookie.Value)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	if !claims.IsRefreshToken {
		return ctrl.errorResponse(c, apperrors.ErrTokenIsNotRefresh)
	}

	if ctrl.authService.IsRefreshTokenRevoked(c.Request().Context(), claims.ID) {
		ctrl.logger.Warn("RefreshToken: попытка использования отозванного токена", zap.Uint64("userID", claims.UserID))
		return ctrl.errorResponse(c, apperrors.ErrTokenRevoked)
	}

	user, err := ctrl.authService.GetUserByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	// Ротация: старый refresh отзывается, пара выпускается заново.
	if claims.ExpiresAt != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if err := ctrl.authService.RevokeRefreshToken(c.Request().Context(), claims.ID, ttl); err != nil {
			ctrl.logger.Debug("RefreshToken: не удалось отозвать старый токен", zap.Error(err))
		}
	}

	accessToken, refreshToken, err := ctrl.jwtSvc.GenerateTokens(user.ID)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	ctrl.setRefreshCookie(c, refreshToken, ctrl.jwtSvc.GetRefreshTokenTTL())

	body := dto.AuthResponseDTO{
		AccessToken: accessToken,
		User: dto.UserPublicDTO{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
	}
	return utils.SuccessResponse(c, body, "Токены обновлены", http.StatusOK)
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	if cookie, err := c.Cookie("refreshToken"); err == nil {
		if claims, err := ctrl.jwtSvc.ValidateToken(cookie.Value); err == nil && claims.IsRefreshToken {
			ttl := ctrl.jwtSvc.GetRefreshTokenTTL()
			if claims.ExpiresAt != nil {
				ttl = time.Until(claims.ExpiresAt.Time)
			}
			if err := ctrl.authService.RevokeRefreshToken(c.Request().Context(), claims.ID, ttl); err != nil {
				ctrl.logger.Debug("Logout: не удалось отозвать refresh токен", zap.Error(err))
			}
		}
	}

	ctrl.setRefreshCookie(c, "", -time.Second)

	return utils.SuccessResponse(c, nil, "Вы успешно вышли из системы.", http.StatusOK)
}

func (ctrl *AuthController) Me(c echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
	}

	user, err := ctrl.authService.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	body := dto.UserPublicDTO{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
	return utils.SuccessResponse(c, body, "Данные пользователя получены", http.StatusOK)
}
