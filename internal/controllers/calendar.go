package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type CalendarController struct {
	calendarService services.CalendarServiceInterface
	logger          *zap.Logger
}

func NewCalendarController(calendarService services.CalendarServiceInterface, logger *zap.Logger) *CalendarController {
	return &CalendarController{
		calendarService: calendarService,
		logger:          logger,
	}
}

// GetEvents отдаёт события в том виде, который ожидает календарь на фронте:
// плоский JSON-массив без обёртки {status, message, body}.
func (c *CalendarController) GetEvents(ctx echo.Context) error {
	events, err := c.calendarService.GetEvents(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetEvents: ошибка при получении событий календаря", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, events)
}
