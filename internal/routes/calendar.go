package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runCalendarRouter(secure *echo.Group, calendarCtrl *controllers.CalendarController) {
	calendarGroup := secure.Group("/calendar")
	{
		calendarGroup.GET("/events", calendarCtrl.GetEvents)
	}
}
