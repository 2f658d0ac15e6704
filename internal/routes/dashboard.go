package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runDashboardRouter(secure *echo.Group, dashboardCtrl *controllers.DashboardController) {
	secure.GET("/dashboard", dashboardCtrl.GetDashboard)
}
