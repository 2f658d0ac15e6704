package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runRequestRouter(secure *echo.Group, requestCtrl *controllers.RequestController) {
	requestGroup := secure.Group("/requests")
	{
		requestGroup.GET("", requestCtrl.GetRequests)
		requestGroup.POST("", requestCtrl.CreateRequest)
		requestGroup.GET("/:id", requestCtrl.FindRequest)
		requestGroup.PUT("/:id/assign", requestCtrl.AssignTechnician)
		requestGroup.PUT("/:id/move/:status", requestCtrl.MoveRequest)
		requestGroup.DELETE("/:id", requestCtrl.ArchiveRequest)
	}
}
