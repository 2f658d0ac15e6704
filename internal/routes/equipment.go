package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runEquipmentRouter(secure *echo.Group, equipmentCtrl *controllers.EquipmentController) {
	equipmentGroup := secure.Group("/equipments")
	{
		equipmentGroup.GET("", equipmentCtrl.GetEquipments)
		equipmentGroup.POST("", equipmentCtrl.CreateEquipment)
		equipmentGroup.GET("/:id", equipmentCtrl.FindEquipment)
		equipmentGroup.GET("/:id/requests", equipmentCtrl.GetEquipmentRequests)
	}

	secure.GET("/teams", equipmentCtrl.GetTeams)
}
