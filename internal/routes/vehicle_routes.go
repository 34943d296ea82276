package routes

import (
	"github.com/gin-gonic/gin"

	"carpool_api/internal/controllers"
)

func VehicleRoutes(r *gin.Engine) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", controllers.ListVehicles)
		vehicles.POST("", controllers.CreateVehicle)
		vehicles.GET("/:id", controllers.GetVehicle)
		vehicles.PATCH("/:id", controllers.UpdateVehicle)
		vehicles.DELETE("/:id", controllers.DeleteVehicle)
	}
}
