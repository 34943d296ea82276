package routes

import (
	"github.com/gin-gonic/gin"

	"carpool_api/internal/controllers"
)

func RideRoutes(r *gin.Engine) {
	rides := r.Group("/rides")
	{
		rides.GET("", controllers.ListRides)
		rides.POST("", controllers.CreateRide)
		rides.GET("/:id", controllers.GetRide)
		rides.PATCH("/:id", controllers.UpdateRide)
		rides.DELETE("/:id", controllers.DeleteRide)
	}
}
