package routes

import (
	"github.com/gin-gonic/gin"

	"carpool_api/internal/controllers"
)

func UserRoutes(r *gin.Engine) {
	users := r.Group("/users")
	{
		users.GET("", controllers.ListUsers)
		users.POST("", controllers.CreateUser)
		users.GET("/:id", controllers.GetUser)
		users.PATCH("/:id", controllers.UpdateUser)
		users.DELETE("/:id", controllers.DeleteUser)
		users.GET("/:id/reviews", controllers.GetUserReviews)
		users.GET("/:id/rides", controllers.GetUserRides)
	}
}
