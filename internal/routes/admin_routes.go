package routes

import (
	"github.com/gin-gonic/gin"

	"carpool_api/internal/controllers"
)

func AdminRoutes(r *gin.Engine) {
	admins := r.Group("/admins")
	{
		admins.GET("", controllers.ListAdmins)
		admins.POST("", controllers.CreateAdmin)
		admins.GET("/:id", controllers.GetAdmin)
		admins.PATCH("/:id", controllers.UpdateAdmin)
		admins.DELETE("/:id", controllers.DeleteAdmin)
	}
}
