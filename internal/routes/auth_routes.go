package routes

import (
	"github.com/gin-gonic/gin"

	"carpool_api/internal/controllers"
)

func AuthRoutes(r *gin.Engine) {
	r.POST("/signup", controllers.Signup)
	r.POST("/login", controllers.Login)
	r.DELETE("/logout", controllers.Logout)
	r.GET("/check_session", controllers.CheckSession)
}
