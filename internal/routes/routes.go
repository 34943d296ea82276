package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"carpool_api/internal/controllers"
	"carpool_api/internal/middleware"
)

// SetupRouter builds the engine with request logging, recovery and the
// session store, then mounts every route group.
func SetupRouter(sessionSecret string) *gin.Engine {
	r := gin.New()
	r.Use(ginlog.SetLogger())
	r.Use(gin.Recovery())
	r.Use(middleware.Sessions(sessionSecret))

	r.GET("/", controllers.Home)

	AuthRoutes(r)
	UserRoutes(r)
	BookingRoutes(r)
	RideRoutes(r)
	PaymentRoutes(r)
	VehicleRoutes(r)
	ReviewRoutes(r)
	AdminRoutes(r)

	return r
}
