package routes

import (
	"github.com/gin-gonic/gin"

	"carpool_api/internal/controllers"
)

func BookingRoutes(r *gin.Engine) {
	bookings := r.Group("/bookings")
	{
		bookings.GET("", controllers.ListBookings)
		bookings.POST("", controllers.CreateBooking)
		bookings.GET("/:id", controllers.GetBooking)
		bookings.PATCH("/:id", controllers.UpdateBooking)
		bookings.DELETE("/:id", controllers.DeleteBooking)
	}
}
