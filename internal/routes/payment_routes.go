package routes

import (
	"github.com/gin-gonic/gin"

	"carpool_api/internal/controllers"
)

func PaymentRoutes(r *gin.Engine) {
	payments := r.Group("/payments")
	{
		payments.GET("", controllers.ListPayments)
		payments.POST("", controllers.CreatePayment)
		payments.GET("/:id", controllers.GetPayment)
		payments.PATCH("/:id", controllers.UpdatePayment)
		payments.DELETE("/:id", controllers.DeletePayment)
	}
}
