package routes

import (
	"github.com/gin-gonic/gin"

	"carpool_api/internal/controllers"
)

func ReviewRoutes(r *gin.Engine) {
	reviews := r.Group("/reviews")
	{
		reviews.GET("", controllers.ListReviews)
		reviews.POST("", controllers.CreateReview)
		reviews.GET("/:id", controllers.GetReview)
		reviews.PATCH("/:id", controllers.UpdateReview)
		reviews.DELETE("/:id", controllers.DeleteReview)
	}
}
