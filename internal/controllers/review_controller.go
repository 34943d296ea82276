package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carpool_api/internal/config"
	"carpool_api/internal/models"
)

type createReviewInput struct {
	Rating    *int   `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
	UserID    uint   `json:"user_id" binding:"required"`
	BookingID uint   `json:"booking_id" binding:"required"`
	RideID    uint   `json:"ride_id" binding:"required"`
}

type updateReviewInput struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

// ListReviews returns all reviews, or one author's reviews when
// ?user_id= is present.
func ListReviews(c *gin.Context) {
	query := config.DB.Order("id")
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	reviews := []models.Review{}
	if err := query.Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing reviews: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func GetReview(c *gin.Context) {
	var review models.Review
	if err := config.DB.First(&review, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "Review not found")
		return
	}
	c.JSON(http.StatusOK, review)
}

func CreateReview(c *gin.Context) {
	var input createReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := models.Review{
		Rating:    *input.Rating,
		Comment:   input.Comment,
		UserID:    input.UserID,
		BookingID: input.BookingID,
		RideID:    input.RideID,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		writeSaveError(c, err, "Review already exists")
		return
	}
	c.JSON(http.StatusCreated, review)
}

func UpdateReview(c *gin.Context) {
	var review models.Review
	if err := config.DB.First(&review, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "Review not found")
		return
	}

	var input updateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}

	if err := config.DB.Save(&review).Error; err != nil {
		writeSaveError(c, err, "Review already exists")
		return
	}
	c.JSON(http.StatusOK, review)
}

func DeleteReview(c *gin.Context) {
	var review models.Review
	if err := config.DB.First(&review, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "Review not found")
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review: " + err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
