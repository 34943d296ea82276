package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carpool_api/internal/config"
	"carpool_api/internal/models"
)

type createUserInput struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	IsDriver    bool   `json:"is_driver"`
}

type updateUserInput struct {
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
}

// ListUsers returns every user in insertion order.
func ListUsers(c *gin.Context) {
	users := []models.User{}
	if err := config.DB.Order("id").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing users: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func GetUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func CreateUser(c *gin.Context) {
	var input createUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		Username:    input.Username,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		IsDriver:    input.IsDriver,
	}
	if err := user.SetPassword(input.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Create(&user).Error; err != nil {
		writeSaveError(c, err, "Username or email already exists")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func UpdateUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "User not found")
		return
	}

	var input updateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}

	if err := config.DB.Save(&user).Error; err != nil {
		writeSaveError(c, err, "Username or email already exists")
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser removes the user along with their bookings, reviews, payments
// and vehicles.
func DeleteUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "User not found")
		return
	}

	if err := config.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user: " + err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetUserReviews lists the reviews the user has written.
func GetUserReviews(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "User not found")
		return
	}

	reviews := []models.Review{}
	if err := config.DB.Where("user_id = ?", user.ID).Order("id").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing reviews: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetUserRides lists the rides the user has booked. The set is computed by
// joining through bookings, never stored on the user row.
func GetUserRides(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "User not found")
		return
	}

	rides := []models.Ride{}
	if err := config.DB.Model(&models.Ride{}).
		Distinct("rides.*").
		Joins("JOIN bookings ON bookings.ride_id = rides.id").
		Where("bookings.user_id = ?", user.ID).
		Find(&rides).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing rides: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, rides)
}
