package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carpool_api/internal/config"
	"carpool_api/internal/models"
)

type createBookingInput struct {
	TotalCost     *int   `json:"total_cost" binding:"required"`
	BookingStatus string `json:"booking_status"`
	PaymentStatus string `json:"payment_status"`
	UserID        uint   `json:"user_id" binding:"required"`
	RideID        uint   `json:"ride_id" binding:"required"`
}

type updateBookingInput struct {
	TotalCost     *int    `json:"total_cost"`
	BookingStatus *string `json:"booking_status"`
	PaymentStatus *string `json:"payment_status"`
}

func ListBookings(c *gin.Context) {
	bookings := []models.Booking{}
	if err := config.DB.Order("id").Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing bookings: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func GetBooking(c *gin.Context) {
	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "Booking not found")
		return
	}
	c.JSON(http.StatusOK, booking)
}

func CreateBooking(c *gin.Context) {
	var input createBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking := models.Booking{
		TotalCost:     *input.TotalCost,
		BookingStatus: input.BookingStatus,
		PaymentStatus: input.PaymentStatus,
		UserID:        input.UserID,
		RideID:        input.RideID,
	}
	if err := config.DB.Create(&booking).Error; err != nil {
		writeSaveError(c, err, "Booking already exists")
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func UpdateBooking(c *gin.Context) {
	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "Booking not found")
		return
	}

	var input updateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.TotalCost != nil {
		booking.TotalCost = *input.TotalCost
	}
	if input.BookingStatus != nil {
		booking.BookingStatus = *input.BookingStatus
	}
	if input.PaymentStatus != nil {
		booking.PaymentStatus = *input.PaymentStatus
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		writeSaveError(c, err, "Booking already exists")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DeleteBooking removes the booking along with its payments and reviews.
func DeleteBooking(c *gin.Context) {
	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "Booking not found")
		return
	}

	if err := config.DB.Delete(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking: " + err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
