package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carpool_api/internal/config"
	"carpool_api/internal/models"
)

type createPaymentInput struct {
	Amount        *int   `json:"amount" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	PaymentStatus string `json:"payment_status"`
	BookingID     uint   `json:"booking_id" binding:"required"`
	UserID        uint   `json:"user_id" binding:"required"`
}

type updatePaymentInput struct {
	Amount        *int    `json:"amount"`
	PaymentStatus *string `json:"payment_status"`
}

func ListPayments(c *gin.Context) {
	payments := []models.Payment{}
	if err := config.DB.Order("id").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing payments: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}

func GetPayment(c *gin.Context) {
	var payment models.Payment
	if err := config.DB.First(&payment, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "Payment not found")
		return
	}
	c.JSON(http.StatusOK, payment)
}

func CreatePayment(c *gin.Context) {
	var input createPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment := models.Payment{
		Amount:        *input.Amount,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: input.PaymentStatus,
		BookingID:     input.BookingID,
		UserID:        input.UserID,
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		writeSaveError(c, err, "Payment already exists")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func UpdatePayment(c *gin.Context) {
	var payment models.Payment
	if err := config.DB.First(&payment, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "Payment not found")
		return
	}

	var input updatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Amount != nil {
		payment.Amount = *input.Amount
	}
	if input.PaymentStatus != nil {
		payment.PaymentStatus = *input.PaymentStatus
	}

	if err := config.DB.Save(&payment).Error; err != nil {
		writeSaveError(c, err, "Payment already exists")
		return
	}
	c.JSON(http.StatusOK, payment)
}

func DeletePayment(c *gin.Context) {
	var payment models.Payment
	if err := config.DB.First(&payment, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "Payment not found")
		return
	}

	if err := config.DB.Delete(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment: " + err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
