package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carpool_api/internal/config"
	"carpool_api/internal/models"
)

type createAdminInput struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phone_number"`
}

type updateAdminInput struct {
	Username    *string `json:"username"`
	PhoneNumber *string `json:"phone_number"`
}

func ListAdmins(c *gin.Context) {
	admins := []models.Admin{}
	if err := config.DB.Order("id").Find(&admins).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing admins: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, admins)
}

func GetAdmin(c *gin.Context) {
	var admin models.Admin
	if err := config.DB.First(&admin, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "Admin not found")
		return
	}
	c.JSON(http.StatusOK, admin)
}

func CreateAdmin(c *gin.Context) {
	var input createAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin := models.Admin{
		Username:    input.Username,
		PhoneNumber: input.PhoneNumber,
	}
	if err := admin.SetPassword(input.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Create(&admin).Error; err != nil {
		writeSaveError(c, err, "Username already exists")
		return
	}
	c.JSON(http.StatusCreated, admin)
}

func UpdateAdmin(c *gin.Context) {
	var admin models.Admin
	if err := config.DB.First(&admin, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "Admin not found")
		return
	}

	var input updateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Username != nil {
		admin.Username = *input.Username
	}
	if input.PhoneNumber != nil {
		admin.PhoneNumber = *input.PhoneNumber
	}

	if err := config.DB.Save(&admin).Error; err != nil {
		writeSaveError(c, err, "Username already exists")
		return
	}
	c.JSON(http.StatusOK, admin)
}

func DeleteAdmin(c *gin.Context) {
	var admin models.Admin
	if err := config.DB.First(&admin, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "Admin not found")
		return
	}

	if err := config.DB.Delete(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete admin: " + err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
