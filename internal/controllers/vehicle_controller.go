package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carpool_api/internal/config"
	"carpool_api/internal/models"
)

type createVehicleInput struct {
	Make            string `json:"make" binding:"required"`
	Model           string `json:"model" binding:"required"`
	Year            *int   `json:"year" binding:"required"`
	Color           string `json:"color" binding:"required"`
	PlateNumber     string `json:"plate_number" binding:"required"`
	SeatingCapacity *int   `json:"seating_capacity" binding:"required"`
	Sacco           string `json:"sacco"`
	Image           string `json:"image"`
	UserID          uint   `json:"user_id" binding:"required"`
}

type updateVehicleInput struct {
	Make            *string `json:"make"`
	Model           *string `json:"model"`
	Year            *int    `json:"year"`
	Color           *string `json:"color"`
	SeatingCapacity *int    `json:"seating_capacity"`
}

// ListVehicles returns all vehicles, or just one user's fleet when
// ?user_id= is present.
func ListVehicles(c *gin.Context) {
	query := config.DB.Order("id")
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	vehicles := []models.Vehicle{}
	if err := query.Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing vehicles: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func GetVehicle(c *gin.Context) {
	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "Vehicle not found")
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func CreateVehicle(c *gin.Context) {
	var input createVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle input: " + err.Error()})
		return
	}

	vehicle := models.Vehicle{
		Make:            input.Make,
		Model:           input.Model,
		Year:            *input.Year,
		Color:           input.Color,
		PlateNumber:     input.PlateNumber,
		SeatingCapacity: *input.SeatingCapacity,
		Sacco:           input.Sacco,
		Image:           input.Image,
		UserID:          input.UserID,
	}
	if err := config.DB.Create(&vehicle).Error; err != nil {
		writeSaveError(c, err, "Vehicle already exists")
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

func UpdateVehicle(c *gin.Context) {
	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "Vehicle not found")
		return
	}

	var input updateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Make != nil {
		vehicle.Make = *input.Make
	}
	if input.Model != nil {
		vehicle.Model = *input.Model
	}
	if input.Year != nil {
		vehicle.Year = *input.Year
	}
	if input.Color != nil {
		vehicle.Color = *input.Color
	}
	if input.SeatingCapacity != nil {
		vehicle.SeatingCapacity = *input.SeatingCapacity
	}

	if err := config.DB.Save(&vehicle).Error; err != nil {
		writeSaveError(c, err, "Vehicle already exists")
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func DeleteVehicle(c *gin.Context) {
	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "Vehicle not found")
		return
	}

	if err := config.DB.Delete(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vehicle: " + err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
