package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"carpool_api/internal/config"
	"carpool_api/internal/models"
)

type createRideInput struct {
	PickupLocation  string   `json:"pickup_location" binding:"required"`
	DropoffLocation string   `json:"dropoff_location" binding:"required"`
	PickupTime      string   `json:"pickup_time" binding:"required"`
	DropoffTime     string   `json:"dropoff_time" binding:"required"`
	Distance        *float64 `json:"distance" binding:"required"`
	EstimatedCost   *int     `json:"estimated_cost" binding:"required"`
	RideStatus      string   `json:"ride_status"`
	RideType        string   `json:"ride_type"`
	DriverID        uint     `json:"driver_id" binding:"required"`
}

type updateRideInput struct {
	PickupLocation  *string `json:"pickup_location"`
	DropoffLocation *string `json:"dropoff_location"`
	PickupTime      *string `json:"pickup_time"`
	DropoffTime     *string `json:"dropoff_time"`
	RideStatus      *string `json:"ride_status"`
}

// The web client posts minute-precision timestamps without a zone;
// RFC 3339 is accepted as well.
var rideTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseRideTime(value string) (time.Time, error) {
	for _, layout := range rideTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", value)
}

// ListRides returns rides filtered by status (default "pending") and
// optionally by driver.
func ListRides(c *gin.Context) {
	query := config.DB.Where("ride_status = ?", c.DefaultQuery("status", "pending"))
	if driverID := c.Query("driver_id"); driverID != "" {
		query = query.Where("driver_id = ?", driverID)
	}

	rides := []models.Ride{}
	if err := query.Order("id").Find(&rides).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing rides: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, rides)
}

func GetRide(c *gin.Context) {
	var ride models.Ride
	if err := config.DB.First(&ride, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "Ride not found")
		return
	}
	c.JSON(http.StatusOK, ride)
}

func CreateRide(c *gin.Context) {
	var input createRideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pickupTime, err := parseRideTime(input.PickupTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pickup_time: " + err.Error()})
		return
	}
	dropoffTime, err := parseRideTime(input.DropoffTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dropoff_time: " + err.Error()})
		return
	}

	ride := models.Ride{
		PickupLocation:  input.PickupLocation,
		DropoffLocation: input.DropoffLocation,
		PickupTime:      pickupTime,
		DropoffTime:     dropoffTime,
		Distance:        *input.Distance,
		EstimatedCost:   *input.EstimatedCost,
		RideStatus:      input.RideStatus,
		RideType:        input.RideType,
		DriverID:        input.DriverID,
	}
	if err := config.DB.Create(&ride).Error; err != nil {
		writeSaveError(c, err, "Ride already exists")
		return
	}
	c.JSON(http.StatusCreated, ride)
}

func UpdateRide(c *gin.Context) {
	var ride models.Ride
	if err := config.DB.First(&ride, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "Ride not found")
		return
	}

	var input updateRideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.PickupLocation != nil {
		ride.PickupLocation = *input.PickupLocation
	}
	if input.DropoffLocation != nil {
		ride.DropoffLocation = *input.DropoffLocation
	}
	if input.PickupTime != nil {
		t, err := parseRideTime(*input.PickupTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pickup_time: " + err.Error()})
			return
		}
		ride.PickupTime = t
	}
	if input.DropoffTime != nil {
		t, err := parseRideTime(*input.DropoffTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dropoff_time: " + err.Error()})
			return
		}
		ride.DropoffTime = t
	}
	if input.RideStatus != nil {
		ride.RideStatus = *input.RideStatus
	}

	if err := config.DB.Save(&ride).Error; err != nil {
		writeSaveError(c, err, "Ride already exists")
		return
	}
	c.JSON(http.StatusOK, ride)
}

// DeleteRide removes the ride plus its bookings and reviews, and the
// payments and reviews hanging off those bookings.
func DeleteRide(c *gin.Context) {
	var ride models.Ride
	if err := config.DB.First(&ride, "id = ?", c.Param("id")).Error; err != nil {
		writeLookupError(c, err, "Ride not found")
		return
	}

	if err := config.DB.Delete(&ride).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ride: " + err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
