package models

import (
	"time"

	"gorm.io/gorm"
)

type Ride struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PickupLocation  string    `json:"pickup_location" gorm:"size:255"`
	DropoffLocation string    `json:"dropoff_location" gorm:"size:255"`
	PickupTime      time.Time `json:"pickup_time"`
	DropoffTime     time.Time `json:"dropoff_time"`
	Distance        float64   `json:"distance"`
	EstimatedCost   int       `json:"estimated_cost"`
	RideStatus      string    `json:"ride_status" gorm:"size:50"`
	RideType        string    `json:"ride_type" gorm:"size:50"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	DriverID uint `json:"driver_id" gorm:"index"`

	Bookings []Booking `gorm:"foreignKey:RideID" json:"-"`
	Reviews  []Review  `gorm:"foreignKey:RideID" json:"-"`
}

func (r *Ride) BeforeSave(tx *gorm.DB) error {
	if r.RideStatus == "" {
		r.RideStatus = "pending"
	}
	if r.RideType == "" {
		r.RideType = "regular"
	}
	if !statusIn(RideStatuses, r.RideStatus) {
		return invalid("ride_status", "Invalid ride status.")
	}
	return nil
}

func (r *Ride) BeforeDelete(tx *gorm.DB) error {
	var bookings []Booking
	if err := tx.Where("ride_id = ?", r.ID).Find(&bookings).Error; err != nil {
		return err
	}
	for i := range bookings {
		if err := tx.Delete(&bookings[i]).Error; err != nil {
			return err
		}
	}
	return tx.Where("ride_id = ?", r.ID).Delete(&Review{}).Error
}
