package models

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`

	UserID    uint `json:"user_id" gorm:"index"`
	BookingID uint `json:"booking_id" gorm:"index"`
	RideID    uint `json:"ride_id" gorm:"index"`
}

func (r *Review) BeforeSave(tx *gorm.DB) error {
	if r.Rating < 1 || r.Rating > 5 {
		return invalid("rating", "Rating must be between 1 and 5.")
	}
	return nil
}
