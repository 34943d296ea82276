package models

import "time"

// Vehicle belongs to one user. Sacco is the transport cooperative the
// vehicle is affiliated with, kept as a plain label.
type Vehicle struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Make            string    `json:"make" gorm:"size:50"`
	Model           string    `json:"model" gorm:"size:50"`
	Year            int       `json:"year"`
	Color           string    `json:"color" gorm:"size:50"`
	PlateNumber     string    `json:"plate_number" gorm:"size:20"`
	SeatingCapacity int       `json:"seating_capacity"`
	Sacco           string    `json:"sacco" gorm:"size:50"`
	Image           string    `json:"image" gorm:"size:50"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	UserID uint `json:"user_id" gorm:"index"`
}
