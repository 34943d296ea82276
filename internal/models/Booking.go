package models

import (
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TotalCost     int       `json:"total_cost"`
	BookingStatus string    `json:"booking_status" gorm:"size:50"`
	PaymentStatus string    `json:"payment_status" gorm:"size:50"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	UserID uint `json:"user_id" gorm:"index"`
	RideID uint `json:"ride_id" gorm:"index"`

	Reviews  []Review  `gorm:"foreignKey:BookingID" json:"-"`
	Payments []Payment `gorm:"foreignKey:BookingID" json:"-"`
}

func (b *Booking) BeforeSave(tx *gorm.DB) error {
	if b.BookingStatus == "" {
		b.BookingStatus = "pending"
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = "pending"
	}
	if !statusIn(BookingStatuses, b.BookingStatus) {
		return invalid("booking_status", "Invalid booking status.")
	}
	if !statusIn(PaymentStatuses, b.PaymentStatus) {
		return invalid("payment_status", "Invalid payment status.")
	}
	return nil
}

func (b *Booking) BeforeDelete(tx *gorm.DB) error {
	if err := tx.Where("booking_id = ?", b.ID).Delete(&Review{}).Error; err != nil {
		return err
	}
	return tx.Where("booking_id = ?", b.ID).Delete(&Payment{}).Error
}
