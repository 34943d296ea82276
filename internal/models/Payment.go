package models

import (
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Amount        int       `json:"amount"`
	PaymentMethod string    `json:"payment_method" gorm:"size:50"`
	PaymentStatus string    `json:"payment_status" gorm:"size:50"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	BookingID uint `json:"booking_id" gorm:"index"`
	UserID    uint `json:"user_id" gorm:"index"`
}

func (p *Payment) BeforeSave(tx *gorm.DB) error {
	if p.PaymentStatus == "" {
		p.PaymentStatus = "pending"
	}
	if !statusIn(PaymentStatuses, p.PaymentStatus) {
		return invalid("payment_status", "Invalid payment status.")
	}
	return nil
}
