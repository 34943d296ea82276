package models

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;size:128"`
	PhoneNumber  string    `json:"phone_number" gorm:"size:255"`
	IsDriver     bool      `json:"is_driver" gorm:"default:false"`
	Image        string    `json:"image" gorm:"size:50"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Child rows follow the user on delete; excluded from JSON so a user
	// never serializes its own collections back at the client.
	Bookings []Booking `gorm:"foreignKey:UserID" json:"-"`
	Reviews  []Review  `gorm:"foreignKey:UserID" json:"-"`
	Payments []Payment `gorm:"foreignKey:UserID" json:"-"`
	Vehicles []Vehicle `gorm:"foreignKey:UserID" json:"-"`
}

// SetPassword hashes the plaintext with bcrypt and stores only the hash.
// The hash column is hidden from every serialized form.
func (u *User) SetPassword(password string) error {
	if password == "" {
		return invalid("password", "Password is required.")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// Authenticate checks the plaintext against the stored hash.
// bcrypt's comparison is constant time.
func (u *User) Authenticate(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// BeforeSave runs on create and update, so an invalid assignment fails
// before anything reaches the database.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if !strings.Contains(u.Email, "@") {
		return invalid("email", "Email format not correct.")
	}
	if u.PasswordHash == "" {
		return invalid("password", "Password is required.")
	}
	return nil
}

// BeforeDelete removes the user's dependent rows inside the same
// transaction. Bookings go one at a time so their own cascade fires.
func (u *User) BeforeDelete(tx *gorm.DB) error {
	var bookings []Booking
	if err := tx.Where("user_id = ?", u.ID).Find(&bookings).Error; err != nil {
		return err
	}
	for i := range bookings {
		if err := tx.Delete(&bookings[i]).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("user_id = ?", u.ID).Delete(&Review{}).Error; err != nil {
		return err
	}
	if err := tx.Where("user_id = ?", u.ID).Delete(&Payment{}).Error; err != nil {
		return err
	}
	return tx.Where("user_id = ?", u.ID).Delete(&Vehicle{}).Error
}
