package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Admin struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `json:"username" gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;size:128"`
	PhoneNumber  string    `json:"phone_number" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a *Admin) SetPassword(password string) error {
	if password == "" {
		return invalid("password", "Password is required.")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

func (a *Admin) Authenticate(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

func (a *Admin) BeforeSave(tx *gorm.DB) error {
	if a.PasswordHash == "" {
		return invalid("password", "Password is required.")
	}
	return nil
}
