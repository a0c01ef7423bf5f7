package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	AuthUID     string    `gorm:"uniqueIndex;not null" json:"authUid"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	DisplayName string    `gorm:"default:''" json:"displayName"`
	Credits     int       `gorm:"not null;default:100" json:"credits"` // never below zero
	LastLoginAt time.Time `json:"lastLoginAt"`
}
