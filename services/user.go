package services

import (
	"errors"
	"strings"
	"time"

	"synapse/config"
	"synapse/database"
	"synapse/models"

	"gorm.io/gorm"
)

// GetUserByAuthUID resolves a verified identity to its synced user row
func GetUserByAuthUID(authUID string) (*models.User, error) {
	var user models.User
	err := database.Database.Db.Where("auth_uid = ?", authUID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// SyncUser upserts the user row for a verified identity. First sync creates
// the account with the initial free credit grant; later syncs refresh the
// display name and last login. Idempotent.
func SyncUser(authUID, email, displayName string) (*models.User, bool, error) {
	var user models.User
	err := database.Database.Db.Where("auth_uid = ?", authUID).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if displayName == "" {
			displayName = strings.Split(email, "@")[0]
		}
		user = models.User{
			AuthUID:     authUID,
			Email:       strings.ToLower(email),
			DisplayName: displayName,
			Credits:     config.AppConfig.InitialCredits,
			LastLoginAt: time.Now(),
		}
		if err := database.Database.Db.Create(&user).Error; err != nil {
			return nil, false, err
		}
		return &user, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	if displayName != "" {
		user.DisplayName = displayName
	}
	user.LastLoginAt = time.Now()
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, false, nil
}
