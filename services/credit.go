package services

import (
	"errors"

	"synapse/database"
	"synapse/models"

	"gorm.io/gorm"
)

// GetCredits returns the user's current balance
func GetCredits(userID uint) (int, error) {
	var user models.User
	if err := database.Database.Db.Select("credits").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return user.Credits, nil
}

// HasEnoughCredits reports whether the balance covers the amount
func HasEnoughCredits(userID uint, amount int) (bool, error) {
	credits, err := GetCredits(userID)
	if err != nil {
		return false, err
	}
	return credits >= amount, nil
}

// DeductCredits removes amount from the user's balance and returns the
// remaining credits. Fails with InsufficientCreditsError when the balance
// does not cover the amount.
func DeductCredits(userID uint, amount int) (int, error) {
	return DeductCreditsTx(database.Database.Db, userID, amount)
}

// DeductCreditsTx is DeductCredits bound to a caller-supplied transaction.
// The check and the decrement are one conditional UPDATE, so two concurrent
// deductions can never both pass against a stale balance.
func DeductCreditsTx(tx *gorm.DB, userID uint, amount int) (int, error) {
	result := tx.Model(&models.User{}).
		Where("id = ? AND credits >= ?", userID, amount).
		UpdateColumn("credits", gorm.Expr("credits - ?", amount))
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected == 0 {
		// Either the user is missing or the balance was short
		var user models.User
		if err := tx.Select("credits").First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrUserNotFound
			}
			return 0, err
		}
		return user.Credits, &InsufficientCreditsError{Required: amount, Available: user.Credits}
	}

	var user models.User
	if err := tx.Select("credits").First(&user, userID).Error; err != nil {
		return 0, err
	}
	return user.Credits, nil
}

// AddCredits increases the user's balance and returns the new total
func AddCredits(userID uint, amount int) (int, error) {
	result := database.Database.Db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("credits", gorm.Expr("credits + ?", amount))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, ErrUserNotFound
	}
	return GetCredits(userID)
}

// SetCredits overwrites the user's balance. Admin only; negative amounts are
// rejected by the caller's validation.
func SetCredits(userID uint, amount int) error {
	result := database.Database.Db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("credits", amount)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
