package services

import (
	"errors"

	"synapse/database"
	"synapse/models"

	"gorm.io/gorm"
)

// HistoryPage is one page of a user's generation history
type HistoryPage struct {
	History []models.GenerationRecord `json:"history"`
	Total   int64                     `json:"total"`
	Page    int                       `json:"page"`
	Pages   int                       `json:"pages"`
	Limit   int                       `json:"limit"`
}

// SaveGenerationTx appends a generation record inside the caller's transaction
func SaveGenerationTx(tx *gorm.DB, record *models.GenerationRecord) error {
	return tx.Create(record).Error
}

// GetUserHistory returns the user's generation history, newest first
func GetUserHistory(userID uint, page, limit int) (*HistoryPage, error) {
	db := database.Database.Db.Model(&models.GenerationRecord{}).Where("user_id = ?", userID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * limit
	var records []models.GenerationRecord
	if err := db.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return &HistoryPage{
		History: records,
		Total:   total,
		Page:    page,
		Pages:   pages,
		Limit:   limit,
	}, nil
}

// GetGenerationByID fetches one record, scoped to its owner. Ownership is
// enforced here at the data layer so id guessing cannot cross users.
func GetGenerationByID(userID, recordID uint) (*models.GenerationRecord, error) {
	var record models.GenerationRecord
	err := database.Database.Db.
		Where("id = ? AND user_id = ?", recordID, userID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

// DeleteGeneration removes one record under the same ownership scope
func DeleteGeneration(userID, recordID uint) error {
	result := database.Database.Db.
		Where("id = ? AND user_id = ?", recordID, userID).
		Delete(&models.GenerationRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// CountGenerations returns the total number of records across all users
func CountGenerations() (int64, error) {
	var total int64
	err := database.Database.Db.Model(&models.GenerationRecord{}).Count(&total).Error
	return total, err
}
