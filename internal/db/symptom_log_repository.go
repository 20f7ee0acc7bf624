package db

import (
	"time"

	"github.com/claire-lyons/folli/internal/models"
	"gorm.io/gorm"
)

type SymptomLogRepository struct {
	database *gorm.DB
}

func NewSymptomLogRepository(database *gorm.DB) *SymptomLogRepository {
	return &SymptomLogRepository{database: database}
}

func (repo *SymptomLogRepository) ListForUser(userID uint) ([]models.SymptomLog, error) {
	symptoms := make([]models.SymptomLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date, id").
		Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (repo *SymptomLogRepository) ListForUserBetween(userID uint, from time.Time, until time.Time) ([]models.SymptomLog, error) {
	symptoms := make([]models.SymptomLog, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, until).
		Order("date, id").
		Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (repo *SymptomLogRepository) FindForUser(userID uint, symptomID uint) (models.SymptomLog, error) {
	var symptom models.SymptomLog
	if err := repo.database.
		Where("user_id = ? AND id = ?", userID, symptomID).
		First(&symptom).Error; err != nil {
		return models.SymptomLog{}, err
	}
	return symptom, nil
}

func (repo *SymptomLogRepository) Create(symptom *models.SymptomLog) error {
	return repo.database.Create(symptom).Error
}

func (repo *SymptomLogRepository) Delete(userID uint, symptomID uint) error {
	return repo.database.
		Where("user_id = ?", userID).
		Delete(&models.SymptomLog{}, symptomID).Error
}
