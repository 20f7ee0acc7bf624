package db

import (
	"time"

	"github.com/claire-lyons/folli/internal/models"
	"gorm.io/gorm"
)

type EventLogRepository struct {
	database *gorm.DB
}

func NewEventLogRepository(database *gorm.DB) *EventLogRepository {
	return &EventLogRepository{database: database}
}

func (repo *EventLogRepository) ListForUser(userID uint) ([]models.EventLog, error) {
	events := make([]models.EventLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date, id").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *EventLogRepository) ListForUserBetween(userID uint, from time.Time, until time.Time) ([]models.EventLog, error) {
	events := make([]models.EventLog, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, until).
		Order("date, id").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *EventLogRepository) FindForUser(userID uint, eventID uint) (models.EventLog, error) {
	var event models.EventLog
	if err := repo.database.
		Where("user_id = ? AND id = ?", userID, eventID).
		First(&event).Error; err != nil {
		return models.EventLog{}, err
	}
	return event, nil
}

func (repo *EventLogRepository) Create(event *models.EventLog) error {
	return repo.database.Create(event).Error
}

func (repo *EventLogRepository) Delete(userID uint, eventID uint) error {
	return repo.database.
		Where("user_id = ?", userID).
		Delete(&models.EventLog{}, eventID).Error
}
