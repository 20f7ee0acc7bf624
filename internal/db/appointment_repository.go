package db

import (
	"time"

	"github.com/claire-lyons/folli/internal/models"
	"gorm.io/gorm"
)

type AppointmentRepository struct {
	database *gorm.DB
}

func NewAppointmentRepository(database *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{database: database}
}

func (repo *AppointmentRepository) ListForUser(userID uint) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (repo *AppointmentRepository) ListForUserBetween(userID uint, from time.Time, until time.Time) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, until).
		Order("date").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (repo *AppointmentRepository) FindForUser(userID uint, appointmentID uint) (models.Appointment, error) {
	var appointment models.Appointment
	if err := repo.database.
		Where("user_id = ? AND id = ?", userID, appointmentID).
		First(&appointment).Error; err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

func (repo *AppointmentRepository) Create(appointment *models.Appointment) error {
	return repo.database.Create(appointment).Error
}

func (repo *AppointmentRepository) Save(appointment *models.Appointment) error {
	return repo.database.Save(appointment).Error
}

func (repo *AppointmentRepository) Delete(userID uint, appointmentID uint) error {
	return repo.database.
		Where("user_id = ?", userID).
		Delete(&models.Appointment{}, appointmentID).Error
}
