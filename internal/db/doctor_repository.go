package db

import (
	"github.com/claire-lyons/folli/internal/models"
	"gorm.io/gorm"
)

type DoctorRepository struct {
	database *gorm.DB
}

func NewDoctorRepository(database *gorm.DB) *DoctorRepository {
	return &DoctorRepository{database: database}
}

func (repo *DoctorRepository) List() ([]models.Doctor, error) {
	doctors := make([]models.Doctor, 0)
	if err := repo.database.Order("name").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (repo *DoctorRepository) Find(doctorID uint) (models.Doctor, error) {
	var doctor models.Doctor
	if err := repo.database.First(&doctor, doctorID).Error; err != nil {
		return models.Doctor{}, err
	}
	return doctor, nil
}

func (repo *DoctorRepository) Create(doctor *models.Doctor) error {
	return repo.database.Create(doctor).Error
}
