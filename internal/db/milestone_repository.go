package db

import (
	"github.com/claire-lyons/folli/internal/models"
	"gorm.io/gorm"
)

type MilestoneRepository struct {
	database *gorm.DB
}

func NewMilestoneRepository(database *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{database: database}
}

func (repo *MilestoneRepository) ListForCycle(userID uint, cycleID uint) ([]models.UserMilestone, error) {
	milestones := make([]models.UserMilestone, 0)
	if err := repo.database.
		Where("user_id = ? AND cycle_id = ?", userID, cycleID).
		Order("id").
		Find(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}

func (repo *MilestoneRepository) ListForUser(userID uint) ([]models.UserMilestone, error) {
	milestones := make([]models.UserMilestone, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("id").
		Find(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}

func (repo *MilestoneRepository) FindForUser(userID uint, milestoneID uint) (models.UserMilestone, error) {
	var milestone models.UserMilestone
	if err := repo.database.
		Where("user_id = ? AND id = ?", userID, milestoneID).
		First(&milestone).Error; err != nil {
		return models.UserMilestone{}, err
	}
	return milestone, nil
}

func (repo *MilestoneRepository) Save(milestone *models.UserMilestone) error {
	return repo.database.Save(milestone).Error
}
