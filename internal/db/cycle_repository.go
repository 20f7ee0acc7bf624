package db

import (
	"errors"
	"time"

	"github.com/claire-lyons/folli/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

func (repo *CycleRepository) ListForUser(userID uint) ([]models.Cycle, error) {
	cycles := make([]models.Cycle, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (repo *CycleRepository) FindForUser(userID uint, cycleID uint) (models.Cycle, error) {
	var cycle models.Cycle
	if err := repo.database.
		Where("user_id = ? AND id = ?", userID, cycleID).
		First(&cycle).Error; err != nil {
		return models.Cycle{}, err
	}
	return cycle, nil
}

// ActiveForUser returns the user's active cycle, or (nil, nil) when there
// is none. No active cycle is a normal state, not an error.
func (repo *CycleRepository) ActiveForUser(userID uint) (*models.Cycle, error) {
	var cycle models.Cycle
	err := repo.database.
		Where("user_id = ? AND status = ?", userID, models.CycleActive).
		Order("start_date DESC, id DESC").
		First(&cycle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cycle, nil
}

// CreateWithMilestones starts a cycle and seeds its milestone rows in one
// transaction.
func (repo *CycleRepository) CreateWithMilestones(cycle *models.Cycle, milestones []models.UserMilestone) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cycle).Error; err != nil {
			return err
		}
		for index := range milestones {
			milestones[index].CycleID = cycle.ID
		}
		if len(milestones) == 0 {
			return nil
		}
		return tx.Create(&milestones).Error
	})
}

func (repo *CycleRepository) CloseCycle(userID uint, cycleID uint, status string, endDate time.Time) (models.Cycle, error) {
	var cycle models.Cycle
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND id = ?", userID, cycleID).First(&cycle).Error; err != nil {
			return err
		}
		cycle.Status = status
		cycle.EndDate = &endDate
		return tx.Save(&cycle).Error
	})
	if err != nil {
		return models.Cycle{}, err
	}
	return cycle, nil
}
