package db

import (
	"github.com/claire-lyons/folli/internal/models"
	"github.com/claire-lyons/folli/internal/reference"
	"gorm.io/gorm"
)

// seedReferenceData installs the builtin reference datasets on first boot.
// A non-empty cycle_templates table means seeding already happened, so the
// whole step is skipped; the tables are only ever replaced wholesale by an
// operator, never merged.
func seedReferenceData(database *gorm.DB) error {
	var existing int64
	if err := database.Model(&models.CycleTemplate{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	return database.Transaction(func(tx *gorm.DB) error {
		for _, template := range reference.BuiltinTemplates() {
			row := models.CycleTemplate{
				TypeKey:     template.TypeKey,
				Name:        template.Name,
				Description: template.Description,
				Duration:    template.Duration,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			ids := reference.BuiltinMilestoneIDs()[template.TypeKey]
			for position, milestone := range template.Milestones {
				milestoneRow := models.TemplateMilestone{
					CycleTemplateID: row.ID,
					MilestoneID:     ids[milestone.Name],
					Name:            milestone.Name,
					Day:             milestone.Day,
					DayEnd:          milestone.DayEnd,
					Description:     milestone.Description,
					Tips:            milestone.Tips,
					Position:        position,
				}
				if err := tx.Create(&milestoneRow).Error; err != nil {
					return err
				}
			}
		}
		for milestoneID, stage := range reference.BuiltinStages() {
			stageRow := models.StageRef{
				MilestoneID: milestoneID,
				Name:        stage.Name,
				Details:     stage.Details,
			}
			if err := tx.Create(&stageRow).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
