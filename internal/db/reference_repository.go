package db

import (
	"github.com/claire-lyons/folli/internal/models"
	"github.com/claire-lyons/folli/internal/reference"
	"gorm.io/gorm"
)

type ReferenceRepository struct {
	database *gorm.DB
}

func NewReferenceRepository(database *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{database: database}
}

// LoadSnapshot reads the three reference tables and assembles them into a
// snapshot. This is the loader behind the reference store; it is only ever
// invoked through Store.Refresh.
func (repo *ReferenceRepository) LoadSnapshot() (reference.Snapshot, error) {
	var templateRows []models.CycleTemplate
	if err := repo.database.Order("id").Find(&templateRows).Error; err != nil {
		return reference.Snapshot{}, err
	}

	templates := make([]reference.CycleTemplate, 0, len(templateRows))
	milestoneIDs := make(map[string]map[string]uint, len(templateRows))
	for _, row := range templateRows {
		var milestoneRows []models.TemplateMilestone
		if err := repo.database.
			Where("cycle_template_id = ?", row.ID).
			Order("position").
			Find(&milestoneRows).Error; err != nil {
			return reference.Snapshot{}, err
		}

		template := reference.CycleTemplate{
			TypeKey:     row.TypeKey,
			Name:        row.Name,
			Description: row.Description,
			Duration:    row.Duration,
			Milestones:  make([]reference.Milestone, 0, len(milestoneRows)),
		}
		ids := make(map[string]uint, len(milestoneRows))
		for _, milestoneRow := range milestoneRows {
			template.Milestones = append(template.Milestones, reference.Milestone{
				Name:        milestoneRow.Name,
				Day:         milestoneRow.Day,
				DayEnd:      milestoneRow.DayEnd,
				Description: milestoneRow.Description,
				Tips:        milestoneRow.Tips,
			})
			ids[milestoneRow.Name] = milestoneRow.MilestoneID
		}
		templates = append(templates, template)
		milestoneIDs[row.TypeKey] = ids
	}

	var stageRows []models.StageRef
	if err := repo.database.Find(&stageRows).Error; err != nil {
		return reference.Snapshot{}, err
	}
	stages := make(map[uint]reference.Stage, len(stageRows))
	for _, stageRow := range stageRows {
		stages[stageRow.MilestoneID] = reference.Stage{
			Name:    stageRow.Name,
			Details: stageRow.Details,
		}
	}

	return reference.BuildSnapshot(templates, milestoneIDs, stages), nil
}
