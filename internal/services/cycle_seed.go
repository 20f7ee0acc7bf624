package services

import (
	"github.com/claire-lyons/folli/internal/models"
	"github.com/claire-lyons/folli/internal/reference"
)

// SeedMilestones builds the persisted milestone rows for a newly started
// cycle from its template: every template milestone becomes a pending
// UserMilestone with its expected calendar date derived from the cycle
// start. Titles are copied verbatim; they are the join key the stage
// detector resolves later.
func SeedMilestones(userID uint, cycle models.Cycle, template reference.CycleTemplate) []models.UserMilestone {
	seeded := make([]models.UserMilestone, 0, len(template.Milestones))
	for _, milestone := range OrderedMilestones(cycle.Type, template.Milestones) {
		expected := MilestoneDate(cycle.StartDate, milestone.Day)
		seeded = append(seeded, models.UserMilestone{
			UserID:  userID,
			CycleID: cycle.ID,
			Title:   milestone.Name,
			Status:  models.MilestonePending,
			Date:    &expected,
		})
	}
	return seeded
}
