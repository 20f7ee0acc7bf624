package services

import (
	"testing"
	"time"

	"github.com/claire-lyons/folli/internal/models"
	"github.com/claire-lyons/folli/internal/reference"
)

func TestSeedMilestonesFromTemplate(t *testing.T) {
	t.Parallel()

	snapshot := reference.BuiltinSnapshot()
	template, ok := snapshot.Template("IVF")
	if !ok {
		t.Fatal("builtin IVF template is missing")
	}

	cycle := models.Cycle{
		ID:        3,
		Type:      "IVF",
		Status:    models.CycleActive,
		StartDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	}

	seeded := SeedMilestones(42, cycle, template)
	if len(seeded) != len(template.Milestones) {
		t.Fatalf("expected %d seeded milestones, got %d", len(template.Milestones), len(seeded))
	}

	for _, milestone := range seeded {
		if milestone.UserID != 42 || milestone.CycleID != 3 {
			t.Fatalf("milestone %q not scoped to user/cycle: %+v", milestone.Title, milestone)
		}
		if milestone.Status != models.MilestonePending {
			t.Fatalf("milestone %q seeded with status %q", milestone.Title, milestone.Status)
		}
		if milestone.Date == nil {
			t.Fatalf("milestone %q seeded without an expected date", milestone.Title)
		}
		// Seeded titles must survive the round trip through the stage
		// detector's name lookup.
		if _, ok := snapshot.MilestoneID("IVF", milestone.Title); !ok {
			t.Fatalf("seeded title %q does not resolve in the reference table", milestone.Title)
		}
	}

	if got := seeded[0].Title; got != "Cycle day 1" {
		t.Fatalf("expected canonical first milestone, got %q", got)
	}
	if got := seeded[0].Date.Format("2006-01-02"); got != "2024-06-01" {
		t.Fatalf("expected day-1 milestone on the start date, got %s", got)
	}

	retrievalDate := ""
	for _, milestone := range seeded {
		if milestone.Title == "Egg retrieval" {
			retrievalDate = milestone.Date.Format("2006-01-02")
		}
	}
	if retrievalDate != "2024-06-14" {
		t.Fatalf("expected egg retrieval on day 14 (2024-06-14), got %s", retrievalDate)
	}
}
