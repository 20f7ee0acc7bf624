package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type stageResponse struct {
	Stage *struct {
		Name string `json:"name"`
	} `json:"stage"`
	MilestoneID uint   `json:"milestone_id"`
	Source      string `json:"source"`
	Confidence  string `json:"confidence"`
	CycleDay    int    `json:"cycle_day"`
}

func listMilestoneIDsByTitle(t *testing.T, app *fiber.App, token string, cycleID uint) map[string]uint {
	t.Helper()

	response := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/cycles/%d/milestones", cycleID), token, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("list milestones returned status %d", response.StatusCode)
	}
	var milestones []struct {
		ID    uint   `json:"id"`
		Title string `json:"title"`
	}
	decodeBody(t, response, &milestones)

	byTitle := make(map[string]uint, len(milestones))
	for _, milestone := range milestones {
		byTitle[milestone.Title] = milestone.ID
	}
	return byTitle
}

func TestStageForFreshCycleUsesFirstMilestone(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "claire@example.com")
	startTestCycle(t, app, token, "IVF", "2026-03-01")

	response := doJSON(t, app, http.MethodGet, "/api/stage", token, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("stage returned status %d", response.StatusCode)
	}
	var stage stageResponse
	decodeBody(t, response, &stage)

	if stage.Stage == nil {
		t.Fatal("fresh cycle returned nil stage")
	}
	if stage.Source != "first_milestone" {
		t.Errorf("source %q, want first_milestone", stage.Source)
	}
	if stage.Confidence != "high" {
		t.Errorf("confidence %q, want high", stage.Confidence)
	}
}

func TestStageFollowsInProgressMilestone(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "claire@example.com")
	cycleID := startTestCycle(t, app, token, "IVF", "2026-03-01")
	ids := listMilestoneIDsByTitle(t, app, token, cycleID)

	response := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/milestones/%d", ids["Stimulation injections start"]), token, fiber.Map{
		"status":     "in-progress",
		"start_date": "2026-03-03",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("update milestone returned status %d", response.StatusCode)
	}
	response.Body.Close()

	response = doJSON(t, app, http.MethodGet, "/api/stage", token, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("stage returned status %d", response.StatusCode)
	}
	var stage stageResponse
	decodeBody(t, response, &stage)

	if stage.Stage == nil || stage.Stage.Name != "Stimulation Phase" {
		t.Fatalf("stage = %+v, want Stimulation Phase", stage.Stage)
	}
	if stage.Source != "current_milestone" {
		t.Errorf("source %q, want current_milestone", stage.Source)
	}
}

func TestStageWithoutCycleIsNeutral(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "claire@example.com")

	response := doJSON(t, app, http.MethodGet, "/api/stage", token, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("stage returned status %d", response.StatusCode)
	}
	var stage stageResponse
	decodeBody(t, response, &stage)
	if stage.Stage != nil {
		t.Fatalf("no-cycle stage = %+v, want nil", stage.Stage)
	}
}

func TestStageUnknownMilestoneTitleIs422(t *testing.T) {
	app, handler := newTestApp(t)
	token := registerTestUser(t, app, "claire@example.com")
	cycleID := startTestCycle(t, app, token, "IVF", "2026-03-01")
	ids := listMilestoneIDsByTitle(t, app, token, cycleID)

	milestoneID := ids["Egg retrieval"]
	milestone, err := handler.repos.Milestones.FindForUser(1, milestoneID)
	if err != nil {
		t.Fatalf("load milestone: %v", err)
	}
	milestone.Title = "Custom step not in any template"
	milestone.Status = "in-progress"
	if err := handler.repos.Milestones.Save(&milestone); err != nil {
		t.Fatalf("save milestone: %v", err)
	}

	response := doJSON(t, app, http.MethodGet, "/api/stage", token, nil)
	response.Body.Close()
	if response.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("unknown milestone title returned status %d, want 422", response.StatusCode)
	}
}

func TestStageAfterReferenceInvalidateIsNeutral(t *testing.T) {
	app, handler := newTestApp(t)
	token := registerTestUser(t, app, "claire@example.com")
	startTestCycle(t, app, token, "IVF", "2026-03-01")

	handler.reference.Invalidate()

	response := doJSON(t, app, http.MethodGet, "/api/stage", token, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("stage returned status %d", response.StatusCode)
	}
	var stage stageResponse
	decodeBody(t, response, &stage)
	if stage.Stage != nil {
		t.Fatal("empty reference tables should produce a neutral stage response")
	}
}
