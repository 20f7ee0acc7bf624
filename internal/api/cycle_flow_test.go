package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestStartCycleSeedsOrderedMilestones(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "claire@example.com")
	cycleID := startTestCycle(t, app, token, "IVF", "2026-03-01")

	response := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/cycles/%d/milestones", cycleID), token, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("list milestones returned status %d", response.StatusCode)
	}
	var milestones []struct {
		Title  string `json:"title"`
		Status string `json:"status"`
		Date   string `json:"date"`
	}
	decodeBody(t, response, &milestones)

	if len(milestones) != 11 {
		t.Fatalf("seeded %d milestones, want 11", len(milestones))
	}
	if milestones[0].Title != "Cycle day 1" {
		t.Errorf("first milestone %q, want Cycle day 1", milestones[0].Title)
	}
	if milestones[len(milestones)-1].Title != "Pregnancy blood test" {
		t.Errorf("last milestone %q, want Pregnancy blood test", milestones[len(milestones)-1].Title)
	}
	for _, milestone := range milestones {
		if milestone.Status != "pending" {
			t.Errorf("milestone %q seeded with status %q", milestone.Title, milestone.Status)
		}
		if milestone.Date == "" {
			t.Errorf("milestone %q seeded without expected date", milestone.Title)
		}
	}
}

func TestStartCycleUnknownTypeSeedsNothing(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "claire@example.com")
	cycleID := startTestCycle(t, app, token, "experimental protocol", "2026-03-01")

	response := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/cycles/%d/milestones", cycleID), token, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("list milestones returned status %d", response.StatusCode)
	}
	var milestones []struct{}
	decodeBody(t, response, &milestones)
	if len(milestones) != 0 {
		t.Fatalf("unknown cycle type seeded %d milestones", len(milestones))
	}
}

func TestActiveCycleReportsCycleDay(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "claire@example.com")

	response := doJSON(t, app, http.MethodGet, "/api/cycles/active", token, nil)
	var empty struct {
		Cycle    *struct{} `json:"cycle"`
		CycleDay int       `json:"cycle_day"`
	}
	decodeBody(t, response, &empty)
	if empty.Cycle != nil || empty.CycleDay != 0 {
		t.Fatalf("no-cycle response = %+v, want nil cycle and day 0", empty)
	}

	startTestCycle(t, app, token, "IUI", "2026-03-01")
	response = doJSON(t, app, http.MethodGet, "/api/cycles/active", token, nil)
	var active struct {
		Cycle *struct {
			Type string `json:"type"`
		} `json:"cycle"`
		CycleDay int `json:"cycle_day"`
	}
	decodeBody(t, response, &active)
	if active.Cycle == nil || active.Cycle.Type != "IUI" {
		t.Fatalf("active cycle response = %+v", active)
	}
	if active.CycleDay < 1 {
		t.Fatalf("cycle day %d for a started cycle", active.CycleDay)
	}
}

func TestCloseCycleSetsStatusAndEndDate(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "claire@example.com")
	cycleID := startTestCycle(t, app, token, "FET", "2026-01-05")

	response := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/cycles/%d/status", cycleID), token, fiber.Map{
		"status":   "completed",
		"end_date": "2026-02-05",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("close cycle returned status %d", response.StatusCode)
	}
	var cycle struct {
		Status  string  `json:"status"`
		EndDate *string `json:"end_date"`
	}
	decodeBody(t, response, &cycle)
	if cycle.Status != "completed" {
		t.Errorf("status %q after close", cycle.Status)
	}
	if cycle.EndDate == nil {
		t.Error("end date not set after close")
	}

	response = doJSON(t, app, http.MethodGet, "/api/cycles/active", token, nil)
	var active struct {
		Cycle *struct{} `json:"cycle"`
	}
	decodeBody(t, response, &active)
	if active.Cycle != nil {
		t.Error("closed cycle still reported as active")
	}
}

func TestCycleIsScopedToItsOwner(t *testing.T) {
	app, _ := newTestApp(t)
	owner := registerTestUser(t, app, "claire@example.com")
	other := registerTestUser(t, app, "sam@example.com")
	cycleID := startTestCycle(t, app, owner, "IVF", "2026-03-01")

	response := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/cycles/%d", cycleID), other, nil)
	response.Body.Close()
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("foreign cycle returned status %d, want 404", response.StatusCode)
	}
}
