package api

import (
	"errors"
	"time"

	"github.com/claire-lyons/folli/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetStage resolves the user's current treatment stage from the active
// cycle. Reference lookup failures come back as 422: they mean the stored
// milestone titles and the reference tables disagree, which the client
// should show, not paper over with a default stage.
func (handler *Handler) GetStage(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	cycle, err := handler.repos.Cycles.ActiveForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle")
	}
	if cycle == nil {
		return c.JSON(fiber.Map{"stage": nil, "cycle_day": 0})
	}

	milestones, err := handler.repos.Milestones.ListForCycle(user.ID, cycle.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load milestones")
	}

	today := services.DateAtLocation(time.Now().In(handler.location), handler.location)
	currentDay := services.CycleDay(&cycle.StartDate, today)

	result, err := services.DetectStage(*cycle, milestones, currentDay, handler.reference.Snapshot())
	if err != nil {
		if errors.Is(err, services.ErrNoReferenceData) {
			return c.JSON(fiber.Map{"stage": nil, "cycle_day": currentDay})
		}
		if errors.Is(err, services.ErrUnknownMilestone) || errors.Is(err, services.ErrStageNotFound) {
			return apiError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to detect stage")
	}

	return c.JSON(fiber.Map{
		"stage":        result.Stage,
		"milestone_id": result.MilestoneID,
		"source":       result.Source,
		"confidence":   result.Confidence,
		"cycle_day":    currentDay,
	})
}
