package api

import (
	"github.com/claire-lyons/folli/internal/models"
	"github.com/claire-lyons/folli/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListCycleMilestones(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	cycleID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle id")
	}

	cycle, err := handler.repos.Cycles.FindForUser(user.ID, cycleID)
	if err != nil {
		return notFoundOr500(c, err, "failed to load cycle")
	}
	milestones, err := handler.repos.Milestones.ListForCycle(user.ID, cycle.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load milestones")
	}
	return c.JSON(services.OrderedUserMilestones(cycle.Type, milestones))
}

func (handler *Handler) UpdateMilestone(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	milestoneID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid milestone id")
	}

	var input milestoneUpdateInput
	if err := handler.parsePayload(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	milestone, err := handler.repos.Milestones.FindForUser(user.ID, milestoneID)
	if err != nil {
		return notFoundOr500(c, err, "failed to load milestone")
	}

	if input.Status != "" {
		if !models.IsValidMilestoneStatus(input.Status) {
			return apiError(c, fiber.StatusBadRequest, "invalid status")
		}
		milestone.Status = input.Status
	}
	if input.StartDate != "" {
		startDate, err := services.ParseDay(input.StartDate, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid start date")
		}
		milestone.StartDate = &startDate
	}
	if input.EndDate != "" {
		endDate, err := services.ParseDay(input.EndDate, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid end date")
		}
		milestone.EndDate = &endDate
	}
	if input.Notes != nil {
		milestone.Notes = *input.Notes
	}

	if err := handler.repos.Milestones.Save(&milestone); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update milestone")
	}
	return c.JSON(milestone)
}
