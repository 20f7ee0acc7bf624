package api

import (
	"time"

	"github.com/claire-lyons/folli/internal/models"
	"github.com/claire-lyons/folli/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListCycles(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	cycles, err := handler.repos.Cycles.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycles")
	}
	return c.JSON(cycles)
}

// StartCycle creates a cycle and seeds its milestone rows from the matching
// template. An unknown cycle type still starts a cycle, just without seeded
// milestones; treatment plans vary and the templates are a convenience, not
// a gate.
func (handler *Handler) StartCycle(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var input startCycleInput
	if err := handler.parsePayload(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	startDate, err := services.ParseDay(input.StartDate, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid start date")
	}

	cycle := models.Cycle{
		UserID:          user.ID,
		Type:            input.Type,
		Status:          models.CycleActive,
		StartDate:       startDate,
		EstimatedLength: input.EstimatedLength,
		Notes:           input.Notes,
	}

	snapshot := handler.reference.Snapshot()
	var milestones []models.UserMilestone
	if template, ok := snapshot.Template(cycle.Type); ok {
		if cycle.EstimatedLength == 0 {
			cycle.EstimatedLength = template.Duration
		}
		milestones = services.SeedMilestones(user.ID, cycle, template)
	}

	if err := handler.repos.Cycles.CreateWithMilestones(&cycle, milestones); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to start cycle")
	}
	return c.Status(fiber.StatusCreated).JSON(cycle)
}

func (handler *Handler) GetActiveCycle(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	cycle, err := handler.repos.Cycles.ActiveForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle")
	}
	if cycle == nil {
		return c.JSON(fiber.Map{"cycle": nil, "cycle_day": 0})
	}

	today := services.DateAtLocation(time.Now().In(handler.location), handler.location)
	return c.JSON(fiber.Map{
		"cycle":     cycle,
		"cycle_day": services.CycleDay(&cycle.StartDate, today),
	})
}

func (handler *Handler) GetCycle(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	cycleID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle id")
	}
	cycle, err := handler.repos.Cycles.FindForUser(user.ID, cycleID)
	if err != nil {
		return notFoundOr500(c, err, "failed to load cycle")
	}
	return c.JSON(cycle)
}

// UpdateCycleStatus completes or cancels a cycle. Both transitions close it
// with an end date; the payload date wins over today when supplied.
func (handler *Handler) UpdateCycleStatus(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	cycleID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle id")
	}

	var input cycleStatusInput
	if err := handler.parsePayload(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	endDate := services.DateAtLocation(time.Now().In(handler.location), handler.location)
	if input.EndDate != "" {
		endDate, err = services.ParseDay(input.EndDate, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid end date")
		}
	}

	cycle, err := handler.repos.Cycles.CloseCycle(user.ID, cycleID, input.Status, endDate)
	if err != nil {
		return notFoundOr500(c, err, "failed to update cycle")
	}
	return c.JSON(cycle)
}
