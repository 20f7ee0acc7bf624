package api

import (
	"bytes"

	"github.com/claire-lyons/folli/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	cycles, err := handler.repos.Cycles.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to export")
	}
	milestones, err := handler.repos.Milestones.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to export")
	}
	appointments, err := handler.repos.Appointments.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to export")
	}
	events, err := handler.repos.Events.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to export")
	}
	symptoms, err := handler.repos.Symptoms.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to export")
	}

	var output bytes.Buffer
	if err := services.WriteJournalCSV(&output, cycles, milestones, appointments, events, symptoms, handler.location); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="folli-journal.csv"`)
	return c.Send(output.Bytes())
}
