package api

import (
	"github.com/claire-lyons/folli/internal/models"
	"github.com/claire-lyons/folli/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListEvents(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	events, err := handler.repos.Events.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load events")
	}
	return c.JSON(events)
}

func (handler *Handler) CreateEvent(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var input eventInput
	if err := handler.parsePayload(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	date, err := services.ParseDay(input.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	event := models.EventLog{
		UserID:  user.ID,
		CycleID: input.CycleID,
		Date:    date,
		Kind:    input.Kind,
		Name:    input.Name,
		Dose:    input.Dose,
		Notes:   input.Notes,
	}
	if err := handler.repos.Events.Create(&event); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to log event")
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (handler *Handler) DeleteEvent(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	eventID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid event id")
	}
	if err := handler.repos.Events.Delete(user.ID, eventID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete event")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ListSymptoms(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	symptoms, err := handler.repos.Symptoms.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load symptoms")
	}
	return c.JSON(symptoms)
}

func (handler *Handler) CreateSymptom(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var input symptomInput
	if err := handler.parsePayload(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	date, err := services.ParseDay(input.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	symptom := models.SymptomLog{
		UserID:   user.ID,
		CycleID:  input.CycleID,
		Date:     date,
		Name:     input.Name,
		Severity: input.Severity,
		Notes:    input.Notes,
	}
	if err := handler.repos.Symptoms.Create(&symptom); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to log symptom")
	}
	return c.Status(fiber.StatusCreated).JSON(symptom)
}

func (handler *Handler) DeleteSymptom(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	symptomID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid symptom id")
	}
	if err := handler.repos.Symptoms.Delete(user.ID, symptomID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete symptom")
	}
	return c.JSON(fiber.Map{"ok": true})
}
