package api

import (
	"time"

	"github.com/claire-lyons/folli/internal/models"
	"github.com/claire-lyons/folli/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListAppointments(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	appointments, err := handler.repos.Appointments.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load appointments")
	}
	return c.JSON(appointments)
}

func (handler *Handler) CreateAppointment(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var input appointmentInput
	if err := handler.parsePayload(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	date, err := handler.parseAppointmentTime(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	appointment := models.Appointment{
		UserID:   user.ID,
		CycleID:  input.CycleID,
		Title:    input.Title,
		Date:     date,
		Location: input.Location,
		DoctorID: input.DoctorID,
		Notes:    input.Notes,
	}
	if err := handler.repos.Appointments.Create(&appointment); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create appointment")
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

func (handler *Handler) UpdateAppointment(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	appointmentID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid appointment id")
	}

	var input appointmentInput
	if err := handler.parsePayload(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	date, err := handler.parseAppointmentTime(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	appointment, err := handler.repos.Appointments.FindForUser(user.ID, appointmentID)
	if err != nil {
		return notFoundOr500(c, err, "failed to load appointment")
	}

	appointment.CycleID = input.CycleID
	appointment.Title = input.Title
	appointment.Date = date
	appointment.Location = input.Location
	appointment.DoctorID = input.DoctorID
	appointment.Notes = input.Notes
	if err := handler.repos.Appointments.Save(&appointment); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update appointment")
	}
	return c.JSON(appointment)
}

func (handler *Handler) DeleteAppointment(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	appointmentID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid appointment id")
	}
	if err := handler.repos.Appointments.Delete(user.ID, appointmentID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete appointment")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// parseAppointmentTime keeps the time of day when one is given. A bare date
// still works and lands on local midnight.
func (handler *Handler) parseAppointmentTime(value string) (time.Time, error) {
	if len(value) == len("2006-01-02") {
		return services.ParseDay(value, handler.location)
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return parsed.In(handler.location), nil
}
