package api

import (
	"time"

	"github.com/claire-lyons/folli/internal/models"
	"github.com/claire-lyons/folli/internal/services"
	"github.com/gofiber/fiber/v2"
)

// calendarRecords loads every record type the calendar aggregates over,
// windowed to [from, until). Milestones are loaded unwindowed: they carry
// two candidate dates and the service layer decides which one places them.
func (handler *Handler) calendarRecords(userID uint, from time.Time, until time.Time) (
	*models.Cycle,
	[]models.Appointment,
	[]models.UserMilestone,
	[]models.EventLog,
	[]models.SymptomLog,
	error,
) {
	activeCycle, err := handler.repos.Cycles.ActiveForUser(userID)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	appointments, err := handler.repos.Appointments.ListForUserBetween(userID, from, until)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	milestones, err := handler.repos.Milestones.ListForUser(userID)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	events, err := handler.repos.Events.ListForUserBetween(userID, from, until)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	symptoms, err := handler.repos.Symptoms.ListForUserBetween(userID, from, until)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	return activeCycle, appointments, milestones, events, symptoms, nil
}

func (handler *Handler) GetCalendarMonth(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	now := time.Now().In(handler.location)
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 || year < 1970 || year > 9999 {
		return apiError(c, fiber.StatusBadRequest, "invalid year or month")
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, handler.location)
	activeCycle, appointments, milestones, events, symptoms, err := handler.calendarRecords(user.ID, from, from.AddDate(0, 1, 0))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load calendar")
	}

	cells := services.BuildMonth(year, time.Month(month), activeCycle, appointments, milestones, events, symptoms, handler.location)
	return c.JSON(fiber.Map{
		"year":  year,
		"month": month,
		"days":  cells,
	})
}

func (handler *Handler) GetCalendarDay(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	date, err := services.ParseDay(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	activeCycle, appointments, milestones, events, symptoms, err := handler.calendarRecords(user.ID, date, date.AddDate(0, 0, 1))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load day")
	}

	summary := services.BuildDaySummary(date, activeCycle, appointments, milestones, events, symptoms, handler.location)
	return c.JSON(summary)
}
