package services

import (
	"fmt"
	"time"

	"github.com/claire-lyons/folli/internal/models"
)

// cycleSlackDays extends an open-ended cycle's day numbering past its
// estimated length before the calendar stops showing day numbers.
const cycleSlackDays = 7

// CalendarDay is the derived per-date view model. The flags are presence
// booleans for rendering dots; the record lists carry the full rows for the
// day panel.
type CalendarDay struct {
	Date           time.Time              `json:"date"`
	DateString     string                 `json:"date_string"`
	Day            int                    `json:"day"`
	CycleDay       *int                   `json:"cycle_day"`
	HasAppointment bool                   `json:"has_appointment"`
	HasMilestone   bool                   `json:"has_milestone"`
	HasLoggedData  bool                   `json:"has_logged_data"`
	Appointments   []models.Appointment   `json:"appointments"`
	Milestones     []models.UserMilestone `json:"milestones"`
	Events         []models.EventLog      `json:"events"`
	Symptoms       []models.SymptomLog    `json:"symptoms"`
}

// DaySummary is the detail view for one selected date.
type DaySummary struct {
	Date         string                 `json:"date"`
	CycleDay     int                    `json:"cycle_day"`
	Appointments []models.Appointment   `json:"appointments"`
	Milestones   []models.UserMilestone `json:"milestones"`
	Events       []models.EventLog      `json:"events"`
	Symptoms     []models.SymptomLog    `json:"symptoms"`
}

// BuildMonth produces one entry per cell of a Monday-first month grid: nil
// placeholders for the leading blank cells, then one CalendarDay per day of
// the month. Appointment visibility and deduplication are applied before
// any per-day aggregation.
func BuildMonth(
	year int,
	month time.Month,
	activeCycle *models.Cycle,
	appointments []models.Appointment,
	milestones []models.UserMilestone,
	events []models.EventLog,
	symptoms []models.SymptomLog,
	location *time.Location,
) []*CalendarDay {
	if location == nil {
		location = time.UTC
	}

	visible := DedupeAppointments(VisibleAppointments(activeCycle, appointments))

	appointmentsByDay := make(map[string][]models.Appointment, len(visible))
	for _, appointment := range visible {
		key := DayKey(appointment.Date, location)
		appointmentsByDay[key] = append(appointmentsByDay[key], appointment)
	}

	milestonesByDay := make(map[string][]models.UserMilestone, len(milestones))
	for _, milestone := range milestones {
		date, ok := milestoneCalendarDate(milestone)
		if !ok {
			continue
		}
		key := DayKey(date, location)
		milestonesByDay[key] = append(milestonesByDay[key], milestone)
	}

	eventsByDay := make(map[string][]models.EventLog, len(events))
	for _, event := range events {
		key := DayKey(event.Date, location)
		eventsByDay[key] = append(eventsByDay[key], event)
	}

	symptomsByDay := make(map[string][]models.SymptomLog, len(symptoms))
	for _, symptom := range symptoms {
		key := DayKey(symptom.Date, location)
		symptomsByDay[key] = append(symptomsByDay[key], symptom)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, location)
	leading := (int(first.Weekday()) + 6) % 7

	cells := make([]*CalendarDay, 0, leading+31)
	for blank := 0; blank < leading; blank++ {
		cells = append(cells, nil)
	}

	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		key := day.Format(dayLayout)
		dayAppointments := appointmentsByDay[key]
		dayMilestones := milestonesByDay[key]
		dayEvents := eventsByDay[key]
		daySymptoms := symptomsByDay[key]

		cells = append(cells, &CalendarDay{
			Date:           day,
			DateString:     key,
			Day:            day.Day(),
			CycleDay:       cycleDayInWindow(activeCycle, day),
			HasAppointment: len(dayAppointments) > 0,
			HasMilestone:   len(dayMilestones) > 0,
			HasLoggedData:  len(dayEvents) > 0 || len(daySymptoms) > 0,
			Appointments:   dayAppointments,
			Milestones:     dayMilestones,
			Events:         dayEvents,
			Symptoms:       daySymptoms,
		})
	}

	return cells
}

// BuildDaySummary returns the full filtered record lists for one date,
// plus its cycle-day number. Same visibility and dedup rules as BuildMonth.
func BuildDaySummary(
	date time.Time,
	activeCycle *models.Cycle,
	appointments []models.Appointment,
	milestones []models.UserMilestone,
	events []models.EventLog,
	symptoms []models.SymptomLog,
	location *time.Location,
) DaySummary {
	if location == nil {
		location = time.UTC
	}
	day := DateAtLocation(date, location)

	summary := DaySummary{
		Date:         day.Format(dayLayout),
		Appointments: []models.Appointment{},
		Milestones:   []models.UserMilestone{},
		Events:       []models.EventLog{},
		Symptoms:     []models.SymptomLog{},
	}

	if activeCycle != nil {
		summary.CycleDay = CycleDay(&activeCycle.StartDate, day)
	}

	for _, appointment := range DedupeAppointments(VisibleAppointments(activeCycle, appointments)) {
		if SameDay(appointment.Date, day, location) {
			summary.Appointments = append(summary.Appointments, appointment)
		}
	}
	for _, milestone := range milestones {
		if milestoneDate, ok := milestoneCalendarDate(milestone); ok && SameDay(milestoneDate, day, location) {
			summary.Milestones = append(summary.Milestones, milestone)
		}
	}
	for _, event := range events {
		if SameDay(event.Date, day, location) {
			summary.Events = append(summary.Events, event)
		}
	}
	for _, symptom := range symptoms {
		if SameDay(symptom.Date, day, location) {
			summary.Symptoms = append(summary.Symptoms, symptom)
		}
	}

	return summary
}

// VisibleAppointments applies the cycle visibility rule: a non-active cycle
// hides every appointment, an active cycle shows only its own, and with no
// cycle at all the caller's list passes through untouched.
func VisibleAppointments(activeCycle *models.Cycle, appointments []models.Appointment) []models.Appointment {
	if activeCycle == nil {
		return appointments
	}
	if !activeCycle.IsActive() {
		return nil
	}

	matched := make([]models.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.CycleID == activeCycle.ID {
			matched = append(matched, appointment)
		}
	}
	return matched
}

// DedupeAppointments drops duplicates in two passes, keeping the first
// occurrence each time: by id, then by title + exact timestamp + location.
// The second pass guards against the same logical appointment arriving
// under different ids from upstream joins.
func DedupeAppointments(appointments []models.Appointment) []models.Appointment {
	byID := make([]models.Appointment, 0, len(appointments))
	seenIDs := make(map[uint]bool, len(appointments))
	for _, appointment := range appointments {
		if seenIDs[appointment.ID] {
			continue
		}
		seenIDs[appointment.ID] = true
		byID = append(byID, appointment)
	}

	deduped := make([]models.Appointment, 0, len(byID))
	seenKeys := make(map[string]bool, len(byID))
	for _, appointment := range byID {
		key := fmt.Sprintf("%s|%d|%s", appointment.Title, appointment.Date.UnixNano(), appointment.Location)
		if seenKeys[key] {
			continue
		}
		seenKeys[key] = true
		deduped = append(deduped, appointment)
	}
	return deduped
}

// cycleDayInWindow numbers a calendar date within the cycle, or nil when
// the date falls before the start, past the end date, or past the
// estimated length plus slack for an open-ended cycle.
func cycleDayInWindow(cycle *models.Cycle, date time.Time) *int {
	if cycle == nil {
		return nil
	}

	day := CycleDay(&cycle.StartDate, date)
	if day <= 0 {
		return nil
	}

	if cycle.EndDate != nil {
		lastDay := CycleDay(&cycle.StartDate, *cycle.EndDate)
		if lastDay > 0 && day > lastDay {
			return nil
		}
	} else if cycle.EstimatedLength > 0 && day > cycle.EstimatedLength+cycleSlackDays {
		return nil
	}

	return &day
}

// milestoneCalendarDate picks where a persisted milestone shows up on the
// calendar: the actual start date once one is set, the expected date
// otherwise.
func milestoneCalendarDate(milestone models.UserMilestone) (time.Time, bool) {
	if milestone.StartDate != nil {
		return *milestone.StartDate, true
	}
	if milestone.Date != nil {
		return *milestone.Date, true
	}
	return time.Time{}, false
}
