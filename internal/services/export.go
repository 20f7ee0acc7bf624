package services

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/claire-lyons/folli/internal/models"
)

var ExportCSVHeaders = []string{
	"Date",
	"Record",
	"Cycle",
	"Title",
	"Detail",
	"Status",
	"Notes",
}

type exportRow struct {
	date    time.Time
	record  string
	cycleID uint
	title   string
	detail  string
	status  string
	notes   string
}

// WriteJournalCSV streams the user's full treatment journal as CSV, one row
// per record, ordered by date then record type. Cycle rows come first on
// their start date so the file reads chronologically.
func WriteJournalCSV(
	writer io.Writer,
	cycles []models.Cycle,
	milestones []models.UserMilestone,
	appointments []models.Appointment,
	events []models.EventLog,
	symptoms []models.SymptomLog,
	location *time.Location,
) error {
	rows := make([]exportRow, 0, len(cycles)+len(milestones)+len(appointments)+len(events)+len(symptoms))

	for _, cycle := range cycles {
		rows = append(rows, exportRow{
			date:    cycle.StartDate,
			record:  "cycle",
			cycleID: cycle.ID,
			title:   cycle.Type,
			status:  cycle.Status,
			notes:   cycle.Notes,
		})
	}
	for _, milestone := range milestones {
		date, ok := milestoneCalendarDate(milestone)
		if !ok {
			continue
		}
		rows = append(rows, exportRow{
			date:    date,
			record:  "milestone",
			cycleID: milestone.CycleID,
			title:   milestone.Title,
			status:  milestone.Status,
			notes:   milestone.Notes,
		})
	}
	for _, appointment := range appointments {
		rows = append(rows, exportRow{
			date:    appointment.Date,
			record:  "appointment",
			cycleID: appointment.CycleID,
			title:   appointment.Title,
			detail:  appointment.Location,
			notes:   appointment.Notes,
		})
	}
	for _, event := range events {
		rows = append(rows, exportRow{
			date:    event.Date,
			record:  "event",
			cycleID: event.CycleID,
			title:   event.Name,
			detail:  event.Dose,
			status:  event.Kind,
			notes:   event.Notes,
		})
	}
	for _, symptom := range symptoms {
		rows = append(rows, exportRow{
			date:    symptom.Date,
			record:  "symptom",
			cycleID: symptom.CycleID,
			title:   symptom.Name,
			detail:  severityLabel(symptom.Severity),
			notes:   symptom.Notes,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		keyI := DateAtLocation(rows[i].date, location)
		keyJ := DateAtLocation(rows[j].date, location)
		if !keyI.Equal(keyJ) {
			return keyI.Before(keyJ)
		}
		return exportRecordRank(rows[i].record) < exportRecordRank(rows[j].record)
	})

	csvWriter := csv.NewWriter(writer)
	if err := csvWriter.Write(ExportCSVHeaders); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			DayKey(row.date, location),
			row.record,
			cycleColumn(row.cycleID),
			row.title,
			row.detail,
			row.status,
			row.notes,
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func exportRecordRank(record string) int {
	switch record {
	case "cycle":
		return 0
	case "milestone":
		return 1
	case "appointment":
		return 2
	case "event":
		return 3
	default:
		return 4
	}
}

func cycleColumn(cycleID uint) string {
	if cycleID == 0 {
		return ""
	}
	return "cycle-" + strconv.FormatUint(uint64(cycleID), 10)
}

func severityLabel(severity int) string {
	switch {
	case severity <= 1:
		return "mild"
	case severity == 2:
		return "moderate"
	default:
		return "severe"
	}
}
