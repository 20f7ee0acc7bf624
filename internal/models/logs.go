package models

import "time"

const (
	EventMedication = "medication"
	EventInjection  = "injection"
	EventProcedure  = "procedure"
	EventNote       = "note"
)

// EventLog records something the user did on a day: a medication intake, an
// injection, a procedure, or a free-form note.
type EventLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CycleID   uint      `gorm:"index" json:"cycle_id"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	Kind      string    `gorm:"not null;default:note" json:"kind"`
	Name      string    `gorm:"not null" json:"name"`
	Dose      string    `json:"dose,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SymptomLog records how the user felt on a day.
type SymptomLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CycleID   uint      `gorm:"index" json:"cycle_id"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	Name      string    `gorm:"not null" json:"name"`
	Severity  int       `gorm:"not null;default:1" json:"severity"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func IsValidEventKind(kind string) bool {
	switch kind {
	case EventMedication, EventInjection, EventProcedure, EventNote:
		return true
	}
	return false
}
