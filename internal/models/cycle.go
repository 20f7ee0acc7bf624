package models

import "time"

const (
	CycleActive    = "active"
	CycleCompleted = "completed"
	CycleCancelled = "cancelled"
)

// Cycle is the aggregate root of a treatment attempt. Type holds the raw
// cycle-type string as entered upstream; derivations normalize it through
// reference.NormalizeCycleType before any table lookup.
type Cycle struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"not null;index" json:"user_id"`
	Type            string     `gorm:"not null" json:"type"`
	Status          string     `gorm:"not null;default:active" json:"status"`
	StartDate       time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate         *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	EstimatedLength int        `gorm:"not null;default:0" json:"estimated_length"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (cycle Cycle) IsActive() bool {
	return cycle.Status == CycleActive
}
