package models

import "time"

const (
	MilestonePending    = "pending"
	MilestoneInProgress = "in-progress"
	MilestoneCompleted  = "completed"
	MilestoneCancelled  = "cancelled"
)

// UserMilestone is a persisted milestone instance belonging to one cycle.
// Title must match a template milestone name for the name→id lookups in the
// stage detector to succeed; rows are seeded from the cycle template when a
// cycle is started.
type UserMilestone struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	CycleID   uint       `gorm:"not null;index" json:"cycle_id"`
	Title     string     `gorm:"not null" json:"title"`
	Status    string     `gorm:"not null;default:pending" json:"status"`
	Date      *time.Time `gorm:"type:date" json:"date,omitempty"`
	StartDate *time.Time `gorm:"type:date" json:"start_date,omitempty"`
	EndDate   *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func IsValidMilestoneStatus(status string) bool {
	switch status {
	case MilestonePending, MilestoneInProgress, MilestoneCompleted, MilestoneCancelled:
		return true
	}
	return false
}
