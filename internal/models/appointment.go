package models

import "time"

// Appointment is a clinic visit. CycleID is zero for appointments logged
// outside any treatment cycle.
type Appointment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CycleID   uint      `gorm:"index" json:"cycle_id"`
	Title     string    `gorm:"not null" json:"title"`
	Date      time.Time `gorm:"not null" json:"date"`
	Location  string    `json:"location,omitempty"`
	DoctorID  uint      `json:"doctor_id,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
