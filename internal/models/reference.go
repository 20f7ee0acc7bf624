package models

// Reference rows mirror the builtin datasets in internal/reference and are
// what the reference store actually loads. They are seeded on first boot
// and only ever replaced wholesale.

type CycleTemplate struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	TypeKey     string `gorm:"uniqueIndex;not null" json:"type_key"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Duration    int    `gorm:"not null" json:"duration"`
}

type TemplateMilestone struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	CycleTemplateID uint     `gorm:"not null;index" json:"cycle_template_id"`
	MilestoneID     uint     `gorm:"not null" json:"milestone_id"`
	Name            string   `gorm:"not null" json:"name"`
	Day             int      `gorm:"not null" json:"day"`
	DayEnd          int      `json:"day_end"`
	Description     string   `json:"description"`
	Tips            []string `gorm:"serializer:json" json:"tips"`
	Position        int      `gorm:"not null" json:"position"`
}

// StageRef maps one milestone id to its treatment stage. Strictly 1:1.
type StageRef struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	MilestoneID uint   `gorm:"uniqueIndex;not null" json:"milestone_id"`
	Name        string `gorm:"not null" json:"name"`
	Details     string `json:"details"`
}
