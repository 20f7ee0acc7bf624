package api

// Request payloads. Dates arrive as "2006-01-02" strings (or RFC 3339 for
// appointment times) and are parsed in the handler's location.

type credentialsInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	DisplayName string `json:"display_name" validate:"max=100"`
}

type startCycleInput struct {
	Type            string `json:"type" validate:"required,max=40"`
	StartDate       string `json:"start_date" validate:"required"`
	EstimatedLength int    `json:"estimated_length" validate:"min=0,max=366"`
	Notes           string `json:"notes" validate:"max=2000"`
}

type cycleStatusInput struct {
	Status  string `json:"status" validate:"required,oneof=completed cancelled"`
	EndDate string `json:"end_date"`
}

type milestoneUpdateInput struct {
	Status    string `json:"status" validate:"omitempty,oneof=pending in-progress completed cancelled"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Notes     *string `json:"notes" validate:"omitempty,max=2000"`
}

type appointmentInput struct {
	CycleID  uint   `json:"cycle_id"`
	Title    string `json:"title" validate:"required,max=200"`
	Date     string `json:"date" validate:"required"`
	Location string `json:"location" validate:"max=200"`
	DoctorID uint   `json:"doctor_id"`
	Notes    string `json:"notes" validate:"max=2000"`
}

type eventInput struct {
	CycleID uint   `json:"cycle_id"`
	Date    string `json:"date" validate:"required"`
	Kind    string `json:"kind" validate:"required,oneof=medication injection procedure note"`
	Name    string `json:"name" validate:"required,max=200"`
	Dose    string `json:"dose" validate:"max=100"`
	Notes   string `json:"notes" validate:"max=2000"`
}

type symptomInput struct {
	CycleID  uint   `json:"cycle_id"`
	Date     string `json:"date" validate:"required"`
	Name     string `json:"name" validate:"required,max=100"`
	Severity int    `json:"severity" validate:"min=1,max=3"`
	Notes    string `json:"notes" validate:"max=2000"`
}

type doctorInput struct {
	Name      string `json:"name" validate:"required,max=200"`
	Clinic    string `json:"clinic" validate:"max=200"`
	Specialty string `json:"specialty" validate:"max=100"`
	City      string `json:"city" validate:"max=100"`
	Phone     string `json:"phone" validate:"max=40"`
	Email     string `json:"email" validate:"omitempty,email"`
}
