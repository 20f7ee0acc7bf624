package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	Cycles       *CycleRepository
	Milestones   *MilestoneRepository
	Appointments *AppointmentRepository
	Events       *EventLogRepository
	Symptoms     *SymptomLogRepository
	Doctors      *DoctorRepository
	Reference    *ReferenceRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		Cycles:       NewCycleRepository(database),
		Milestones:   NewMilestoneRepository(database),
		Appointments: NewAppointmentRepository(database),
		Events:       NewEventLogRepository(database),
		Symptoms:     NewSymptomLogRepository(database),
		Doctors:      NewDoctorRepository(database),
		Reference:    NewReferenceRepository(database),
	}
}
