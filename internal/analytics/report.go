package analytics

import "time"

// Report aggregates a trainer's activity over a date range.
type Report struct {
	TrainerID int       `json:"trainerId"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`

	NewClients       int `json:"newClients"`
	ProgramsCreated  int `json:"programsCreated"`
	AppointmentsHeld int `json:"appointmentsHeld"`
	TasksCompleted   int `json:"tasksCompleted"`

	AppointmentsPerDay []DayCount `json:"appointmentsPerDay"`
}

type DayCount struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
}
