package appointments

import (
	"errors"
	"time"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrConflict            = errors.New("appointment overlaps an existing one")
	ErrOutsideAvailability = errors.New("appointment outside availability")
	ErrInvalidTimeRange    = errors.New("invalid time range")
)

type Kind string

const (
	KindSession      Kind = "session"
	KindCheckIn      Kind = "check_in"
	KindConsultation Kind = "consultation"
)

type Appointment struct {
	ID        int       `json:"id"`
	TrainerID int       `json:"trainerId"`
	ClientID  int       `json:"clientId"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	Kind      Kind      `json:"kind"`
	Notes     *string   `json:"notes"`
}

// AvailabilityWindow is a weekly recurring slot when the trainer takes
// appointments. Minutes are counted from midnight in the trainer's zone.
type AvailabilityWindow struct {
	ID          int          `json:"id"`
	TrainerID   int          `json:"trainerId"`
	Weekday     time.Weekday `json:"weekday"`
	StartMinute int          `json:"startMinute"`
	EndMinute   int          `json:"endMinute"`
}
