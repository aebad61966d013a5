package measurements

import (
	"errors"
	"time"
)

var ErrMeasurementNotFound = errors.New("measurement not found")

// Measurement is a progress data point for a client. Access goes through
// the owning client, so trainer scoping joins the client table.
type Measurement struct {
	ID          int       `json:"id"`
	ClientID    int       `json:"clientId"`
	TakenAt     time.Time `json:"takenAt"`
	WeightKg    *float64  `json:"weightKg"`
	BodyFatPerc *float64  `json:"bodyFatPerc"`
	Notes       *string   `json:"notes"`
}
