package clients

import (
	"errors"
	"time"
)

var ErrClientNotFound = errors.New("client not found")

// Client is a person coached by a trainer. Every query is scoped by the
// trainer id, one trainer never sees another trainer's roster.
type Client struct {
	ID        int       `json:"id"`
	TrainerID int       `json:"trainerId"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	GoalsNote *string   `json:"goalsNote"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}
