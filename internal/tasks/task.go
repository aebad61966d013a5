package tasks

import (
	"errors"
	"fmt"
	"time"
)

var ErrTaskNotFound = errors.New("task not found")

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Task struct {
	ID          int        `json:"id"`
	TrainerID   int        `json:"trainerId"`
	ClientID    *int       `json:"clientId"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// CanTransitionTo allows only forward moves and reopening a done task.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusInProgress || next == StatusDone
	case StatusInProgress:
		return next == StatusDone || next == StatusPending
	case StatusDone:
		return next == StatusPending
	}
	return false
}

func ValidateTransition(from, to Status) error {
	if !to.Valid() {
		return fmt.Errorf("unknown status %q", to)
	}
	if from == to {
		return nil
	}
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("cannot move task from %q to %q", from, to)
	}
	return nil
}
