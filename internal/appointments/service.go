package appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/traintower/backend/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=appointments_test

type appointmentsRepo interface {
	Add(ctx context.Context, a Appointment) (*Appointment, error)
	ListBetween(ctx context.Context, trainerID int, from, to time.Time) ([]Appointment, error)
	Delete(ctx context.Context, id, trainerID int) error
	Windows(ctx context.Context, trainerID int) ([]AvailabilityWindow, error)
	AddWindow(ctx context.Context, w AvailabilityWindow) (*AvailabilityWindow, error)
}

type Service struct {
	repo appointmentsRepo
}

func NewService(repo appointmentsRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// Book creates the appointment if it fits the trainer's availability and
// does not overlap an existing one. The check and the insert are not one
// atomic step, two rival requests racing for the same slot are resolved
// by whoever inserts first being visible to later reads.
func (s *Service) Book(ctx context.Context, a Appointment) (_ *Appointment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.appointments.book")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("trainer.id", a.TrainerID))

	if !a.StartsAt.Before(a.EndsAt) {
		return nil, ErrInvalidTimeRange
	}

	windows, err := s.repo.Windows(ctx, a.TrainerID)
	if err != nil {
		return nil, fmt.Errorf("load availability: %w", err)
	}
	if !WithinAnyWindow(a.StartsAt, a.EndsAt, windows) {
		return nil, ErrOutsideAvailability
	}

	existing, err := s.repo.ListBetween(ctx, a.TrainerID, a.StartsAt, a.EndsAt)
	if err != nil {
		return nil, fmt.Errorf("load existing appointments: %w", err)
	}
	if conflict := ConflictsWith(a.StartsAt, a.EndsAt, existing); conflict != nil {
		return nil, fmt.Errorf("%w: appointment %d", ErrConflict, conflict.ID)
	}

	return s.repo.Add(ctx, a)
}
