package appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/traintower/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, a Appointment) (_ *Appointment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.appointments.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO appointment (trainer_id, client_id, starts_at, ends_at, kind, notes)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		a.TrainerID, a.ClientID, a.StartsAt, a.EndsAt, a.Kind, a.Notes,
	).Scan(&a.ID)
	if err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}

	span.SetAttributes(attribute.Int("appointment.id", a.ID))
	return &a, nil
}

// ListBetween returns the trainer's appointments intersecting [from, to),
// ordered by start time.
func (r *Repo) ListBetween(ctx context.Context, trainerID int, from, to time.Time) (_ []Appointment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.appointments.listBetween")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, trainer_id, client_id, starts_at, ends_at, kind, notes
			FROM appointment
			WHERE trainer_id = $1 AND starts_at < $3 AND ends_at > $2
			ORDER BY starts_at;`,
		trainerID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	appointments := make([]Appointment, 0)
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(&a.ID, &a.TrainerID, &a.ClientID, &a.StartsAt, &a.EndsAt, &a.Kind, &a.Notes); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return appointments, nil
}

func (r *Repo) Delete(ctx context.Context, id, trainerID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.appointments.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM appointment WHERE id = $1 AND trainer_id = $2;`,
		id, trainerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *Repo) Windows(ctx context.Context, trainerID int) (_ []AvailabilityWindow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.appointments.windows")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, trainer_id, weekday, start_minute, end_minute
			FROM availability_window
			WHERE trainer_id = $1
			ORDER BY weekday, start_minute;`,
		trainerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	windows := make([]AvailabilityWindow, 0)
	for rows.Next() {
		var w AvailabilityWindow
		if err := rows.Scan(&w.ID, &w.TrainerID, &w.Weekday, &w.StartMinute, &w.EndMinute); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return windows, nil
}

func (r *Repo) AddWindow(ctx context.Context, w AvailabilityWindow) (_ *AvailabilityWindow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.appointments.addWindow")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO availability_window (trainer_id, weekday, start_minute, end_minute)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		w.TrainerID, w.Weekday, w.StartMinute, w.EndMinute,
	).Scan(&w.ID)
	if err != nil {
		return nil, fmt.Errorf("insert availability window: %w", err)
	}

	return &w, nil
}
