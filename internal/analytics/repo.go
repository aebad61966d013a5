package analytics

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

// BuildReport runs the grouped count queries for the range [from, to).
func (r *Repo) BuildReport(ctx context.Context, trainerID int, from, to time.Time) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.buildReport")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("trainer.id", trainerID))

	report := &Report{
		TrainerID:          trainerID,
		From:               from,
		To:                 to,
		AppointmentsPerDay: make([]DayCount, 0),
	}

	err = r.db.QueryRow(
		ctx,
		`SELECT count(*) FROM client
			WHERE trainer_id = $1 AND created_at >= $2 AND created_at < $3;`,
		trainerID, from, to,
	).Scan(&report.NewClients)
	if err != nil {
		return nil, fmt.Errorf("count new clients: %w", err)
	}

	err = r.db.QueryRow(
		ctx,
		`SELECT count(*) FROM program
			WHERE trainer_id = $1 AND created_at >= $2 AND created_at < $3;`,
		trainerID, from, to,
	).Scan(&report.ProgramsCreated)
	if err != nil {
		return nil, fmt.Errorf("count programs: %w", err)
	}

	err = r.db.QueryRow(
		ctx,
		`SELECT count(*) FROM appointment
			WHERE trainer_id = $1 AND starts_at >= $2 AND starts_at < $3 AND ends_at < now();`,
		trainerID, from, to,
	).Scan(&report.AppointmentsHeld)
	if err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}

	err = r.db.QueryRow(
		ctx,
		`SELECT count(*) FROM task
			WHERE trainer_id = $1 AND status = 'done' AND created_at >= $2 AND created_at < $3;`,
		trainerID, from, to,
	).Scan(&report.TasksCompleted)
	if err != nil {
		return nil, fmt.Errorf("count completed tasks: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT date_trunc('day', starts_at) AS day, count(*)
			FROM appointment
			WHERE trainer_id = $1 AND starts_at >= $2 AND starts_at < $3
			GROUP BY day
			ORDER BY day;`,
		trainerID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("appointments per day: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dc DayCount
		if err := rows.Scan(&dc.Day, &dc.Count); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		report.AppointmentsPerDay = append(report.AppointmentsPerDay, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return report, nil
}
