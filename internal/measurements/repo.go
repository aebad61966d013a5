package measurements

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/traintower/backend/internal/telemetry/tracing"
	"github.com/traintower/backend/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrClientNotOwned = errors.New("client not owned by trainer")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, trainerID int, m Measurement) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.checkClientOwned(ctx, m.ClientID, trainerID); err != nil {
		return nil, err
	}

	if m.TakenAt.IsZero() {
		m.TakenAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO measurement (client_id, taken_at, weight_kg, body_fat_perc, notes)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		m.ClientID, m.TakenAt, m.WeightKg, m.BodyFatPerc, m.Notes,
	).Scan(&m.ID)
	// the client can get deleted between the ownership check and the insert
	if pkg.IsForeignKeyViolationError(err) {
		return nil, ErrClientNotOwned
	}
	if err != nil {
		return nil, fmt.Errorf("insert measurement: %w", err)
	}

	span.SetAttributes(attribute.Int("measurement.id", m.ID))
	return &m, nil
}

// List returns the client's measurements, newest first.
func (r *Repo) List(ctx context.Context, clientID, trainerID int) (_ []Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("client.id", clientID))

	if err := r.checkClientOwned(ctx, clientID, trainerID); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, client_id, taken_at, weight_kg, body_fat_perc, notes
			FROM measurement
			WHERE client_id = $1
			ORDER BY taken_at DESC;`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	measurements := make([]Measurement, 0)
	for rows.Next() {
		var m Measurement
		if err := rows.Scan(&m.ID, &m.ClientID, &m.TakenAt, &m.WeightKg, &m.BodyFatPerc, &m.Notes); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		measurements = append(measurements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return measurements, nil
}

func (r *Repo) Delete(ctx context.Context, id, clientID, trainerID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	if err := r.checkClientOwned(ctx, clientID, trainerID); err != nil {
		return err
	}

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM measurement WHERE id = $1 AND client_id = $2;`,
		id, clientID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMeasurementNotFound
	}

	return nil
}

func (r *Repo) checkClientOwned(ctx context.Context, clientID, trainerID int) error {
	var owned bool
	err := r.db.QueryRow(
		ctx,
		`SELECT true FROM client WHERE id = $1 AND trainer_id = $2;`,
		clientID, trainerID,
	).Scan(&owned)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrClientNotOwned
	}
	return err
}
