package clients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/traintower/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
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

func (r *Repo) Add(ctx context.Context, client Client) (_ *Client, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO client (trainer_id, name, email, goals_note, active, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		client.TrainerID, client.Name, client.Email, client.GoalsNote, client.Active, client.CreatedAt,
	).Scan(&client.ID)
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}

	span.SetAttributes(attribute.Int("client.id", client.ID))
	return &client, nil
}

func (r *Repo) Get(ctx context.Context, id, trainerID int) (_ *Client, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var c Client
	err = r.db.QueryRow(
		ctx,
		`SELECT id, trainer_id, name, email, goals_note, active, created_at
			FROM client
			WHERE id = $1 AND trainer_id = $2;`,
		id, trainerID,
	).Scan(&c.ID, &c.TrainerID, &c.Name, &c.Email, &c.GoalsNote, &c.Active, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	return &c, nil
}

func (r *Repo) List(ctx context.Context, trainerID int, activeOnly bool) (_ []Client, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `SELECT id, trainer_id, name, email, goals_note, active, created_at
			FROM client
			WHERE trainer_id = $1`
	if activeOnly {
		query += ` AND active`
	}
	query += ` ORDER BY name;`

	rows, err := r.db.Query(ctx, query, trainerID)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2clients(rows)
}

func (r *Repo) Update(ctx context.Context, client *Client) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", client.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE client SET name = $1, email = $2, goals_note = $3, active = $4
			WHERE id = $5 AND trainer_id = $6;`,
		client.Name, client.Email, client.GoalsNote, client.Active,
		client.ID, client.TrainerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id, trainerID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM client WHERE id = $1 AND trainer_id = $2;`,
		id, trainerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

func rows2clients(rows pgx.Rows) ([]Client, error) {
	clients := make([]Client, 0)
	for rows.Next() {
		var c Client
		if err := rows.Scan(&c.ID, &c.TrainerID, &c.Name, &c.Email, &c.GoalsNote, &c.Active, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return clients, nil
}
