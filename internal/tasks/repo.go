package tasks

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

func (r *Repo) Add(ctx context.Context, task Task) (_ *Task, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tasks.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	if task.Status == "" {
		task.Status = StatusPending
	}
	if task.Priority == "" {
		task.Priority = PriorityMedium
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO task (trainer_id, client_id, title, description, due_date, status, priority, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		task.TrainerID, task.ClientID, task.Title, task.Description,
		task.DueDate, task.Status, task.Priority, task.CreatedAt,
	).Scan(&task.ID)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	span.SetAttributes(attribute.Int("task.id", task.ID))
	return &task, nil
}

func (r *Repo) Get(ctx context.Context, id, trainerID int) (_ *Task, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tasks.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var t Task
	err = r.db.QueryRow(
		ctx,
		`SELECT id, trainer_id, client_id, title, description, due_date, status, priority, created_at
			FROM task
			WHERE id = $1 AND trainer_id = $2;`,
		id, trainerID,
	).Scan(&t.ID, &t.TrainerID, &t.ClientID, &t.Title, &t.Description, &t.DueDate, &t.Status, &t.Priority, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	return &t, nil
}

func (r *Repo) List(ctx context.Context, trainerID int, status Status) (_ []Task, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tasks.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `SELECT id, trainer_id, client_id, title, description, due_date, status, priority, created_at
			FROM task
			WHERE trainer_id = $1`
	args := []any{trainerID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY due_date NULLS LAST, created_at;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	tasks := make([]Task, 0)
	for rows.Next() {
		var t Task
		if err := rows.Scan(
			&t.ID, &t.TrainerID, &t.ClientID, &t.Title, &t.Description,
			&t.DueDate, &t.Status, &t.Priority, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return tasks, nil
}

func (r *Repo) Update(ctx context.Context, task *Task) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tasks.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", task.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE task SET client_id = $1, title = $2, description = $3, due_date = $4, status = $5, priority = $6
			WHERE id = $7 AND trainer_id = $8;`,
		task.ClientID, task.Title, task.Description, task.DueDate, task.Status, task.Priority,
		task.ID, task.TrainerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id, trainerID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tasks.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM task WHERE id = $1 AND trainer_id = $2;`,
		id, trainerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}

	return nil
}
