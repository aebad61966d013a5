package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/traintower/backend/internal/telemetry/tracing"
	"github.com/traintower/backend/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrTrainerNotFound = errors.New("trainer not found")
	ErrUsernameTaken   = errors.New("username taken")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (_ *Trainer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.getByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var t Trainer
	err = r.db.QueryRow(
		ctx,
		`SELECT id, username, password_hash, full_name, created_at FROM trainer WHERE username = $1;`,
		username,
	).Scan(&t.ID, &t.Username, &t.PasswordHash, &t.FullName, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTrainerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get trainer: %w", err)
	}

	return &t, nil
}

func (r *Repo) Add(ctx context.Context, trainer Trainer) (_ *Trainer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO trainer (username, password_hash, full_name, created_at)
			VALUES ($1, $2, $3, $4)
		RETURNING id;`,
		trainer.Username, trainer.PasswordHash, trainer.FullName, trainer.CreatedAt,
	).Scan(&trainer.ID)
	if pkg.IsUniqueViolationError(err) {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, fmt.Errorf("insert trainer: %w", err)
	}

	return &trainer, nil
}
