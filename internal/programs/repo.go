package programs

import (
	"context"
	"encoding/json"
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

func (r *Repo) CreateProgram(ctx context.Context, program Program) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if program.CreatedAt.IsZero() {
		program.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO program
				(trainer_id, name, description, program_type, difficulty_level,
				 duration_weeks, goals, equipment_needed, is_template, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id;`,
		program.TrainerID, program.Name, program.Description, program.ProgramType, program.DifficultyLevel,
		program.DurationWeeks, program.Goals, program.EquipmentNeeded, program.IsTemplate, program.CreatedAt,
	).Scan(&program.ID)
	if err != nil {
		return nil, fmt.Errorf("insert program: %w", err)
	}

	span.SetAttributes(attribute.Int("program.id", program.ID))
	return &program, nil
}

func (r *Repo) GetProgram(ctx context.Context, id, trainerID int) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var p Program
	err = r.db.QueryRow(
		ctx,
		`SELECT id, trainer_id, name, description, program_type, difficulty_level,
				duration_weeks, goals, equipment_needed, is_template, created_at
			FROM program
			WHERE id = $1 AND trainer_id = $2;`,
		id, trainerID,
	).Scan(
		&p.ID, &p.TrainerID, &p.Name, &p.Description, &p.ProgramType, &p.DifficultyLevel,
		&p.DurationWeeks, &p.Goals, &p.EquipmentNeeded, &p.IsTemplate, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProgramNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get program: %w", err)
	}

	return &p, nil
}

// GetProgramTree loads the whole aggregate, children ordered the way they
// are presented: weeks by week number, workouts by day number, exercises
// by order index, set configurations by set number.
func (r *Repo) GetProgramTree(ctx context.Context, id, trainerID int) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.getTree")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	program, err := r.GetProgram(ctx, id, trainerID)
	if err != nil {
		return nil, err
	}

	weeks, err := r.weeksOfProgram(ctx, program.ID)
	if err != nil {
		return nil, fmt.Errorf("load weeks: %w", err)
	}

	workoutsByWeek, err := r.workoutsOfProgram(ctx, program.ID)
	if err != nil {
		return nil, fmt.Errorf("load workouts: %w", err)
	}

	exercisesByWorkout, err := r.exercisesOfProgram(ctx, program.ID)
	if err != nil {
		return nil, fmt.Errorf("load exercises: %w", err)
	}

	configsByExercise, err := r.configurationsOfProgram(ctx, program.ID)
	if err != nil {
		return nil, fmt.Errorf("load configurations: %w", err)
	}

	// assemble bottom-up
	for weekIdx := range weeks {
		week := &weeks[weekIdx]
		week.Workouts = workoutsByWeek[week.ID]
		if week.Workouts == nil {
			week.Workouts = make([]Workout, 0)
		}
		for workoutIdx := range week.Workouts {
			workout := &week.Workouts[workoutIdx]
			workout.Exercises = exercisesByWorkout[workout.ID]
			if workout.Exercises == nil {
				workout.Exercises = make([]WorkoutExercise, 0)
			}
			for exerciseIdx := range workout.Exercises {
				exercise := &workout.Exercises[exerciseIdx]
				exercise.Configurations = configsByExercise[exercise.ID]
				if exercise.Configurations == nil {
					exercise.Configurations = make([]ExerciseConfiguration, 0)
				}
			}
		}
	}

	program.Weeks = weeks
	return program, nil
}

func (r *Repo) ListPrograms(ctx context.Context, trainerID int) (_ []Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, trainer_id, name, description, program_type, difficulty_level,
				duration_weeks, goals, equipment_needed, is_template, created_at
			FROM program
			WHERE trainer_id = $1
			ORDER BY created_at DESC;`,
		trainerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	programs := make([]Program, 0)
	for rows.Next() {
		var p Program
		if err := rows.Scan(
			&p.ID, &p.TrainerID, &p.Name, &p.Description, &p.ProgramType, &p.DifficultyLevel,
			&p.DurationWeeks, &p.Goals, &p.EquipmentNeeded, &p.IsTemplate, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		programs = append(programs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return programs, nil
}

func (r *Repo) UpdateProgram(ctx context.Context, program *Program) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", program.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE program SET
				name = $1, description = $2, program_type = $3, difficulty_level = $4,
				duration_weeks = $5, goals = $6, equipment_needed = $7, is_template = $8
			WHERE id = $9 AND trainer_id = $10;`,
		program.Name, program.Description, program.ProgramType, program.DifficultyLevel,
		program.DurationWeeks, program.Goals, program.EquipmentNeeded, program.IsTemplate,
		program.ID, program.TrainerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProgramNotFound
	}

	return nil
}

func (r *Repo) DeleteProgram(ctx context.Context, id, trainerID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	// children go with it, the schema cascades the delete down the tree
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM program WHERE id = $1 AND trainer_id = $2;`,
		id, trainerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProgramNotFound
	}

	return nil
}

func (r *Repo) CreateWeek(ctx context.Context, week Week) (_ *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.createWeek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO program_week (program_id, week_number, name, description, is_deload)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		week.ProgramID, week.WeekNumber, week.Name, week.Description, week.IsDeload,
	).Scan(&week.ID)
	if err != nil {
		return nil, fmt.Errorf("insert week: %w", err)
	}

	return &week, nil
}

func (r *Repo) CreateWorkout(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.createWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout
				(program_week_id, day_number, name, description, workout_type, estimated_duration, is_rest_day)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		workout.ProgramWeekID, workout.DayNumber, workout.Name, workout.Description,
		workout.WorkoutType, workout.EstimatedDuration, workout.IsRestDay,
	).Scan(&workout.ID)
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	return &workout, nil
}

func (r *Repo) CreateWorkoutExercise(ctx context.Context, exercise WorkoutExercise) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.createExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	setsConfig := exercise.SetsConfig
	if setsConfig == nil {
		setsConfig = map[string]any{}
	}
	setsConfigJson, err := json.Marshal(setsConfig)
	if err != nil {
		return nil, fmt.Errorf("marshal sets config: %w", err)
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_exercise
				(workout_id, exercise_id, order_index, superset_group, sets_config, notes)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		exercise.WorkoutID, exercise.ExerciseID, exercise.OrderIndex,
		exercise.SupersetGroup, setsConfigJson, exercise.Notes,
	).Scan(&exercise.ID)
	if err != nil {
		return nil, fmt.Errorf("insert workout exercise: %w", err)
	}

	exercise.SetsConfig = setsConfig
	return &exercise, nil
}

func (r *Repo) CreateExerciseConfiguration(ctx context.Context, config ExerciseConfiguration) (_ *ExerciseConfiguration, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.createConfiguration")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO exercise_configuration
				(workout_exercise_id, set_number, set_type, reps, weight_guidance,
				 rest_seconds, tempo, rpe, rir, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id;`,
		config.WorkoutExerciseID, config.SetNumber, config.SetType, config.Reps, config.WeightGuidance,
		config.RestSeconds, config.Tempo, config.RPE, config.RIR, config.Notes,
	).Scan(&config.ID)
	if err != nil {
		return nil, fmt.Errorf("insert exercise configuration: %w", err)
	}

	return &config, nil
}

func (r *Repo) weeksOfProgram(ctx context.Context, programID int) ([]Week, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, program_id, week_number, name, description, is_deload
			FROM program_week
			WHERE program_id = $1
			ORDER BY week_number;`,
		programID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	weeks := make([]Week, 0)
	for rows.Next() {
		var w Week
		if err := rows.Scan(&w.ID, &w.ProgramID, &w.WeekNumber, &w.Name, &w.Description, &w.IsDeload); err != nil {
			return nil, err
		}
		weeks = append(weeks, w)
	}
	return weeks, rows.Err()
}

func (r *Repo) workoutsOfProgram(ctx context.Context, programID int) (map[int][]Workout, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT w.id, w.program_week_id, w.day_number, w.name, w.description,
				w.workout_type, w.estimated_duration, w.is_rest_day
			FROM workout w
			JOIN program_week pw ON w.program_week_id = pw.id
			WHERE pw.program_id = $1
			ORDER BY pw.week_number, w.day_number;`,
		programID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workoutsByWeek := make(map[int][]Workout)
	for rows.Next() {
		var w Workout
		if err := rows.Scan(
			&w.ID, &w.ProgramWeekID, &w.DayNumber, &w.Name, &w.Description,
			&w.WorkoutType, &w.EstimatedDuration, &w.IsRestDay,
		); err != nil {
			return nil, err
		}
		workoutsByWeek[w.ProgramWeekID] = append(workoutsByWeek[w.ProgramWeekID], w)
	}
	return workoutsByWeek, rows.Err()
}

func (r *Repo) exercisesOfProgram(ctx context.Context, programID int) (map[int][]WorkoutExercise, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT we.id, we.workout_id, we.exercise_id, we.order_index, we.superset_group,
				we.sets_config, we.notes
			FROM workout_exercise we
			JOIN workout w ON we.workout_id = w.id
			JOIN program_week pw ON w.program_week_id = pw.id
			WHERE pw.program_id = $1
			ORDER BY pw.week_number, w.day_number, we.order_index;`,
		programID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercisesByWorkout := make(map[int][]WorkoutExercise)
	for rows.Next() {
		var e WorkoutExercise
		var setsConfigBytes []byte
		if err := rows.Scan(
			&e.ID, &e.WorkoutID, &e.ExerciseID, &e.OrderIndex, &e.SupersetGroup,
			&setsConfigBytes, &e.Notes,
		); err != nil {
			return nil, err
		}

		e.SetsConfig = map[string]any{}
		if len(setsConfigBytes) > 0 {
			if err := json.Unmarshal(setsConfigBytes, &e.SetsConfig); err != nil {
				return nil, fmt.Errorf("unmarshal sets config for exercise %d: %w", e.ID, err)
			}
		}

		exercisesByWorkout[e.WorkoutID] = append(exercisesByWorkout[e.WorkoutID], e)
	}
	return exercisesByWorkout, rows.Err()
}

func (r *Repo) configurationsOfProgram(ctx context.Context, programID int) (map[int][]ExerciseConfiguration, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT ec.id, ec.workout_exercise_id, ec.set_number, ec.set_type, ec.reps,
				ec.weight_guidance, ec.rest_seconds, ec.tempo, ec.rpe, ec.rir, ec.notes
			FROM exercise_configuration ec
			JOIN workout_exercise we ON ec.workout_exercise_id = we.id
			JOIN workout w ON we.workout_id = w.id
			JOIN program_week pw ON w.program_week_id = pw.id
			WHERE pw.program_id = $1
			ORDER BY pw.week_number, w.day_number, we.order_index, ec.set_number;`,
		programID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	configsByExercise := make(map[int][]ExerciseConfiguration)
	for rows.Next() {
		var c ExerciseConfiguration
		if err := rows.Scan(
			&c.ID, &c.WorkoutExerciseID, &c.SetNumber, &c.SetType, &c.Reps,
			&c.WeightGuidance, &c.RestSeconds, &c.Tempo, &c.RPE, &c.RIR, &c.Notes,
		); err != nil {
			return nil, err
		}
		configsByExercise[c.WorkoutExerciseID] = append(configsByExercise[c.WorkoutExerciseID], c)
	}
	return configsByExercise, rows.Err()
}
