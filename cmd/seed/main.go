package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/traintower/backend/internal/appointments"
	"github.com/traintower/backend/internal/auth"
	"github.com/traintower/backend/internal/clients"
	"github.com/traintower/backend/internal/config"
	"github.com/traintower/backend/internal/db"
	"github.com/traintower/backend/internal/measurements"
	"github.com/traintower/backend/internal/programs"
	"github.com/traintower/backend/internal/tasks"
	"github.com/traintower/backend/pkg"
)

// Dev/local helper: creates the schema and fills the database with fake
// trainers, clients, a demo program tree, appointments and tasks.
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	createTables := flag.Bool("create-tables", false, "create tables before seeding")
	trainersCount := flag.Int("trainers", 2, "number of trainers to create")
	clientsCount := flag.Int("clients", 5, "number of clients per trainer")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	if *createTables {
		if err := createSchema(ctx, dbPool); err != nil {
			log.Fatalf("create schema: %s", err)
		}
		log.Println("schema created")
	}

	for i := 0; i < *trainersCount; i++ {
		if err := seedTrainer(ctx, dbPool, *clientsCount); err != nil {
			log.Fatalf("seed trainer: %s", err)
		}
	}

	log.Println("all done :)")
}

func seedTrainer(ctx context.Context, dbPool *pgxpool.Pool, clientsCount int) error {
	trainersRepo := auth.NewRepo(dbPool)
	clientsRepo := clients.NewRepo(dbPool)
	measurementsRepo := measurements.NewRepo(dbPool)
	appointmentsRepo := appointments.NewRepo(dbPool)
	tasksRepo := tasks.NewRepo(dbPool)
	programsRepo := programs.NewRepo(dbPool)

	passwordHash, err := pkg.HashPassword("sezam")
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	trainer, err := trainersRepo.Add(ctx, auth.Trainer{
		Username:     gofakeit.Username(),
		PasswordHash: passwordHash,
		FullName:     gofakeit.Name(),
	})
	if err != nil {
		return fmt.Errorf("add trainer: %w", err)
	}
	log.Printf("trainer [%s] created, id %d, password: sezam", trainer.Username, trainer.ID)

	var clientIDs []int
	for i := 0; i < clientsCount; i++ {
		email := gofakeit.Email()
		goalsNote := gofakeit.Sentence(8)
		client, err := clientsRepo.Add(ctx, clients.Client{
			TrainerID: trainer.ID,
			Name:      gofakeit.Name(),
			Email:     &email,
			GoalsNote: &goalsNote,
			Active:    true,
		})
		if err != nil {
			return fmt.Errorf("add client: %w", err)
		}
		clientIDs = append(clientIDs, client.ID)

		weight := gofakeit.Float64Range(55, 110)
		bodyFat := gofakeit.Float64Range(8, 35)
		if _, err := measurementsRepo.Add(ctx, trainer.ID, measurements.Measurement{
			ClientID:    client.ID,
			TakenAt:     time.Now().AddDate(0, 0, -rand.Intn(30)),
			WeightKg:    &weight,
			BodyFatPerc: &bodyFat,
		}); err != nil {
			return fmt.Errorf("add measurement: %w", err)
		}
	}

	if err := seedProgram(ctx, programsRepo, trainer.ID); err != nil {
		return fmt.Errorf("seed program: %w", err)
	}

	// a couple of upcoming appointments, one per client, no overlaps
	for i, clientID := range clientIDs {
		startsAt := time.Now().AddDate(0, 0, i+1).Truncate(time.Hour)
		if _, err := appointmentsRepo.Add(ctx, appointments.Appointment{
			TrainerID: trainer.ID,
			ClientID:  clientID,
			StartsAt:  startsAt,
			EndsAt:    startsAt.Add(time.Hour),
			Kind:      appointments.KindSession,
		}); err != nil {
			return fmt.Errorf("add appointment: %w", err)
		}
	}

	for i := 0; i < 3; i++ {
		dueDate := time.Now().AddDate(0, 0, rand.Intn(14))
		if _, err := tasksRepo.Add(ctx, tasks.Task{
			TrainerID: trainer.ID,
			Title:     gofakeit.Sentence(4),
			DueDate:   &dueDate,
			Status:    tasks.StatusPending,
			Priority:  tasks.PriorityMedium,
		}); err != nil {
			return fmt.Errorf("add task: %w", err)
		}
	}

	return nil
}

func seedProgram(ctx context.Context, repo *programs.Repo, trainerID int) error {
	programType := "strength"
	difficulty := "intermediate"
	program, err := repo.CreateProgram(ctx, programs.Program{
		TrainerID:       trainerID,
		Name:            gofakeit.Adjective() + " " + gofakeit.Noun() + " program",
		ProgramType:     &programType,
		DifficultyLevel: &difficulty,
		DurationWeeks:   4,
		Goals:           []string{"build strength", "improve technique"},
		EquipmentNeeded: []string{"barbell", "rack"},
		IsTemplate:      true,
	})
	if err != nil {
		return err
	}

	for weekNumber := 1; weekNumber <= program.DurationWeeks; weekNumber++ {
		week, err := repo.CreateWeek(ctx, programs.Week{
			ProgramID:  program.ID,
			WeekNumber: weekNumber,
			Name:       fmt.Sprintf("Week %d", weekNumber),
			IsDeload:   weekNumber == program.DurationWeeks,
		})
		if err != nil {
			return err
		}

		for dayNumber := 1; dayNumber <= 3; dayNumber++ {
			workoutType := "full_body"
			duration := 60
			workout, err := repo.CreateWorkout(ctx, programs.Workout{
				ProgramWeekID:     week.ID,
				DayNumber:         dayNumber,
				Name:              fmt.Sprintf("Day %d", dayNumber),
				WorkoutType:       &workoutType,
				EstimatedDuration: &duration,
			})
			if err != nil {
				return err
			}

			for orderIndex, exerciseID := range []string{"back-squat", "bench-press", "deadlift"} {
				exercise, err := repo.CreateWorkoutExercise(ctx, programs.WorkoutExercise{
					WorkoutID:  workout.ID,
					ExerciseID: exerciseID,
					OrderIndex: orderIndex,
					SetsConfig: map[string]any{"scheme": "top set + backoffs"},
				})
				if err != nil {
					return err
				}

				reps := "5"
				restSeconds := 180
				for setNumber := 1; setNumber <= 3; setNumber++ {
					if _, err := repo.CreateExerciseConfiguration(ctx, programs.ExerciseConfiguration{
						WorkoutExerciseID: exercise.ID,
						SetNumber:         setNumber,
						SetType:           "working",
						Reps:              &reps,
						RestSeconds:       &restSeconds,
					}); err != nil {
						return err
					}
				}
			}
		}
	}

	log.Printf("program [%s] seeded, id %d", program.Name, program.ID)
	return nil
}

func createSchema(ctx context.Context, dbPool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS trainer (
			id SERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			full_name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS client (
			id SERIAL PRIMARY KEY,
			trainer_id INTEGER NOT NULL REFERENCES trainer (id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			email TEXT,
			goals_note TEXT,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS measurement (
			id SERIAL PRIMARY KEY,
			client_id INTEGER NOT NULL REFERENCES client (id) ON DELETE CASCADE,
			taken_at TIMESTAMPTZ NOT NULL,
			weight_kg DOUBLE PRECISION,
			body_fat_perc DOUBLE PRECISION,
			notes TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS program (
			id SERIAL PRIMARY KEY,
			trainer_id INTEGER NOT NULL REFERENCES trainer (id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT,
			program_type TEXT,
			difficulty_level TEXT,
			duration_weeks INTEGER NOT NULL DEFAULT 0,
			goals TEXT[],
			equipment_needed TEXT[],
			is_template BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS program_week (
			id SERIAL PRIMARY KEY,
			program_id INTEGER NOT NULL REFERENCES program (id) ON DELETE CASCADE,
			week_number INTEGER NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			is_deload BOOLEAN NOT NULL DEFAULT FALSE
		);`,
		`CREATE TABLE IF NOT EXISTS workout (
			id SERIAL PRIMARY KEY,
			program_week_id INTEGER NOT NULL REFERENCES program_week (id) ON DELETE CASCADE,
			day_number INTEGER NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			workout_type TEXT,
			estimated_duration INTEGER,
			is_rest_day BOOLEAN NOT NULL DEFAULT FALSE
		);`,
		`CREATE TABLE IF NOT EXISTS workout_exercise (
			id SERIAL PRIMARY KEY,
			workout_id INTEGER NOT NULL REFERENCES workout (id) ON DELETE CASCADE,
			exercise_id TEXT NOT NULL,
			order_index INTEGER NOT NULL,
			superset_group TEXT,
			sets_config JSONB NOT NULL DEFAULT '{}',
			notes TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS exercise_configuration (
			id SERIAL PRIMARY KEY,
			workout_exercise_id INTEGER NOT NULL REFERENCES workout_exercise (id) ON DELETE CASCADE,
			set_number INTEGER NOT NULL,
			set_type TEXT NOT NULL,
			reps TEXT,
			weight_guidance TEXT,
			rest_seconds INTEGER,
			tempo TEXT,
			rpe DOUBLE PRECISION,
			rir INTEGER,
			notes TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS appointment (
			id SERIAL PRIMARY KEY,
			trainer_id INTEGER NOT NULL REFERENCES trainer (id) ON DELETE CASCADE,
			client_id INTEGER NOT NULL REFERENCES client (id) ON DELETE CASCADE,
			starts_at TIMESTAMPTZ NOT NULL,
			ends_at TIMESTAMPTZ NOT NULL,
			kind TEXT NOT NULL DEFAULT 'session',
			notes TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS availability_window (
			id SERIAL PRIMARY KEY,
			trainer_id INTEGER NOT NULL REFERENCES trainer (id) ON DELETE CASCADE,
			weekday INTEGER NOT NULL,
			start_minute INTEGER NOT NULL,
			end_minute INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS task (
			id SERIAL PRIMARY KEY,
			trainer_id INTEGER NOT NULL REFERENCES trainer (id) ON DELETE CASCADE,
			client_id INTEGER REFERENCES client (id) ON DELETE SET NULL,
			title TEXT NOT NULL,
			description TEXT,
			due_date TIMESTAMPTZ,
			status TEXT NOT NULL DEFAULT 'pending',
			priority TEXT NOT NULL DEFAULT 'medium',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
	}

	for _, statement := range statements {
		if _, err := dbPool.Exec(ctx, statement); err != nil {
			return fmt.Errorf("exec schema statement: %w", err)
		}
	}

	return nil
}
