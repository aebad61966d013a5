package programs

import (
	"context"
	"fmt"
	"strings"

	"github.com/traintower/backend/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=programs_test

type programsRepo interface {
	CreateProgram(ctx context.Context, program Program) (*Program, error)
	GetProgram(ctx context.Context, id, trainerID int) (*Program, error)
	GetProgramTree(ctx context.Context, id, trainerID int) (*Program, error)
	ListPrograms(ctx context.Context, trainerID int) ([]Program, error)
	UpdateProgram(ctx context.Context, program *Program) error
	DeleteProgram(ctx context.Context, id, trainerID int) error
	CreateWeek(ctx context.Context, week Week) (*Week, error)
	CreateWorkout(ctx context.Context, workout Workout) (*Workout, error)
	CreateWorkoutExercise(ctx context.Context, exercise WorkoutExercise) (*WorkoutExercise, error)
	CreateExerciseConfiguration(ctx context.Context, config ExerciseConfiguration) (*ExerciseConfiguration, error)
}

// Service copies whole program aggregates. Each call creates fresh rows
// for every node of the tree, so it is not idempotent and never retried.
type Service struct {
	repo programsRepo
}

func NewService(repo programsRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// Duplicate creates an independent copy of the program and its whole subtree,
// owned by the given trainer. The copy is created depth-first, parent before
// child, so that every child row can reference its freshly created parent.
func (s *Service) Duplicate(ctx context.Context, programID, trainerID int, nameOverride *string) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.duplicate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("program.id", programID))

	// fail fast, before any reads or writes
	if nameOverride != nil && strings.TrimSpace(*nameOverride) == "" {
		return nil, &ValidationError{Field: "name", Message: "name must not be empty"}
	}

	source, err := s.repo.GetProgramTree(ctx, programID, trainerID)
	if err != nil {
		return nil, fmt.Errorf("load source program: %w", err)
	}

	newProgram, err := s.repo.CreateProgram(ctx, Program{
		TrainerID:       trainerID,
		Name:            duplicateName(source.Name, nameOverride),
		Description:     source.Description,
		ProgramType:     source.ProgramType,
		DifficultyLevel: source.DifficultyLevel,
		DurationWeeks:   source.DurationWeeks,
		Goals:           source.Goals,
		EquipmentNeeded: source.EquipmentNeeded,
		IsTemplate:      false,
	})
	if err != nil {
		return nil, fmt.Errorf("create program copy: %w", err)
	}

	span.SetAttributes(attribute.Int("program.copy.id", newProgram.ID))

	if err := s.copyWeeks(ctx, source.Weeks, newProgram.ID); err != nil {
		// best effort cleanup of the partial copy; deleting the root
		// cascades to whatever part of the subtree was already created
		if delErr := s.repo.DeleteProgram(ctx, newProgram.ID, trainerID); delErr != nil {
			log.Errorf("cleanup partial copy of program %d (new id %d): %s", programID, newProgram.ID, delErr)
		}
		return nil, fmt.Errorf("copy program tree: %w", err)
	}

	duplicated, err := s.repo.GetProgramTree(ctx, newProgram.ID, trainerID)
	if err != nil {
		return nil, fmt.Errorf("reload duplicated program %d: %w", newProgram.ID, err)
	}

	return duplicated, nil
}

// duplicateName resolves the display name of the copy: a non-empty override
// wins (trimmed), otherwise the source name with a " (Copy)" suffix.
func duplicateName(sourceName string, override *string) string {
	if override != nil {
		if trimmed := strings.TrimSpace(*override); trimmed != "" {
			return trimmed
		}
	}
	return fmt.Sprintf("%s (Copy)", sourceName)
}

func (s *Service) copyWeeks(ctx context.Context, weeks []Week, newProgramID int) error {
	for _, week := range weeks {
		newWeek, err := s.repo.CreateWeek(ctx, Week{
			ProgramID:   newProgramID,
			WeekNumber:  week.WeekNumber,
			Name:        week.Name,
			Description: week.Description,
			IsDeload:    week.IsDeload,
		})
		if err != nil {
			return fmt.Errorf("create week %d: %w", week.WeekNumber, err)
		}

		for _, workout := range week.Workouts {
			newWorkout, err := s.repo.CreateWorkout(ctx, Workout{
				ProgramWeekID:     newWeek.ID,
				DayNumber:         workout.DayNumber,
				Name:              workout.Name,
				Description:       workout.Description,
				WorkoutType:       workout.WorkoutType,
				EstimatedDuration: workout.EstimatedDuration,
				IsRestDay:         workout.IsRestDay,
			})
			if err != nil {
				return fmt.Errorf("create workout day %d of week %d: %w", workout.DayNumber, week.WeekNumber, err)
			}

			for _, exercise := range workout.Exercises {
				setsConfig := exercise.SetsConfig
				if setsConfig == nil {
					// never stored as null
					setsConfig = map[string]any{}
				}

				newExercise, err := s.repo.CreateWorkoutExercise(ctx, WorkoutExercise{
					WorkoutID:     newWorkout.ID,
					ExerciseID:    exercise.ExerciseID,
					OrderIndex:    exercise.OrderIndex,
					SupersetGroup: exercise.SupersetGroup,
					SetsConfig:    setsConfig,
					Notes:         exercise.Notes,
				})
				if err != nil {
					return fmt.Errorf("create exercise %s: %w", exercise.ExerciseID, err)
				}

				// an exercise without configurations copies with none
				for _, config := range exercise.Configurations {
					if _, err := s.repo.CreateExerciseConfiguration(ctx, ExerciseConfiguration{
						WorkoutExerciseID: newExercise.ID,
						SetNumber:         config.SetNumber,
						SetType:           config.SetType,
						Reps:              config.Reps,
						WeightGuidance:    config.WeightGuidance,
						RestSeconds:       config.RestSeconds,
						Tempo:             config.Tempo,
						RPE:               config.RPE,
						RIR:               config.RIR,
						Notes:             config.Notes,
					}); err != nil {
						return fmt.Errorf("create set %d of exercise %s: %w", config.SetNumber, exercise.ExerciseID, err)
					}
				}
			}
		}
	}

	return nil
}
