package programs

import (
	"errors"
	"fmt"
	"time"
)

var ErrProgramNotFound = errors.New("program not found")

// ValidationError is returned for malformed input, before any write happens.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Program is the root of the workout program aggregate:
// Program -> Weeks -> Workouts -> WorkoutExercises -> ExerciseConfigurations.
type Program struct {
	ID              int       `json:"id"`
	TrainerID       int       `json:"trainerId"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	ProgramType     *string   `json:"programType"`
	DifficultyLevel *string   `json:"difficultyLevel"`
	DurationWeeks   int       `json:"durationWeeks"`
	Goals           []string  `json:"goals"`
	EquipmentNeeded []string  `json:"equipmentNeeded"`
	IsTemplate      bool      `json:"isTemplate"`
	CreatedAt       time.Time `json:"createdAt"`

	Weeks []Week `json:"weeks"`
}

type Week struct {
	ID          int     `json:"id"`
	ProgramID   int     `json:"programId"`
	WeekNumber  int     `json:"weekNumber"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsDeload    bool    `json:"isDeload"`

	Workouts []Workout `json:"workouts"`
}

type Workout struct {
	ID                int     `json:"id"`
	ProgramWeekID     int     `json:"programWeekId"`
	DayNumber         int     `json:"dayNumber"`
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	WorkoutType       *string `json:"workoutType"`
	EstimatedDuration *int    `json:"estimatedDuration"`
	IsRestDay         bool    `json:"isRestDay"`

	Exercises []WorkoutExercise `json:"exercises"`
}

// WorkoutExercise references a catalog exercise by id; the catalog entry
// itself is never owned or duplicated by the program aggregate.
type WorkoutExercise struct {
	ID            int     `json:"id"`
	WorkoutID     int     `json:"workoutId"`
	ExerciseID    string  `json:"exerciseId"`
	OrderIndex    int     `json:"orderIndex"`
	SupersetGroup *string `json:"supersetGroup"`
	// SetsConfig is a free-form, caller-defined object, stored as JSONB
	SetsConfig map[string]any `json:"setsConfig"`
	Notes      *string        `json:"notes"`

	Configurations []ExerciseConfiguration `json:"configurations"`
}

type ExerciseConfiguration struct {
	ID                int      `json:"id"`
	WorkoutExerciseID int      `json:"workoutExerciseId"`
	SetNumber         int      `json:"setNumber"`
	SetType           string   `json:"setType"`
	Reps              *string  `json:"reps"`
	WeightGuidance    *string  `json:"weightGuidance"`
	RestSeconds       *int     `json:"restSeconds"`
	Tempo             *string  `json:"tempo"`
	RPE               *float64 `json:"rpe"`
	RIR               *int     `json:"rir"`
	Notes             *string  `json:"notes"`
}
