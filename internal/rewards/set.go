package rewards

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidSet = errors.New("invalid set")

type NewSet struct {
	WorkoutID  uuid.UUID
	ExerciseID uuid.UUID
	WeightKg   float64
	Reps       int
	RPE        *float64
}

func (s NewSet) Validate() error {
	if s.WorkoutID == uuid.Nil {
		return fmt.Errorf("%w: workout id missing", ErrInvalidSet)
	}
	if s.ExerciseID == uuid.Nil {
		return fmt.Errorf("%w: exercise id missing", ErrInvalidSet)
	}
	// no set ever has zero weight, so the first set on an exercise is always a max weight record
	if s.WeightKg <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidSet)
	}
	if s.Reps <= 0 {
		return fmt.Errorf("%w: reps must be positive", ErrInvalidSet)
	}
	if s.RPE != nil && (*s.RPE < 0 || *s.RPE > 10) {
		return fmt.Errorf("%w: rpe out of range", ErrInvalidSet)
	}
	return nil
}

// SetRecord is an inserted set. Sets are never updated, only deleted.
type SetRecord struct {
	ID         uuid.UUID `json:"id"`
	WorkoutID  uuid.UUID `json:"workoutId"`
	UserID     uuid.UUID `json:"userId"`
	ExerciseID uuid.UUID `json:"exerciseId"`
	WeightKg   float64   `json:"weightKg"`
	Reps       int       `json:"reps"`
	RPE        *float64  `json:"rpe,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (s SetRecord) VolumeKg() float64 {
	return s.WeightKg * float64(s.Reps)
}

type LoggedSet struct {
	Set     SetRecord    `json:"set"`
	Records RecordResult `json:"records"`
}
