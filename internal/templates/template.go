package templates

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidTemplate  = errors.New("invalid template")
)

type Template struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type NewTemplate struct {
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
}

func (t NewTemplate) Validate() error {
	if t.UserID == uuid.Nil {
		return fmt.Errorf("%w: user id empty", ErrInvalidTemplate)
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name empty", ErrInvalidTemplate)
	}
	return nil
}

type ExerciseTarget struct {
	ExerciseID     uuid.UUID `json:"exerciseId"`
	OrderIndex     int       `json:"orderIndex"`
	TargetSets     int       `json:"targetSets"`
	TargetReps     int       `json:"targetReps"`
	TargetWeightKg *float64  `json:"targetWeightKg,omitempty"`
}

func (e ExerciseTarget) Validate() error {
	switch {
	case e.ExerciseID == uuid.Nil:
		return fmt.Errorf("%w: exercise id empty", ErrInvalidTemplate)
	case e.TargetSets <= 0:
		return fmt.Errorf("%w: target sets must be positive", ErrInvalidTemplate)
	case e.TargetReps <= 0:
		return fmt.Errorf("%w: target reps must be positive", ErrInvalidTemplate)
	case e.TargetWeightKg != nil && *e.TargetWeightKg < 0:
		return fmt.Errorf("%w: target weight negative", ErrInvalidTemplate)
	}
	return nil
}

type TemplateExercise struct {
	ID           uuid.UUID `json:"id"`
	TemplateID   uuid.UUID `json:"templateId"`
	ExerciseName string    `json:"exerciseName,omitempty"`
	ExerciseTarget
}

type TemplateWithExercises struct {
	Template  Template           `json:"template"`
	Exercises []TemplateExercise `json:"exercises"`
}
