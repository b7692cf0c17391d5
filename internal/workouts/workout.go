package workouts

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidWorkout = errors.New("invalid workout")
	ErrSetNotFound    = errors.New("set not found")
)

type Workout struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"userId"`
	TemplateID     *uuid.UUID `json:"templateId,omitempty"`
	Name           *string    `json:"name,omitempty"`
	StartTime      *time.Time `json:"startTime"`
	EndTime        *time.Time `json:"endTime,omitempty"`
	CaloriesBurned *int       `json:"caloriesBurned,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// NewWorkout is a workout to be started. Start time defaults to now.
type NewWorkout struct {
	UserID     uuid.UUID  `json:"userId"`
	Name       *string    `json:"name,omitempty"`
	StartTime  *time.Time `json:"startTime,omitempty"`
	TemplateID *uuid.UUID `json:"templateId,omitempty"`
}

type HistoryEntry struct {
	ID            uuid.UUID  `json:"id"`
	Name          *string    `json:"name,omitempty"`
	StartTime     *time.Time `json:"startTime"`
	EndTime       *time.Time `json:"endTime"`
	TotalVolumeKg float64    `json:"totalVolumeKg"`
	ExerciseCount int        `json:"exerciseCount"`
}
