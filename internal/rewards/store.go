package rewards

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=rewards_test

// Store is the data access the engine depends on.
// "Not found" results are nil / empty with a nil error, every other failure is returned
// as an error (see StoreFailure) and must never be replaced by a zero value.
type Store interface {
	FetchActivityDates(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
	FetchPriorMaxWeight(ctx context.Context, userID, exerciseID uuid.UUID) (*float64, error)
	FetchPriorMaxRepsAtWeight(ctx context.Context, userID, exerciseID uuid.UUID, minWeightKg float64) (*int, error)
	FetchWorkoutOwner(ctx context.Context, workoutID uuid.UUID) (*uuid.UUID, error)
	FetchWorkoutAggregate(ctx context.Context, workoutID uuid.UUID) (*WorkoutAggregate, error)
	FetchVolumeByUser(ctx context.Context) ([]UserVolume, error)

	InsertSet(ctx context.Context, set NewSet) (*SetRecord, error)
	// LockUserExercise serializes set logging per user and exercise until the
	// surrounding transaction ends.
	LockUserExercise(ctx context.Context, userID, exerciseID uuid.UUID) error
	// PersistBadge is a no-op if the user already has the badge for the workout.
	PersistBadge(ctx context.Context, userID, workoutID uuid.UUID, badge Badge) error
	// PersistWorkoutCompletion sets end time and calories of a workout still in progress.
	// Returns ErrWorkoutAlreadyCompleted if the end time is already set.
	PersistWorkoutCompletion(ctx context.Context, workoutID uuid.UUID, endTime time.Time, calories int) error

	// WithinTx runs fn against a store bound to a single transaction,
	// committed if fn returns nil and rolled back otherwise.
	WithinTx(ctx context.Context, fn func(tx Store) error) error
}
