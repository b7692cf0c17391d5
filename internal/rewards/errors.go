package rewards

import (
	"errors"

	"github.com/2beens/titanlift/pkg"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	// ErrWorkoutAlreadyCompleted is returned when a completion finds the end time already set.
	// Callers may treat it as success of an earlier call.
	ErrWorkoutAlreadyCompleted = errors.New("workout already completed")
	// ErrStoreUnavailable matches every StoreError returned by a Store.
	ErrStoreUnavailable = pkg.ErrStoreUnavailable
)

type StoreError = pkg.StoreError

func StoreFailure(op string, err error) error {
	return pkg.StoreFailure(op, err)
}
