package users

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username taken")
	ErrInvalidUser   = errors.New("invalid user")
)

type User struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	CurrentWeightKg *float64  `json:"currentWeightKg,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type NewUser struct {
	Username        string   `json:"username"`
	CurrentWeightKg *float64 `json:"currentWeightKg,omitempty"`
}

func (u NewUser) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return errors.Join(ErrInvalidUser, errors.New("username empty"))
	}
	if u.CurrentWeightKg != nil && *u.CurrentWeightKg <= 0 {
		return errors.Join(ErrInvalidUser, errors.New("weight must be positive"))
	}
	return nil
}
