package profile

import (
	"errors"
	"time"

	"github.com/2beens/titanlift/internal/rewards"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// ActivityLogDays is how far back the activity log reaches.
const ActivityLogDays = 365

type ActivityDay struct {
	Date     string  `json:"date"`
	VolumeKg float64 `json:"volumeKg"`
}

type UserStats struct {
	UserID          uuid.UUID
	Username        string
	CurrentWeightKg *float64
	JoinDate        time.Time
	TotalWorkouts   int
	TotalVolumeKg   float64
}

type Profile struct {
	UserID          uuid.UUID     `json:"userId"`
	Username        string        `json:"username"`
	CurrentWeightKg *float64      `json:"currentWeightKg,omitempty"`
	JoinDate        time.Time     `json:"joinDate"`
	TotalWorkouts   int           `json:"totalWorkouts"`
	TotalVolumeKg   float64       `json:"totalVolumeKg"`
	ActivityLog     []ActivityDay `json:"activityLog"`
	rewards.Streak
}
