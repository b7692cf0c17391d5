package rewards

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type Badge string

const (
	BadgeTitanVolume   Badge = "Titan Volume"
	BadgeHeavyLifter   Badge = "Heavy Lifter"
	BadgeMarathoner    Badge = "Marathoner"
	BadgeSpeedDemon    Badge = "Speed Demon"
	BadgeVolumeWarrior Badge = "Volume Warrior"
)

func (b Badge) String() string {
	return string(b)
}

// WorkoutAggregate is what the store knows about a workout at completion time.
// Missing sets are already coalesced to zero volume and zero count.
type WorkoutAggregate struct {
	WorkoutID     uuid.UUID
	UserID        uuid.UUID
	StartTime     *time.Time
	EndTime       *time.Time
	BodyWeightKg  *float64
	TotalVolumeKg float64
	SetCount      int
}

func (a WorkoutAggregate) IsCompleted() bool {
	return a.EndTime != nil
}

type CompletionScore struct {
	DurationMinutes float64 `json:"durationMinutes"`
	Calories        int     `json:"caloriesBurned"`
	Badges          []Badge `json:"badges"`
}

// DurationMinutes returns the whole minutes between start and now. Unknown
// start falls back to the policy duration, a start in the future counts as zero.
func DurationMinutes(start *time.Time, now time.Time, policy Policy) float64 {
	if start == nil {
		return policy.FallbackDurationMinutes
	}
	minutes := math.Trunc(now.Sub(*start).Minutes())
	if minutes < 0 {
		return 0
	}
	return minutes
}

// EstimateCalories is a MET based estimate:
//
//	intensity = (volume / minutes) / 100, or the fallback intensity for zero minutes
//	met       = min(base + intensity, max)
//	calories  = met * bodyWeight * hours
func EstimateCalories(durationMinutes, volumeKg float64, bodyWeightKg *float64, policy Policy) int {
	weight := policy.DefaultBodyWeightKg
	if bodyWeightKg != nil {
		weight = *bodyWeightKg
	}

	intensity := policy.FallbackIntensity
	if durationMinutes > 0 {
		intensity = (volumeKg / durationMinutes) / 100
	}

	met := math.Min(policy.BaseMET+intensity, policy.MaxMET)
	return int(met * weight * (durationMinutes / 60))
}

// EvaluateBadges returns the earned badges in evaluation order.
func EvaluateBadges(durationMinutes, volumeKg float64, setCount int, policy Policy) []Badge {
	badges := make([]Badge, 0, 3)

	if volumeKg >= policy.TitanVolumeKg {
		badges = append(badges, BadgeTitanVolume)
	} else if volumeKg >= policy.HeavyLifterKg {
		badges = append(badges, BadgeHeavyLifter)
	}

	if durationMinutes >= policy.MarathonMinutes {
		badges = append(badges, BadgeMarathoner)
	} else if durationMinutes <= policy.SpeedDemonMinutes && volumeKg > policy.SpeedDemonVolumeKg {
		badges = append(badges, BadgeSpeedDemon)
	}

	if setCount >= policy.VolumeWarriorSets {
		badges = append(badges, BadgeVolumeWarrior)
	}

	return badges
}

func ScoreCompletion(agg WorkoutAggregate, now time.Time, policy Policy) CompletionScore {
	duration := DurationMinutes(agg.StartTime, now, policy)
	return CompletionScore{
		DurationMinutes: duration,
		Calories:        EstimateCalories(duration, agg.TotalVolumeKg, agg.BodyWeightKg, policy),
		Badges:          EvaluateBadges(duration, agg.TotalVolumeKg, agg.SetCount, policy),
	}
}
