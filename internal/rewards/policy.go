package rewards

// Policy holds the constants the reward calculations depend on.
// Zero values are never valid, use DefaultPolicy and override from config.
type Policy struct {
	// DefaultBodyWeightKg is used by the calorie estimate when the user never reported a weight.
	DefaultBodyWeightKg float64
	// FallbackDurationMinutes is the workout duration assumed when the start time is unknown.
	FallbackDurationMinutes float64
	// FallbackIntensity replaces volume/minute for zero-length workouts.
	FallbackIntensity float64
	BaseMET           float64
	MaxMET            float64
	// RepPRMinReps: a rep record only counts above this many reps.
	RepPRMinReps         int
	LeaderboardSize      int
	ActivityLookbackDays int

	TitanVolumeKg      float64
	HeavyLifterKg      float64
	MarathonMinutes    float64
	SpeedDemonMinutes  float64
	SpeedDemonVolumeKg float64
	VolumeWarriorSets  int
}

func DefaultPolicy() Policy {
	return Policy{
		DefaultBodyWeightKg:     75,
		FallbackDurationMinutes: 60,
		FallbackIntensity:       1.0,
		BaseMET:                 3.0,
		MaxMET:                  8.0,
		RepPRMinReps:            5,
		LeaderboardSize:         10,
		ActivityLookbackDays:    365,

		TitanVolumeKg:      10000,
		HeavyLifterKg:      5000,
		MarathonMinutes:    90,
		SpeedDemonMinutes:  30,
		SpeedDemonVolumeKg: 2000,
		VolumeWarriorSets:  20,
	}
}
