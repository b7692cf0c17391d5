package rewards

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/titanlift/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Completion is the result of finishing a workout.
type Completion struct {
	WorkoutID uuid.UUID `json:"workoutId"`
	UserID    uuid.UUID `json:"userId"`
	EndTime   time.Time `json:"endTime"`
	CompletionScore
}

// Engine reads raw facts through the store, runs the calculators and persists
// what has to be persisted. It holds no state between calls.
type Engine struct {
	store  Store
	policy Policy
	now    func() time.Time
}

// NewEngine creates an engine. A nil now defaults to time.Now.
func NewEngine(store Store, policy Policy, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		store:  store,
		policy: policy,
		now:    now,
	}
}

func (e *Engine) Policy() Policy {
	return e.policy
}

// LogSet inserts the set and reports whether it is a personal record. Baselines are read
// before the insert, in the same transaction, while holding the user/exercise lock, so two
// concurrent sets on the same exercise can't both be compared against a stale baseline.
func (e *Engine) LogSet(ctx context.Context, set NewSet) (_ *LoggedSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "rewards.engine.logset")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("workout.id", set.WorkoutID.String()),
		attribute.String("exercise.id", set.ExerciseID.String()),
	)

	if err := set.Validate(); err != nil {
		return nil, err
	}

	var logged *LoggedSet
	err = e.store.WithinTx(ctx, func(tx Store) error {
		userID, err := tx.FetchWorkoutOwner(ctx, set.WorkoutID)
		if err != nil {
			return fmt.Errorf("fetch workout owner: %w", err)
		}
		if userID == nil {
			return ErrWorkoutNotFound
		}

		if err := tx.LockUserExercise(ctx, *userID, set.ExerciseID); err != nil {
			return fmt.Errorf("lock user exercise: %w", err)
		}

		priorMaxWeight, err := tx.FetchPriorMaxWeight(ctx, *userID, set.ExerciseID)
		if err != nil {
			return fmt.Errorf("fetch prior max weight: %w", err)
		}
		priorMaxReps, err := tx.FetchPriorMaxRepsAtWeight(ctx, *userID, set.ExerciseID, set.WeightKg)
		if err != nil {
			return fmt.Errorf("fetch prior max reps: %w", err)
		}

		record, err := tx.InsertSet(ctx, set)
		if err != nil {
			return fmt.Errorf("insert set: %w", err)
		}

		logged = &LoggedSet{
			Set:     *record,
			Records: DetectRecords(set.WeightKg, set.Reps, NewBaseline(priorMaxWeight, priorMaxReps), e.policy),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Bool("pr.weight", logged.Records.IsNewMaxWeight),
		attribute.Bool("pr.reps", logged.Records.IsNewRepPR),
	)
	return logged, nil
}

// CompleteWorkout sets the end time and calorie estimate of a workout and issues its badges,
// all in one transaction. Completing an already completed workout returns
// ErrWorkoutAlreadyCompleted and changes nothing.
func (e *Engine) CompleteWorkout(ctx context.Context, workoutID uuid.UUID) (_ *Completion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "rewards.engine.completeworkout")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("workout.id", workoutID.String()))

	var completion *Completion
	err = e.store.WithinTx(ctx, func(tx Store) error {
		agg, err := tx.FetchWorkoutAggregate(ctx, workoutID)
		if err != nil {
			return fmt.Errorf("fetch workout aggregate: %w", err)
		}
		if agg == nil {
			return ErrWorkoutNotFound
		}
		if agg.IsCompleted() {
			return ErrWorkoutAlreadyCompleted
		}

		endTime := e.now().UTC()
		score := ScoreCompletion(*agg, endTime, e.policy)

		if err := tx.PersistWorkoutCompletion(ctx, workoutID, endTime, score.Calories); err != nil {
			return fmt.Errorf("persist completion: %w", err)
		}
		for _, badge := range score.Badges {
			if err := tx.PersistBadge(ctx, agg.UserID, workoutID, badge); err != nil {
				return fmt.Errorf("persist badge [%s]: %w", badge, err)
			}
		}

		completion = &Completion{
			WorkoutID:       workoutID,
			UserID:          agg.UserID,
			EndTime:         endTime,
			CompletionScore: score,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debugf("workout %s completed: %v min, %d kcal, badges: %v",
		workoutID, completion.DurationMinutes, completion.Calories, completion.Badges)
	return completion, nil
}

// Streak returns the current and max streak of a user, looking back
// Policy.ActivityLookbackDays days.
func (e *Engine) Streak(ctx context.Context, userID uuid.UUID) (_ Streak, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "rewards.engine.streak")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	today := Day(e.now())
	dates, err := e.store.FetchActivityDates(ctx, userID, today.AddDate(0, 0, -e.policy.ActivityLookbackDays))
	if err != nil {
		return Streak{}, fmt.Errorf("fetch activity dates: %w", err)
	}
	return CalculateStreak(dates, today), nil
}

func (e *Engine) Leaderboard(ctx context.Context) (_ []LeaderboardEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "rewards.engine.leaderboard")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	volumes, err := e.store.FetchVolumeByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch volume by user: %w", err)
	}
	return RankLeaderboard(volumes, e.policy.LeaderboardSize), nil
}
