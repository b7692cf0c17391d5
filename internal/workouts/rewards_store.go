package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/titanlift/internal/db"
	"github.com/2beens/titanlift/internal/rewards"
	"github.com/2beens/titanlift/internal/telemetry/tracing"
	"github.com/2beens/titanlift/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

var _ rewards.Store = (*Repo)(nil)

// FetchActivityDates returns the distinct UTC dates since the given time on which the
// user logged at least one set.
func (r *Repo) FetchActivityDates(ctx context.Context, userID uuid.UUID, since time.Time) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rewards.activitydates")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user.id", userID.String()),
		attribute.String("since", since.String()),
	)

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT (w.start_time AT TIME ZONE 'UTC')::date AS work_date
		FROM workouts w
		JOIN sets s ON s.workout_id = w.id
		WHERE w.user_id = $1 AND w.start_time >= $2
		ORDER BY work_date
	`, userID, since)
	if err != nil {
		return nil, rewards.StoreFailure("fetch.activity.dates", err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, rewards.StoreFailure("fetch.activity.dates.scan", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, rewards.StoreFailure("fetch.activity.dates", err)
	}

	return dates, nil
}

func (r *Repo) FetchPriorMaxWeight(ctx context.Context, userID, exerciseID uuid.UUID) (_ *float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rewards.priormaxweight")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var maxWeight *float64
	err = r.db.QueryRow(ctx, `
		SELECT MAX(s.weight_kg)::FLOAT8
		FROM sets s
		JOIN workouts w ON s.workout_id = w.id
		WHERE s.exercise_id = $1 AND w.user_id = $2
	`, exerciseID, userID).Scan(&maxWeight)
	if err != nil {
		return nil, rewards.StoreFailure("fetch.prior.max.weight", err)
	}

	return maxWeight, nil
}

func (r *Repo) FetchPriorMaxRepsAtWeight(ctx context.Context, userID, exerciseID uuid.UUID, minWeightKg float64) (_ *int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rewards.priormaxreps")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var maxReps *int
	err = r.db.QueryRow(ctx, `
		SELECT MAX(s.reps)
		FROM sets s
		JOIN workouts w ON s.workout_id = w.id
		WHERE s.exercise_id = $1
		  AND w.user_id = $2
		  AND s.weight_kg >= $3
	`, exerciseID, userID, minWeightKg).Scan(&maxReps)
	if err != nil {
		return nil, rewards.StoreFailure("fetch.prior.max.reps", err)
	}

	return maxReps, nil
}

func (r *Repo) FetchWorkoutOwner(ctx context.Context, workoutID uuid.UUID) (_ *uuid.UUID, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rewards.workoutowner")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var userID uuid.UUID
	err = r.db.QueryRow(ctx, `SELECT user_id FROM workouts WHERE id = $1`, workoutID).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, rewards.StoreFailure("fetch.workout.owner", err)
	}

	return &userID, nil
}

func (r *Repo) FetchWorkoutAggregate(ctx context.Context, workoutID uuid.UUID) (_ *rewards.WorkoutAggregate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rewards.workoutaggregate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("workout.id", workoutID.String()))

	agg := &rewards.WorkoutAggregate{}
	err = r.db.QueryRow(ctx, `
		SELECT
			w.id,
			w.user_id,
			w.start_time,
			w.end_time,
			u.current_weight_kg,
			COALESCE(SUM(s.weight_kg * s.reps), 0)::FLOAT8 AS volume,
			COUNT(s.id) AS set_count
		FROM workouts w
		JOIN users u ON w.user_id = u.id
		LEFT JOIN sets s ON w.id = s.workout_id
		WHERE w.id = $1
		GROUP BY w.id, u.current_weight_kg
	`, workoutID).Scan(
		&agg.WorkoutID,
		&agg.UserID,
		&agg.StartTime,
		&agg.EndTime,
		&agg.BodyWeightKg,
		&agg.TotalVolumeKg,
		&agg.SetCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, rewards.StoreFailure("fetch.workout.aggregate", err)
	}

	return agg, nil
}

// FetchVolumeByUser returns the lifetime volume of every user, users without sets included.
func (r *Repo) FetchVolumeByUser(ctx context.Context) (_ []rewards.UserVolume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rewards.volumebyuser")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT
			u.id,
			u.username,
			COALESCE(SUM(s.weight_kg * s.reps), 0)::FLOAT8 AS total_volume_kg
		FROM users u
		LEFT JOIN workouts w ON u.id = w.user_id
		LEFT JOIN sets s ON w.id = s.workout_id
		GROUP BY u.id, u.username
	`)
	if err != nil {
		return nil, rewards.StoreFailure("fetch.volume.by.user", err)
	}
	defer rows.Close()

	volumes := make([]rewards.UserVolume, 0)
	for rows.Next() {
		var v rewards.UserVolume
		if err := rows.Scan(&v.UserID, &v.Username, &v.TotalVolumeKg); err != nil {
			return nil, rewards.StoreFailure("fetch.volume.by.user.scan", err)
		}
		volumes = append(volumes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, rewards.StoreFailure("fetch.volume.by.user", err)
	}

	span.SetAttributes(attribute.Int("users", len(volumes)))
	return volumes, nil
}

func (r *Repo) InsertSet(ctx context.Context, set rewards.NewSet) (_ *rewards.SetRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rewards.insertset")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	inserted := &rewards.SetRecord{}
	err = r.db.QueryRow(ctx, `
		WITH inserted AS (
			INSERT INTO sets (workout_id, exercise_id, weight_kg, reps, rpe)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, workout_id, exercise_id, weight_kg, reps, rpe, created_at
		)
		SELECT i.id, i.workout_id, w.user_id, i.exercise_id, i.weight_kg, i.reps, i.rpe, i.created_at
		FROM inserted i
		JOIN workouts w ON w.id = i.workout_id
	`,
		set.WorkoutID,
		set.ExerciseID,
		set.WeightKg,
		set.Reps,
		set.RPE,
	).Scan(
		&inserted.ID,
		&inserted.WorkoutID,
		&inserted.UserID,
		&inserted.ExerciseID,
		&inserted.WeightKg,
		&inserted.Reps,
		&inserted.RPE,
		&inserted.CreatedAt,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("%w: unknown exercise", rewards.ErrInvalidSet)
		}
		if pkg.IsCheckViolationError(err) {
			return nil, fmt.Errorf("%w: %s", rewards.ErrInvalidSet, err)
		}
		return nil, rewards.StoreFailure("insert.set", err)
	}

	return inserted, nil
}

func (r *Repo) LockUserExercise(ctx context.Context, userID, exerciseID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rewards.lockuserexercise")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	key := userID.String() + ":" + exerciseID.String()
	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
		return rewards.StoreFailure("lock.user.exercise", err)
	}
	return nil
}

func (r *Repo) PersistBadge(ctx context.Context, userID, workoutID uuid.UUID, badge rewards.Badge) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rewards.persistbadge")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("badge", badge.String()))

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_badges (user_id, workout_id, badge_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, workout_id, badge_name) DO NOTHING
	`, userID, workoutID, badge.String())
	if err != nil {
		return rewards.StoreFailure("persist.badge", err)
	}
	return nil
}

func (r *Repo) PersistWorkoutCompletion(ctx context.Context, workoutID uuid.UUID, endTime time.Time, calories int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rewards.persistcompletion")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `
		UPDATE workouts
		SET end_time = $2, calories_burned = $3
		WHERE id = $1 AND end_time IS NULL
	`, workoutID, endTime, calories)
	if err != nil {
		return rewards.StoreFailure("persist.workout.completion", err)
	}
	if tag.RowsAffected() == 0 {
		return rewards.ErrWorkoutAlreadyCompleted
	}
	return nil
}

func (r *Repo) WithinTx(ctx context.Context, fn func(tx rewards.Store) error) error {
	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		return fn(NewRepo(tx))
	})
	if errors.Is(err, db.ErrTxFailed) && !errors.Is(err, rewards.ErrStoreUnavailable) {
		return rewards.StoreFailure("tx", err)
	}
	return err
}
