package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/titanlift/internal/db"
	"github.com/2beens/titanlift/internal/rewards"
	"github.com/2beens/titanlift/internal/telemetry/tracing"
	"github.com/2beens/titanlift/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

const (
	HistorySize    = 20
	RecentSetsSize = 1000
)

type Repo struct {
	db db.Conn
}

func NewRepo(conn db.Conn) *Repo {
	return &Repo{
		db: conn,
	}
}

func (r *Repo) Create(ctx context.Context, workout NewWorkout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user.id", workout.UserID.String()))

	created := &Workout{}
	err = r.db.QueryRow(ctx, `
		INSERT INTO workouts (user_id, name, start_time, template_id)
		VALUES ($1, $2, COALESCE($3, now()), $4)
		RETURNING id, user_id, template_id, name, start_time, end_time, calories_burned, created_at
	`,
		workout.UserID,
		workout.Name,
		workout.StartTime,
		workout.TemplateID,
	).Scan(
		&created.ID, &created.UserID, &created.TemplateID, &created.Name,
		&created.StartTime, &created.EndTime, &created.CaloriesBurned, &created.CreatedAt,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("%w: unknown user or template", ErrInvalidWorkout)
		}
		return nil, pkg.StoreFailure("workouts.create", err)
	}

	return created, nil
}

// Active returns the latest unfinished workout of the user, nil if there is none.
func (r *Repo) Active(ctx context.Context, userID uuid.UUID) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.active")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	w := &Workout{}
	err = r.db.QueryRow(ctx, `
		SELECT id, user_id, template_id, name, start_time, end_time, calories_burned, created_at
		FROM workouts
		WHERE user_id = $1 AND end_time IS NULL
		ORDER BY start_time DESC NULLS LAST
		LIMIT 1
	`, userID).Scan(
		&w.ID, &w.UserID, &w.TemplateID, &w.Name,
		&w.StartTime, &w.EndTime, &w.CaloriesBurned, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, pkg.StoreFailure("workouts.active", err)
	}

	return w, nil
}

// History lists the finished workouts of the user, latest first.
func (r *Repo) History(ctx context.Context, userID uuid.UUID, limit int) (_ []HistoryEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.history")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(ctx, `
		SELECT
			w.id,
			w.name,
			w.start_time,
			w.end_time,
			COALESCE(SUM(s.weight_kg * s.reps), 0)::FLOAT8 AS total_volume,
			COUNT(DISTINCT s.exercise_id) AS exercise_count
		FROM workouts w
		LEFT JOIN sets s ON w.id = s.workout_id
		WHERE w.user_id = $1 AND w.end_time IS NOT NULL
		GROUP BY w.id
		ORDER BY w.start_time DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, pkg.StoreFailure("workouts.history", err)
	}
	defer rows.Close()

	history := make([]HistoryEntry, 0)
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.StartTime, &e.EndTime, &e.TotalVolumeKg, &e.ExerciseCount); err != nil {
			return nil, pkg.StoreFailure("workouts.history.scan", err)
		}
		history = append(history, e)
	}
	if err := rows.Err(); err != nil {
		return nil, pkg.StoreFailure("workouts.history", err)
	}

	return history, nil
}

func (r *Repo) ListSets(ctx context.Context, limit int) (_ []rewards.SetRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.workout_id, w.user_id, s.exercise_id, s.weight_kg, s.reps, s.rpe, s.created_at
		FROM sets s
		JOIN workouts w ON s.workout_id = w.id
		ORDER BY s.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, pkg.StoreFailure("workouts.sets.list", err)
	}
	defer rows.Close()

	sets := make([]rewards.SetRecord, 0)
	for rows.Next() {
		var s rewards.SetRecord
		if err := rows.Scan(&s.ID, &s.WorkoutID, &s.UserID, &s.ExerciseID, &s.WeightKg, &s.Reps, &s.RPE, &s.CreatedAt); err != nil {
			return nil, pkg.StoreFailure("workouts.sets.list.scan", err)
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, pkg.StoreFailure("workouts.sets.list", err)
	}

	return sets, nil
}

// DeleteSet removes a set and returns the user that owned it.
func (r *Repo) DeleteSet(ctx context.Context, id uuid.UUID) (_ uuid.UUID, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("set.id", id.String()))

	var userID uuid.UUID
	err = r.db.QueryRow(ctx, `
		DELETE FROM sets s
		USING workouts w
		WHERE s.id = $1 AND w.id = s.workout_id
		RETURNING w.user_id
	`, id).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, ErrSetNotFound
		}
		return uuid.Nil, pkg.StoreFailure("workouts.sets.delete", err)
	}
	return userID, nil
}
