package profile

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/titanlift/internal/db"
	"github.com/2beens/titanlift/internal/telemetry/tracing"
	"github.com/2beens/titanlift/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db db.Conn
}

func NewRepo(conn db.Conn) *Repo {
	return &Repo{
		db: conn,
	}
}

// UserStats returns nil when the user does not exist.
func (r *Repo) UserStats(ctx context.Context, userID uuid.UUID) (_ *UserStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.userstats")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	stats := &UserStats{}
	err = r.db.QueryRow(ctx, `
		SELECT
			u.id,
			u.username,
			u.current_weight_kg,
			u.created_at,
			COUNT(DISTINCT w.id) AS workout_count,
			COALESCE(SUM(s.weight_kg * s.reps), 0)::FLOAT8 AS total_volume
		FROM users u
		LEFT JOIN workouts w ON u.id = w.user_id
		LEFT JOIN sets s ON w.id = s.workout_id
		WHERE u.id = $1
		GROUP BY u.id
	`, userID).Scan(
		&stats.UserID,
		&stats.Username,
		&stats.CurrentWeightKg,
		&stats.JoinDate,
		&stats.TotalWorkouts,
		&stats.TotalVolumeKg,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, pkg.StoreFailure("profile.userstats", err)
	}

	return stats, nil
}

// DailyActivity sums the volume per UTC day of every workout started after since.
// Days with a workout but no sets are listed with zero volume.
func (r *Repo) DailyActivity(ctx context.Context, userID uuid.UUID, since time.Time) (_ []ActivityDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.dailyactivity")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT
			(w.start_time AT TIME ZONE 'UTC')::date AS work_date,
			COALESCE(SUM(s.weight_kg * s.reps), 0)::FLOAT8 AS daily_volume
		FROM workouts w
		LEFT JOIN sets s ON w.id = s.workout_id
		WHERE w.user_id = $1 AND w.start_time >= $2
		GROUP BY work_date
		ORDER BY work_date ASC
	`, userID, since)
	if err != nil {
		return nil, pkg.StoreFailure("profile.dailyactivity", err)
	}
	defer rows.Close()

	days := make([]ActivityDay, 0)
	for rows.Next() {
		var (
			date   time.Time
			volume float64
		)
		if err := rows.Scan(&date, &volume); err != nil {
			return nil, pkg.StoreFailure("profile.dailyactivity.scan", err)
		}
		days = append(days, ActivityDay{
			Date:     date.Format(time.DateOnly),
			VolumeKg: volume,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, pkg.StoreFailure("profile.dailyactivity", err)
	}

	span.SetAttributes(attribute.Int("days", len(days)))
	return days, nil
}
