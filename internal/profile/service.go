package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/titanlift/internal/rewards"
	"github.com/2beens/titanlift/internal/telemetry/metrics"
	"github.com/2beens/titanlift/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=profile_test

type statsRepo interface {
	UserStats(ctx context.Context, userID uuid.UUID) (*UserStats, error)
	DailyActivity(ctx context.Context, userID uuid.UUID, since time.Time) ([]ActivityDay, error)
}

type rewardsReader interface {
	Streak(ctx context.Context, userID uuid.UUID) (rewards.Streak, error)
	Leaderboard(ctx context.Context) ([]rewards.LeaderboardEntry, error)
}

type Service struct {
	repo             statsRepo
	engine           rewardsReader
	leaderboardCache *LeaderboardCache
	profileCache     *ProfileCache
	metricsManager   *metrics.Manager
	now              func() time.Time
}

func NewService(
	repo statsRepo,
	engine rewardsReader,
	leaderboardCache *LeaderboardCache,
	profileCache *ProfileCache,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:             repo,
		engine:           engine,
		leaderboardCache: leaderboardCache,
		profileCache:     profileCache,
		metricsManager:   metricsManager,
		now:              time.Now,
	}
}

func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if cached := s.profileCache.Get(userID); cached != nil {
		span.SetAttributes(attribute.Bool("profile.from-cache", true))
		return cached, nil
	}
	span.SetAttributes(attribute.Bool("profile.from-cache", false))

	stats, err := s.repo.UserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}
	if stats == nil {
		return nil, ErrUserNotFound
	}

	since := rewards.Day(s.now()).AddDate(0, 0, -ActivityLogDays)
	activity, err := s.repo.DailyActivity(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("daily activity: %w", err)
	}

	streak, err := s.engine.Streak(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("streak: %w", err)
	}

	p := &Profile{
		UserID:          stats.UserID,
		Username:        stats.Username,
		CurrentWeightKg: stats.CurrentWeightKg,
		JoinDate:        stats.JoinDate,
		TotalWorkouts:   stats.TotalWorkouts,
		TotalVolumeKg:   stats.TotalVolumeKg,
		ActivityLog:     activity,
		Streak:          streak,
	}

	if err := s.profileCache.Set(p); err != nil {
		log.Errorf("profile %s: %s", userID, err)
	}

	return p, nil
}

// Leaderboard serves the ranking from redis when possible. A failing cache is
// logged and bypassed, it never fails the request.
func (s *Service) Leaderboard(ctx context.Context) (_ []rewards.LeaderboardEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.leaderboard.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	cached, found, err := s.leaderboardCache.Get(ctx)
	switch {
	case err != nil:
		s.metricsManager.CounterLeaderboardCacheHits.WithLabelValues("error").Inc()
		log.Errorf("leaderboard cache: %s", err)
	case found:
		s.metricsManager.CounterLeaderboardCacheHits.WithLabelValues("hit").Inc()
		return cached, nil
	default:
		s.metricsManager.CounterLeaderboardCacheHits.WithLabelValues("miss").Inc()
	}

	entries, err := s.engine.Leaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("rank leaderboard: %w", err)
	}

	if err := s.leaderboardCache.Set(ctx, entries); err != nil {
		log.Errorf("leaderboard cache: %s", err)
	}

	return entries, nil
}

// Invalidate drops cached data that depends on the user's sets and workouts.
func (s *Service) Invalidate(ctx context.Context, userID uuid.UUID) {
	if err := s.profileCache.Invalidate(ctx, userID); err != nil {
		log.Errorf("invalidate profile of %s: %s", userID, err)
	}
	if err := s.leaderboardCache.Invalidate(ctx); err != nil {
		log.Errorf("invalidate leaderboard after change by %s: %s", userID, err)
	}
}
