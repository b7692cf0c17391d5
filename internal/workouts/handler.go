package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/titanlift/internal/rewards"
	"github.com/2beens/titanlift/internal/telemetry/metrics"
	"github.com/2beens/titanlift/internal/telemetry/tracing"
	"github.com/2beens/titanlift/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Create(ctx context.Context, workout NewWorkout) (*Workout, error)
	Active(ctx context.Context, userID uuid.UUID) (*Workout, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]HistoryEntry, error)
	ListSets(ctx context.Context, limit int) ([]rewards.SetRecord, error)
	DeleteSet(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

type rewardsEngine interface {
	LogSet(ctx context.Context, set rewards.NewSet) (*rewards.LoggedSet, error)
	CompleteWorkout(ctx context.Context, workoutID uuid.UUID) (*rewards.Completion, error)
}

// statsInvalidator drops cached profile / leaderboard data after a user's sets change.
type statsInvalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID)
}

type LogSetRequest struct {
	WorkoutID  uuid.UUID `json:"workoutId"`
	ExerciseID uuid.UUID `json:"exerciseId"`
	WeightKg   float64   `json:"weightKg"`
	Reps       int       `json:"reps"`
	RPE        *float64  `json:"rpe,omitempty"`
}

type LogSetResponse struct {
	Set rewards.SetRecord `json:"set"`
	rewards.RecordResult
}

type CreateWorkoutRequest struct {
	UserID     uuid.UUID  `json:"userId"`
	Name       *string    `json:"name,omitempty"`
	StartTime  *time.Time `json:"startTime,omitempty"`
	TemplateID *uuid.UUID `json:"templateId,omitempty"`
}

type DeleteSetResponse struct {
	DeletedID uuid.UUID `json:"deletedId"`
}

type Handler struct {
	repo           workoutsRepo
	engine         rewardsEngine
	invalidator    statsInvalidator
	metricsManager *metrics.Manager
}

func NewHandler(
	repo workoutsRepo,
	engine rewardsEngine,
	invalidator statsInvalidator,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		engine:         engine,
		invalidator:    invalidator,
		metricsManager: metricsManager,
	}
}

// writeError maps domain and store errors to a status code. Store failures are
// never reported as empty results.
func writeError(w http.ResponseWriter, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, rewards.ErrWorkoutNotFound), errors.Is(err, ErrSetNotFound):
		status = http.StatusNotFound
	case errors.Is(err, rewards.ErrWorkoutAlreadyCompleted):
		status = http.StatusConflict
	case errors.Is(err, rewards.ErrInvalidSet), errors.Is(err, ErrInvalidWorkout):
		status = http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, pkg.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		log.Errorf("%s: %s", message, err)
	} else {
		log.Tracef("%s: %s", message, err)
	}
	pkg.WriteJSONError(w, message+": "+err.Error(), status)
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}

func (handler *Handler) HandleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	var req CreateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create workout, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == uuid.Nil {
		pkg.WriteJSONError(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	workout, err := handler.repo.Create(ctx, NewWorkout{
		UserID:     req.UserID,
		Name:       req.Name,
		StartTime:  req.StartTime,
		TemplateID: req.TemplateID,
	})
	if err != nil {
		writeError(w, err, "failed to create workout")
		return
	}

	handler.invalidator.Invalidate(ctx, workout.UserID)
	log.Debugf("workout %s started for user %s", workout.ID, workout.UserID)
	pkg.WriteJSON(w, workout, http.StatusCreated)
}

func (handler *Handler) HandleActiveWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.active")
	defer span.End()

	userID, err := pathUUID(r, "userId")
	if err != nil {
		pkg.WriteJSONError(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	workout, err := handler.repo.Active(ctx, userID)
	if err != nil {
		writeError(w, err, "failed to get active workout")
		return
	}
	if workout == nil {
		pkg.WriteJSONError(w, "no active workout", http.StatusNotFound)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleFinishWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.finish")
	defer span.End()

	workoutID, err := pathUUID(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, "error, invalid workout id", http.StatusBadRequest)
		return
	}

	completion, err := handler.engine.CompleteWorkout(ctx, workoutID)
	if err != nil {
		if errors.Is(err, rewards.ErrWorkoutAlreadyCompleted) {
			handler.metricsManager.CounterCompletionConflicts.Inc()
		}
		writeError(w, err, "failed to finish workout")
		return
	}

	handler.metricsManager.CounterWorkoutsCompleted.Inc()
	handler.metricsManager.HistogramCaloriesBurned.Observe(float64(completion.Calories))
	for _, badge := range completion.Badges {
		handler.metricsManager.CounterBadgesAwarded.WithLabelValues(badge.String()).Inc()
	}
	handler.invalidator.Invalidate(ctx, completion.UserID)

	pkg.WriteJSON(w, completion, http.StatusOK)
}

func (handler *Handler) HandleWorkoutHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.history")
	defer span.End()

	userID, err := pathUUID(r, "userId")
	if err != nil {
		pkg.WriteJSONError(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	history, err := handler.repo.History(ctx, userID, HistorySize)
	if err != nil {
		writeError(w, err, "failed to get workout history")
		return
	}

	pkg.WriteJSON(w, history, http.StatusOK)
}

func (handler *Handler) HandleLogSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.log")
	defer span.End()

	var req LogSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("log set, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	logged, err := handler.engine.LogSet(ctx, rewards.NewSet{
		WorkoutID:  req.WorkoutID,
		ExerciseID: req.ExerciseID,
		WeightKg:   req.WeightKg,
		Reps:       req.Reps,
		RPE:        req.RPE,
	})
	if err != nil {
		writeError(w, err, "failed to log set")
		return
	}

	handler.metricsManager.CounterSetsLogged.Inc()
	if logged.Records.IsNewMaxWeight {
		handler.metricsManager.CounterPersonalRecords.WithLabelValues("max_weight").Inc()
	}
	if logged.Records.IsNewRepPR {
		handler.metricsManager.CounterPersonalRecords.WithLabelValues("reps").Inc()
	}
	handler.invalidator.Invalidate(ctx, logged.Set.UserID)

	pkg.WriteJSON(w, LogSetResponse{
		Set:          logged.Set,
		RecordResult: logged.Records,
	}, http.StatusCreated)
}

func (handler *Handler) HandleListSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.list")
	defer span.End()

	limit := RecentSetsSize
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l <= 0 {
			pkg.WriteJSONError(w, "error, invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(l, RecentSetsSize)
	}

	sets, err := handler.repo.ListSets(ctx, limit)
	if err != nil {
		writeError(w, err, "failed to list sets")
		return
	}

	pkg.WriteJSON(w, sets, http.StatusOK)
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sets.delete")
	defer span.End()

	setID, err := pathUUID(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, "error, invalid set id", http.StatusBadRequest)
		return
	}

	userID, err := handler.repo.DeleteSet(ctx, setID)
	if err != nil {
		writeError(w, err, "failed to delete set")
		return
	}

	handler.invalidator.Invalidate(ctx, userID)
	log.Debugf("set %s deleted", setID)
	pkg.WriteJSON(w, DeleteSetResponse{DeletedID: setID}, http.StatusOK)
}
