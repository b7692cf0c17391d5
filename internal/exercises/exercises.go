package exercises

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/titanlift/internal/db"
	"github.com/2beens/titanlift/internal/telemetry/tracing"
	"github.com/2beens/titanlift/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Exercise is a catalog entry sets and templates refer to.
type Exercise struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	MuscleGroup string    `json:"muscleGroup"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Repo struct {
	db db.Conn
}

func NewRepo(conn db.Conn) *Repo {
	return &Repo{
		db: conn,
	}
}

func (r *Repo) List(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, muscle_group, created_at
		FROM exercises
		ORDER BY muscle_group, name
	`)
	if err != nil {
		return nil, pkg.StoreFailure("exercises.list", err)
	}
	defer rows.Close()

	list := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleGroup, &e.CreatedAt); err != nil {
			return nil, pkg.StoreFailure("exercises.list.scan", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, pkg.StoreFailure("exercises.list", err)
	}

	return list, nil
}

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=exercises_test

type exercisesRepo interface {
	List(ctx context.Context) ([]Exercise, error)
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	list, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		status := http.StatusInternalServerError
		if errors.Is(err, pkg.ErrStoreUnavailable) {
			status = http.StatusServiceUnavailable
		}
		pkg.WriteJSONError(w, "failed to list exercises", status)
		return
	}

	pkg.WriteJSON(w, list, http.StatusOK)
}
