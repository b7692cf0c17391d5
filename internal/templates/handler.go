package templates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/titanlift/internal/telemetry/tracing"
	"github.com/2beens/titanlift/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=templates_test

type templatesRepo interface {
	Create(ctx context.Context, t NewTemplate) (*Template, error)
	List(ctx context.Context, userID *uuid.UUID) ([]Template, error)
	Get(ctx context.Context, id uuid.UUID) (*TemplateWithExercises, error)
	AddExercise(ctx context.Context, templateID uuid.UUID, target ExerciseTarget) (*TemplateExercise, error)
	ReplaceExercises(ctx context.Context, templateID uuid.UUID, targets []ExerciseTarget) ([]TemplateExercise, error)
}

type ReplaceExercisesRequest struct {
	Exercises []ExerciseTarget `json:"exercises"`
}

type Handler struct {
	repo templatesRepo
}

func NewHandler(repo templatesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func writeError(w http.ResponseWriter, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrTemplateNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrInvalidTemplate):
		status = http.StatusBadRequest
	case errors.Is(err, pkg.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}
	if status >= http.StatusInternalServerError {
		log.Errorf("%s: %s", message, err)
	}
	pkg.WriteJSONError(w, message+": "+err.Error(), status)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.create")
	defer span.End()

	var newTemplate NewTemplate
	if err := json.NewDecoder(r.Body).Decode(&newTemplate); err != nil {
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := newTemplate.Validate(); err != nil {
		writeError(w, err, "failed to create template")
		return
	}

	t, err := handler.repo.Create(ctx, newTemplate)
	if err != nil {
		writeError(w, err, "failed to create template")
		return
	}

	pkg.WriteJSON(w, t, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.list")
	defer span.End()

	var userID *uuid.UUID
	if userIDStr := r.URL.Query().Get("userId"); userIDStr != "" {
		id, err := uuid.Parse(userIDStr)
		if err != nil {
			pkg.WriteJSONError(w, "error, invalid user id", http.StatusBadRequest)
			return
		}
		userID = &id
	}

	list, err := handler.repo.List(ctx, userID)
	if err != nil {
		writeError(w, err, "failed to list templates")
		return
	}

	pkg.WriteJSON(w, list, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.get")
	defer span.End()

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteJSONError(w, "error, invalid template id", http.StatusBadRequest)
		return
	}

	t, err := handler.repo.Get(ctx, id)
	if err != nil {
		writeError(w, err, "failed to get template")
		return
	}

	pkg.WriteJSON(w, t, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.addexercise")
	defer span.End()

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteJSONError(w, "error, invalid template id", http.StatusBadRequest)
		return
	}

	var target ExerciseTarget
	if err := json.NewDecoder(r.Body).Decode(&target); err != nil {
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := target.Validate(); err != nil {
		writeError(w, err, "failed to add exercise")
		return
	}

	added, err := handler.repo.AddExercise(ctx, id, target)
	if err != nil {
		writeError(w, err, "failed to add exercise")
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleReplaceExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.replaceexercises")
	defer span.End()

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteJSONError(w, "error, invalid template id", http.StatusBadRequest)
		return
	}

	var req ReplaceExercisesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	for _, target := range req.Exercises {
		if err := target.Validate(); err != nil {
			writeError(w, err, "failed to replace exercises")
			return
		}
	}

	replaced, err := handler.repo.ReplaceExercises(ctx, id, req.Exercises)
	if err != nil {
		writeError(w, err, "failed to replace exercises")
		return
	}

	log.Debugf("template %s: %d exercises set", id, len(replaced))
	pkg.WriteJSON(w, replaced, http.StatusOK)
}
