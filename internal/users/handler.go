package users

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

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=users_test

type usersRepo interface {
	Create(ctx context.Context, user NewUser) (*User, error)
	Get(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateWeight(ctx context.Context, id uuid.UUID, weightKg float64) (*User, error)
}

type statsInvalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID)
}

type UpdateWeightRequest struct {
	WeightKg float64 `json:"weightKg"`
}

type Handler struct {
	repo        usersRepo
	invalidator statsInvalidator
}

func NewHandler(repo usersRepo, invalidator statsInvalidator) *Handler {
	return &Handler{
		repo:        repo,
		invalidator: invalidator,
	}
}

func writeError(w http.ResponseWriter, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrUsernameTaken):
		status = http.StatusConflict
	case errors.Is(err, ErrInvalidUser):
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
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.create")
	defer span.End()

	var newUser NewUser
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := newUser.Validate(); err != nil {
		writeError(w, err, "failed to create user")
		return
	}

	u, err := handler.repo.Create(ctx, newUser)
	if err != nil {
		writeError(w, err, "failed to create user")
		return
	}

	log.Debugf("new user: %s [%s]", u.Username, u.ID)
	pkg.WriteJSON(w, u, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.get")
	defer span.End()

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteJSONError(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	u, err := handler.repo.Get(ctx, id)
	if err != nil {
		writeError(w, err, "failed to get user")
		return
	}

	pkg.WriteJSON(w, u, http.StatusOK)
}

func (handler *Handler) HandleUpdateWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.updateweight")
	defer span.End()

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteJSONError(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	var req UpdateWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.WeightKg <= 0 {
		pkg.WriteJSONError(w, "error, weight must be positive", http.StatusBadRequest)
		return
	}

	u, err := handler.repo.UpdateWeight(ctx, id, req.WeightKg)
	if err != nil {
		writeError(w, err, "failed to update weight")
		return
	}

	handler.invalidator.Invalidate(ctx, id)
	pkg.WriteJSON(w, u, http.StatusOK)
}
