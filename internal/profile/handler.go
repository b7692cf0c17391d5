package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/titanlift/internal/rewards"
	"github.com/2beens/titanlift/internal/telemetry/tracing"
	"github.com/2beens/titanlift/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile_test

type profileService interface {
	Profile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Leaderboard(ctx context.Context) ([]rewards.LeaderboardEntry, error)
}

type Handler struct {
	service profileService
}

func NewHandler(service profileService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	userID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		pkg.WriteJSONError(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	p, err := handler.service.Profile(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			pkg.WriteJSONError(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile %s: %s", userID, err)
		pkg.WriteJSONError(w, "failed to get profile", statusFor(err))
		return
	}

	pkg.WriteJSON(w, p, http.StatusOK)
}

func (handler *Handler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.leaderboard.get")
	defer span.End()

	entries, err := handler.service.Leaderboard(ctx)
	if err != nil {
		log.Errorf("get leaderboard: %s", err)
		pkg.WriteJSONError(w, "failed to get leaderboard", statusFor(err))
		return
	}

	pkg.WriteJSON(w, entries, http.StatusOK)
}

func statusFor(err error) int {
	if errors.Is(err, pkg.ErrStoreUnavailable) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
