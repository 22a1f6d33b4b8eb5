package handler

import (
	"context"
	"net/http"

	"github.com/brinepool/gatherbot/internal/activity"
	"github.com/brinepool/gatherbot/internal/domain"
	"github.com/brinepool/gatherbot/internal/logger"
)

// ActionRequest identifies the acting user for a fish or chop attempt.
type ActionRequest struct {
	UserKey  string `json:"user_key" validate:"required,max=64"`
	Username string `json:"username" validate:"max=100"`
}

// HandleFish resolves one fishing attempt.
// @Summary Attempt to fish
// @Tags actions
// @Accept json
// @Produce json
// @Param request body ActionRequest true "Acting user"
// @Success 200 {object} domain.ActionResult
// @Router /action/fish [post]
func HandleFish(svc activity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, svc.AttemptFish)
	}
}

// HandleChop resolves one woodcutting attempt.
// @Summary Attempt to chop
// @Tags actions
// @Accept json
// @Produce json
// @Param request body ActionRequest true "Acting user"
// @Success 200 {object} domain.ActionResult
// @Router /action/chop [post]
func HandleChop(svc activity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleAction(w, r, svc.AttemptChop)
	}
}

func handleAction(w http.ResponseWriter, r *http.Request, attempt func(ctx context.Context, userKey, username string) (domain.ActionResult, error)) {
	log := logger.FromContext(r.Context())

	var req ActionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := attempt(r.Context(), req.UserKey, req.Username)
	if err != nil {
		log.Error("Attempt failed", "error", err, "userKey", req.UserKey)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	// A cooldown rejection is still HTTP 200; it is a normal outcome.
	respondJSON(w, http.StatusOK, result)
}
