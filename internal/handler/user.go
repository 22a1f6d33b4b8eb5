package handler

import (
	"net/http"
	"strconv"

	"github.com/brinepool/gatherbot/internal/economy"
	"github.com/brinepool/gatherbot/internal/leaderboard"
	"github.com/brinepool/gatherbot/internal/logger"
)

// HandleProfile returns a user's full record, creating it on first sight.
// @Summary Fetch a user's profile
// @Tags user
// @Produce json
// @Param user_key query string true "User key"
// @Param username query string false "Current display name"
// @Success 200 {object} domain.UserRecord
// @Router /user/profile [get]
func HandleProfile(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userKey := r.URL.Query().Get("user_key")
		if userKey == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		rec, err := svc.Profile(r.Context(), userKey, r.URL.Query().Get("username"))
		if err != nil {
			log.Error("Profile load failed", "error", err, "userKey", userKey)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, rec)
	}
}

// InventoryValueResponse carries the appraised total of a user's inventory.
type InventoryValueResponse struct {
	TotalValue int `json:"total_value"`
}

// HandleInventoryValue appraises a user's full inventory.
// @Summary Appraise a user's inventory
// @Tags user
// @Produce json
// @Param user_key query string true "User key"
// @Success 200 {object} InventoryValueResponse
// @Router /user/inventory-value [get]
func HandleInventoryValue(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userKey := r.URL.Query().Get("user_key")
		if userKey == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		value, err := svc.InventoryValue(r.Context(), userKey, r.URL.Query().Get("username"))
		if err != nil {
			log.Error("Inventory appraisal failed", "error", err, "userKey", userKey)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, InventoryValueResponse{TotalValue: value})
	}
}

// HandleLeaderboard ranks users by the requested metric.
// @Summary Rank users by currency, catches or rod tier
// @Tags leaderboard
// @Produce json
// @Param metric query string false "currency | catches | rod_tier"
// @Param limit query int false "Max entries (default 10)"
// @Success 200 {array} domain.LeaderboardEntry
// @Router /leaderboard [get]
func HandleLeaderboard(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		metric := leaderboard.MetricCurrency
		if raw := r.URL.Query().Get("metric"); raw != "" {
			parsed, ok := leaderboard.ParseMetric(raw)
			if !ok {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
				return
			}
			metric = parsed
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
				return
			}
			limit = parsed
		}

		entries, err := svc.Rank(r.Context(), metric, limit)
		if err != nil {
			log.Error("Leaderboard scan failed", "error", err, "metric", metric)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, entries)
	}
}
