package handler

import (
	"encoding/json"
	"net/http"

	"github.com/brinepool/gatherbot/internal/gameconfig"
	"github.com/brinepool/gatherbot/internal/logger"
)

// Admin configuration handlers. Each blob is fetched and replaced whole;
// readers elsewhere always observe either the old or the new snapshot.

// HandleGetSettings returns the current cooldown/bonus settings blob.
func HandleGetSettings(cfg *gameconfig.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, cfg.Snapshot().Settings)
	}
}

// HandleReplaceSettings validates and installs a new settings blob.
func HandleReplaceSettings(cfg *gameconfig.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var settings gameconfig.Settings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := cfg.ReplaceSettings(settings); err != nil {
			log.Warn("Settings replacement rejected", "error", err)
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Info("Settings replaced", "settings", settings)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "settings updated"})
	}
}

// HandleGetRates returns the current per-tier rarity weight tables.
func HandleGetRates(cfg *gameconfig.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, cfg.Snapshot().Rates)
	}
}

// HandleReplaceRates validates and installs new weight tables.
func HandleReplaceRates(cfg *gameconfig.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var rates gameconfig.Rates
		if err := json.NewDecoder(r.Body).Decode(&rates); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := cfg.ReplaceRates(rates); err != nil {
			log.Warn("Rates replacement rejected", "error", err)
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Info("Rates replaced")
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "rates updated"})
	}
}

// HandleGetPrices returns the current sell-price override table.
func HandleGetPrices(cfg *gameconfig.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, cfg.Snapshot().Prices)
	}
}

// HandleReplacePrices validates and installs a new price table.
func HandleReplacePrices(cfg *gameconfig.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var prices gameconfig.Prices
		if err := json.NewDecoder(r.Body).Decode(&prices); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := cfg.ReplacePrices(prices); err != nil {
			log.Warn("Prices replacement rejected", "error", err)
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Info("Prices replaced")
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "prices updated"})
	}
}

// HandleGetEmoji returns the cosmetic glyph table.
func HandleGetEmoji(cfg *gameconfig.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, cfg.EmojiTable())
	}
}

// HandleReplaceEmoji installs a new cosmetic glyph table.
func HandleReplaceEmoji(cfg *gameconfig.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var emoji gameconfig.Emoji
		if err := json.NewDecoder(r.Body).Decode(&emoji); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := cfg.ReplaceEmoji(emoji); err != nil {
			log.Error("Emoji replacement failed", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgServerError)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "emoji updated"})
	}
}
