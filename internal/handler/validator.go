package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/brinepool/gatherbot/internal/logger"
)

var validate = validator.New()

// decodeAndValidate decodes the JSON body into req and checks its
// validation tags, writing the error response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn("Failed to decode request body", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return false
	}
	if err := validate.Struct(req); err != nil {
		log.Warn("Request failed validation", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return false
	}
	return true
}
