package handler

import "net/http"

// HealthResponse reports process liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

// HandleHealthz is the liveness probe.
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
