package api

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"loteria/service"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps service errors onto HTTP statuses: validation
// failures are 422 with field details, missing entities are 404,
// everything else is a 500.
func respondServiceError(w http.ResponseWriter, err error) {
	var verrs service.ValidationErrors
	if errors.As(err, &verrs) {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "validation failed",
			"fields": verrs,
		})
		return
	}

	if errors.Is(err, service.ErrNotFound) {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	if errors.Is(err, service.ErrClaimExpired) {
		respondError(w, http.StatusConflict, err.Error())
		return
	}

	log.WithError(err).Error("Request failed")
	respondError(w, http.StatusInternalServerError, "internal server error")
}
