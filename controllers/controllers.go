package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"codesaathi_server/services"
)

// sessionToken extracts the opaque session token from the Authorization
// header. An empty result means the request is unauthenticated.
func sessionToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	return strings.TrimPrefix(auth, "Bearer ")
}

// writeJSON encodes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// serviceErrorStatus maps service-layer errors onto HTTP statuses.
func serviceErrorStatus(err error) int {
	var validation *services.ValidationError
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrSessionNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrNotMatched),
		errors.Is(err, services.ErrNoActiveChat),
		errors.Is(err, services.ErrThreadClosed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
