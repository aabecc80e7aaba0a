package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"blazinvibe/models"
)

type M map[string]any

// RespondWithJSON sends a JSON response.
func RespondWithJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// RespondWithError sends an error payload with a human-readable detail
// message, matching what the site frontend expects.
func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, M{"detail": msg})
}

// RespondWithFieldErrors rejects a write payload with per-field detail.
func RespondWithFieldErrors(w http.ResponseWriter, fields []models.FieldError) {
	RespondWithJSON(w, http.StatusUnprocessableEntity, M{"detail": fields})
}

// DecodeBody parses a JSON request body into dst. On failure it writes
// the error response itself and returns false; type mismatches are
// reported against the offending field.
func DecodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		RespondWithFieldErrors(w, []models.FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("must be of type %s", typeErr.Type),
		}})
		return false
	}

	RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
	return false
}
