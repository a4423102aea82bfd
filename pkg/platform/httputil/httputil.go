// Package httputil centralizes JSON response writing so every endpoint
// speaks the same envelope: payloads on success, {"message": ...} on
// failure.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "assure/pkg/domain-errors"
)

type errorBody struct {
	Message string `json:"message"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a domain error to its HTTP status and writes the
// user-facing message. Unknown and internal errors never leak detail.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, StatusOf(err), errorBody{Message: dErrors.MessageOf(err)})
}

// StatusOf resolves the HTTP status code for a domain error.
func StatusOf(err error) int {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeAlreadySubmitted:
		return http.StatusBadRequest
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
