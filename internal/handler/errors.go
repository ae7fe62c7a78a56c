package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cna-archives/carnet-bord/internal/domain"
)

// ErrorDetail is the machine-readable part of an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON envelope every error is returned in.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the standard error envelope.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// writeDomainError maps a logbook error onto the HTTP surface:
// 404 for missing trips, 409 for an exhausted toll card (the message carries
// the remaining balance for display), 422 for any validation failure,
// 500 otherwise.
func writeDomainError(w http.ResponseWriter, err error) {
	var insuf *domain.InsufficientBalanceError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "trip not found")
	case errors.As(err, &insuf):
		writeError(w, http.StatusConflict, "insufficient_balance", insuf.Error())
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "logbook.Create: validation error: driver name is required" →
// "driver name is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"logbook.Create: ",
		"logbook.Update: ",
		"logbook.Delete: ",
	} {
		if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			msg = msg[len(prefix):]
			break
		}
	}
	const class = "validation error: "
	if len(msg) > len(class) && msg[:len(class)] == class {
		msg = msg[len(class):]
	}
	return msg
}
