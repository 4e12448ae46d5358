package http

import (
	"encoding/json"
	"net/http"

	"association-admin-backend/internal/domain"
	"association-admin-backend/internal/logger"
)

// successEnvelope is the JSON shape of every successful response.
type successEnvelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// errorEnvelope is the JSON shape of every error response.
type errorEnvelope struct {
	Type    domain.ErrorKind    `json:"type"`
	Message string              `json:"message"`
	Code    int                 `json:"code"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(successEnvelope{Message: message, Data: data})
}

// respondError maps a service error onto the error envelope. Anything that is
// not a *domain.Error is treated as unexpected and logged with its context.
func respondError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	appErr, ok := domain.AsError(err)
	if !ok {
		logger.Error("unexpected error", "operation", operation, "actor_id", actorIDFromContext(r.Context()), "error", err)
		appErr = domain.NewUnexpectedError("an unexpected error occurred")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Code)
	_ = json.NewEncoder(w).Encode(errorEnvelope{
		Type:    appErr.Kind,
		Message: appErr.Message,
		Code:    appErr.Code,
		Errors:  appErr.Fields,
	})
}
