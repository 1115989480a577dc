package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fintrack/internal/core"
	applog "fintrack/internal/log"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			slog.Error("Encode response failed", applog.FieldError, err)
		}
	}
}

// writeError translates the service error taxonomy into a transport
// status code and a {"error": message} body. This is the only place
// service errors cross the API boundary.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "internal server error"

	switch core.KindOf(err) {
	case core.KindValidation:
		status = http.StatusBadRequest
		msg = serviceMessage(err)
	case core.KindUnauthenticated, core.KindInvalidCredential:
		status = http.StatusUnauthorized
		msg = serviceMessage(err)
	case core.KindNotFound:
		status = http.StatusNotFound
		msg = serviceMessage(err)
	case core.KindConflict:
		// Duplicate signup surfaces as 400 for compatibility with
		// existing clients.
		status = http.StatusBadRequest
		msg = serviceMessage(err)
	default:
		slog.ErrorContext(r.Context(), "Request failed",
			applog.FieldError, err,
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path)
	}

	writeJSON(w, status, errorResponse{Error: msg})
}

func serviceMessage(err error) string {
	var e *core.Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return err.Error()
}
