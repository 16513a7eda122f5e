package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shivang-jani/bitsjob-search-frontend/internal/apierr"
	"github.com/shivang-jani/bitsjob-search-frontend/internal/remote"
)

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		Status    int    `json:"status,omitempty"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}

// WriteFailure answers with whatever a portal operation returned: a
// normalized remote descriptor keeps its status and message, a
// client-side validation failure is a 400, anything else is an opaque
// 500. The UI never sees a raw error either way.
func WriteFailure(w http.ResponseWriter, r *http.Request, err error) {
	var remoteErr *apierr.Error
	if errors.As(err, &remoteErr) {
		status := remoteErr.Status
		if status == 0 {
			// Transport-level failure with no attributable status.
			status = http.StatusBadGateway
		}
		var e APIError
		e.Error.Code = "remote_error"
		e.Error.Message = remoteErr.Message
		e.Error.Status = remoteErr.Status
		e.Error.RequestID = RequestIDFrom(r.Context())
		WriteJSON(w, status, e)
		return
	}

	var vErr *remote.ValidationError
	if errors.As(err, &vErr) {
		WriteError(w, r, http.StatusBadRequest, "validation_failed", vErr.Error())
		return
	}

	WriteError(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
}
