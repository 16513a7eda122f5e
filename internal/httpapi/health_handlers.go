package httpapi

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/shivang-jani/bitsjob-search-frontend/internal/apierr"
)

func (d *Deps) HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type backendHealth struct {
	Reachable bool   `json:"reachable"`
	Detail    string `json:"detail,omitempty"`
}

// BackendHealthHandler reports whether the remote job board answers.
// Unreachable is a diagnostic, not an error, so the answer is always 200.
func (d *Deps) BackendHealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := d.BackendCheck(r.Context()); err != nil {
		detail := err.Error()
		var ae *apierr.Error
		if errors.As(err, &ae) {
			detail = ae.Message
		}
		WriteJSON(w, http.StatusOK, backendHealth{Reachable: false, Detail: detail})
		return
	}
	WriteJSON(w, http.StatusOK, backendHealth{Reachable: true})
}

// ShutdownHandler stops the engine on request from the UI shell. The
// token is handed to the shell at spawn time; nothing else may stop us.
func (d *Deps) ShutdownHandler(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Shutdown-Token")
	if d.ShutdownToken == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(d.ShutdownToken)) != 1 {
		WriteError(w, r, http.StatusForbidden, "forbidden", "invalid shutdown token")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
	if d.Shutdown != nil {
		d.Shutdown()
	}
}
