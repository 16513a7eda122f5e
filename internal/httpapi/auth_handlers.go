package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/shivang-jani/bitsjob-search-frontend/internal/events"
	"github.com/shivang-jani/bitsjob-search-frontend/internal/remote"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d *Deps) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	sess, err := d.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteFailure(w, r, err)
		return
	}
	if err := d.Sessions.Save(r.Context(), sess); err != nil {
		WriteFailure(w, r, err)
		return
	}

	d.Hub.PublishEvent(RequestIDFrom(r.Context()), events.TypeSessionChanged,
		events.SessionChanged{Authenticated: true, Email: sess.Email})
	WriteJSON(w, http.StatusOK, d.currentState())
}

func (d *Deps) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var form remote.SignupForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	sess, err := d.Signup(r.Context(), form)
	if err != nil {
		WriteFailure(w, r, err)
		return
	}
	if err := d.Sessions.Save(r.Context(), sess); err != nil {
		WriteFailure(w, r, err)
		return
	}

	d.Hub.PublishEvent(RequestIDFrom(r.Context()), events.TypeSessionChanged,
		events.SessionChanged{Authenticated: true, Email: sess.Email})
	WriteJSON(w, http.StatusOK, d.currentState())
}

func (d *Deps) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := d.Manager.Logout(r.Context()); err != nil {
		WriteFailure(w, r, err)
		return
	}
	d.Hub.PublishEvent(RequestIDFrom(r.Context()), events.TypeSessionChanged,
		events.SessionChanged{Authenticated: false})
	WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
