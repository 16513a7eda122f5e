package httpapi

import (
	"net/http"

	"github.com/shivang-jani/bitsjob-search-frontend/internal/domain"
)

// sessionState is what the UI polls to decide between the login screen
// and the portal proper.
type sessionState struct {
	User            *domain.Session `json:"user"`
	Loading         bool            `json:"loading"`
	IsAuthenticated bool            `json:"isAuthenticated"`
}

func (d *Deps) currentState() sessionState {
	return sessionState{
		User:            d.Manager.User(),
		Loading:         d.Manager.Loading(),
		IsAuthenticated: d.Manager.IsAuthenticated(),
	}
}

func (d *Deps) SessionHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, d.currentState())
}

// requireSession gates the job routes. A missing or unauthenticated
// session answers 401 with the same wording the remote normalizer uses,
// so the UI handles both identically.
func (d *Deps) requireSession(w http.ResponseWriter, r *http.Request) (*domain.Session, bool) {
	user := d.Manager.User()
	if !user.Valid() {
		WriteError(w, r, http.StatusUnauthorized, "unauthorized", "Unauthorized. Please log in again.")
		return nil, false
	}
	return user, true
}
