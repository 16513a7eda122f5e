package httpapi

import (
	"net/http"

	"github.com/shivang-jani/bitsjob-search-frontend/internal/config"
)

type linksResponse struct {
	ContactURL string `json:"contactUrl"`
	RepoURL    string `json:"repoUrl"`
}

// LinksHandler serves the footer links so the UI never hardcodes them.
func (d *Deps) LinksHandler(w http.ResponseWriter, r *http.Request) {
	cfg := d.CfgVal.Load().(config.Config)
	WriteJSON(w, http.StatusOK, linksResponse{
		ContactURL: cfg.Links.ContactURL,
		RepoURL:    cfg.Links.RepoURL,
	})
}
