package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/shivang-jani/bitsjob-search-frontend/internal/config"
)

func (d *Deps) GetConfigHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, d.CfgVal.Load().(config.Config))
}

// PutConfigHandler validates, persists and hot-swaps the portal config.
// Validation failures return the full error/warning report so the
// settings screen can render it verbatim.
func (d *Deps) PutConfigHandler(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var cfg config.Config
	if err := dec.Decode(&cfg); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	normalized, res := config.NormalizeAndValidate(cfg)
	if !res.OK() {
		WriteJSON(w, http.StatusBadRequest, res)
		return
	}

	if err := config.SaveAtomic(d.UserCfgPath, normalized); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "config_save_failed", "could not save config")
		return
	}

	fresh, err := d.LoadCfg()
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "config_reload_failed", "saved but could not reload config")
		return
	}
	d.CfgVal.Store(fresh)
	WriteJSON(w, http.StatusOK, fresh)
}
