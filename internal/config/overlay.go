package config

import "os"

// OverlayEnv applies environment overrides on top of the loaded file.
// These are the portal's equivalents of the browser build's VITE_* vars.
func OverlayEnv(cfg *Config) {
	if v := os.Getenv("BITSJOB_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("BITSJOB_CONTACT_URL"); v != "" {
		cfg.Links.ContactURL = v
	}
	if v := os.Getenv("BITSJOB_REPO_URL"); v != "" {
		cfg.Links.RepoURL = v
	}
}
