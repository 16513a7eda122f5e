package config

import (
	"fmt"
	"net/url"
	"strings"
)

const defaultPort = 38472

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus everything worth
// telling the user about their settings.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	if out.App.Port == 0 {
		out.App.Port = defaultPort
	}
	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	out.API.BaseURL = strings.TrimRight(strings.TrimSpace(out.API.BaseURL), "/")
	if out.API.BaseURL == "" {
		res.addWarn("api.base_url is empty; the built-in fallback will be used.")
	} else if u, err := url.Parse(out.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		res.addErr("api.base_url must be an absolute http(s) URL")
	}

	out.Links.ContactURL = strings.TrimSpace(out.Links.ContactURL)
	out.Links.RepoURL = strings.TrimSpace(out.Links.RepoURL)

	return out, res
}
