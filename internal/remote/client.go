// Package remote is the portal's client for the job-board backend. It
// builds request URLs from a configurable base, runs the diagnostic
// reachability probe before mutating calls, attaches the session's bearer
// token, and funnels every failure through the error normalizer so
// callers never see raw transport errors.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/shivang-jani/bitsjob-search-frontend/internal/apierr"
)

// Used when no base URL is configured, so the portal still functions
// without an env file.
const DefaultBaseURL = "https://bitsjobsearch.com"

type Client struct {
	base func() string
	hc   *http.Client

	probeGroup singleflight.Group
	probeLimit *rate.Limiter
}

// NewClient builds a client pinned to one base URL.
func NewClient(baseURL string) *Client {
	return NewClientFrom(func() string { return baseURL })
}

// NewClientFrom builds a client that re-resolves its base URL on every
// request, so a config update takes effect without a restart.
func NewClientFrom(base func() string) *Client {
	return &Client{
		base: base,
		// Primary requests carry no client-enforced timeout; only the
		// probe does.
		hc:         &http.Client{},
		probeLimit: rate.NewLimiter(rate.Every(10*time.Second), 1),
	}
}

// BuildURL joins the current base with an endpoint path.
func (c *Client) BuildURL(endpoint string) string {
	base := strings.TrimSpace(c.base())
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/") + endpoint
}

// ValidationError reports client-side form failures detected before any
// network call is made. It deliberately does not pass through the
// normalizer: there is nothing to normalize.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// doJSON issues one request and decodes a 2xx JSON response into out.
// Transport failures and non-2xx statuses come back as *apierr.Error.
func (c *Client) doJSON(ctx context.Context, method, endpoint, token string, body, out any) error {
	var rdr *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return apierr.FromTransport(err)
		}
		rdr = bytes.NewReader(b)
	}

	var req *http.Request
	var err error
	if rdr != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.BuildURL(endpoint), rdr)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.BuildURL(endpoint), nil)
	}
	if err != nil {
		return apierr.FromTransport(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return apierr.FromTransport(err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return apierr.FromResponse(res)
	}
	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return apierr.FromTransport(err)
		}
	}
	return nil
}
