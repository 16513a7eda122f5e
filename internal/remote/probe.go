package remote

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/shivang-jani/bitsjob-search-frontend/internal/apierr"
)

const probeTimeout = 5 * time.Second

// Health checks /health with the probe timeout. Any 2xx is healthy;
// anything else comes back normalized.
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BuildURL("/health"), nil)
	if err != nil {
		return apierr.FromTransport(err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return apierr.FromTransport(err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return apierr.FromResponse(res)
	}
	return nil
}

// probeHealth is the pre-flight reachability check run before mutating
// calls. Purely diagnostic: failures are logged and never block or fail
// the real request. Concurrent submits share one probe and bursts are
// rate-limited.
func (c *Client) probeHealth(ctx context.Context) {
	if !c.probeLimit.Allow() {
		return
	}
	_, _, _ = c.probeGroup.Do("health", func() (any, error) {
		if err := c.Health(ctx); err != nil {
			log.Printf("level=warn msg=\"server check failed\" detail=%q", err.Error())
		} else {
			log.Printf("level=info msg=\"server reachable\"")
		}
		return nil, nil
	})
}
