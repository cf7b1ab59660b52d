package nltk

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/nltkdata/internal/core/domain"
)

// client issues paced GET requests to the data host.
// The data host is GitHub's raw file server, so requests are throttled
// proactively rather than waiting to be rate limited.
type client struct {
	http    *http.Client
	limiter *rate.Limiter
}

// newLimiter returns a limiter for rps requests per second.
// Zero or negative rps disables pacing.
func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}

// get returns the response for url. The caller closes the body.
// Transport failures wrap ErrNetwork; non-200 answers wrap ErrDownload.
func (c *client) get(ctx context.Context, url string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: GET %s: status %d", domain.ErrDownload, url, resp.StatusCode)
	}

	return resp, nil
}
