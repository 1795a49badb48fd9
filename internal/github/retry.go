package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/commit-sentinel/internal/scm"
)

const (
	maxRetries = 5
	baseDelay  = 1 * time.Second
)

// withRetry runs call, waiting out primary rate limits until maxRetries is
// reached. Any other error is returned as is, with 404s mapped to
// scm.ErrNotFound.
func withRetry[T any](ctx context.Context, call func() (T, *gh.Response, error)) (T, *gh.Response, error) {
	var zero T

	for attempt := 0; attempt <= maxRetries; attempt++ {
		out, resp, err := call()
		if err == nil {
			return out, resp, nil
		}

		var rateLimitErr *gh.RateLimitError
		if !errors.As(err, &rateLimitErr) {
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				return zero, resp, fmt.Errorf("%w: %w", scm.ErrNotFound, err)
			}
			return zero, resp, err
		}

		if attempt == maxRetries {
			return zero, resp, fmt.Errorf("max retries reached: %w", err)
		}

		waitDuration := time.Until(rateLimitErr.Rate.Reset.Time)
		if waitDuration < 0 {
			waitDuration = baseDelay * time.Duration(1<<attempt)
		}

		select {
		case <-time.After(waitDuration):
		case <-ctx.Done():
			return zero, resp, ctx.Err()
		}
	}

	return zero, nil, fmt.Errorf("unexpected retry loop exit")
}
