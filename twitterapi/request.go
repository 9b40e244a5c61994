package twitterapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// authMode selects which credential set signs a request.
type authMode int

const (
	authBearer authMode = iota
	authUser
)

// apiRequest describes one call for the retry loop.
type apiRequest struct {
	op          string
	method      string
	url         string
	body        []byte
	contentType string
	auth        authMode
}

// backoffDelay returns the wait before the given retry attempt (1-based).
func backoffDelay(attempt int) time.Duration {
	d := time.Duration(1<<uint(attempt-1)) * time.Second
	if d > 8*time.Second {
		d = 8 * time.Second
	}
	return d
}

// do executes a request with rate limiting and retry on transient failures.
// 429 responses honour x-rate-limit-reset up to MaxRateLimitWait; 5xx and
// network errors back off and retry up to MaxRetries; other non-2xx statuses
// fail fast as *APIError.
func (c *Client) do(ctx context.Context, r apiRequest) ([]byte, error) {
	httpc := c.bearer
	if r.auth == authUser {
		httpc = c.user
	}

	var lastErr error
	for attempt := 0; attempt < c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(backoffDelay(attempt)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		var bodyReader io.Reader
		if r.body != nil {
			bodyReader = bytes.NewReader(r.body)
		}
		req, err := http.NewRequestWithContext(ctx, r.method, r.url, bodyReader)
		if err != nil {
			return nil, fmt.Errorf("%s: build request: %w", r.op, err)
		}
		if r.contentType != "" {
			req.Header.Set("Content-Type", r.contentType)
		}
		if r.auth == authBearer {
			req.Header.Set("Authorization", "Bearer "+c.cfg.Credentials.Bearer)
		}

		resp, err := httpc.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", r.op, err)
			slog.Debug("request failed", slog.String("op", r.op), slog.Any("error", err))
			continue
		}
		data, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = fmt.Errorf("%s: read body: %w", r.op, readErr)
			continue
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			if apiErr := errorsIn(r.op, data); apiErr != nil {
				return nil, apiErr
			}
			return data, nil

		case resp.StatusCode == http.StatusTooManyRequests:
			reset := parseRateLimitReset(resp.Header.Get("x-rate-limit-reset"))
			wait := time.Until(reset)
			if wait > c.cfg.MaxRateLimitWait {
				wait = c.cfg.MaxRateLimitWait
			}
			slog.Warn("rate limited",
				slog.String("op", r.op),
				slog.Duration("wait", wait))
			if wait > 0 {
				select {
				case <-time.After(wait):
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
			lastErr = newAPIError(r.op, resp.StatusCode, data)
			continue

		case retryable(resp.StatusCode):
			lastErr = newAPIError(r.op, resp.StatusCode, data)
			slog.Debug("retryable status", slog.String("op", r.op), slog.Int("status", resp.StatusCode))
			continue

		default:
			return nil, newAPIError(r.op, resp.StatusCode, data)
		}
	}
	return nil, lastErr
}
