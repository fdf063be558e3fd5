package httpjson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"opentdb-quiz/internal/domain"
)

// maxBodyBytes caps how much of a response is decoded.
const maxBodyBytes = 4 << 20

// Client is the app.Fetcher backed by net/http.
type Client struct {
	http   *http.Client
	logger *zap.Logger
}

// NewClient builds a client with the given request timeout. A zero timeout means no timeout.
func NewClient(timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// FetchJSON performs GET endpoint?query and decodes the body into out.
// Non-2xx responses and malformed bodies fail with *domain.FetchError.
func (c *Client) FetchJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	target, err := url.Parse(endpoint)
	if err != nil {
		return &domain.FetchError{Endpoint: endpoint, Err: err}
	}
	target.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return &domain.FetchError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.FetchError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("trivia api response",
		zap.String("url", target.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return &domain.FetchError{Endpoint: endpoint, Err: fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return &domain.FetchError{Endpoint: endpoint, Err: fmt.Errorf("decode body: %w", err)}
	}
	return nil
}
