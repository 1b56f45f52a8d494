// Package gateway talks to the upstream back-office API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/buhgalterija/backoffice/internal/core/domain"
	"github.com/buhgalterija/backoffice/internal/pkg/metrics"
)

const maxBodyBytes = 4 << 20

// TokenSource supplies the current credential, or "" when there is none.
type TokenSource interface {
	Token() string
}

// Client sends JSON requests to the upstream API. Every request carries
// Content-Type: application/json and, when a credential exists, a bearer
// Authorization header. Requests are never retried.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	log        zerolog.Logger
}

func NewClient(httpClient *http.Client, baseURL string, tokens TokenSource, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		log:        log.With().Str("component", "gateway").Logger(),
	}
}

// do sends body as JSON to path and decodes the response into out. A 204
// response, or a nil out, skips decoding. Non-2xx responses become a
// *domain.RequestError carrying the response text.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode %s body: %w", path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamRequestDuration.WithLabelValues(path, "error").Observe(time.Since(start).Seconds())
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("upstream request failed")
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	metrics.UpstreamRequestDuration.WithLabelValues(path, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read %s response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("upstream rejected request")
		return resp.StatusCode, domain.NewRequestError(resp.StatusCode, string(raw))
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode %s response: %w", path, err)
	}
	return resp.StatusCode, nil
}
