package yts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client represents a YTS API client
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     zerolog.Logger
}

// NewClient creates a new YTS client
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}

	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: base URL must be an absolute http(s) URL: %q", ErrInvalidConfig, baseURL)
	}

	client := &Client{
		baseURL: baseURL,
		timeout: DefaultTimeout,
		logger:  logger.With().Str("component", "yts").Logger(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: client.timeout}
	}

	return client, nil
}

// Timeout returns the configured request timeout
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// searchURL builds the list_movies.json URL for a term
func (c *Client) searchURL(term string) string {
	return fmt.Sprintf("%s/list_movies.json?query_term=%s", c.baseURL, url.QueryEscape(term))
}

// Search performs a single GET against list_movies.json and classifies the
// outcome. It never retries.
func (c *Client) Search(ctx context.Context, term string) SearchResult {
	log := c.logger.With().
		Str("request_id", uuid.NewString()).
		Str("term", term).
		Logger()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(term), nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create search request")
		return newErrorResult(http.StatusBadGateway, MessageUpstreamError)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.transportFailure(log, err, start)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().
			Int("status", resp.StatusCode).
			Dur("elapsed", time.Since(start)).
			Msg("Search request failed")
		return newErrorResult(resp.StatusCode, MessageUpstreamError)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.transportFailure(log, err, start)
	}

	p, err := parsePayload(body)
	if err != nil {
		log.Warn().Err(err).Int("bytes", len(body)).Msg("Failed to parse search response")
		return newErrorResult(http.StatusBadGateway, MessageUpstreamError)
	}

	if strings.EqualFold(p.status, "error") {
		log.Warn().Str("status_message", p.statusMessage).Msg("Catalog reported an error")
		return newErrorResult(http.StatusBadGateway, MessageUpstreamError)
	}

	log.Debug().
		Int("movie_count", p.movieCount).
		Int("mapped", len(p.movies)).
		Dur("elapsed", time.Since(start)).
		Msg("Search completed")

	if p.movieCount < 1 {
		return newSuccessResult(nil)
	}
	return newSuccessResult(p.movies)
}

// transportFailure classifies errors raised before a full response was read
func (c *Client) transportFailure(log zerolog.Logger, err error, start time.Time) SearchResult {
	if isTimeout(err) {
		log.Warn().
			Dur("timeout", c.timeout).
			Dur("elapsed", time.Since(start)).
			Msg("Search request timed out")
		return newTimeoutResult()
	}

	log.Warn().Err(err).Dur("elapsed", time.Since(start)).Msg("Search request failed")
	return newErrorResult(http.StatusBadGateway, MessageUpstreamError)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
