// Package httpapi provides the search backend adapter over HTTP.
// The backend's ranking, index, and transport internals are opaque:
// the adapter posts a structured query and decodes ranked rows.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/doclens/doclens-cli/internal/core/domain"
	"github.com/doclens/doclens-cli/internal/core/ports/driven"
	"github.com/doclens/doclens-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.SearchBackend = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8900"
	DefaultTimeout = 30 * time.Second

	// ProactiveRate throttles outgoing searches (requests per second).
	// The console is interactive; there is no reason to hammer the
	// backend faster than a user can read results.
	ProactiveRate = 5
)

// searchPath is the backend search endpoint.
const searchPath = "/v1/search"

// Config holds configuration for the backend client.
type Config struct {
	// BaseURL is the backend base URL (default: http://localhost:8900).
	BaseURL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Client calls the search backend over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// searchRequest is the backend API request format.
type searchRequest struct {
	Query     string `json:"query"`
	ProjectID string `json:"project_id,omitempty"`
	TopK      int    `json:"top_k"`
	Probes    int    `json:"probes"`
	Offset    int    `json:"offset,omitempty"`
}

// searchResponse is the backend API response format.
type searchResponse struct {
	Results []domain.SearchResult `json:"results"`
}

// errorResponse is the backend API error body, when present.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewClient creates a new backend client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}
}

// Search executes the query and returns ranked result rows.
func (c *Client) Search(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	reqBody := searchRequest{
		Query:     query.Text,
		ProjectID: query.ProjectID,
		TopK:      query.TopK,
		Probes:    query.Probes,
		Offset:    query.Offset,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+searchPath,
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	logger.Debug("Backend search %s: %q top_k=%d probes=%d offset=%d",
		requestID, query.Text, query.TopK, query.Probes, query.Offset)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp)
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	logger.Debug("Backend search %s: %d rows", requestID, len(searchResp.Results))
	return searchResp.Results, nil
}

// decodeError extracts a human-readable message from the error body
// when available, else falls back to the status code.
func (c *Client) decodeError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend error (status %d)", resp.StatusCode)
	}

	var errResp errorResponse
	if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil {
		if errResp.Message != "" {
			return fmt.Errorf("%s", errResp.Message)
		}
		if errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}
	}

	return fmt.Errorf("backend error (status %d)", resp.StatusCode)
}
