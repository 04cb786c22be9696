// Package storeclient fetches store records from the store resource endpoint.
package storeclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dashboard.solarcredits.org/internal/logging"
	"dashboard.solarcredits.org/internal/models"
)

// ErrNotFound is returned when the endpoint has no record for the id.
var ErrNotFound = errors.New("store record not found")

type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client reads store records over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(config Config) *Client {
	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		apiKey:     config.APIKey,
		httpClient: httpClient,
		logger:     config.Logger,
	}
}

// GetStore issues GET {base}/api/stores/{id}. The record is returned as-is;
// missing attributes stay nil.
func (c *Client) GetStore(ctx context.Context, id string) (*models.Store, error) {
	endpoint := c.baseURL + "/api/stores/" + url.PathEscape(id)
	if c.apiKey != "" {
		endpoint += "?" + url.Values{"key": {c.apiKey}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building store request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching store %s: %w", id, err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, c.logger, "store_response_body")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("fetching store %s: unexpected status %d", id, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading store %s: %w", id, err)
	}

	// A literal null body means the backend has no such store.
	var store *models.Store
	if err := json.Unmarshal(body, &store); err != nil {
		return nil, fmt.Errorf("decoding store %s: %w", id, err)
	}
	if store == nil {
		return nil, ErrNotFound
	}

	return store, nil
}
