package pvwatts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"dashboard.solarcredits.org/internal/logging"
)

// Config configures a Client. Zero values select defaults.
type Config struct {
	BaseURL     string
	APIKey      string
	RatePerHour int // outbound requests per hour; <= 0 disables limiting
	Burst       int
	Timeout     time.Duration
	HTTPClient  *http.Client
	Logger      *slog.Logger
}

// Client calls the estimation service. It is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a Client from config.
func NewClient(config Config) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	if config.RatePerHour > 0 {
		limit = rate.Every(time.Hour / time.Duration(config.RatePerHour))
	}
	burst := config.Burst
	if burst <= 0 {
		burst = 10
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     config.APIKey,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, burst),
		logger:     config.Logger,
	}
}

// Estimate requests a projection for input. It makes exactly one request.
func (c *Client) Estimate(ctx context.Context, input Input) (*Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: waiting for rate limiter: %w", ErrEstimate, err)
	}

	q := input.Query()
	q.Set("api_key", c.apiKey)
	endpoint := c.baseURL + estimatePath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %w", ErrEstimate, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEstimate, err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, c.logger, "pvwatts_response_body")

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", ErrEstimate, err)
	}

	var result Result
	decodeErr := json.Unmarshal(body, &result)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Messages: result.Errors}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", ErrEstimate, decodeErr)
	}
	if len(result.Errors) > 0 {
		return nil, &APIError{StatusCode: resp.StatusCode, Messages: result.Errors}
	}

	logging.LogOperation(c.logger, "pvwatts_estimate",
		slog.Int("status", resp.StatusCode),
		slog.Int("months", len(result.Outputs.ACMonthly)),
		slog.Duration("duration", time.Since(start)),
		slog.String("component", "pvwatts_client"))

	return &result, nil
}
