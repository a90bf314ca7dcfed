package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/studiowebux/placemap/internal/types"
)

const (
	// PlacesPath is the backend endpoint for prompt interpretation
	PlacesPath = "/places"

	// APIKeyHeader carries the static backend credential
	APIKeyHeader = "X-API-Key"

	defaultTimeout = 30 * time.Second
)

// Exchange captures one round trip to the backend
type Exchange struct {
	Payload  *types.PlacesResponse
	Status   int
	OK       bool   // true for a 2xx status
	Raw      string // raw response body
	Duration int64  // milliseconds
}

// Client performs /places exchanges against a configured backend
type Client struct {
	baseURL string
	apiKey  string
	headers map[string]string
	httpc   *http.Client
}

// NewClient builds a client from a profile. Base URL and API key always
// come from configuration, never from literals at the call site.
func NewClient(profile *types.Profile) *Client {
	timeout := defaultTimeout
	if profile.TimeoutSeconds > 0 {
		timeout = time.Duration(profile.TimeoutSeconds) * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(profile.BaseURL, "/"),
		apiKey:  profile.APIKey,
		headers: profile.Headers,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Lookup sends the prompt to the backend and returns the decoded exchange.
// A non-nil error means the exchange itself failed (network error, timeout,
// or a body that is not valid JSON); a backend-reported failure comes back
// as a normal Exchange with OK=false.
func (c *Client) Lookup(ctx context.Context, prompt string) (*Exchange, error) {
	startTime := time.Now()

	body, err := json.Marshal(types.PlacesRequest{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+PlacesPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(APIKeyHeader, c.apiKey)
	for key, value := range c.headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.httpc.Do(httpReq)
	duration := time.Since(startTime).Milliseconds()

	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var payload types.PlacesResponse
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	return &Exchange{
		Payload:  &payload,
		Status:   resp.StatusCode,
		OK:       IsSuccessStatus(resp.StatusCode),
		Raw:      string(bodyBytes),
		Duration: duration,
	}, nil
}

// IsSuccessStatus returns true if status code is 2xx
func IsSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}

// FormatDuration formats duration in milliseconds to human-readable string
func FormatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	seconds := float64(ms) / 1000.0
	return fmt.Sprintf("%.2fs", seconds)
}
