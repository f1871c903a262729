// Package helpers provides narrowly-scoped utilities for E2E testing.
package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gti/resource-planner/internal/utilization"
)

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
}

// JSON decodes the body into v.
func (r *Response) JSON(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

func (r *Response) String() string {
	return fmt.Sprintf("%d %s", r.StatusCode, r.Body)
}

// APIClient talks JSON to the planner API. Non-2xx statuses come back in the
// Response, not as errors.
type APIClient struct {
	baseURL string
	headers http.Header
	client  *http.Client
}

// NewAPIClient creates a client for baseURL, e.g. "http://127.0.0.1:8080".
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		headers: http.Header{},
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// SetHeader sends key on every subsequent request.
func (c *APIClient) SetHeader(key, value string) {
	c.headers.Set(key, value)
}

// WithoutHeader returns a copy of the client that does not send key, e.g. to
// call a protected route anonymously.
func (c *APIClient) WithoutHeader(key string) *APIClient {
	clone := &APIClient{baseURL: c.baseURL, headers: c.headers.Clone(), client: c.client}
	clone.headers.Del(key)
	return clone
}

// Call is Do with a background context.
func (c *APIClient) Call(method, path string, body interface{}) (*Response, error) {
	return c.Do(context.Background(), method, path, body)
}

// Do sends body JSON-encoded (nil for none) to path.
func (c *APIClient) Do(ctx context.Context, method, path string, body interface{}) (*Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = c.headers.Clone()
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &Response{StatusCode: resp.StatusCode, Body: raw}, nil
}

// Period builds the department/startDate/endDate query shared by the
// dashboard endpoints. Empty values are omitted.
func Period(department, start, end string) string {
	q := url.Values{}
	for k, v := range map[string]string{"department": department, "startDate": start, "endDate": end} {
		if v != "" {
			q.Set(k, v)
		}
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// Alerts fetches the dashboard alert payload and fails on any non-200 status.
func (c *APIClient) Alerts(ctx context.Context, query string) (*utilization.AlertPayload, error) {
	resp, err := c.Do(ctx, http.MethodGet, "/api/dashboard/alerts"+query, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alerts: unexpected response %s", resp)
	}

	var payload utilization.AlertPayload
	if err := resp.JSON(&payload); err != nil {
		return nil, fmt.Errorf("alerts: %w", err)
	}
	return &payload, nil
}
