// Package api implements the HTTP client for the comparison service and
// adapts it to the compare module's gateway interface.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/sfdc-tools/sfcompare/internal/modules/compare"
)

const (
	maxRetries      = 3
	baseRetryDelay  = 100 * time.Millisecond
	maxRetryDelay   = 5 * time.Second
	retryableStatus = 429 // Too Many Requests
)

// Client handles authenticated requests to the comparison service.
type Client struct {
	httpClient *http.Client
	apiURL     string
	apiToken   string
}

// NewClient creates a new comparison service client.
func NewClient(apiURL, apiToken string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 300 * time.Second
	}

	// Remove trailing slash
	if len(apiURL) > 0 && apiURL[len(apiURL)-1] == '/' {
		apiURL = apiURL[:len(apiURL)-1]
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiURL:   apiURL,
		apiToken: apiToken,
	}
}

// Submit creates a comparison result set on the service and returns its
// handle. The service resolves both snapshot selectors to concrete
// instants, which is the only way to learn the instant behind a job
// selector.
func (c *Client) Submit(ctx context.Context, req *compare.CompareRequest) (*compare.Handle, error) {
	body := submitRequest{
		Type:        string(req.Kind),
		Left:        selectorFor(req.Left),
		Right:       selectorFor(req.Right),
		Destination: req.DestinationContext,
	}

	resp, err := c.request(ctx, "POST", "/compare", body, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode submit response: %w", err)
	}

	leftTime, err := time.Parse(time.RFC3339, result.LeftTime)
	if err != nil {
		return nil, fmt.Errorf("invalid left snapshot time %q: %w", result.LeftTime, err)
	}
	rightTime, err := time.Parse(time.RFC3339, result.RightTime)
	if err != nil {
		return nil, fmt.Errorf("invalid right snapshot time %q: %w", result.RightTime, err)
	}

	return &compare.Handle{
		ID:        result.ID,
		LeftTime:  leftTime,
		RightTime: rightTime,
	}, nil
}

// FetchPage retrieves one page of the currently displayed table.
func (c *Client) FetchPage(ctx context.Context, h *compare.Handle, filter string, page int) (*compare.TablePage, error) {
	params := map[string]string{
		"page": strconv.Itoa(page),
	}
	if filter != "" {
		params["filter"] = filter
	}

	resp, err := c.request(ctx, "GET", fmt.Sprintf("/compare/%s/rows", h.ID), nil, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result rowsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode rows response: %w", err)
	}

	return &compare.TablePage{
		Table: compare.Table{
			Columns: result.Columns,
			Rows:    result.Rows,
		},
		HasMore: result.HasMore,
	}, nil
}

// DrillDown opens the record listing behind one summary cell.
func (c *Client) DrillDown(ctx context.Context, h *compare.Handle, entity, column string) error {
	body := drilldownRequest{Entity: entity, Column: column}
	resp, err := c.request(ctx, "POST", fmt.Sprintf("/compare/%s/drilldown", h.ID), body, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// RevealColumn adds a field column to the current drill-down view.
func (c *Client) RevealColumn(ctx context.Context, h *compare.Handle, field string) error {
	body := columnRequest{Field: field}
	resp, err := c.request(ctx, "POST", fmt.Sprintf("/compare/%s/columns", h.ID), body, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// NavigateBack returns from a drill-down to the summary table.
func (c *Client) NavigateBack(ctx context.Context, h *compare.Handle) error {
	resp, err := c.request(ctx, "POST", fmt.Sprintf("/compare/%s/back", h.ID), nil, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func selectorFor(ref compare.SnapshotReference) snapshotSelector {
	if ref.Kind == compare.SnapshotJob {
		return snapshotSelector{Mode: "job", Value: ref.JobToken}
	}
	return snapshotSelector{Mode: "custom_datetime", Value: ref.Instant.Format(time.RFC3339)}
}

// request makes an authenticated request to the comparison service.
func (c *Client) request(ctx context.Context, method, path string, data interface{}, params map[string]string) (*http.Response, error) {
	url := fmt.Sprintf("%s%s", c.apiURL, path)

	var jsonData []byte
	if data != nil {
		var err error
		jsonData, err = json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	requestID := uuid.NewString()

	var resp *http.Response
	var err error

	// Retry logic with exponential backoff
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Calculate exponential backoff delay
			delay := baseRetryDelay * time.Duration(1<<uint(attempt-1))
			if delay > maxRetryDelay {
				delay = maxRetryDelay
			}

			// Check if context is cancelled
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
				// Continue with retry
			}
		}

		var reqBody io.Reader
		if jsonData != nil {
			reqBody = bytes.NewReader(jsonData)
		}

		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, method, url, reqBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiToken))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-ID", requestID)

		// Add query parameters
		if params != nil {
			q := req.URL.Query()
			for k, v := range params {
				q.Set(k, v)
			}
			req.URL.RawQuery = q.Encode()
		}

		resp, err = c.httpClient.Do(req)
		if err != nil {
			if attempt == maxRetries {
				return nil, fmt.Errorf("failed to execute request after %d attempts: %w", maxRetries+1, err)
			}
			// Retry on network errors
			continue
		}

		// Check if status code is retryable (429 Too Many Requests)
		if resp.StatusCode == retryableStatus && attempt < maxRetries {
			resp.Body.Close()
			// Retry on rate limit
			continue
		}

		// Non-retryable status codes
		if resp.StatusCode >= 400 {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return nil, fmt.Errorf("API request failed: %s - %s", resp.Status, string(body))
		}

		// Success
		return resp, nil
	}

	return resp, err
}

// Close closes the HTTP client (no-op for standard client, but implements closer pattern).
func (c *Client) Close() error {
	return nil
}
