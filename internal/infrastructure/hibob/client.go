package hibob

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/hibob"
	"go.uber.org/zap"
)

// Retry policy for transient failures. Only timeouts, 429 and 5xx responses
// are retried; everything else fails immediately.
const (
	maxRetries  = 3
	baseBackoff = 500 * time.Millisecond
)

// HTTPClient implements hibob.Client against the HiBob REST API.
// Pacing between calls is owned by the callers; the client only handles
// per-request timeout and retry.
type HTTPClient struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPClient creates a new HiBob API client
func NewHTTPClient(config *Config, logger *zap.Logger) (*HTTPClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &HTTPClient{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		logger: logger,
	}, nil
}

type tableEntriesResponse struct {
	Values []tableEntryPayload `json:"values"`
}

type tableEntryPayload struct {
	ID     string         `json:"id"`
	Values map[string]any `json:"values"`
}

// GetTableEntries lists the rows of a custom table for one employee
func (c *HTTPClient) GetTableEntries(ctx context.Context, employeeHibobID, tableID string) ([]hibob.TableEntry, error) {
	url := fmt.Sprintf("%s/people/%s/tables/%s/entries", c.config.BaseURL, employeeHibobID, tableID)

	body, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var decoded tableEntriesResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("hibob: failed to decode table entries: %w", err)
	}

	entries := make([]hibob.TableEntry, len(decoded.Values))
	for i, row := range decoded.Values {
		entries[i] = hibob.TableEntry{ID: row.ID, Values: row.Values}
	}
	return entries, nil
}

// CreateTableEntry appends a row to a custom table
func (c *HTTPClient) CreateTableEntry(ctx context.Context, employeeHibobID, tableID string, values map[string]any) error {
	url := fmt.Sprintf("%s/people/%s/tables/%s/entries", c.config.BaseURL, employeeHibobID, tableID)

	payload, err := json.Marshal(map[string]any{"values": values})
	if err != nil {
		return fmt.Errorf("hibob: failed to encode table entry: %w", err)
	}

	_, err = c.do(ctx, http.MethodPost, url, payload)
	return err
}

// DeleteTableEntry removes a row from a custom table
func (c *HTTPClient) DeleteTableEntry(ctx context.Context, employeeHibobID, tableID, entryID string) error {
	url := fmt.Sprintf("%s/people/%s/tables/%s/entries/%s", c.config.BaseURL, employeeHibobID, tableID, entryID)

	_, err := c.do(ctx, http.MethodDelete, url, nil)
	return err
}

// do executes one request with bounded retry and exponential backoff
func (c *HTTPClient) do(ctx context.Context, method, url string, payload []byte) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := baseBackoff * (1 << (attempt - 1))
			c.logger.Warn("retrying hibob request",
				zap.String("method", method),
				zap.String("url", url),
				zap.Int("attempt", attempt),
				zap.Duration("backoff", backoff),
				zap.Error(lastErr))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
		if err != nil {
			return nil, err
		}
		req.SetBasicAuth(c.config.ServiceUserID, c.config.ServiceUserToken)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			if readErr != nil {
				return nil, fmt.Errorf("hibob: failed to read response: %w", readErr)
			}
			return body, nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = fmt.Errorf("hibob: %s %s returned %d", method, url, resp.StatusCode)
			continue
		default:
			return nil, fmt.Errorf("hibob: %s %s returned %d: %s", method, url, resp.StatusCode, truncate(body, 200))
		}
	}

	return nil, fmt.Errorf("hibob: request failed after %d retries: %w", maxRetries, lastErr)
}

func truncate(b []byte, max int) string {
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}

var _ hibob.Client = (*HTTPClient)(nil)
