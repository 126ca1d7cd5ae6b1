package webhook

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
)

const requestIDHeader = "X-Request-Id"

func (c *Client) postJSON(ctx context.Context, path string, payload any, operation string) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.roundTrip(req, operation)
}

// roundTrip performs the single request attempt every operation is allowed.
// A non-2xx status is treated identically to a network failure; the body of
// such a response is only used to enrich the error text, never parsed for
// partial success.
func (c *Client) roundTrip(req *http.Request, operation string) ([]byte, error) {
	req.Header.Set(requestIDHeader, uuid.NewString())

	c.metrics.CallStarted()
	defer c.metrics.CallFinished()

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.ObserveCall(serviceName, operation, false, elapsed)
		c.logger.Warn("backend_call",
			"operation", operation,
			"duration_ms", float64(elapsed.Microseconds())/1000.0,
			"error", err,
		)
		return nil, fmt.Errorf("%s request: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		c.metrics.ObserveCall(serviceName, operation, false, elapsed)
		c.logger.Warn("backend_call",
			"operation", operation,
			"status", resp.StatusCode,
			"duration_ms", float64(elapsed.Microseconds())/1000.0,
		)
		return nil, formatHTTPError(operation, resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.ObserveCall(serviceName, operation, false, elapsed)
		return nil, fmt.Errorf("read %s response: %w", operation, err)
	}

	c.metrics.ObserveCall(serviceName, operation, true, elapsed)
	c.logger.Debug("backend_call",
		"operation", operation,
		"status", resp.StatusCode,
		"duration_ms", float64(elapsed.Microseconds())/1000.0,
		"bytes", len(body),
	)
	return body, nil
}

func formatHTTPError(operation string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return fmt.Errorf("%s status: %s", operation, resp.Status)
	}
	return fmt.Errorf("%s status: %s: %s", operation, resp.Status, msg)
}
