// Package sheets exports confirmed bookings to a spreadsheet webhook.
// The export is a best-effort side channel: callers must never fail a
// booking because a row could not be appended.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrDisabled is returned when the sink is not configured.
	ErrDisabled = errors.New("sheets client: export disabled")

	// ErrInternal is returned on transport-level failures.
	ErrInternal = errors.New("sheets client: internal error")

	// ErrInvalidResponse is returned when the webhook rejects the row.
	ErrInvalidResponse = errors.New("sheets client: invalid response")
)

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Row is one exported booking record.
type Row struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Price     int    `json:"price"`
	BookedAt  string `json:"bookedAt"`
}

// Client appends booking rows to the configured webhook.
type Client struct {
	url        string
	enabled    bool
	httpClient *http.Client
	log        Logger
}

// NewClient creates a sheet-export client.
// With enabled=false every append is silently skipped.
func NewClient(url string, enabled bool, timeout time.Duration, log Logger) *Client {
	return &Client{
		url:     url,
		enabled: enabled && url != "",
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// AppendRow posts one booking row to the webhook.
func (c *Client) AppendRow(ctx context.Context, row Row) error {
	if !c.enabled {
		c.log.Info("Skipping sheet export: sink disabled")
		return ErrDisabled
	}

	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("%w: marshal row: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	c.log.Info("Booking row exported to sheet: name=%s, date=%s, start=%s", row.Name, row.Date, row.StartTime)
	return nil
}
