package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the Razorpay orders API and verifies payment signatures.
type Client struct {
	http      *resty.Client
	keySecret string
	log       Logger
}

// NewClient creates a gateway client with basic-auth credentials.
func NewClient(baseURL, keyID, keySecret string, timeout time.Duration, log Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetBasicAuth(keyID, keySecret).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:      httpClient,
		keySecret: keySecret,
		log:       log,
	}
}

// CreateOrder registers a payment order for the given amount in paise.
func (c *Client) CreateOrder(ctx context.Context, amountPaise int, receipt string) (*Order, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(orderRequest{
			Amount:   amountPaise,
			Currency: "INR",
			Receipt:  receipt,
		}).
		Post("/orders")
	if err != nil {
		return nil, fmt.Errorf("%w: execute request: %v", ErrInternal, err)
	}

	if resp.StatusCode() != http.StatusOK {
		var gwErr ErrorResponse
		if err := json.Unmarshal(resp.Body(), &gwErr); err == nil && gwErr.Error.Description != "" {
			c.log.Warn("Razorpay order creation rejected: code=%s, description=%s",
				gwErr.Error.Code, gwErr.Error.Description)
			return nil, fmt.Errorf("%w: %s", ErrOrderCreation, gwErr.Error.Description)
		}
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrOrderCreation, resp.StatusCode())
	}

	var order Order
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		return nil, fmt.Errorf("%w: decode order: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Razorpay order created: id=%s, amount=%d, receipt=%s", order.ID, order.Amount, receipt)
	return &order, nil
}

// VerifyPaymentSignature checks the callback HMAC-SHA256 over
// "<orderID>|<paymentID>" against the key secret. Constant-time comparison.
func (c *Client) VerifyPaymentSignature(orderID, paymentID, signature string) error {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}

	return nil
}
