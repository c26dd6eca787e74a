// Package gateway is the outbound adapter for the hosted payment provider.
// The provider renders its own checkout widget in the browser; the server's
// only jobs are the authoritative confirm call after the buyer pays and the
// cancel call for refunds.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/horu2day/saleslicense/internal/domain"
	"github.com/horu2day/saleslicense/internal/ports"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	http *resty.Client
}

// NewClient builds the provider client. Authentication is HTTP basic with the
// secret key as username and an empty password, per the provider's API docs.
func NewClient(baseURL, secretKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetBasicAuth(secretKey, "").
		SetHeader("Content-Type", "application/json")
	return &Client{http: c}
}

type confirmRequest struct {
	OrderID string `json:"orderId"`
	Amount  int64  `json:"amount"`
}

type paymentResponse struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Status     string `json:"status"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Confirm finalizes an authorized payment. The provider verifies that the
// amount the buyer actually paid matches the amount we pass here and rejects
// the capture otherwise. Transport failures are returned as plain errors so
// the caller can treat the outcome as unknown rather than declined.
func (c *Client) Confirm(ctx context.Context, paymentKey, orderRef string, amount int64) (ports.ConfirmResult, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(confirmRequest{OrderID: orderRef, Amount: amount}).
		Post("/v1/payments/" + paymentKey)
	if err != nil {
		return ports.ConfirmResult{}, fmt.Errorf("payment confirm request: %w", err)
	}
	if resp.IsError() {
		return ports.ConfirmResult{}, newGatewayError(resp)
	}

	var payment paymentResponse
	if err := json.Unmarshal(resp.Body(), &payment); err != nil {
		return ports.ConfirmResult{}, fmt.Errorf("decode payment confirm response: %w", err)
	}
	paymentID := payment.PaymentKey
	if paymentID == "" {
		paymentID = paymentKey
	}
	return ports.ConfirmResult{PaymentID: paymentID}, nil
}

type cancelRequest struct {
	CancelReason string `json:"cancelReason"`
}

// Cancel reverses a captured payment.
func (c *Client) Cancel(ctx context.Context, paymentKey, reason string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(cancelRequest{CancelReason: reason}).
		Post("/v1/payments/" + paymentKey + "/cancel")
	if err != nil {
		return fmt.Errorf("payment cancel request: %w", err)
	}
	if resp.IsError() {
		return newGatewayError(resp)
	}
	return nil
}

func newGatewayError(resp *resty.Response) *domain.GatewayError {
	var body errorResponse
	message := ""
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		message = body.Message
		if message == "" {
			message = body.Code
		}
	}
	if message == "" {
		message = resp.Status()
	}
	return &domain.GatewayError{Status: resp.StatusCode(), Message: message}
}
