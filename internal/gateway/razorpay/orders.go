package razorpay

import (
	"context"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/gateway"
)

type orderRequest struct {
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	Receipt        string            `json:"receipt"`
	PaymentCapture int               `json:"payment_capture"`
	Notes          map[string]string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateOrder opens a payment-collection order with auto capture.
func (c *Client) CreateOrder(ctx context.Context, req gateway.OrderRequest) (order *gateway.Order, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("create_order", err, started)
	}()

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	var resp orderResponse
	raw, err := c.post(ctx, "/v1/orders", orderRequest{
		Amount:         req.Amount,
		Currency:       currency,
		Receipt:        req.Receipt,
		PaymentCapture: 1,
		Notes:          req.Notes,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &gateway.Order{
		ID:       resp.ID,
		Amount:   resp.Amount,
		Currency: resp.Currency,
		Receipt:  resp.Receipt,
		Status:   resp.Status,
		Raw:      raw,
	}, nil
}
