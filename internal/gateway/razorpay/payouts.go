package razorpay

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/gateway"
	"go.uber.org/zap"
)

type payoutRequest struct {
	FundAccountID string `json:"fund_account_id"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Mode          string `json:"mode"`
	Purpose       string `json:"purpose"`
	ReferenceID   string `json:"reference_id"`
	Narration     string `json:"narration"`
}

type payoutResponse struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	ReferenceID string `json:"reference_id"`
}

// CreatePayout transfers funds to a beneficiary fund account. In test mode
// the payout is simulated, since the payouts product is not enabled on test
// accounts.
func (c *Client) CreatePayout(ctx context.Context, req gateway.PayoutRequest) (payout *gateway.Payout, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("create_payout", err, started)
	}()

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	if c.testMode {
		return c.simulatePayout(req, currency)
	}

	var resp payoutResponse
	raw, err := c.post(ctx, "/v1/payouts", payoutRequest{
		FundAccountID: req.BeneficiaryID,
		Amount:        req.Amount,
		Currency:      currency,
		Mode:          req.Mode,
		Purpose:       req.Purpose,
		ReferenceID:   req.ReferenceID,
		Narration:     req.Narration,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &gateway.Payout{
		ID:          resp.ID,
		Status:      resp.Status,
		Amount:      resp.Amount,
		Currency:    resp.Currency,
		ReferenceID: resp.ReferenceID,
		Raw:         raw,
	}, nil
}

func (c *Client) simulatePayout(req gateway.PayoutRequest, currency string) (*gateway.Payout, error) {
	c.logger.Warn("payouts disabled in test mode, simulating payout",
		zap.String("beneficiaryId", req.BeneficiaryID),
		zap.Int64("amount", req.Amount),
	)

	payout := &gateway.Payout{
		ID:          fmt.Sprintf("payout_sim_%d", c.now().UnixMilli()),
		Status:      "processing",
		Amount:      req.Amount,
		Currency:    currency,
		ReferenceID: req.ReferenceID,
	}
	raw, err := json.Marshal(map[string]any{
		"id":           payout.ID,
		"status":       payout.Status,
		"amount":       payout.Amount,
		"currency":     payout.Currency,
		"reference_id": payout.ReferenceID,
		"narration":    req.Narration,
		"simulated":    true,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal simulated payout: %w", err)
	}
	payout.Raw = string(raw)
	return payout, nil
}
