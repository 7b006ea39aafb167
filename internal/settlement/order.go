package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/gateway"
	"github.com/scholarpay/scholarpay-backend/internal/model"
	"go.uber.org/zap"
)

// CreateOrder opens a payment-collection order for an application and
// persists an order_created transaction. The payer identity is resolved from
// the scholarship's owning donor, never from the caller.
func (c *Coordinator) CreateOrder(ctx context.Context, applicationID string) (tx *model.Transaction, order *gateway.Order, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("create_order", err, started)
	}()

	if applicationID == "" {
		return nil, nil, fmt.Errorf("application id is required: %w", ErrValidation)
	}

	app, err := c.loadApplication(ctx, applicationID)
	if err != nil {
		return nil, nil, err
	}
	if app.PayoutDetails.BeneficiaryID == "" {
		return nil, nil, fmt.Errorf("application %s has no payout beneficiary: %w", applicationID, ErrPreconditionFailed)
	}

	scholarship, err := c.loadScholarship(ctx, app.ScholarshipID)
	if err != nil {
		return nil, nil, err
	}

	amount, err := settlementAmount(app, scholarship)
	if err != nil {
		return nil, nil, err
	}

	order, gatewayErr := c.gateway.CreateOrder(ctx, gateway.OrderRequest{
		Amount:   amount,
		Currency: defaultCurrency,
		Receipt:  "rcpt_" + app.ID,
		Notes: map[string]string{
			"application_id": app.ID,
			"scholarship_id": scholarship.ID,
		},
	})
	if gatewayErr != nil {
		c.recordFailedAttempt(ctx, model.Transaction{
			ApplicationID: app.ID,
			AdminID:       scholarship.CreatedBy,
			BeneficiaryID: app.PayoutDetails.BeneficiaryID,
			Amount:        amount,
			Currency:      defaultCurrency,
		}, gatewayErr.Error())
		err = fmt.Errorf("create order for application %s: %v: %w", app.ID, gatewayErr, ErrGatewayFailure)
		return nil, nil, err
	}

	now := c.now().UTC()
	details := app.PayoutDetails
	tx = &model.Transaction{
		ID:            c.newTransactionID(),
		ApplicationID: app.ID,
		AdminID:       scholarship.CreatedBy,
		BeneficiaryID: app.PayoutDetails.BeneficiaryID,
		Amount:        amount,
		Currency:      defaultCurrency,
		Status:        model.TransactionOrderCreated,
		OrderID:       order.ID,
		PayoutDetails: &details,
		RawResponse:   order.Raw,
		InitiatedAt:   now,
		UpdatedAt:     now,
	}
	if err = c.transactions.InsertTransaction(ctx, *tx); err != nil {
		return nil, nil, fmt.Errorf("persist transaction for order %s: %w", order.ID, err)
	}

	c.logger.Info("payment order created",
		zap.String("applicationId", app.ID),
		zap.String("orderId", order.ID),
		zap.Int64("amountPaise", amount),
	)
	return tx, order, nil
}
