package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/ledger"
	"github.com/scholarpay/scholarpay-backend/internal/model"
	"github.com/scholarpay/scholarpay-backend/pkg/money"
	"go.uber.org/zap"
)

// VerifyPayment checks a payment confirmation's signature and settles the
// application's collection leg: the transaction moves to paid, a ledger
// block is appended best-effort, and the application's raised total is
// credited. The operation is idempotent per (application, order): replaying
// a confirmation for an already-paid order is a no-op success.
func (c *Coordinator) VerifyPayment(ctx context.Context, applicationID, orderID, paymentID, signature string) (tx *model.Transaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("verify_payment", err, started)
	}()

	if applicationID == "" || orderID == "" || paymentID == "" || signature == "" {
		return nil, fmt.Errorf("application id, order id, payment id and signature are required: %w", ErrValidation)
	}

	// Fail closed before touching any state.
	if !signatureValid(c.gatewaySecret, orderID, paymentID, signature) {
		c.logger.Warn("payment signature rejected",
			zap.String("applicationId", applicationID),
			zap.String("orderId", orderID),
		)
		return nil, fmt.Errorf("order %s: %w", orderID, ErrSignatureMismatch)
	}

	app, err := c.loadApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	existing, err := c.transactions.TransactionByOrder(ctx, applicationID, orderID)
	if err != nil {
		return nil, fmt.Errorf("load transaction for order %s: %w", orderID, err)
	}
	if existing != nil && existing.Status == model.TransactionPaid {
		c.logger.Info("payment already verified, skipping",
			zap.String("applicationId", applicationID),
			zap.String("orderId", orderID),
		)
		return existing, nil
	}

	now := c.now().UTC()
	if existing == nil {
		// Webhook arrived before the order-created write landed. Converge by
		// synthesizing the paid transaction from the application's scholarship.
		scholarship, schErr := c.loadScholarship(ctx, app.ScholarshipID)
		if schErr != nil {
			return nil, schErr
		}
		amount, amountErr := settlementAmount(app, scholarship)
		if amountErr != nil {
			return nil, amountErr
		}
		details := app.PayoutDetails
		existing = &model.Transaction{
			ID:            c.newTransactionID(),
			ApplicationID: app.ID,
			AdminID:       scholarship.CreatedBy,
			BeneficiaryID: app.PayoutDetails.BeneficiaryID,
			Amount:        amount,
			Currency:      defaultCurrency,
			PayoutDetails: &details,
			InitiatedAt:   now,
		}
	}

	existing.Status = model.TransactionPaid
	existing.OrderID = orderID
	existing.PaymentID = paymentID
	existing.PaidAt = &now
	existing.UpdatedAt = now

	if existing.HashedTransactionID == "" {
		minted, mintErr := c.ledger.MintTransactionID(app.ID, paymentID)
		if mintErr != nil {
			c.logger.Error("mint hashed transaction id", zap.Error(mintErr))
		} else {
			existing.HashedTransactionID = minted
		}
	}

	if err = c.transactions.InsertTransaction(ctx, *existing); err != nil {
		return nil, fmt.Errorf("persist paid transaction for order %s: %w", orderID, err)
	}

	c.appendLedgerBlock(ctx, existing)

	app.DonorDecision = model.DonorDecisionFunded
	app.DonorActionAt = &now
	app.FundRaised = money.AddPaise(app.FundRaised, existing.Amount)
	app.UpdatedAt = now
	if err = c.applications.UpsertApplication(ctx, *app); err != nil {
		return nil, fmt.Errorf("credit application %s: %w", app.ID, err)
	}

	c.logger.Info("payment verified",
		zap.String("applicationId", app.ID),
		zap.String("orderId", orderID),
		zap.String("paymentId", paymentID),
		zap.Float64("fundRaised", app.FundRaised),
	)

	if c.notifier != nil {
		c.notifier.SendReceipt(Receipt{
			ApplicationID: app.ID,
			StudentName:   app.StudentName,
			StudentEmail:  app.StudentEmail,
			VerifierEmail: app.VerifierEmail,
			AmountRupees:  money.Rupees(existing.Amount),
			Currency:      existing.Currency,
			OrderID:       orderID,
			PaymentID:     paymentID,
			PaidAt:        now,
		})
	}
	return existing, nil
}

// appendLedgerBlock records the verified payment in the audit chain. The
// payment already succeeded at the gateway, so a ledger failure is logged
// and absorbed rather than unwinding the settlement.
func (c *Coordinator) appendLedgerBlock(ctx context.Context, tx *model.Transaction) {
	ledgerTransactionID := tx.HashedTransactionID
	if ledgerTransactionID == "" {
		ledgerTransactionID = tx.ID
	}

	block, err := c.ledger.Append(ctx, ledger.Event{
		ApplicationID:    tx.ApplicationID,
		TransactionID:    ledgerTransactionID,
		UserID:           tx.AdminID,
		Amount:           tx.Amount,
		Currency:         tx.Currency,
		Status:           string(model.TransactionPaid),
		GatewayPaymentID: tx.PaymentID,
		GatewayOrderID:   tx.OrderID,
	})
	if err != nil {
		c.logger.Error("ledger append failed, payment kept",
			zap.String("applicationId", tx.ApplicationID),
			zap.String("orderId", tx.OrderID),
			zap.Error(err),
		)
		return
	}

	tx.BlockIndex = &block.Index
	// Row versions have millisecond precision; the back-reference write must
	// sort strictly after the paid write or reads keep seeing the older row.
	version := c.now().UTC()
	if minimum := tx.UpdatedAt.Add(time.Millisecond); version.Before(minimum) {
		version = minimum
	}
	tx.UpdatedAt = version
	if err := c.transactions.InsertTransaction(ctx, *tx); err != nil {
		c.logger.Error("record block back-reference",
			zap.Uint64("blockIndex", block.Index),
			zap.Error(err),
		)
	}
}
