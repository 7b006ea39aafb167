package settlement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/gateway"
	"github.com/scholarpay/scholarpay-backend/internal/model"
	"go.uber.org/zap"
)

// Accepted gateway beneficiary id prefixes: fund accounts and legacy
// beneficiaries.
var beneficiaryPrefixes = []string{"fa_", "bene_"}

const (
	payoutMode    = "IMPS"
	payoutPurpose = "scholarship"
)

func acceptedBeneficiary(id string) bool {
	for _, prefix := range beneficiaryPrefixes {
		if strings.HasPrefix(id, prefix) {
			return true
		}
	}
	return false
}

// InitiatePayout transfers the settled amount to the application's
// beneficiary and marks the application funded. A malformed beneficiary id
// fails before any gateway call but still leaves a failed transaction for
// audit; gateway errors do the same and are surfaced, never retried.
func (c *Coordinator) InitiatePayout(ctx context.Context, applicationID string) (tx *model.Transaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("initiate_payout", err, started)
	}()

	if applicationID == "" {
		return nil, fmt.Errorf("application id is required: %w", ErrValidation)
	}

	app, err := c.loadApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	scholarship, err := c.loadScholarship(ctx, app.ScholarshipID)
	if err != nil {
		return nil, err
	}
	amount, err := settlementAmount(app, scholarship)
	if err != nil {
		return nil, err
	}

	beneficiary := app.PayoutDetails.BeneficiaryID
	details := app.PayoutDetails
	base := model.Transaction{
		ApplicationID: app.ID,
		AdminID:       scholarship.CreatedBy,
		BeneficiaryID: beneficiary,
		Amount:        amount,
		Currency:      defaultCurrency,
		PayoutDetails: &details,
	}

	if !acceptedBeneficiary(beneficiary) {
		reason := fmt.Sprintf("beneficiary id %q does not match an accepted format (fa_* or bene_*)", beneficiary)
		c.recordFailedAttempt(ctx, base, reason)
		return nil, fmt.Errorf("%s: %w", reason, ErrPreconditionFailed)
	}

	payout, gatewayErr := c.gateway.CreatePayout(ctx, gateway.PayoutRequest{
		BeneficiaryID: beneficiary,
		Amount:        amount,
		Currency:      defaultCurrency,
		Mode:          payoutMode,
		Purpose:       payoutPurpose,
		ReferenceID:   app.ID,
		Narration:     "Scholarship disbursement for " + app.StudentName,
	})
	if gatewayErr != nil {
		c.recordFailedAttempt(ctx, base, gatewayErr.Error())
		err = fmt.Errorf("payout for application %s: %v: %w", app.ID, gatewayErr, ErrGatewayFailure)
		return nil, err
	}

	now := c.now().UTC()
	tx = &model.Transaction{
		ID:            c.newTransactionID(),
		ApplicationID: app.ID,
		AdminID:       scholarship.CreatedBy,
		BeneficiaryID: beneficiary,
		Amount:        amount,
		Currency:      payout.Currency,
		Status:        model.TransactionStatus(payout.Status),
		TransferID:    payout.ID,
		PayoutDetails: &details,
		RawResponse:   payout.Raw,
		InitiatedAt:   now,
		UpdatedAt:     now,
	}
	if err = c.transactions.InsertTransaction(ctx, *tx); err != nil {
		return nil, fmt.Errorf("persist payout transaction %s: %w", payout.ID, err)
	}

	if err = c.applications.InsertPayoutAttempt(ctx, model.PayoutAttempt{
		ApplicationID: app.ID,
		TransferID:    payout.ID,
		Amount:        amount,
		Currency:      payout.Currency,
		Status:        model.TransactionStatus(payout.Status),
		InitiatedAt:   now,
	}); err != nil {
		return nil, fmt.Errorf("append payout history for %s: %w", app.ID, err)
	}

	app.Status = model.ApplicationFunded
	app.UpdatedAt = now
	if err = c.applications.UpsertApplication(ctx, *app); err != nil {
		return nil, fmt.Errorf("mark application %s funded: %w", app.ID, err)
	}

	c.logger.Info("payout initiated",
		zap.String("applicationId", app.ID),
		zap.String("transferId", payout.ID),
		zap.String("status", payout.Status),
		zap.Int64("amountPaise", amount),
	)
	return tx, nil
}
