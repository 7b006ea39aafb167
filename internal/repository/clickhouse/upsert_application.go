package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/model"
)

// UpsertApplication writes a new version of an application row. Readers see
// the version with the highest updated_at.
func (r *Repository) UpsertApplication(ctx context.Context, app model.Application) error {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_application", err, started)
	}()

	const query = `
INSERT INTO applications (
	id,
	scholarship_id,
	verifier_id,
	student_id,
	student_name,
	student_email,
	verifier_email,
	status,
	donor_decision,
	donor_action_at,
	fund_raised,
	beneficiary_id,
	account_holder_name,
	masked_account_number,
	ifsc,
	bank_name,
	payout_email,
	payout_phone,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare application batch: %w", err)
	}

	if err = batch.Append(
		app.ID,
		app.ScholarshipID,
		app.VerifierID,
		app.StudentID,
		app.StudentName,
		app.StudentEmail,
		app.VerifierEmail,
		string(app.Status),
		string(app.DonorDecision),
		app.DonorActionAt,
		app.FundRaised,
		app.PayoutDetails.BeneficiaryID,
		app.PayoutDetails.AccountHolderName,
		app.PayoutDetails.MaskedAccountNumber,
		app.PayoutDetails.IFSC,
		app.PayoutDetails.BankName,
		app.PayoutDetails.Email,
		app.PayoutDetails.Phone,
		app.UpdatedAt,
	); err != nil {
		return fmt.Errorf("append application: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("upsert application: %w", err)
	}
	return nil
}
