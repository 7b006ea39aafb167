package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/model"
)

const applicationColumns = `
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
	updated_at`

// ApplicationByID returns the latest version of an application, or (nil, nil)
// when the id is unknown.
func (r *Repository) ApplicationByID(ctx context.Context, id string) (app *model.Application, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("application_by_id", err, started)
	}()

	const query = `
SELECT` + applicationColumns + `
FROM applications FINAL
WHERE id = ?
ORDER BY updated_at DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("query application: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate application: %w", err)
		}
		return nil, nil
	}

	var (
		found    model.Application
		status   string
		decision string
	)
	if err = rows.Scan(
		&found.ID,
		&found.ScholarshipID,
		&found.VerifierID,
		&found.StudentID,
		&found.StudentName,
		&found.StudentEmail,
		&found.VerifierEmail,
		&status,
		&decision,
		&found.DonorActionAt,
		&found.FundRaised,
		&found.PayoutDetails.BeneficiaryID,
		&found.PayoutDetails.AccountHolderName,
		&found.PayoutDetails.MaskedAccountNumber,
		&found.PayoutDetails.IFSC,
		&found.PayoutDetails.BankName,
		&found.PayoutDetails.Email,
		&found.PayoutDetails.Phone,
		&found.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan application: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate application: %w", err)
	}

	found.Status = model.ApplicationStatus(status)
	found.DonorDecision = model.DonorDecision(decision)
	return &found, nil
}
