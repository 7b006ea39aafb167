package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/model"
)

// PayoutHistory lists an application's payout attempts, newest first.
func (r *Repository) PayoutHistory(ctx context.Context, applicationID string) (attempts []model.PayoutAttempt, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("payout_history", err, started)
	}()

	const query = `
SELECT
	application_id,
	transfer_id,
	amount,
	currency,
	status,
	initiated_at,
	completed_at,
	failure_reason
FROM application_payouts
WHERE application_id = ?
ORDER BY initiated_at DESC`

	rows, err := r.conn.Query(ctx, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("query payout history: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var (
			attempt model.PayoutAttempt
			status  string
		)
		if err = rows.Scan(
			&attempt.ApplicationID,
			&attempt.TransferID,
			&attempt.Amount,
			&attempt.Currency,
			&status,
			&attempt.InitiatedAt,
			&attempt.CompletedAt,
			&attempt.FailureReason,
		); err != nil {
			return nil, fmt.Errorf("scan payout attempt: %w", err)
		}
		attempt.Status = model.TransactionStatus(status)
		attempts = append(attempts, attempt)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payout history: %w", err)
	}
	return attempts, nil
}
