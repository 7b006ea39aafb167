package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/model"
)

// InsertPayoutAttempt appends one entry to an application's payout history.
func (r *Repository) InsertPayoutAttempt(ctx context.Context, attempt model.PayoutAttempt) error {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_payout_attempt", err, started)
	}()

	const query = `
INSERT INTO application_payouts (
	application_id,
	transfer_id,
	amount,
	currency,
	status,
	initiated_at,
	completed_at,
	failure_reason
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare payout batch: %w", err)
	}

	if err = batch.Append(
		attempt.ApplicationID,
		attempt.TransferID,
		attempt.Amount,
		attempt.Currency,
		string(attempt.Status),
		attempt.InitiatedAt,
		attempt.CompletedAt,
		attempt.FailureReason,
	); err != nil {
		return fmt.Errorf("append payout attempt: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert payout attempt: %w", err)
	}
	return nil
}
