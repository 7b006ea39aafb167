package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/model"
)

// InsertTransaction writes one version of a settlement transaction. The table
// is a ReplacingMergeTree keyed by id and versioned by updated_at, so writing
// the same id again supersedes the previous version.
func (r *Repository) InsertTransaction(ctx context.Context, tx model.Transaction) error {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transaction", err, started)
	}()

	const query = `
INSERT INTO settlement_transactions (
	id,
	application_id,
	admin_id,
	beneficiary_id,
	amount,
	currency,
	status,
	order_id,
	payment_id,
	transfer_id,
	hashed_transaction_id,
	block_index,
	failure_reason,
	account_holder_name,
	masked_account_number,
	ifsc,
	bank_name,
	email,
	phone,
	raw_response,
	initiated_at,
	paid_at,
	completed_at,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transaction batch: %w", err)
	}

	var details model.PayoutDetails
	if tx.PayoutDetails != nil {
		details = *tx.PayoutDetails
	}

	if err = batch.Append(
		tx.ID,
		tx.ApplicationID,
		tx.AdminID,
		tx.BeneficiaryID,
		tx.Amount,
		tx.Currency,
		string(tx.Status),
		tx.OrderID,
		tx.PaymentID,
		tx.TransferID,
		tx.HashedTransactionID,
		tx.BlockIndex,
		tx.FailureReason,
		details.AccountHolderName,
		details.MaskedAccountNumber,
		details.IFSC,
		details.BankName,
		details.Email,
		details.Phone,
		tx.RawResponse,
		tx.InitiatedAt,
		tx.PaidAt,
		tx.CompletedAt,
		tx.UpdatedAt,
	); err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}
