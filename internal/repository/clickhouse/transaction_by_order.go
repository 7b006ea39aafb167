package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/model"
)

const transactionColumns = `
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
	updated_at`

// TransactionByOrder returns the latest version of the transaction holding a
// gateway order for an application, or (nil, nil) when no attempt used it.
func (r *Repository) TransactionByOrder(ctx context.Context, applicationID, orderID string) (tx *model.Transaction, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("transaction_by_order", err, started)
	}()

	const query = `
SELECT` + transactionColumns + `
FROM settlement_transactions FINAL
WHERE application_id = ? AND order_id = ?
ORDER BY updated_at DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, applicationID, orderID)
	if err != nil {
		return nil, fmt.Errorf("query transaction by order: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate transaction by order: %w", err)
		}
		return nil, nil
	}

	var found model.Transaction
	if err = scanTransaction(rows, &found); err != nil {
		return nil, fmt.Errorf("scan transaction by order: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction by order: %w", err)
	}
	return &found, nil
}

func scanTransaction(rows Rows, tx *model.Transaction) error {
	var (
		status  string
		details model.PayoutDetails
	)
	if err := rows.Scan(
		&tx.ID,
		&tx.ApplicationID,
		&tx.AdminID,
		&tx.BeneficiaryID,
		&tx.Amount,
		&tx.Currency,
		&status,
		&tx.OrderID,
		&tx.PaymentID,
		&tx.TransferID,
		&tx.HashedTransactionID,
		&tx.BlockIndex,
		&tx.FailureReason,
		&details.AccountHolderName,
		&details.MaskedAccountNumber,
		&details.IFSC,
		&details.BankName,
		&details.Email,
		&details.Phone,
		&tx.RawResponse,
		&tx.InitiatedAt,
		&tx.PaidAt,
		&tx.CompletedAt,
		&tx.UpdatedAt,
	); err != nil {
		return err
	}

	tx.Status = model.TransactionStatus(status)
	if details != (model.PayoutDetails{}) {
		details.BeneficiaryID = tx.BeneficiaryID
		tx.PayoutDetails = &details
	}
	return nil
}
