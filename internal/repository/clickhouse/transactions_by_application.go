package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/model"
)

// TransactionsByApplication lists the latest version of every settlement
// attempt for an application, newest first.
func (r *Repository) TransactionsByApplication(ctx context.Context, applicationID string) (txs []model.Transaction, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("transactions_by_application", err, started)
	}()

	const query = `
SELECT` + transactionColumns + `
FROM settlement_transactions FINAL
WHERE application_id = ?
ORDER BY initiated_at DESC`

	rows, err := r.conn.Query(ctx, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var tx model.Transaction
		if err = scanTransaction(rows, &tx); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}
