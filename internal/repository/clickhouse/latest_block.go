package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/model"
)

const blockColumns = `
	block_index,
	timestamp,
	prev_hash,
	data_hash,
	hash,
	nonce,
	hashed_application_id,
	hashed_transaction_id,
	hashed_user_id,
	amount,
	currency,
	status,
	gateway_payment_id,
	gateway_order_id`

// LatestBlock returns the chain tail, or (nil, nil) when the ledger is empty.
func (r *Repository) LatestBlock(ctx context.Context) (block *model.Block, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("latest_block", err, started)
	}()

	const query = `
SELECT` + blockColumns + `
FROM ledger_blocks
ORDER BY block_index DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query latest block: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate latest block: %w", err)
		}
		return nil, nil
	}

	var tail model.Block
	if err = scanBlock(rows, &tail); err != nil {
		return nil, fmt.Errorf("scan latest block: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate latest block: %w", err)
	}
	return &tail, nil
}

func scanBlock(rows Rows, block *model.Block) error {
	return rows.Scan(
		&block.Index,
		&block.Timestamp,
		&block.PrevHash,
		&block.DataHash,
		&block.Hash,
		&block.Nonce,
		&block.Data.HashedApplicationID,
		&block.Data.HashedTransactionID,
		&block.Data.HashedUserID,
		&block.Data.Amount,
		&block.Data.Currency,
		&block.Data.Status,
		&block.Data.GatewayPaymentID,
		&block.Data.GatewayOrderID,
	)
}
