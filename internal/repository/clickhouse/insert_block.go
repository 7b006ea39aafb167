package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/model"
)

// InsertBlock appends one sealed block to the ledger table.
func (r *Repository) InsertBlock(ctx context.Context, block model.Block) error {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_block", err, started)
	}()

	const query = `
INSERT INTO ledger_blocks (
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
	gateway_order_id
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare block batch: %w", err)
	}

	if err = batch.Append(
		block.Index,
		block.Timestamp,
		block.PrevHash,
		block.DataHash,
		block.Hash,
		block.Nonce,
		block.Data.HashedApplicationID,
		block.Data.HashedTransactionID,
		block.Data.HashedUserID,
		block.Data.Amount,
		block.Data.Currency,
		block.Data.Status,
		block.Data.GatewayPaymentID,
		block.Data.GatewayOrderID,
	); err != nil {
		return fmt.Errorf("append block: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block: %w", err)
	}
	return nil
}
