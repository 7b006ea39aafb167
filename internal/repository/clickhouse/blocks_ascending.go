package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/model"
)

// BlocksAscending returns the full chain ordered by index for verification.
func (r *Repository) BlocksAscending(ctx context.Context) (blocks []model.Block, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("blocks_ascending", err, started)
	}()

	const query = `
SELECT` + blockColumns + `
FROM ledger_blocks
ORDER BY block_index ASC`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query blocks: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var block model.Block
		if err = scanBlock(rows, &block); err != nil {
			return nil, fmt.Errorf("scan block: %w", err)
		}
		blocks = append(blocks, block)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blocks: %w", err)
	}
	return blocks, nil
}
