package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// CountBlocks returns the ledger length.
func (r *Repository) CountBlocks(ctx context.Context) (count uint64, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("count_blocks", err, started)
	}()

	const query = `SELECT count() FROM ledger_blocks`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("query block count: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		return 0, fmt.Errorf("block count not found")
	}
	if err = rows.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan block count: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate block count: %w", err)
	}
	return count, nil
}
