package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/model"
)

// ScholarshipByID returns a scholarship, or (nil, nil) when the id is unknown.
func (r *Repository) ScholarshipByID(ctx context.Context, id string) (scholarship *model.Scholarship, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("scholarship_by_id", err, started)
	}()

	const query = `
SELECT
	id,
	name,
	provider,
	amount,
	created_by,
	application_deadline,
	is_active
FROM scholarships
WHERE id = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("query scholarship: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate scholarship: %w", err)
		}
		return nil, nil
	}

	var found model.Scholarship
	if err = rows.Scan(
		&found.ID,
		&found.Name,
		&found.Provider,
		&found.Amount,
		&found.CreatedBy,
		&found.ApplicationDeadline,
		&found.IsActive,
	); err != nil {
		return nil, fmt.Errorf("scan scholarship: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scholarship: %w", err)
	}
	return &found, nil
}
