package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Columns are aliased to the document field names so rows normalize exactly
// like the JSON documents do.
const (
	itemMasterQuery = `
		SELECT item_id    AS "Item ID",
		       item_name  AS "Item Name",
		       category   AS "Category",
		       abc_class  AS "ABC Class",
		       msl::float8        AS "MSL",
		       unit_price::float8 AS "Unit Price"
		FROM item_master
		ORDER BY id`

	inventoryDataQuery = `
		SELECT d.item_id                          AS "Item ID",
		       to_char(d.record_date, 'YYYY-MM-DD') AS "Date",
		       d.opening_stock::float8            AS "Opening Stock",
		       d.consumption::float8              AS "Consumption",
		       d.incoming::float8                 AS "Incoming",
		       d.closing_stock::float8            AS "Closing Stock",
		       d.units                            AS "Units",
		       m.item_name                        AS "Item Name",
		       m.category                         AS "Category",
		       m.unit_price::float8               AS "Unit Price",
		       m.abc_class                        AS "ABC Class",
		       m.msl::float8                      AS "MSL"
		FROM inventory_daily d
		JOIN item_master m ON m.item_id = d.item_id
		ORDER BY d.id`
)

type PostgresDatasetSource struct {
	db *sql.DB
}

func NewPostgresDatasetSource(db *sql.DB) *PostgresDatasetSource {
	return &PostgresDatasetSource{db: db}
}

func (r *PostgresDatasetSource) ItemMaster(ctx context.Context) ([]map[string]any, error) {
	return r.queryRows(ctx, itemMasterQuery)
}

func (r *PostgresDatasetSource) InventoryData(ctx context.Context) ([]map[string]any, error) {
	return r.queryRows(ctx, inventoryDataQuery)
}

func (r *PostgresDatasetSource) queryRows(ctx context.Context, query string) ([]map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan dataset row: %w", err)
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
