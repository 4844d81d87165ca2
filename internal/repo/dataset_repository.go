package repo

import "context"

// DatasetSource supplies the two raw documents the dashboard is built from.
// Rows are returned as decoded objects keyed by the document field names and
// are normalized by the caller.
type DatasetSource interface {
	ItemMaster(ctx context.Context) ([]map[string]any, error)
	InventoryData(ctx context.Context) ([]map[string]any, error)
}
