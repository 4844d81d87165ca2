package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileDatasetSource reads the JSON documents from local files.
type FileDatasetSource struct {
	itemMasterPath string
	inventoryPath  string
}

func NewFileDatasetSource(itemMasterPath, inventoryPath string) *FileDatasetSource {
	return &FileDatasetSource{itemMasterPath: itemMasterPath, inventoryPath: inventoryPath}
}

func (s *FileDatasetSource) ItemMaster(ctx context.Context) ([]map[string]any, error) {
	return readDocument(ctx, s.itemMasterPath)
}

func (s *FileDatasetSource) InventoryData(ctx context.Context) ([]map[string]any, error) {
	return readDocument(ctx, s.inventoryPath)
}

func readDocument(ctx context.Context, path string) ([]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return rows, nil
}
