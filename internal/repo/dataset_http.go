package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	ItemMasterDocument    = "item_master.json"
	InventoryDataDocument = "inventory_data.json"
)

// HTTPDatasetSource fetches the static JSON documents from a base URL.
type HTTPDatasetSource struct {
	baseURL string
	client  *http.Client
}

func NewHTTPDatasetSource(baseURL string, timeout time.Duration) *HTTPDatasetSource {
	return &HTTPDatasetSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *HTTPDatasetSource) ItemMaster(ctx context.Context) ([]map[string]any, error) {
	return s.fetch(ctx, ItemMasterDocument)
}

func (s *HTTPDatasetSource) InventoryData(ctx context.Context) ([]map[string]any, error) {
	return s.fetch(ctx, InventoryDataDocument)
}

func (s *HTTPDatasetSource) fetch(ctx context.Context, document string) ([]map[string]any, error) {
	url := s.baseURL + "/" + document
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: HTTP error! status: %d", url, resp.StatusCode)
	}

	var rows []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", url, err)
	}
	return rows, nil
}
