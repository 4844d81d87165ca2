package handlers_integrated_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"github.com/rogerio-castellano/inventory-insights/internal/auth"
	"github.com/rogerio-castellano/inventory-insights/internal/logging"
	"github.com/rogerio-castellano/inventory-insights/internal/repo"
)

var signer = auth.NewSigner("integration-secret")

func init() {
	logging.SetOutput(&bytes.Buffer{})
}

// writeDocuments stores both documents under dir the way a static host serves them.
func writeDocuments(dir string, master, records any) error {
	if err := writeJSONFile(filepath.Join(dir, repo.ItemMasterDocument), master); err != nil {
		return err
	}
	return writeJSONFile(filepath.Join(dir, repo.InventoryDataDocument), records)
}

func writeJSONFile(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func reload(r http.Handler) *httptest.ResponseRecorder {
	token, _ := signer.GenerateToken("integration", time.Minute)
	req := httptest.NewRequest(http.MethodPost, "/dataset/reload", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func masterDoc() []map[string]any {
	return []map[string]any{
		{"Item ID": "I1", "Item Name": "Item 1", "Category": "X", "ABC Class": "A", "MSL": 50, "Unit Price": 5},
	}
}

func recordsDoc(secondConsumption any) []map[string]any {
	return []map[string]any{
		{"Item ID": "I1", "Date": "2024-01-05", "Opening Stock": 100, "Consumption": 20, "Incoming": 0, "Closing Stock": 80,
			"Item Name": "Item 1", "Category": "X", "Unit Price": 5, "ABC Class": "A", "MSL": 50},
		{"Item ID": "I1", "Date": "2024-02-10", "Opening Stock": 80, "Consumption": secondConsumption, "Incoming": 0, "Closing Stock": 60,
			"Item Name": "Item 1", "Category": "X", "Unit Price": 5, "ABC Class": "A", "MSL": 50},
	}
}
