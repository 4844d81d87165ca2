package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/rogerio-castellano/inventory-insights/internal/dashboard"
	api "github.com/rogerio-castellano/inventory-insights/internal/http"
	handler "github.com/rogerio-castellano/inventory-insights/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-insights/internal/logging"
)

type memorySource struct {
	master  []map[string]any
	records []map[string]any
}

func (s *memorySource) ItemMaster(ctx context.Context) ([]map[string]any, error) {
	return s.master, nil
}

func (s *memorySource) InventoryData(ctx context.Context) ([]map[string]any, error) {
	return s.records, nil
}

func item(id, name, category, abc string, msl, price float64) map[string]any {
	return map[string]any{
		"Item ID": id, "Item Name": name, "Category": category,
		"ABC Class": abc, "MSL": msl, "Unit Price": price,
	}
}

func record(master map[string]any, date string, opening, consumption, incoming, closing float64) map[string]any {
	r := map[string]any{
		"Date":          date,
		"Opening Stock": opening,
		"Consumption":   consumption,
		"Incoming":      incoming,
		"Closing Stock": closing,
	}
	for k, v := range master {
		r[k] = v
	}
	return r
}

var (
	bolt10 = item("I1", "Bolt 10", "X", "A", 50, 5)
	bolt2  = item("I2", "Bolt 2", "Y", "B", 10, 1)
	washer = item("I3", "Washer", "X", "C", 20, 2)

	service *dashboard.Service
)

func init() {
	logging.SetOutput(&bytes.Buffer{})

	src := &memorySource{
		master: []map[string]any{bolt10, bolt2, washer},
		records: []map[string]any{
			record(bolt10, "2024-01-05", 100, 20, 0, 80),
			record(bolt10, "2024-02-10", 80, 20, 0, 60),
			record(bolt2, "2024-01-03", 20, 10, 0, 10),
			record(washer, "2024-01-04", 30, 60, 50, 20),
		},
	}
	service = dashboard.NewService(src, nil)
	if _, err := service.Load(context.Background()); err != nil {
		panic(fmt.Sprintf("error loading dataset: %v", err))
	}
	handler.SetDashboard(service)
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](w *httptest.ResponseRecorder) (T, error) {
	var v T
	err := json.NewDecoder(w.Body).Decode(&v)
	return v, err
}

func newRouter() http.Handler {
	return api.NewRouter()
}
