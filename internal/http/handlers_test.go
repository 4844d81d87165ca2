package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/inventory-insights/internal/auth"
	"github.com/rogerio-castellano/inventory-insights/internal/dashboard"
	api "github.com/rogerio-castellano/inventory-insights/internal/http"
	"github.com/rogerio-castellano/inventory-insights/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-insights/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-insights/internal/logging"
)

type staticSource struct{}

func (staticSource) ItemMaster(ctx context.Context) ([]map[string]any, error) {
	return []map[string]any{
		{"Item ID": "I1", "Item Name": "Item 1", "Category": "X", "ABC Class": "A", "MSL": 50.0, "Unit Price": 5.0},
	}, nil
}

func (staticSource) InventoryData(ctx context.Context) ([]map[string]any, error) {
	return []map[string]any{
		{"Item ID": "I1", "Date": "2024-01-05", "Opening Stock": 100.0, "Consumption": 20.0, "Incoming": 0.0, "Closing Stock": 80.0,
			"Item Name": "Item 1", "Category": "X", "Unit Price": 5.0, "ABC Class": "A", "MSL": 50.0},
	}, nil
}

var signer = auth.NewSigner("secret")

func init() {
	logging.SetOutput(&bytes.Buffer{})
	api.SetSigner(signer)
	handlers.SetDashboard(dashboard.NewService(staticSource{}, nil))
}

func TestReloadRequiresToken(t *testing.T) {
	r := api.NewRouter()

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
		{"foreign secret", "Bearer " + mustToken(t, auth.NewSigner("other")), http.StatusUnauthorized},
		{"valid token", "Bearer " + mustToken(t, signer), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/dataset/reload", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("expected status %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestReloadPublishesSnapshot(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodPost, "/dataset/reload", nil)
	req.Header.Set("Authorization", "Bearer "+mustToken(t, signer))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handlers.ReloadResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.SnapshotID == "" || resp.Items != 1 || resp.Records != 1 {
		t.Errorf("unexpected reload result: %+v", resp)
	}

	health := httptest.NewRecorder()
	r.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if health.Code != http.StatusOK {
		t.Errorf("expected healthy service after reload, got %d", health.Code)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	api.SetVisitors(rl.NewVisitors(1, 2))
	t.Cleanup(func() { api.SetVisitors(nil) })
	r := api.NewRouter()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/metrics/itr", nil)
		req.RemoteAddr = "203.0.113.7:5000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("expected third request to be limited, got %v", codes)
	}

	other := httptest.NewRequest(http.MethodGet, "/metrics/itr", nil)
	other.RemoteAddr = "203.0.113.8:5000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, other)
	if w.Code == http.StatusTooManyRequests {
		t.Error("expected a different client to have its own bucket")
	}
}

func TestHealthIsNotRateLimited(t *testing.T) {
	api.SetVisitors(rl.NewVisitors(1, 1))
	t.Cleanup(func() { api.SetVisitors(nil) })
	r := api.NewRouter()

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		if w.Code == http.StatusTooManyRequests {
			t.Fatal("expected /healthz to bypass the rate limiter")
		}
	}
}

func mustToken(t *testing.T, s *auth.Signer) string {
	t.Helper()
	token, err := s.GenerateToken("operator", time.Minute)
	if err != nil {
		t.Fatalf("could not sign token: %v", err)
	}
	return token
}
