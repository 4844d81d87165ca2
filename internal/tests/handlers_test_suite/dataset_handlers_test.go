package handlers_test_suite

import (
	"bytes"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/inventory-insights/internal/http/handlers"
	"github.com/xuri/excelize/v2"
)

func TestGetItemsHandler(t *testing.T) {
	r := newRouter()

	w := get(r, "/dataset/items?category=X")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	resp, err := decode[handler.ItemsResult](w)
	if err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Meta.TotalCount != 2 || resp.Data[0].ItemID != "I1" || resp.Data[1].ItemID != "I3" {
		t.Errorf("unexpected items: %+v", resp.Data)
	}
	if len(resp.Options.Categories) != 2 || resp.Options.Categories[0] != "X" || resp.Options.Categories[1] != "Y" {
		t.Errorf("unexpected category options: %v", resp.Options.Categories)
	}
	if len(resp.Options.Items) != 3 {
		t.Errorf("expected options for every item, got %d", len(resp.Options.Items))
	}
}

func TestGetRecordsHandler(t *testing.T) {
	r := newRouter()

	resp, err := decode[handler.RecordsResult](get(r, "/dataset/records?itemId=I1&to=2024-01-31"))
	if err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Date != "2024-01-05" || resp.Data[0].ClosingStock != 80 {
		t.Errorf("unexpected records: %+v", resp.Data)
	}
}

func TestExportITRHandler(t *testing.T) {
	r := newRouter()

	w := get(r, "/reports/itr.xlsx?sort=itr&order=desc")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type %q", ct)
	}

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("could not open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("ITR")
	if err != nil {
		t.Fatalf("could not read sheet: %v", err)
	}
	if len(rows) != 4 || rows[1][0] != "I3" {
		t.Errorf("expected sorted rows led by I3, got %v", rows)
	}

	if w := get(r, "/reports/itr.xlsx?sort=nope"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}
