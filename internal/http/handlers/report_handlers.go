package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/inventory-insights/internal/logging"
	"github.com/rogerio-castellano/inventory-insights/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportITRHandler godoc
// @Summary Export the turnover table and category rollup as xlsx
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param name query string false "Case-insensitive substring of the item name"
// @Param category query string false "Exact category"
// @Param abcClass query string false "ABC class (A, B or C)"
// @Param sort query string false "Turnover table column"
// @Param order query string false "asc or desc"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /reports/itr.xlsx [get]
func ExportITRHandler(w http.ResponseWriter, r *http.Request) {
	snap, ok := currentSnapshot(w)
	if !ok {
		return
	}
	metrics, err := itrTable(r, snap)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, metrics, snap.CategoryMetrics); err != nil {
		logging.LogError("handlers", "ExportITRHandler", "write workbook", snap.ID, err)
		writeError(w, http.StatusInternalServerError, "failed to build report", "")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", "attachment; filename=itr-"+snap.ID+".xlsx")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.GetLogger().WithError(err).Warn("failed to write report")
	}
}
