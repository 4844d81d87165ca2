package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/inventory-insights/internal/dashboard"
	"github.com/rogerio-castellano/inventory-insights/internal/query"
)

// GetItemsHandler godoc
// @Summary List item master entries
// @Description Returns the item master filtered by name, category, ABC class or item id, with the available filter options
// @Tags dataset
// @Produce json
// @Param name query string false "Case-insensitive substring of the item name"
// @Param category query string false "Exact category"
// @Param abcClass query string false "ABC class (A, B or C)"
// @Param itemId query string false "Exact item id"
// @Success 200 {object} ItemsResult
// @Failure 503 {object} ErrorResponse
// @Router /dataset/items [get]
func GetItemsHandler(w http.ResponseWriter, r *http.Request) {
	snap, ok := currentSnapshot(w)
	if !ok {
		return
	}
	c, err := parseCriteria(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	items := query.Filter(snap.ItemMaster, c, query.ItemMasterFields)
	respond(w, http.StatusOK, ItemsResult{
		Data:    items,
		Options: dashboard.Options(snap.ItemMaster),
		Meta:    Meta{TotalCount: len(items), SnapshotID: snap.ID},
	})
}

// GetRecordsHandler godoc
// @Summary List daily inventory records
// @Tags dataset
// @Produce json
// @Param name query string false "Case-insensitive substring of the item name"
// @Param category query string false "Exact category"
// @Param abcClass query string false "ABC class (A, B or C)"
// @Param itemId query string false "Exact item id"
// @Param from query string false "First date, YYYY-MM-DD"
// @Param to query string false "Last date, YYYY-MM-DD"
// @Success 200 {object} RecordsResult
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /dataset/records [get]
func GetRecordsHandler(w http.ResponseWriter, r *http.Request) {
	snap, ok := currentSnapshot(w)
	if !ok {
		return
	}
	c, err := parseCriteria(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	records := query.Filter(snap.InventoryData, c, query.RecordFields)
	respond(w, http.StatusOK, RecordsResult{
		Data: records,
		Meta: Meta{TotalCount: len(records), SnapshotID: snap.ID},
	})
}

// ReloadDatasetHandler godoc
// @Summary Reload the dataset from its source
// @Description Fetches the item master and inventory data again and publishes a new snapshot. The previous snapshot stays in place when loading fails.
// @Tags dataset
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ReloadResult
// @Failure 401 {string} string "Unauthorized"
// @Failure 502 {object} ErrorResponse
// @Router /dataset/reload [post]
func ReloadDatasetHandler(w http.ResponseWriter, r *http.Request) {
	if dashboardSvc == nil {
		writeServiceError(w, dashboard.ErrSnapshotNotReady)
		return
	}
	snap, err := dashboardSvc.Load(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, ReloadResult{
		SnapshotID:  snap.ID,
		Fingerprint: snap.Fingerprint,
		LoadedAt:    snap.LoadedAt,
		Items:       len(snap.ItemMaster),
		Records:     len(snap.InventoryData),
	})
}

// HealthHandler godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} HealthResult
// @Failure 503 {object} HealthResult
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	if dashboardSvc == nil {
		respond(w, http.StatusServiceUnavailable, HealthResult{Status: "loading"})
		return
	}
	snap, err := dashboardSvc.Current()
	if err != nil {
		respond(w, http.StatusServiceUnavailable, HealthResult{Status: "loading"})
		return
	}
	respond(w, http.StatusOK, HealthResult{Status: "ok", SnapshotID: snap.ID})
}
