package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/inventory-insights/internal/analytics"
	"github.com/rogerio-castellano/inventory-insights/internal/dashboard"
	"github.com/rogerio-castellano/inventory-insights/internal/models"
	"github.com/rogerio-castellano/inventory-insights/internal/query"
)

// GetMSLTrendsHandler godoc
// @Summary Stock against minimum stock level over time
// @Description Points are returned in input order with their MSL status. The focus item is the requested item, or the item of the first point.
// @Tags metrics
// @Produce json
// @Param itemId query string false "Exact item id"
// @Param from query string false "First date, YYYY-MM-DD"
// @Param to query string false "Last date, YYYY-MM-DD"
// @Success 200 {object} MSLTrendsResult
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /metrics/msl-trends [get]
func GetMSLTrendsHandler(w http.ResponseWriter, r *http.Request) {
	snap, ok := currentSnapshot(w)
	if !ok {
		return
	}
	c, err := parseCriteria(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	points := query.Filter(snap.MSLTrends, c, query.MSLTrendFields)
	data := make([]MSLTrendResponse, len(points))
	for i, p := range points {
		ev := analytics.EvaluateMSLStatus(p.Stock, p.MSL)
		data[i] = MSLTrendResponse{MSLTrendPoint: p, Status: ev.Status, Threshold: ev.Threshold}
	}

	respond(w, http.StatusOK, MSLTrendsResult{
		Data:      data,
		FocusItem: dashboard.FocusItem(snap.ItemMaster, c, points),
		Summary:   analytics.SummarizeMSL(points),
		Meta:      Meta{TotalCount: len(data), SnapshotID: snap.ID},
	})
}

// GetConsumptionTrendsHandler godoc
// @Summary Monthly consumption per item
// @Tags metrics
// @Produce json
// @Param category query string false "Exact category"
// @Param abcClass query string false "ABC class (A, B or C)"
// @Param itemId query string false "Exact item id"
// @Success 200 {object} ConsumptionTrendsResult
// @Failure 503 {object} ErrorResponse
// @Router /metrics/consumption-trends [get]
func GetConsumptionTrendsHandler(w http.ResponseWriter, r *http.Request) {
	snap, ok := currentSnapshot(w)
	if !ok {
		return
	}
	c, err := parseCriteria(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	points := query.Filter(snap.ConsumptionTrends, c, query.ConsumptionTrendFields)
	respond(w, http.StatusOK, ConsumptionTrendsResult{
		Data:    points,
		Summary: analytics.SummarizeConsumption(points),
		Meta:    Meta{TotalCount: len(points), SnapshotID: snap.ID},
	})
}

// GetCategoriesHandler godoc
// @Summary Category rollup
// @Tags metrics
// @Produce json
// @Param category query string false "Exact category"
// @Param sort query string false "category, totalItems, stockValue or consumptionRate"
// @Param order query string false "asc or desc"
// @Success 200 {object} CategoriesResult
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /metrics/categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	snap, ok := currentSnapshot(w)
	if !ok {
		return
	}
	c, err := parseCriteria(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	metrics := query.Filter(snap.CategoryMetrics, c, query.CategoryFields)
	metrics, err = sortBy(r, metrics, query.CategorySortKeys)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, CategoriesResult{
		Data:    metrics,
		Summary: analytics.SummarizeCategories(metrics),
		Meta:    Meta{TotalCount: len(metrics), SnapshotID: snap.ID},
	})
}

// GetITRHandler godoc
// @Summary Inventory turnover per item
// @Tags metrics
// @Produce json
// @Param name query string false "Case-insensitive substring of the item name"
// @Param category query string false "Exact category"
// @Param abcClass query string false "ABC class (A, B or C)"
// @Param sort query string false "itemName, itemId, category, abcClass, itr, averageInventory, monthlyConsumption or dataPoints"
// @Param order query string false "asc or desc"
// @Success 200 {object} ITRResult
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /metrics/itr [get]
func GetITRHandler(w http.ResponseWriter, r *http.Request) {
	snap, ok := currentSnapshot(w)
	if !ok {
		return
	}
	metrics, err := itrTable(r, snap)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	data := make([]ITRResponse, len(metrics))
	for i, m := range metrics {
		data[i] = ITRResponse{ITRMetric: m, Turnover: analytics.EvaluateTurnover(m.ITR)}
	}
	respond(w, http.StatusOK, ITRResult{
		Data: data,
		Meta: Meta{TotalCount: len(data), SnapshotID: snap.ID},
	})
}

// itrTable filters and sorts the turnover table the way the dashboard shows it.
func itrTable(r *http.Request, snap *models.Snapshot) ([]models.ITRMetric, error) {
	c, err := parseCriteria(r)
	if err != nil {
		return nil, err
	}
	metrics := query.Filter(snap.ITRMetrics, c, query.ITRFields)
	return sortBy(r, metrics, query.ITRSortKeys)
}

// GetSummaryHandler godoc
// @Summary Headline figures for the dashboard
// @Tags metrics
// @Produce json
// @Param name query string false "Case-insensitive substring of the item name"
// @Param category query string false "Exact category"
// @Param abcClass query string false "ABC class (A, B or C)"
// @Param itemId query string false "Exact item id"
// @Param from query string false "First date, YYYY-MM-DD"
// @Param to query string false "Last date, YYYY-MM-DD"
// @Success 200 {object} dashboard.Summary
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /metrics/summary [get]
func GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	snap, ok := currentSnapshot(w)
	if !ok {
		return
	}
	c, err := parseCriteria(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, dashboard.Summarize(snap, c))
}
