package handlers

import (
	"time"

	"github.com/rogerio-castellano/inventory-insights/internal/analytics"
	"github.com/rogerio-castellano/inventory-insights/internal/dashboard"
	"github.com/rogerio-castellano/inventory-insights/internal/models"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type Meta struct {
	TotalCount int    `json:"total_count"`
	SnapshotID string `json:"snapshot_id"`
}

type ItemsResult struct {
	Data    []models.ItemMaster     `json:"data"`
	Options dashboard.FilterOptions `json:"options"`
	Meta    Meta                    `json:"meta"`
}

type RecordsResult struct {
	Data []models.RawRecord `json:"data"`
	Meta Meta               `json:"meta"`
}

type MSLTrendResponse struct {
	models.MSLTrendPoint
	Status    analytics.MSLStatus `json:"status"`
	Threshold float64             `json:"threshold"`
}

type MSLTrendsResult struct {
	Data      []MSLTrendResponse   `json:"data"`
	FocusItem dashboard.ItemOption `json:"focusItem"`
	Summary   analytics.MSLSummary `json:"summary"`
	Meta      Meta                 `json:"meta"`
}

type ConsumptionTrendsResult struct {
	Data    []models.ConsumptionTrendPoint `json:"data"`
	Summary analytics.ConsumptionSummary   `json:"summary"`
	Meta    Meta                           `json:"meta"`
}

type CategoriesResult struct {
	Data    []models.CategoryMetric   `json:"data"`
	Summary analytics.CategorySummary `json:"summary"`
	Meta    Meta                      `json:"meta"`
}

type ITRResponse struct {
	models.ITRMetric
	Turnover analytics.TurnoverStatus `json:"turnover"`
}

type ITRResult struct {
	Data []ITRResponse `json:"data"`
	Meta Meta          `json:"meta"`
}

type ReloadResult struct {
	SnapshotID  string    `json:"snapshot_id"`
	Fingerprint string    `json:"fingerprint"`
	LoadedAt    time.Time `json:"loaded_at"`
	Items       int       `json:"items"`
	Records     int       `json:"records"`
}

type HealthResult struct {
	Status     string `json:"status"`
	SnapshotID string `json:"snapshot_id,omitempty"`
}
