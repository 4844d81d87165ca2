// Package analytics derives dashboard metrics from normalized inventory records.
//
// Every function here is a pure function of its input slice. Inputs are never
// modified and every call returns freshly allocated collections.
package analytics

import (
	"sort"

	"github.com/rogerio-castellano/inventory-insights/internal/models"
)

// AverageStock is the per-record inventory level used for turnover.
func AverageStock(opening, closing float64) float64 {
	return (opening + closing) / 2
}

// TurnoverRatio divides consumption by average inventory, 0 when there is no inventory.
func TurnoverRatio(totalConsumption, averageInventory float64) float64 {
	if averageInventory == 0 {
		return 0
	}
	return totalConsumption / averageInventory
}

// sortedByDate returns a stably date-ordered copy. ISO dates sort lexicographically.
func sortedByDate(records []models.RawRecord) []models.RawRecord {
	sorted := make([]models.RawRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}
