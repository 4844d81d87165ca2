package analytics

import "github.com/rogerio-castellano/inventory-insights/internal/models"

type itemTotals struct {
	itemID           string
	itemName         string
	category         string
	abcClass         string
	totalConsumption float64
	stockSum         float64
	dataPoints       int
}

// ComputeITRMetrics derives the inventory turnover ratio of every item.
//
// Consumption is summed as reported, without clamping. Item metadata is taken
// from the earliest record by date. Output follows first appearance in date order.
func ComputeITRMetrics(records []models.RawRecord) []models.ITRMetric {
	var order []*itemTotals
	byItem := make(map[string]*itemTotals)

	for _, r := range sortedByDate(records) {
		t, ok := byItem[r.ItemID]
		if !ok {
			t = &itemTotals{
				itemID:   r.ItemID,
				itemName: r.ItemName,
				category: r.Category,
				abcClass: r.ABCClass,
			}
			byItem[r.ItemID] = t
			order = append(order, t)
		}
		t.totalConsumption += r.Consumption
		t.stockSum += AverageStock(r.OpeningStock, r.ClosingStock)
		t.dataPoints++
	}

	metrics := make([]models.ITRMetric, len(order))
	for i, t := range order {
		var averageInventory float64
		if t.dataPoints > 0 {
			averageInventory = t.stockSum / float64(t.dataPoints)
		}
		points := t.dataPoints
		if points == 0 {
			points = 1
		}
		metrics[i] = models.ITRMetric{
			ItemID:             t.itemID,
			ItemName:           t.itemName,
			Category:           t.category,
			ABCClass:           t.abcClass,
			ITR:                TurnoverRatio(t.totalConsumption, averageInventory),
			AverageInventory:   averageInventory,
			MonthlyConsumption: t.totalConsumption / float64(points),
			DataPoints:         t.dataPoints,
		}
	}
	return metrics
}
