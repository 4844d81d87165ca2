package analytics

import (
	"math"
	"sort"

	"github.com/rogerio-castellano/inventory-insights/internal/models"
)

type monthUsage struct {
	month string
	items []string
	usage map[string]float64
}

// AggregateConsumptionTrends sums clamped consumption per item and calendar month.
//
// Category and ABC class come from the first record of the item in the input
// order, not in date order. Output is ordered by month, items within a month
// in the order they were first seen.
func AggregateConsumptionTrends(records []models.RawRecord) []models.ConsumptionTrendPoint {
	var months []*monthUsage
	byMonth := make(map[string]*monthUsage)

	for _, r := range sortedByDate(records) {
		key := r.Month()
		m, ok := byMonth[key]
		if !ok {
			m = &monthUsage{month: key, usage: make(map[string]float64)}
			byMonth[key] = m
			months = append(months, m)
		}
		if _, seen := m.usage[r.ItemID]; !seen {
			m.items = append(m.items, r.ItemID)
		}
		m.usage[r.ItemID] += math.Max(0, r.Consumption)
	}

	firstByItem := make(map[string]int, len(records))
	for i, r := range records {
		if _, ok := firstByItem[r.ItemID]; !ok {
			firstByItem[r.ItemID] = i
		}
	}

	trends := make([]models.ConsumptionTrendPoint, 0)
	for _, m := range months {
		for _, itemID := range m.items {
			idx, ok := firstByItem[itemID]
			if !ok {
				continue
			}
			details := records[idx]
			trends = append(trends, models.ConsumptionTrendPoint{
				ItemID:      itemID,
				Category:    details.Category,
				ABCClass:    details.ABCClass,
				Month:       m.month,
				Consumption: m.usage[itemID],
			})
		}
	}

	sort.SliceStable(trends, func(i, j int) bool {
		return trends[i].Month < trends[j].Month
	})
	return trends
}
