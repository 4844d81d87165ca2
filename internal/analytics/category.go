package analytics

import (
	"github.com/rogerio-castellano/inventory-insights/internal/models"
	"github.com/shopspring/decimal"
)

type categoryTotals struct {
	category    string
	rows        int
	stockValue  decimal.Decimal
	consumption float64
}

// RollupByCategory accumulates one metric per category in first-seen order.
// Stock value is summed in decimal to keep money totals exact.
func RollupByCategory(records []models.RawRecord) []models.CategoryMetric {
	var order []*categoryTotals
	byCategory := make(map[string]*categoryTotals)

	for _, r := range records {
		t, ok := byCategory[r.Category]
		if !ok {
			t = &categoryTotals{category: r.Category, stockValue: decimal.Zero}
			byCategory[r.Category] = t
			order = append(order, t)
		}
		t.rows++
		t.stockValue = t.stockValue.Add(decimal.NewFromFloat(r.ClosingStock).Mul(decimal.NewFromFloat(r.UnitPrice)))
		t.consumption += r.Consumption
	}

	metrics := make([]models.CategoryMetric, len(order))
	for i, t := range order {
		metrics[i] = models.CategoryMetric{
			Category:        t.category,
			TotalItems:      t.rows,
			StockValue:      t.stockValue.InexactFloat64(),
			ConsumptionRate: t.consumption,
		}
	}
	return metrics
}
