package dashboard

import (
	"github.com/rogerio-castellano/inventory-insights/internal/analytics"
	"github.com/rogerio-castellano/inventory-insights/internal/models"
	"github.com/rogerio-castellano/inventory-insights/internal/query"
)

type ItemOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FilterOptions lists the values a client can filter by.
type FilterOptions struct {
	Categories []string     `json:"categories"`
	ABCClasses []string     `json:"abcClasses"`
	Items      []ItemOption `json:"items"`
}

// Options derives filter choices from the item master, in item-master order.
func Options(master []models.ItemMaster) FilterOptions {
	opts := FilterOptions{
		Categories: make([]string, 0),
		ABCClasses: []string{"A", "B", "C"},
		Items:      make([]ItemOption, 0, len(master)),
	}
	seen := make(map[string]bool)
	for _, it := range master {
		if !seen[it.Category] {
			seen[it.Category] = true
			opts.Categories = append(opts.Categories, it.Category)
		}
		opts.Items = append(opts.Items, ItemOption{ID: it.ItemID, Name: it.ItemName})
	}
	return opts
}

// FocusItem picks the item an MSL chart is drawn for: the filtered item when
// one is selected, otherwise the item of the first visible point.
func FocusItem(master []models.ItemMaster, c query.Criteria, points []models.MSLTrendPoint) ItemOption {
	id := c.ItemID
	if id == "" && len(points) > 0 {
		id = points[0].ItemID
	}
	opt := ItemOption{ID: id}
	if id == "" {
		return opt
	}
	for _, it := range master {
		if it.ItemID == id {
			opt.Name = it.ItemName
			break
		}
	}
	return opt
}

// Summary is the headline block of the dashboard for one set of criteria.
type Summary struct {
	SnapshotID       string                           `json:"snapshotId"`
	FocusItem        ItemOption                       `json:"focusItem"`
	MSL              analytics.MSLSummary             `json:"msl"`
	Consumption      analytics.ConsumptionSummary     `json:"consumption"`
	Categories       analytics.CategorySummary        `json:"categories"`
	SelectedCategory string                           `json:"selectedCategory,omitempty"`
	Turnover         map[analytics.TurnoverStatus]int `json:"turnover"`
}

// Summarize applies the criteria the way each dashboard panel does and
// condenses the results.
func Summarize(snap *models.Snapshot, c query.Criteria) Summary {
	msl := query.Filter(snap.MSLTrends, c, query.MSLTrendFields)
	consumption := query.Filter(snap.ConsumptionTrends, c, query.ConsumptionTrendFields)
	itr := query.Filter(snap.ITRMetrics, query.Criteria{Name: c.Name, Category: c.Category, ABCClass: c.ABCClass}, query.ITRFields)

	turnover := map[analytics.TurnoverStatus]int{
		analytics.TurnoverLow:     0,
		analytics.TurnoverOptimal: 0,
		analytics.TurnoverHigh:    0,
	}
	for _, m := range itr {
		turnover[analytics.EvaluateTurnover(m.ITR)]++
	}

	return Summary{
		SnapshotID:       snap.ID,
		FocusItem:        FocusItem(snap.ItemMaster, c, msl),
		MSL:              analytics.SummarizeMSL(msl),
		Consumption:      analytics.SummarizeConsumption(consumption),
		Categories:       analytics.SummarizeCategories(snap.CategoryMetrics),
		SelectedCategory: c.Category,
		Turnover:         turnover,
	}
}
