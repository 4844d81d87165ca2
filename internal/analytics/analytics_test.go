package analytics

import (
	"math"
	"testing"

	"github.com/rogerio-castellano/inventory-insights/internal/models"
)

const tolerance = 1e-9

func rec(itemID, date string, opening, consumption, closing float64) models.RawRecord {
	return models.RawRecord{
		ItemID:       itemID,
		Date:         date,
		OpeningStock: opening,
		Consumption:  consumption,
		ClosingStock: closing,
		ItemName:     "Item " + itemID,
		Category:     "X",
		UnitPrice:    5,
		ABCClass:     "A",
		MSL:          50,
	}
}

func scenario() []models.RawRecord {
	return []models.RawRecord{
		rec("I1", "2024-01-05", 100, 20, 80),
		rec("I1", "2024-02-10", 80, 20, 60),
	}
}

func mixed() []models.RawRecord {
	a := rec("A", "2024-03-02", 10, 4, 6)
	b := rec("B", "2024-01-15", 0, -2, 0)
	b.Category = "Y"
	b.ABCClass = "C"
	c := rec("A", "2024-01-20", 12, -1, 13)
	d := rec("C", "2024-03-01", 40, 8, 32)
	d.Category = "Y"
	d.UnitPrice = 1.1
	e := rec("B", "2024-03-09", 5, 3, 2)
	e.Category = "Y"
	e.ABCClass = "C"
	return []models.RawRecord{a, b, c, d, e}
}

func TestEndToEndScenario(t *testing.T) {
	records := scenario()

	itr := ComputeITRMetrics(records)
	if len(itr) != 1 {
		t.Fatalf("expected 1 ITR metric, got %d", len(itr))
	}
	m := itr[0]
	if m.ItemID != "I1" || m.DataPoints != 2 {
		t.Errorf("unexpected ITR identity: %+v", m)
	}
	if m.AverageInventory != 80 {
		t.Errorf("expected average inventory 80, got %v", m.AverageInventory)
	}
	if m.ITR != 0.5 {
		t.Errorf("expected ITR 0.5, got %v", m.ITR)
	}
	if m.MonthlyConsumption != 20 {
		t.Errorf("expected monthly consumption 20, got %v", m.MonthlyConsumption)
	}

	cats := RollupByCategory(records)
	if len(cats) != 1 {
		t.Fatalf("expected 1 category, got %d", len(cats))
	}
	if cats[0].Category != "X" || cats[0].TotalItems != 2 || cats[0].StockValue != 700 || cats[0].ConsumptionRate != 40 {
		t.Errorf("unexpected category metric: %+v", cats[0])
	}

	trends := AggregateConsumptionTrends(records)
	if len(trends) != 2 {
		t.Fatalf("expected 2 consumption points, got %d", len(trends))
	}
	if trends[0].Month != "2024-01" || trends[0].Consumption != 20 {
		t.Errorf("unexpected first point: %+v", trends[0])
	}
	if trends[1].Month != "2024-02" || trends[1].Consumption != 20 {
		t.Errorf("unexpected second point: %+v", trends[1])
	}
}

func TestProjectMSLTrends_PreservesOrderAndDuplicates(t *testing.T) {
	records := []models.RawRecord{
		rec("B", "2024-02-01", 0, 0, 7),
		rec("A", "2024-01-01", 0, 0, 3),
		rec("A", "2024-01-01", 0, 0, 3),
	}
	points := ProjectMSLTrends(records)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if points[0].ItemID != "B" || points[0].Stock != 7 || points[0].MSL != 50 {
		t.Errorf("unexpected first point: %+v", points[0])
	}
	if points[1] != points[2] {
		t.Errorf("expected duplicate points to be kept: %+v vs %+v", points[1], points[2])
	}
}

func TestAggregateConsumptionTrends_SumsClampedConsumptionPerItem(t *testing.T) {
	records := mixed()
	trends := AggregateConsumptionTrends(records)

	want := map[string]float64{}
	for _, r := range records {
		want[r.ItemID] += math.Max(0, r.Consumption)
	}
	got := map[string]float64{}
	for _, p := range trends {
		got[p.ItemID] += p.Consumption
	}
	for id, w := range want {
		if math.Abs(got[id]-w) > tolerance {
			t.Errorf("item %s: expected %v, got %v", id, w, got[id])
		}
	}

	for i := 1; i < len(trends); i++ {
		if trends[i-1].Month > trends[i].Month {
			t.Fatalf("trends not ordered by month: %+v", trends)
		}
	}
}

func TestAggregateConsumptionTrends_FirstSeenOrderWithinMonth(t *testing.T) {
	trends := AggregateConsumptionTrends(mixed())
	var order []string
	for _, p := range trends {
		order = append(order, p.Month+"/"+p.ItemID)
	}
	want := []string{"2024-01/B", "2024-01/A", "2024-03/C", "2024-03/A", "2024-03/B"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestMetadataResolutionDiffersBetweenTrendsAndITR(t *testing.T) {
	late := rec("I1", "2024-02-01", 10, 1, 10)
	late.Category = "Late"
	late.ABCClass = "B"
	late.ItemName = "Late name"
	early := rec("I1", "2024-01-01", 10, 1, 10)
	early.Category = "Early"
	early.ABCClass = "C"
	early.ItemName = "Early name"
	records := []models.RawRecord{late, early}

	for _, p := range AggregateConsumptionTrends(records) {
		if p.Category != "Late" || p.ABCClass != "B" {
			t.Errorf("consumption trend should use first record in input order, got %+v", p)
		}
	}

	itr := ComputeITRMetrics(records)
	if itr[0].Category != "Early" || itr[0].ABCClass != "C" || itr[0].ItemName != "Early name" {
		t.Errorf("ITR should use earliest record by date, got %+v", itr[0])
	}
}

func TestRollupByCategory_CountsRowsInFirstSeenOrder(t *testing.T) {
	records := mixed()
	cats := RollupByCategory(records)
	if len(cats) != 2 || cats[0].Category != "X" || cats[1].Category != "Y" {
		t.Fatalf("unexpected categories: %+v", cats)
	}

	total := 0
	for _, c := range cats {
		total += c.TotalItems
	}
	if total != len(records) {
		t.Errorf("expected total items %d, got %d", len(records), total)
	}

	// Y: B(0*5) + C(32*1.1) + B(2*5), consumption -2+8+3
	if math.Abs(cats[1].StockValue-45.2) > tolerance {
		t.Errorf("expected Y stock value 45.2, got %v", cats[1].StockValue)
	}
	if cats[1].ConsumptionRate != 9 {
		t.Errorf("expected Y consumption 9 (unclamped), got %v", cats[1].ConsumptionRate)
	}
}

func TestComputeITRMetrics_RatioProperty(t *testing.T) {
	records := mixed()
	records = append(records, rec("Z", "2024-01-01", 0, 5, 0))
	metrics := ComputeITRMetrics(records)

	totals := map[string]float64{}
	for _, r := range records {
		totals[r.ItemID] += r.Consumption
	}

	for _, m := range metrics {
		if m.AverageInventory == 0 {
			if m.ITR != 0 {
				t.Errorf("item %s: expected ITR 0 with no inventory, got %v", m.ItemID, m.ITR)
			}
			continue
		}
		want := totals[m.ItemID] / m.AverageInventory
		if math.Abs(m.ITR-want) > tolerance {
			t.Errorf("item %s: expected ITR %v, got %v", m.ItemID, want, m.ITR)
		}
	}
}

func TestComputeITRMetrics_OrderAndRawConsumption(t *testing.T) {
	metrics := ComputeITRMetrics(mixed())
	var ids []string
	for _, m := range metrics {
		ids = append(ids, m.ItemID)
	}
	// earliest dates: B 01-15, A 01-20, C 03-01
	if len(ids) != 3 || ids[0] != "B" || ids[1] != "A" || ids[2] != "C" {
		t.Fatalf("unexpected order: %v", ids)
	}
	b := metrics[0]
	if b.DataPoints != 2 || b.MonthlyConsumption != 0.5 {
		t.Errorf("expected B to average raw consumption (-2+3)/2, got %+v", b)
	}
}

func TestEmptyInput(t *testing.T) {
	if got := ProjectMSLTrends(nil); len(got) != 0 {
		t.Errorf("expected no MSL points, got %d", len(got))
	}
	if got := AggregateConsumptionTrends(nil); got == nil || len(got) != 0 {
		t.Errorf("expected empty consumption trends, got %v", got)
	}
	if got := RollupByCategory(nil); len(got) != 0 {
		t.Errorf("expected no categories, got %d", len(got))
	}
	if got := ComputeITRMetrics(nil); len(got) != 0 {
		t.Errorf("expected no ITR metrics, got %d", len(got))
	}
}

func TestInputNotMutated(t *testing.T) {
	records := mixed()
	before := make([]models.RawRecord, len(records))
	copy(before, records)

	AggregateConsumptionTrends(records)
	ComputeITRMetrics(records)
	RollupByCategory(records)

	for i := range records {
		if records[i] != before[i] {
			t.Fatalf("record %d mutated: %+v -> %+v", i, before[i], records[i])
		}
	}
}
