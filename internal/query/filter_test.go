package query

import (
	"testing"
	"time"

	"github.com/rogerio-castellano/inventory-insights/internal/models"
)

func day(s string) *time.Time {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return &d
}

func itrMetrics() []models.ITRMetric {
	return []models.ITRMetric{
		{ItemID: "I1", ItemName: "Steel Bolt 10", Category: "Hardware", ABCClass: "A", ITR: 1.2},
		{ItemID: "I2", ItemName: "Copper Wire", Category: "Electrical", ABCClass: "B", ITR: 0.4},
		{ItemID: "I3", ItemName: "steel plate", Category: "Hardware", ABCClass: "C", ITR: 3.1},
	}
}

func TestFilter_EmptyCriteriaIsIdentity(t *testing.T) {
	items := itrMetrics()
	got := Filter(items, Criteria{}, ITRFields)
	if len(got) != len(items) {
		t.Fatalf("expected %d items, got %d", len(items), len(got))
	}
	for i := range items {
		if got[i] != items[i] {
			t.Errorf("item %d changed: %+v -> %+v", i, items[i], got[i])
		}
	}
}

func TestFilter_ItemID(t *testing.T) {
	got := Filter(itrMetrics(), Criteria{ItemID: "I2"}, ITRFields)
	if len(got) != 1 || got[0].ItemID != "I2" {
		t.Fatalf("expected only I2, got %+v", got)
	}
}

func TestFilter_NameIsCaseInsensitiveSubstring(t *testing.T) {
	got := Filter(itrMetrics(), Criteria{Name: "STEEL"}, ITRFields)
	if len(got) != 2 || got[0].ItemID != "I1" || got[1].ItemID != "I3" {
		t.Fatalf("expected I1 and I3, got %+v", got)
	}
}

func TestFilter_Conjunctive(t *testing.T) {
	got := Filter(itrMetrics(), Criteria{Name: "steel", Category: "Hardware", ABCClass: "C"}, ITRFields)
	if len(got) != 1 || got[0].ItemID != "I3" {
		t.Fatalf("expected only I3, got %+v", got)
	}

	got = Filter(itrMetrics(), Criteria{Category: "Electrical", ABCClass: "A"}, ITRFields)
	if len(got) != 0 {
		t.Fatalf("expected no match, got %+v", got)
	}
}

func TestFilter_DateRangeInclusive(t *testing.T) {
	points := []models.MSLTrendPoint{
		{ItemID: "I1", Date: "2024-01-01"},
		{ItemID: "I1", Date: "2024-01-15"},
		{ItemID: "I2", Date: "2024-01-20"},
		{ItemID: "I1", Date: "2024-02-01"},
	}
	got := Filter(points, Criteria{From: day("2024-01-15"), To: day("2024-02-01")}, MSLTrendFields)
	if len(got) != 3 || got[0].Date != "2024-01-15" || got[2].Date != "2024-02-01" {
		t.Fatalf("unexpected range result: %+v", got)
	}

	got = Filter(points, Criteria{ItemID: "I1", To: day("2024-01-15")}, MSLTrendFields)
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %+v", got)
	}
}

func TestFilter_SkipsCriteriaTheTypeDoesNotCarry(t *testing.T) {
	points := []models.MSLTrendPoint{{ItemID: "I1", Date: "2024-01-01"}}
	got := Filter(points, Criteria{Category: "Hardware", Name: "bolt"}, MSLTrendFields)
	if len(got) != 1 {
		t.Fatalf("expected unrelated criteria to be open, got %+v", got)
	}
}

func TestCriteriaIsZero(t *testing.T) {
	if !(Criteria{}).IsZero() {
		t.Error("expected zero criteria")
	}
	if (Criteria{From: day("2024-01-01")}).IsZero() {
		t.Error("expected non-zero criteria")
	}
}
