package query

import (
	"errors"
	"math"
	"testing"

	"github.com/rogerio-castellano/inventory-insights/internal/models"
)

func names(ms []models.ITRMetric) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ItemName
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSort_NaturalName(t *testing.T) {
	items := []models.ITRMetric{{ItemName: "Item 10"}, {ItemName: "Item 2"}, {ItemName: "Item 1"}}
	key := ITRSortKeys["itemName"]

	got := names(Sort(items, key, Asc))
	if want := []string{"Item 1", "Item 2", "Item 10"}; !equal(got, want) {
		t.Errorf("asc: expected %v, got %v", want, got)
	}

	got = names(Sort(items, key, Desc))
	if want := []string{"Item 10", "Item 2", "Item 1"}; !equal(got, want) {
		t.Errorf("desc: expected %v, got %v", want, got)
	}

	if items[0].ItemName != "Item 10" {
		t.Error("input slice was reordered")
	}
}

func TestSort_NaturalNameWithoutDigitsIsStable(t *testing.T) {
	items := []models.ITRMetric{{ItemName: "Widget"}, {ItemName: "Item 3"}, {ItemName: "Bolt"}, {ItemName: "Gear"}}
	got := names(Sort(items, ITRSortKeys["itemName"], Asc))
	if want := []string{"Widget", "Bolt", "Gear", "Item 3"}; !equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNameNumber(t *testing.T) {
	if n := NameNumber("Pack of 12 bolts (v2)"); n != 12 {
		t.Errorf("expected 12, got %v", n)
	}
	if n := NameNumber("no digits"); n != 0 {
		t.Errorf("expected 0, got %v", n)
	}
}

func TestSort_NumericNaNAlwaysLast(t *testing.T) {
	items := []models.ITRMetric{
		{ItemName: "a", ITR: 2},
		{ItemName: "nan", ITR: math.NaN()},
		{ItemName: "b", ITR: 0.5},
		{ItemName: "c", ITR: 3},
	}
	key := ITRSortKeys["itr"]

	got := names(Sort(items, key, Asc))
	if want := []string{"b", "a", "c", "nan"}; !equal(got, want) {
		t.Errorf("asc: expected %v, got %v", want, got)
	}

	got = names(Sort(items, key, Desc))
	if want := []string{"c", "a", "b", "nan"}; !equal(got, want) {
		t.Errorf("desc: expected %v, got %v", want, got)
	}
}

func TestSort_TextCollation(t *testing.T) {
	items := []models.ITRMetric{
		{ItemName: "1", Category: "beta"},
		{ItemName: "2", Category: "Alpha"},
		{ItemName: "3", Category: "alpha"},
		{ItemName: "4", Category: "Gamma"},
	}
	got := Sort(items, ITRSortKeys["category"], Asc)
	if got[0].Category != "alpha" && got[0].Category != "Alpha" {
		t.Errorf("expected alpha first, got %+v", got)
	}
	if got[2].Category != "beta" || got[3].Category != "Gamma" {
		t.Errorf("expected case-insensitive letter order, got %+v", got)
	}

	got = Sort(items, ITRSortKeys["category"], Desc)
	if got[0].Category != "Gamma" || got[1].Category != "beta" {
		t.Errorf("unexpected desc order: %+v", got)
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection(""); err != nil || d != Asc {
		t.Errorf("expected asc default, got %v %v", d, err)
	}
	if d, err := ParseDirection("DESC"); err != nil || d != Desc {
		t.Errorf("expected desc, got %v %v", d, err)
	}
	if _, err := ParseDirection("up"); err == nil {
		t.Error("expected error for invalid direction")
	}
}

func TestLookupSortKey(t *testing.T) {
	if _, err := LookupSortKey(ITRSortKeys, "itr"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	_, err := LookupSortKey(ITRSortKeys, "price")
	if !errors.Is(err, ErrUnknownSortField) {
		t.Errorf("expected ErrUnknownSortField, got %v", err)
	}
}

func TestSort_CategoryMetrics(t *testing.T) {
	items := []models.CategoryMetric{
		{Category: "X", StockValue: 10},
		{Category: "Y", StockValue: 30},
		{Category: "Z", StockValue: 20},
	}
	got := Sort(items, CategorySortKeys["stockValue"], Desc)
	if got[0].Category != "Y" || got[1].Category != "Z" || got[2].Category != "X" {
		t.Errorf("unexpected order: %+v", got)
	}
}
