// Package query filters and orders metric collections for presentation.
package query

import (
	"strings"
	"time"

	"github.com/rogerio-castellano/inventory-insights/internal/models"
)

const dateLayout = "2006-01-02"

// Criteria is a conjunctive filter. Empty fields and nil bounds match everything.
type Criteria struct {
	Name     string
	Category string
	ABCClass string
	ItemID   string
	From     *time.Time
	To       *time.Time
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c.Name == "" && c.Category == "" && c.ABCClass == "" && c.ItemID == "" && c.From == nil && c.To == nil
}

// Fields tells Filter how to read each criterion from T. A nil accessor means
// the item type does not carry that field and the criterion is not applied.
type Fields[T any] struct {
	Name     func(T) string
	Category func(T) string
	ABCClass func(T) string
	ItemID   func(T) string
	Date     func(T) string
}

// Filter returns the items matching every applicable criterion, in input order.
func Filter[T any](items []T, c Criteria, f Fields[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, c, f) {
			out = append(out, item)
		}
	}
	return out
}

func matches[T any](item T, c Criteria, f Fields[T]) bool {
	if c.Name != "" && f.Name != nil && !strings.Contains(strings.ToLower(f.Name(item)), strings.ToLower(c.Name)) {
		return false
	}
	if c.Category != "" && f.Category != nil && f.Category(item) != c.Category {
		return false
	}
	if c.ABCClass != "" && f.ABCClass != nil && f.ABCClass(item) != c.ABCClass {
		return false
	}
	if c.ItemID != "" && f.ItemID != nil && f.ItemID(item) != c.ItemID {
		return false
	}
	if (c.From != nil || c.To != nil) && f.Date != nil {
		d, err := time.Parse(dateLayout, f.Date(item))
		if err != nil {
			return false
		}
		if c.From != nil && d.Before(*c.From) {
			return false
		}
		if c.To != nil && d.After(*c.To) {
			return false
		}
	}
	return true
}

var RecordFields = Fields[models.RawRecord]{
	Name:     func(r models.RawRecord) string { return r.ItemName },
	Category: func(r models.RawRecord) string { return r.Category },
	ABCClass: func(r models.RawRecord) string { return r.ABCClass },
	ItemID:   func(r models.RawRecord) string { return r.ItemID },
	Date:     func(r models.RawRecord) string { return r.Date },
}

var ItemMasterFields = Fields[models.ItemMaster]{
	Name:     func(i models.ItemMaster) string { return i.ItemName },
	Category: func(i models.ItemMaster) string { return i.Category },
	ABCClass: func(i models.ItemMaster) string { return i.ABCClass },
	ItemID:   func(i models.ItemMaster) string { return i.ItemID },
}

var MSLTrendFields = Fields[models.MSLTrendPoint]{
	ItemID: func(p models.MSLTrendPoint) string { return p.ItemID },
	Date:   func(p models.MSLTrendPoint) string { return p.Date },
}

var ConsumptionTrendFields = Fields[models.ConsumptionTrendPoint]{
	Category: func(p models.ConsumptionTrendPoint) string { return p.Category },
	ABCClass: func(p models.ConsumptionTrendPoint) string { return p.ABCClass },
	ItemID:   func(p models.ConsumptionTrendPoint) string { return p.ItemID },
}

var CategoryFields = Fields[models.CategoryMetric]{
	Category: func(m models.CategoryMetric) string { return m.Category },
}

var ITRFields = Fields[models.ITRMetric]{
	Name:     func(m models.ITRMetric) string { return m.ItemName },
	Category: func(m models.ITRMetric) string { return m.Category },
	ABCClass: func(m models.ITRMetric) string { return m.ABCClass },
	ItemID:   func(m models.ITRMetric) string { return m.ItemID },
}
