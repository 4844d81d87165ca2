package query

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/inventory-insights/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var ErrUnknownSortField = errors.New("unknown sort field")

type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// ParseDirection accepts "asc" or "desc"; an empty string means ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return Asc, fmt.Errorf("invalid sort direction %q", s)
}

type Kind int

const (
	// Text compares with locale-aware collation.
	Text Kind = iota
	// Numeric compares numbers and keeps NaN last in both directions.
	Numeric
	// NaturalName compares the first run of digits in a name as a number.
	NaturalName
)

// SortKey reads one sortable column from T. Numeric keys set Number,
// the other kinds set String.
type SortKey[T any] struct {
	Kind   Kind
	String func(T) string
	Number func(T) float64
}

var digitRun = regexp.MustCompile(`\d+`)

// NameNumber extracts the first digit run of a name, 0 when there is none.
func NameNumber(name string) float64 {
	m := digitRun.FindString(name)
	if m == "" {
		return 0
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return n
}

// Sort returns a stably sorted copy of items.
func Sort[T any](items []T, key SortKey[T], dir Direction) []T {
	out := make([]T, len(items))
	copy(out, items)

	var cmp func(a, b T) int
	switch key.Kind {
	case NaturalName:
		cmp = func(a, b T) int {
			return compareFloat(NameNumber(key.String(a)), NameNumber(key.String(b)))
		}
	case Numeric:
		cmp = func(a, b T) int {
			return compareNumeric(key.Number(a), key.Number(b), dir)
		}
	default:
		// Collator buffers are not shared across calls.
		col := collate.New(language.English)
		cmp = func(a, b T) int {
			return col.CompareString(key.String(a), key.String(b))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if key.Kind == Numeric {
			return c < 0
		}
		if dir == Desc {
			c = -c
		}
		return c < 0
	})
	return out
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareNumeric applies the direction itself so NaN can stay last either way.
func compareNumeric(a, b float64, dir Direction) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}
	if dir == Desc {
		return compareFloat(b, a)
	}
	return compareFloat(a, b)
}

// ITRSortKeys are the sortable columns of the turnover table.
var ITRSortKeys = map[string]SortKey[models.ITRMetric]{
	"itemName":           {Kind: NaturalName, String: func(m models.ITRMetric) string { return m.ItemName }},
	"itemId":             {Kind: Text, String: func(m models.ITRMetric) string { return m.ItemID }},
	"category":           {Kind: Text, String: func(m models.ITRMetric) string { return m.Category }},
	"abcClass":           {Kind: Text, String: func(m models.ITRMetric) string { return m.ABCClass }},
	"itr":                {Kind: Numeric, Number: func(m models.ITRMetric) float64 { return m.ITR }},
	"averageInventory":   {Kind: Numeric, Number: func(m models.ITRMetric) float64 { return m.AverageInventory }},
	"monthlyConsumption": {Kind: Numeric, Number: func(m models.ITRMetric) float64 { return m.MonthlyConsumption }},
	"dataPoints":         {Kind: Numeric, Number: func(m models.ITRMetric) float64 { return float64(m.DataPoints) }},
}

// CategorySortKeys are the sortable columns of the category rollup.
var CategorySortKeys = map[string]SortKey[models.CategoryMetric]{
	"category":        {Kind: Text, String: func(m models.CategoryMetric) string { return m.Category }},
	"totalItems":      {Kind: Numeric, Number: func(m models.CategoryMetric) float64 { return float64(m.TotalItems) }},
	"stockValue":      {Kind: Numeric, Number: func(m models.CategoryMetric) float64 { return m.StockValue }},
	"consumptionRate": {Kind: Numeric, Number: func(m models.CategoryMetric) float64 { return m.ConsumptionRate }},
}

// LookupSortKey resolves a column name, reporting ErrUnknownSortField.
func LookupSortKey[T any](keys map[string]SortKey[T], field string) (SortKey[T], error) {
	k, ok := keys[field]
	if !ok {
		return SortKey[T]{}, fmt.Errorf("%w: %q", ErrUnknownSortField, field)
	}
	return k, nil
}
