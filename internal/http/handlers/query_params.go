package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rogerio-castellano/inventory-insights/internal/query"
)

var errBadQuery = errors.New("bad query parameter")

// parseCriteria reads name, category, abcClass, itemId, from and to.
// Dates use YYYY-MM-DD and both bounds are inclusive.
func parseCriteria(r *http.Request) (query.Criteria, error) {
	q := r.URL.Query()
	c := query.Criteria{
		Name:     q.Get("name"),
		Category: q.Get("category"),
		ABCClass: q.Get("abcClass"),
		ItemID:   q.Get("itemId"),
	}

	var err error
	if c.From, err = parseDate(q.Get("from"), "from"); err != nil {
		return c, err
	}
	if c.To, err = parseDate(q.Get("to"), "to"); err != nil {
		return c, err
	}
	if c.From != nil && c.To != nil && c.From.After(*c.To) {
		return c, fmt.Errorf("%w: from is after to", errBadQuery)
	}
	return c, nil
}

func parseDate(v, param string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", errBadQuery, param)
	}
	return &t, nil
}

// sortBy applies the sort and order parameters. Without sort the input order is kept.
func sortBy[T any](r *http.Request, items []T, keys map[string]query.SortKey[T]) ([]T, error) {
	q := r.URL.Query()
	field := q.Get("sort")
	dir, err := query.ParseDirection(q.Get("order"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadQuery, err)
	}
	if field == "" {
		return items, nil
	}
	key, err := query.LookupSortKey(keys, field)
	if err != nil {
		return nil, err
	}
	return query.Sort(items, key, dir), nil
}
