// Package normalize turns decoded documents into typed inventory records.
//
// Shapes are asserted strictly: a number encoded as a string is rejected
// instead of being converted.
package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rogerio-castellano/inventory-insights/internal/models"
)

const (
	fieldItemID       = "Item ID"
	fieldDate         = "Date"
	fieldOpeningStock = "Opening Stock"
	fieldConsumption  = "Consumption"
	fieldIncoming     = "Incoming"
	fieldClosingStock = "Closing Stock"
	fieldUnits        = "Units"
	fieldItemName     = "Item Name"
	fieldCategory     = "Category"
	fieldUnitPrice    = "Unit Price"
	fieldABCClass     = "ABC Class"
	fieldMSL          = "MSL"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Record normalizes one raw inventory row.
func Record(raw map[string]any) (models.RawRecord, error) {
	return record(raw, -1)
}

// Item normalizes one item-master entry.
func Item(raw map[string]any) (models.ItemMaster, error) {
	return item(raw, -1)
}

// Records normalizes a whole batch and stops at the first malformed row.
func Records(rows []map[string]any) ([]models.RawRecord, error) {
	out := make([]models.RawRecord, 0, len(rows))
	for i, raw := range rows {
		rec, err := record(raw, i)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Items normalizes the item master and stops at the first malformed entry.
func Items(rows []map[string]any) ([]models.ItemMaster, error) {
	out := make([]models.ItemMaster, 0, len(rows))
	for i, raw := range rows {
		it, err := item(raw, i)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

func record(raw map[string]any, index int) (models.RawRecord, error) {
	if raw == nil {
		return models.RawRecord{}, &MalformedRecordError{Index: index, Reason: "record is not an object"}
	}
	f := fields{raw: raw}
	rec := models.RawRecord{
		ItemID:       f.text(fieldItemID),
		Date:         f.text(fieldDate),
		OpeningStock: f.number(fieldOpeningStock),
		Consumption:  f.number(fieldConsumption),
		Incoming:     f.number(fieldIncoming),
		ClosingStock: f.number(fieldClosingStock),
		Units:        f.optionalText(fieldUnits),
		ItemName:     f.text(fieldItemName),
		Category:     f.text(fieldCategory),
		UnitPrice:    f.number(fieldUnitPrice),
		ABCClass:     f.text(fieldABCClass),
		MSL:          f.number(fieldMSL),
	}
	if f.err != nil {
		f.err.Index = index
		return models.RawRecord{}, f.err
	}
	if err := check(rec, index); err != nil {
		return models.RawRecord{}, err
	}
	return rec, nil
}

func item(raw map[string]any, index int) (models.ItemMaster, error) {
	if raw == nil {
		return models.ItemMaster{}, &MalformedRecordError{Index: index, Reason: "record is not an object"}
	}
	f := fields{raw: raw}
	it := models.ItemMaster{
		ItemID:    f.text(fieldItemID),
		ItemName:  f.text(fieldItemName),
		Category:  f.text(fieldCategory),
		ABCClass:  f.text(fieldABCClass),
		MSL:       f.number(fieldMSL),
		UnitPrice: f.number(fieldUnitPrice),
	}
	if f.err != nil {
		f.err.Index = index
		return models.ItemMaster{}, f.err
	}
	if err := check(it, index); err != nil {
		return models.ItemMaster{}, err
	}
	return it, nil
}

func check(v any, index int) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &MalformedRecordError{Index: index, Reason: err.Error()}
	}
	fe := verrs[0]
	return &MalformedRecordError{Index: index, Field: fe.Field(), Reason: describe(fe)}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	case "datetime":
		return "must be a date formatted as YYYY-MM-DD"
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}

// fields reads typed values out of a raw object and keeps the first failure.
type fields struct {
	raw map[string]any
	err *MalformedRecordError
}

func (f *fields) fail(field, reason string) {
	if f.err == nil {
		f.err = &MalformedRecordError{Field: field, Reason: reason}
	}
}

func (f *fields) text(field string) string {
	v, ok := f.raw[field]
	if !ok || v == nil {
		f.fail(field, "is missing")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		f.fail(field, fmt.Sprintf("must be a string, got %T", v))
		return ""
	}
	return s
}

func (f *fields) optionalText(field string) string {
	v, ok := f.raw[field]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		f.fail(field, fmt.Sprintf("must be a string, got %T", v))
		return ""
	}
	return s
}

func (f *fields) number(field string) float64 {
	v, ok := f.raw[field]
	if !ok || v == nil {
		f.fail(field, "is missing")
		return 0
	}
	n, ok := toFloat(v)
	if !ok {
		f.fail(field, fmt.Sprintf("must be a number, got %T", v))
		return 0
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		f.fail(field, "must be a finite number")
		return 0
	}
	return n
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		x, err := n.Float64()
		return x, err == nil
	}
	return 0, false
}
