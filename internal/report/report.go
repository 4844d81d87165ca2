// Package report renders metric tables as xlsx workbooks.
package report

import (
	"fmt"
	"io"

	"github.com/rogerio-castellano/inventory-insights/internal/analytics"
	"github.com/rogerio-castellano/inventory-insights/internal/models"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	ITRSheet      = "ITR"
	CategorySheet = "Categories"
)

var itrHeadings = []string{
	"Item ID", "Item Name", "Category", "ABC Class", "ITR", "Turnover",
	"Average Inventory", "Monthly Consumption", "Data Points",
}

var categoryHeadings = []string{"Category", "Total Items", "Stock Value", "Consumption Rate"}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Workbook builds a workbook with the ITR table on the first sheet and the
// category rollup on the second. Rows keep the order they are given in.
func Workbook(itr []models.ITRMetric, categories []models.CategoryMetric) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", ITRSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(CategorySheet); err != nil {
		return nil, err
	}

	if err := writeRow(f, ITRSheet, 1, toCells(itrHeadings)); err != nil {
		return nil, err
	}
	for i, m := range itr {
		row := []any{
			m.ItemID, m.ItemName, m.Category, m.ABCClass,
			round2(m.ITR), string(analytics.EvaluateTurnover(m.ITR)),
			round2(m.AverageInventory), round2(m.MonthlyConsumption), m.DataPoints,
		}
		if err := writeRow(f, ITRSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, CategorySheet, 1, toCells(categoryHeadings)); err != nil {
		return nil, err
	}
	for i, m := range categories {
		row := []any{m.Category, m.TotalItems, round2(m.StockValue), round2(m.ConsumptionRate)}
		if err := writeRow(f, CategorySheet, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Write renders the workbook to w.
func Write(w io.Writer, itr []models.ITRMetric, categories []models.CategoryMetric) error {
	f, err := Workbook(itr, categories)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()
	return f.Write(w)
}

func toCells(headings []string) []any {
	cells := make([]any, len(headings))
	for i, h := range headings {
		cells[i] = h
	}
	return cells
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
