package analytics

import "github.com/rogerio-castellano/inventory-insights/internal/models"

type MSLStatus string

const (
	MSLBelow   MSLStatus = "Below"
	MSLOptimal MSLStatus = "Optimal"
	MSLExcess  MSLStatus = "Excess"
)

const (
	belowMSLRatio  = 0.9
	excessMSLRatio = 1.5
)

// MSLEvaluation is the status of a stock level with the threshold it was judged against.
type MSLEvaluation struct {
	Status    MSLStatus `json:"status"`
	Threshold float64   `json:"threshold"`
}

// EvaluateMSLStatus compares stock against its minimum stock level.
func EvaluateMSLStatus(stock, msl float64) MSLEvaluation {
	ratio := stock / msl
	switch {
	case ratio < belowMSLRatio:
		return MSLEvaluation{Status: MSLBelow, Threshold: belowMSLRatio}
	case ratio > excessMSLRatio:
		return MSLEvaluation{Status: MSLExcess, Threshold: excessMSLRatio}
	}
	return MSLEvaluation{Status: MSLOptimal, Threshold: 1}
}

type TurnoverStatus string

const (
	TurnoverLow     TurnoverStatus = "Low"
	TurnoverOptimal TurnoverStatus = "Optimal"
	TurnoverHigh    TurnoverStatus = "High"
)

// EvaluateTurnover buckets an inventory turnover ratio.
func EvaluateTurnover(itr float64) TurnoverStatus {
	switch {
	case itr < 1:
		return TurnoverLow
	case itr > 3:
		return TurnoverHigh
	}
	return TurnoverOptimal
}

// MSLSummary describes how a series of stock points tracked its MSL.
type MSLSummary struct {
	CurrentStatus MSLStatus `json:"currentStatus"`
	DaysBelow     int       `json:"daysBelow"`
	DaysExcess    int       `json:"daysExcess"`
	Compliance    float64   `json:"compliance"`
	Points        int       `json:"points"`
}

// SummarizeMSL reports the status of the last point and the share of points
// that were not below MSL, as a percentage. An empty series is fully compliant.
func SummarizeMSL(points []models.MSLTrendPoint) MSLSummary {
	s := MSLSummary{CurrentStatus: MSLOptimal, Compliance: 100, Points: len(points)}
	for _, p := range points {
		switch EvaluateMSLStatus(p.Stock, p.MSL).Status {
		case MSLBelow:
			s.DaysBelow++
		case MSLExcess:
			s.DaysExcess++
		}
	}
	if len(points) > 0 {
		last := points[len(points)-1]
		s.CurrentStatus = EvaluateMSLStatus(last.Stock, last.MSL).Status
		s.Compliance = float64(len(points)-s.DaysBelow) / float64(len(points)) * 100
	}
	return s
}

type MonthlyUsage struct {
	Month      string  `json:"month"`
	TotalUsage float64 `json:"totalUsage"`
}

// ConsumptionSummary aggregates consumption trend points across items.
type ConsumptionSummary struct {
	Months           []MonthlyUsage `json:"months"`
	TotalConsumption float64        `json:"totalConsumption"`
	AverageMonthly   float64        `json:"averageMonthly"`
	LatestMonth      float64        `json:"latestMonth"`
	TrendPercent     float64        `json:"trendPercent"`
}

// SummarizeConsumption totals points per month in first-seen order. TrendPercent
// compares the latest month with the monthly average.
func SummarizeConsumption(points []models.ConsumptionTrendPoint) ConsumptionSummary {
	s := ConsumptionSummary{Months: make([]MonthlyUsage, 0)}
	index := make(map[string]int)
	for _, p := range points {
		i, ok := index[p.Month]
		if !ok {
			i = len(s.Months)
			index[p.Month] = i
			s.Months = append(s.Months, MonthlyUsage{Month: p.Month})
		}
		s.Months[i].TotalUsage += p.Consumption
	}

	for _, m := range s.Months {
		s.TotalConsumption += m.TotalUsage
	}
	if n := len(s.Months); n > 0 {
		s.AverageMonthly = s.TotalConsumption / float64(n)
		s.LatestMonth = s.Months[n-1].TotalUsage
	}
	if s.AverageMonthly > 0 {
		s.TrendPercent = (s.LatestMonth - s.AverageMonthly) / s.AverageMonthly * 100
	}
	return s
}

type CategorySummary struct {
	TotalStockValue float64 `json:"totalStockValue"`
	TotalItems      int     `json:"totalItems"`
}

func SummarizeCategories(metrics []models.CategoryMetric) CategorySummary {
	var s CategorySummary
	for _, m := range metrics {
		s.TotalStockValue += m.StockValue
		s.TotalItems += m.TotalItems
	}
	return s
}
