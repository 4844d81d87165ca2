package models

type MSLTrendPoint struct {
	ItemID string  `json:"itemId"`
	Date   string  `json:"date"`
	Stock  float64 `json:"stock"`
	MSL    float64 `json:"msl"`
}

type ConsumptionTrendPoint struct {
	ItemID      string  `json:"itemId"`
	Category    string  `json:"category"`
	ABCClass    string  `json:"abcClass"`
	Month       string  `json:"month"`
	Consumption float64 `json:"consumption"`
}

// CategoryMetric rolls up every record of one category.
// TotalItems counts records, not distinct items.
type CategoryMetric struct {
	Category        string  `json:"category"`
	TotalItems      int     `json:"totalItems"`
	StockValue      float64 `json:"stockValue"`
	ConsumptionRate float64 `json:"consumptionRate"`
}

// ITRMetric is the inventory turnover of one item over all its records.
// MonthlyConsumption is the average consumption per record.
type ITRMetric struct {
	ItemID             string  `json:"itemId"`
	ItemName           string  `json:"itemName"`
	Category           string  `json:"category"`
	ABCClass           string  `json:"abcClass"`
	ITR                float64 `json:"itr"`
	AverageInventory   float64 `json:"averageInventory"`
	MonthlyConsumption float64 `json:"monthlyConsumption"`
	DataPoints         int     `json:"dataPoints"`
}
