package models

import "time"

// Snapshot is one fully derived dashboard dataset. It is built from both
// input collections or not at all.
type Snapshot struct {
	ID                string                  `json:"id"`
	Fingerprint       string                  `json:"fingerprint"`
	LoadedAt          time.Time               `json:"loadedAt"`
	ItemMaster        []ItemMaster            `json:"itemMaster"`
	InventoryData     []RawRecord             `json:"inventoryData"`
	MSLTrends         []MSLTrendPoint         `json:"mslTrends"`
	ConsumptionTrends []ConsumptionTrendPoint `json:"consumptionTrends"`
	CategoryMetrics   []CategoryMetric        `json:"categoryMetrics"`
	ITRMetrics        []ITRMetric             `json:"itrMetrics"`
}
