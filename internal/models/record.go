package models

// RawRecord is one item's stock state on one day.
// Consumption may be reported negative; it is kept as reported.
type RawRecord struct {
	ItemID       string  `json:"Item ID" validate:"required"`
	Date         string  `json:"Date" validate:"datetime=2006-01-02"`
	OpeningStock float64 `json:"Opening Stock" validate:"gte=0"`
	Consumption  float64 `json:"Consumption"`
	Incoming     float64 `json:"Incoming"`
	ClosingStock float64 `json:"Closing Stock" validate:"gte=0"`
	Units        string  `json:"Units,omitempty"`
	ItemName     string  `json:"Item Name"`
	Category     string  `json:"Category"`
	UnitPrice    float64 `json:"Unit Price" validate:"gte=0"`
	ABCClass     string  `json:"ABC Class" validate:"oneof=A B C"`
	MSL          float64 `json:"MSL" validate:"gt=0"`
}

// Month returns the YYYY-MM bucket of the record date.
func (r RawRecord) Month() string {
	if len(r.Date) < 7 {
		return r.Date
	}
	return r.Date[:7]
}
