package models

// ItemMaster is the static metadata for one stock item.
type ItemMaster struct {
	ItemID    string  `json:"Item ID" validate:"required"`
	ItemName  string  `json:"Item Name"`
	Category  string  `json:"Category"`
	ABCClass  string  `json:"ABC Class" validate:"oneof=A B C"`
	MSL       float64 `json:"MSL" validate:"gt=0"`
	UnitPrice float64 `json:"Unit Price" validate:"gte=0"`
}
