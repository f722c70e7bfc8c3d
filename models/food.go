package models

// Units a catalog food can be measured in.
const (
	UnitServing = "serving"
	UnitGram    = "g"
)

// FoodItem is a catalog entry. Not a database table: the catalog is a fixed
// list compiled into the binary and shared read-only.
//
// Cals is calories per serving for serving-unit foods, and calories per
// 100 g for gram-unit foods.
type FoodItem struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Unit string  `json:"unit"`
	Cals float64 `json:"cals"`
}
