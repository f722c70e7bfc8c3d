package services

import "github.com/Ipannazim/Calorie-Tracker/models"

// The fixed food list. Serving foods carry calories per serving, gram
// foods calories per 100 g.
var defaultFoods = []models.FoodItem{
	// student staples
	{ID: "nasi_ayam", Name: "Chicken Rice (Roasted/Steamed)", Unit: models.UnitServing, Cals: 620},
	{ID: "nasi_lemak", Name: "Nasi Lemak (Bungkus/Plain)", Unit: models.UnitServing, Cals: 400},
	{ID: "nasi_goreng_k", Name: "Nasi Goreng Kampung", Unit: models.UnitServing, Cals: 640},
	{ID: "nasi_goreng_usa", Name: "Nasi Goreng USA", Unit: models.UnitServing, Cals: 750},
	{ID: "nasi_bujang", Name: "Nasi Bujang (Rice, Egg, Soup)", Unit: models.UnitServing, Cals: 350},

	// mamak & noodles
	{ID: "roti_canai", Name: "Roti Canai (1 pc + Dhal)", Unit: models.UnitServing, Cals: 360},
	{ID: "roti_telur", Name: "Roti Telur (1 pc + Curry)", Unit: models.UnitServing, Cals: 450},
	{ID: "maggi_goreng", Name: "Maggi Goreng (Biasa)", Unit: models.UnitServing, Cals: 470},
	{ID: "shawarma", Name: "Chicken Shawarma/Kebab", Unit: models.UnitServing, Cals: 450},
	{ID: "burger_ramly", Name: "Ramly Burger (Ayam/Daging)", Unit: models.UnitServing, Cals: 480},

	// sides & extras
	{ID: "ayam_goreng", Name: "Ayam Goreng (Mamak/Spicy)", Unit: models.UnitServing, Cals: 290},
	{ID: "telur_mata", Name: "Telur Mata (Fried Egg)", Unit: models.UnitServing, Cals: 90},
	{ID: "kuih", Name: "Kuih (Karipap/Donut - 1 pc)", Unit: models.UnitServing, Cals: 130},
	{ID: "keropok", Name: "Keropok Lekor (5 pcs)", Unit: models.UnitServing, Cals: 150},

	// drinks
	{ID: "milo_ais", Name: "Milo Ais", Unit: models.UnitServing, Cals: 220},
	{ID: "teh_tarik", Name: "Teh Tarik", Unit: models.UnitServing, Cals: 190},
	{ID: "teh_o_ais", Name: "Teh O Ais", Unit: models.UnitServing, Cals: 80},
	{ID: "sirap_bandung", Name: "Sirap Bandung", Unit: models.UnitServing, Cals: 180},

	// generic, gram-measured
	{ID: "rice_g", Name: "White Rice (per 100g)", Unit: models.UnitGram, Cals: 130},
	{ID: "chicken_g", Name: "Chicken Breast (per 100g)", Unit: models.UnitGram, Cals: 165},
	{ID: "mixed_veg", Name: "Mixed Vegetables (1 scoop)", Unit: models.UnitServing, Cals: 80},
}

// Catalog is the static food lookup table, built once at startup and
// shared read-only.
type Catalog struct {
	items []models.FoodItem
	byID  map[string]models.FoodItem
}

func NewCatalog() *Catalog {
	c := &Catalog{
		items: defaultFoods,
		byID:  make(map[string]models.FoodItem, len(defaultFoods)),
	}
	for _, f := range c.items {
		c.byID[f.ID] = f
	}
	return c
}

func (c *Catalog) Lookup(id string) (models.FoodItem, bool) {
	f, ok := c.byID[id]
	return f, ok
}

// List returns the catalog in menu order.
func (c *Catalog) List() []models.FoodItem {
	out := make([]models.FoodItem, len(c.items))
	copy(out, c.items)
	return out
}
