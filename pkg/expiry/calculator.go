// Package expiry derives expiry dates from the static fridge-life catalog
// and holds the add-ingredient draft whose expiry follows its inputs.
package expiry

import (
	"fridge-manager/entities"
	"time"
)

var catalog = []entities.IngredientOption{
	{Name: "Milk", FridgeLifeDays: 7},
	{Name: "Eggs", FridgeLifeDays: 21},
	{Name: "Cheese", FridgeLifeDays: 14},
	{Name: "Yogurt", FridgeLifeDays: 7},
	{Name: "Butter", FridgeLifeDays: 30},
	{Name: "Lettuce", FridgeLifeDays: 7},
	{Name: "Tomatoes", FridgeLifeDays: 7},
	{Name: "Chicken", FridgeLifeDays: 2},
	{Name: "Beef", FridgeLifeDays: 3},
	{Name: "Fish", FridgeLifeDays: 2},
}

// Options returns the catalog in display order.
func Options() []entities.IngredientOption {
	out := make([]entities.IngredientOption, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup matches names exactly, the same way the ingredient selector does.
func Lookup(name string) (entities.IngredientOption, bool) {
	for _, option := range catalog {
		if option.Name == name {
			return option, true
		}
	}
	return entities.IngredientOption{}, false
}

// Calculate returns purchase + fridge life. The boolean is false when the
// name is not in the catalog or the purchase date is unset; that is not an
// error, the expiry simply cannot be derived yet.
func Calculate(name string, purchase time.Time) (time.Time, bool) {
	if name == "" || purchase.IsZero() {
		return time.Time{}, false
	}
	option, ok := Lookup(name)
	if !ok {
		return time.Time{}, false
	}
	return AddDays(purchase, option.FridgeLifeDays), true
}
