package ingredient

import (
	"fridge-manager/entities"
	"time"
)

type sample struct {
	name       string
	quantity   string
	expiryDate string
}

// One sample serves both as the starting inventory of a new session and as
// the data behind GET /ingredients.
var samples = []sample{
	{name: "Milk", quantity: "1L", expiryDate: "2023-06-30"},
	{name: "Eggs", quantity: "12", expiryDate: "2025-07-15"},
	{name: "Cheese", quantity: "200g", expiryDate: "2025-07-20"},
}

// SampleIngredients builds fresh copies of the sample with ids 1..n.
func SampleIngredients(loc *time.Location) []entities.Ingredient {
	if loc == nil {
		loc = time.Local
	}
	out := make([]entities.Ingredient, 0, len(samples))
	for i, s := range samples {
		expiryDate, _ := time.ParseInLocation("2006-01-02", s.expiryDate, loc)
		out = append(out, entities.Ingredient{
			ID:         i + 1,
			Name:       s.name,
			Quantity:   s.quantity,
			ExpiryDate: expiryDate,
		})
	}
	return out
}
