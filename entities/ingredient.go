package entities

import (
	"github.com/google/uuid"
	"time"
)

// Ingredient is one inventory record of a fridge session. Only ExpiryDate
// changes after creation; a zero ExpiryDate means the expiry is unknown.
type Ingredient struct {
	SessionID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	ID         int       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name       string    `json:"name"`
	Quantity   string    `json:"quantity"`
	ExpiryDate time.Time `gorm:"type:date" json:"expiry_date"`
	Timestamp
}

type IngredientOption struct {
	Name           string `json:"name"`
	FridgeLifeDays int    `json:"fridge_life_days"`
}
