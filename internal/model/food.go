package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// DietCategory is the dietary classification of a food item.
type DietCategory string

const (
	DietVegetarian    DietCategory = "vegetarian"
	DietNonVegetarian DietCategory = "non-vegetarian"
	DietVegan         DietCategory = "vegan"
	DietDessert       DietCategory = "dessert"
)

// Valid reports whether c is a known diet category.
func (c DietCategory) Valid() bool {
	switch c {
	case DietVegetarian, DietNonVegetarian, DietVegan, DietDessert:
		return true
	}
	return false
}

// Coordinate is a geographic point attached to a food item.
type Coordinate struct {
	Latitude  float64 `bson:"latitude"  json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Food is a menu entry. CategoryID references a catalog category document;
// the reference is denormalized, not enforced by the store.
type Food struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name"          json:"name"`
	Description string        `bson:"description"   json:"description,omitempty"`
	Price       float64       `bson:"price"         json:"price"`
	Image       string        `bson:"image"         json:"image"`
	Category    DietCategory  `bson:"category"      json:"category"`
	CategoryID  bson.ObjectID `bson:"category_id"   json:"foodCategory"`
	Ingredients []string      `bson:"ingredients"   json:"ingredients"`
	IsAvailable bool          `bson:"is_available"  json:"isAvailable"`
	Rating      float64       `bson:"rating"        json:"rating"`
	Servings    int           `bson:"servings"      json:"servings"`
	Coords      []Coordinate  `bson:"coords,omitempty" json:"coords,omitempty"`
	CreatedAt   time.Time     `bson:"created_at"    json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updated_at"    json:"updatedAt"`
}
