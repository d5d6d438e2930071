package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Item is a generic catalog item referencing a category.
type Item struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name"          json:"name"`
	Description string        `bson:"description"   json:"description,omitempty"`
	Quantity    int           `bson:"quantity"      json:"quantity"`
	CategoryID  bson.ObjectID `bson:"category_id"   json:"category"`
}
