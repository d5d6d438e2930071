package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Category is a catalog category with an uploaded image. The same shape backs
// both the item catalog ("categories") and the food catalog
// ("food_categories"); the repository is parameterized by collection.
type Category struct {
	ID    bson.ObjectID `bson:"_id,omitempty"  json:"id"`
	Name  string        `bson:"category_name"  json:"categoryName"`
	Image string        `bson:"category_image" json:"categoryImage"`
}
