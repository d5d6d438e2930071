package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Address is a delivery address owned by exactly one user. At most one address
// per user carries IsPrimary; the address usecase enforces this across writes.
type Address struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    bson.ObjectID `bson:"user_id"       json:"userId"`
	Street    string        `bson:"street"        json:"street"`
	City      string        `bson:"city"          json:"city"`
	State     string        `bson:"state"         json:"state"`
	ZipCode   string        `bson:"zip_code"      json:"zipCode"`
	Country   string        `bson:"country"       json:"country"`
	IsPrimary bool          `bson:"is_primary"    json:"isPrimary"`
	CreatedAt time.Time     `bson:"created_at"    json:"createdAt"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"updatedAt"`
}
