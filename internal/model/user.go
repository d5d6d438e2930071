package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a registered account. The password is stored as an argon2
// hash and is never serialized to API responses.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty"       json:"id"`
	Username     string        `bson:"username"            json:"username"`
	Email        string        `bson:"email"               json:"email"`
	PasswordHash string        `bson:"password_hash"       json:"-"`
	FirstName    string        `bson:"first_name"          json:"firstName,omitempty"`
	LastName     string        `bson:"last_name"           json:"lastName,omitempty"`
	ProfilePic   string        `bson:"profile_pic"         json:"profilePic,omitempty"`

	// Password reset state. The token is checked against its expiry on use,
	// not removed by a background job.
	ResetPasswordToken  string    `bson:"reset_password_token,omitempty"  json:"-"`
	ResetPasswordExpire time.Time `bson:"reset_password_expire,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
