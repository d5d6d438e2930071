package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// SubscriptionPlan is the billing cadence of a subscription.
type SubscriptionPlan string

const (
	PlanWeekly  SubscriptionPlan = "Weekly"
	PlanMonthly SubscriptionPlan = "Monthly"
)

// MealType distinguishes the meal selection of a subscription.
type MealType string

const (
	MealVeg    MealType = "Veg"
	MealNonVeg MealType = "Non-Veg"
)

// Subscription is either a template (UserID nil) acting as a catalog entry, or
// a user subscription created by copying a template's fields at subscribe time.
// Templates and user subscriptions share a collection and diverge freely after
// the copy.
type Subscription struct {
	ID           bson.ObjectID    `bson:"_id,omitempty"     json:"id"`
	UserID       *bson.ObjectID   `bson:"user_id,omitempty" json:"userId,omitempty"`
	Plan         SubscriptionPlan `bson:"plan"              json:"plan"`
	MealType     MealType         `bson:"meal_type"         json:"mealType"`
	Price        float64          `bson:"price"             json:"price"`
	MealCount    int              `bson:"meal_count"        json:"mealCount"`
	FreeDelivery bool             `bson:"free_delivery"     json:"freeDelivery"`
	CreatedAt    time.Time        `bson:"created_at"        json:"createdAt"`
	UpdatedAt    time.Time        `bson:"updated_at"        json:"updatedAt"`
}

// IsTemplate reports whether the subscription is a catalog template.
func (s *Subscription) IsTemplate() bool {
	return s.UserID == nil
}
