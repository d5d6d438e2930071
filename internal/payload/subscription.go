package payload

// CreateSubscriptionRequest is the body for POST /api/subscription, creating
// a catalog template.
type CreateSubscriptionRequest struct {
	Plan         string  `json:"plan"         validate:"required,oneof=Weekly Monthly"`
	MealType     string  `json:"mealType"     validate:"required,oneof=Veg Non-Veg"`
	Price        float64 `json:"price"        validate:"required,gt=0"`
	MealCount    int     `json:"mealCount"    validate:"required,gt=0"`
	FreeDelivery bool    `json:"freeDelivery"`
}

// SubscribeRequest is the body for POST /api/subscribe.
type SubscribeRequest struct {
	User           string `json:"user"           validate:"required"`
	SubscriptionID string `json:"subscriptionId" validate:"required"`
}
