package payload

// OrderItemRequest is one order line. Price is the price at order time and is
// stored as submitted.
type OrderItemRequest struct {
	FoodItemID string  `json:"foodItemId" validate:"required"`
	Quantity   int     `json:"quantity"   validate:"required,gt=0"`
	Price      float64 `json:"price"      validate:"required,gt=0"`
}

// CreateOrderRequest is the body for POST /api/order.
type CreateOrderRequest struct {
	UserID      string             `json:"userId"      validate:"required"`
	Items       []OrderItemRequest `json:"items"       validate:"required,min=1,dive"`
	TotalAmount float64            `json:"totalAmount" validate:"required,gt=0"`
}

// UpdateOrderRequest is the body for PUT /api/order/user/{userId}/{orderId}.
type UpdateOrderRequest struct {
	Status *string            `json:"status" validate:"omitempty,oneof=pending completed canceled"`
	Items  []OrderItemRequest `json:"items"  validate:"omitempty,min=1,dive"`
}
