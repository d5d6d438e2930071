package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCanceled:
		return true
	}
	return false
}

// OrderItem is a single line of an order. Price is copied from the request at
// order time; later changes to the food document do not affect past orders.
type OrderItem struct {
	FoodID   bson.ObjectID `bson:"food_id"  json:"foodItemId"`
	Quantity int           `bson:"quantity" json:"quantity"`
	Price    float64       `bson:"price"    json:"price"`
}

// Order belongs to exactly one user; only the owner may mutate it.
type Order struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      bson.ObjectID `bson:"user_id"       json:"userId"`
	Items       []OrderItem   `bson:"items"         json:"items"`
	TotalAmount float64       `bson:"total_amount"  json:"totalAmount"`
	Status      OrderStatus   `bson:"status"        json:"status"`
	CreatedAt   time.Time     `bson:"created_at"    json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updated_at"    json:"updatedAt"`
}
