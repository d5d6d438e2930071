package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/mavesys/foodcourt-api/internal/model"
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	ListOrdersByUser(ctx context.Context, params FilterOrdersParams) ([]*model.Order, error)
	CountOrdersByUser(ctx context.Context, params FilterOrdersParams) (int64, error)
	UpdateOrder(ctx context.Context, id string, params UpdateOrderParams) (*model.Order, error)
}

// FilterOrdersParams defines the parameters for filtering and paginating a
// user's orders.
type FilterOrdersParams struct {
	UserID string
	Status *model.OrderStatus
	Page   Page
}

// UpdateOrderParams defines the optional parameters for updating an order.
// Only the fields that are not nil will be updated.
type UpdateOrderParams struct {
	Status *model.OrderStatus
	Items  []model.OrderItem
}

const orderCollection = "orders"

type orderMongoRepository struct {
	db *mongo.Database
}

func NewOrderMongoRepository(db *mongo.Database) OrderRepository {
	return &orderMongoRepository{db: db}
}

func (r *orderMongoRepository) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.Status == "" {
		order.Status = model.OrderStatusPending
	}

	result, err := r.db.Collection(orderCollection).InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		order.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return order, nil
}

func (r *orderMongoRepository) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(orderCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var order model.Order
	if err := result.Decode(&order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderMongoRepository) filterQuery(params FilterOrdersParams) (bson.M, error) {
	userObjectID, err := bson.ObjectIDFromHex(params.UserID)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"user_id": userObjectID}
	if params.Status != nil {
		filter["status"] = *params.Status
	}

	return filter, nil
}

func (r *orderMongoRepository) ListOrdersByUser(
	ctx context.Context,
	params FilterOrdersParams,
) ([]*model.Order, error) {
	filter, err := r.filterQuery(params)
	if err != nil {
		return nil, err
	}

	page := params.Page.Normalize()
	findOptions := options.Find().
		SetSkip(page.Skip()).
		SetLimit(page.Limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(orderCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []*model.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderMongoRepository) CountOrdersByUser(ctx context.Context, params FilterOrdersParams) (int64, error) {
	filter, err := r.filterQuery(params)
	if err != nil {
		return 0, err
	}

	return r.db.Collection(orderCollection).CountDocuments(ctx, filter)
}

func (r *orderMongoRepository) UpdateOrder(
	ctx context.Context,
	id string,
	params UpdateOrderParams,
) (*model.Order, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	updateMap := bson.M{}
	if params.Status != nil {
		updateMap["status"] = *params.Status
	}
	if params.Items != nil {
		updateMap["items"] = params.Items
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no order fields to update")
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(orderCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var order model.Order
	if err := result.Decode(&order); err != nil {
		return nil, err
	}

	return &order, nil
}
