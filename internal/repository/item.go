package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/mavesys/foodcourt-api/internal/model"
)

// ItemRepository defines the interface for item-related database operations.
type ItemRepository interface {
	CreateItem(ctx context.Context, item *model.Item) (*model.Item, error)
	GetItem(ctx context.Context, id string) (*model.Item, error)
	ListItems(ctx context.Context, page Page) ([]*model.Item, error)
	ListItemsByCategory(ctx context.Context, categoryID string) ([]*model.Item, error)
	CountItems(ctx context.Context) (int64, error)
	UpdateItem(ctx context.Context, id string, params UpdateItemParams) (*model.Item, error)
	DeleteItem(ctx context.Context, id string) (*model.Item, error)
}

// UpdateItemParams defines the optional parameters for updating an item.
// Only the fields that are not nil will be updated.
type UpdateItemParams struct {
	Name        *string
	Description *string
	Quantity    *int
}

const itemCollection = "items"

type itemMongoRepository struct {
	db *mongo.Database
}

func NewItemMongoRepository(db *mongo.Database) ItemRepository {
	return &itemMongoRepository{db: db}
}

func (r *itemMongoRepository) CreateItem(ctx context.Context, item *model.Item) (*model.Item, error) {
	result, err := r.db.Collection(itemCollection).InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		item.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return item, nil
}

func (r *itemMongoRepository) GetItem(ctx context.Context, id string) (*model.Item, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(itemCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var item model.Item
	if err := result.Decode(&item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *itemMongoRepository) ListItems(ctx context.Context, page Page) ([]*model.Item, error) {
	page = page.Normalize()
	findOptions := options.Find().
		SetSkip(page.Skip()).
		SetLimit(page.Limit)

	cursor, err := r.db.Collection(itemCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []*model.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemMongoRepository) ListItemsByCategory(ctx context.Context, categoryID string) ([]*model.Item, error) {
	objectID, err := bson.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, err
	}

	cursor, err := r.db.Collection(itemCollection).Find(ctx, bson.M{"category_id": objectID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []*model.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemMongoRepository) CountItems(ctx context.Context) (int64, error) {
	return r.db.Collection(itemCollection).CountDocuments(ctx, bson.M{})
}

func (r *itemMongoRepository) UpdateItem(
	ctx context.Context,
	id string,
	params UpdateItemParams,
) (*model.Item, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	updateMap := bson.M{}
	if params.Name != nil {
		updateMap["name"] = *params.Name
	}
	if params.Description != nil {
		updateMap["description"] = *params.Description
	}
	if params.Quantity != nil {
		updateMap["quantity"] = *params.Quantity
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no item fields to update")
	}

	result := r.db.Collection(itemCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var item model.Item
	if err := result.Decode(&item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *itemMongoRepository) DeleteItem(ctx context.Context, id string) (*model.Item, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(itemCollection).FindOneAndDelete(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var item model.Item
	if err := result.Decode(&item); err != nil {
		return nil, err
	}

	return &item, nil
}
