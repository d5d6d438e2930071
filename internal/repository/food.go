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

// FoodRepository defines the interface for food-related database operations.
type FoodRepository interface {
	CreateFood(ctx context.Context, food *model.Food) (*model.Food, error)
	GetFood(ctx context.Context, id string) (*model.Food, error)
	ListFood(ctx context.Context, params FilterFoodParams) ([]*model.Food, error)
	CountFood(ctx context.Context, params FilterFoodParams) (int64, error)
	UpdateFood(ctx context.Context, id string, params UpdateFoodParams) (*model.Food, error)
}

// FilterFoodParams defines the parameters for filtering and paginating the menu.
type FilterFoodParams struct {
	Category    *model.DietCategory
	IsAvailable *bool
	MinPrice    *float64
	MaxPrice    *float64
	Page        Page
}

// UpdateFoodParams defines the optional parameters for updating a food item.
// Only the fields that are not nil will be updated.
type UpdateFoodParams struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	Category    *model.DietCategory
	Ingredients []string
	IsAvailable *bool
	Rating      *float64
	Servings    *int
	Coords      []model.Coordinate
}

const foodCollection = "food"

type foodMongoRepository struct {
	db *mongo.Database
}

func NewFoodMongoRepository(db *mongo.Database) FoodRepository {
	return &foodMongoRepository{db: db}
}

func (r *foodMongoRepository) CreateFood(ctx context.Context, food *model.Food) (*model.Food, error) {
	now := time.Now()
	food.CreatedAt = now
	food.UpdatedAt = now

	result, err := r.db.Collection(foodCollection).InsertOne(ctx, food)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		food.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return food, nil
}

func (r *foodMongoRepository) GetFood(ctx context.Context, id string) (*model.Food, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(foodCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var food model.Food
	if err := result.Decode(&food); err != nil {
		return nil, err
	}

	return &food, nil
}

func filterFoodQuery(params FilterFoodParams) bson.M {
	filter := bson.M{}

	if params.Category != nil {
		filter["category"] = *params.Category
	}
	if params.IsAvailable != nil {
		filter["is_available"] = *params.IsAvailable
	}

	price := bson.M{}
	if params.MinPrice != nil {
		price["$gte"] = *params.MinPrice
	}
	if params.MaxPrice != nil {
		price["$lte"] = *params.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	return filter
}

func (r *foodMongoRepository) ListFood(ctx context.Context, params FilterFoodParams) ([]*model.Food, error) {
	page := params.Page.Normalize()
	findOptions := options.Find().
		SetSkip(page.Skip()).
		SetLimit(page.Limit)

	cursor, err := r.db.Collection(foodCollection).Find(ctx, filterFoodQuery(params), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []*model.Food{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *foodMongoRepository) CountFood(ctx context.Context, params FilterFoodParams) (int64, error) {
	return r.db.Collection(foodCollection).CountDocuments(ctx, filterFoodQuery(params))
}

func (r *foodMongoRepository) UpdateFood(
	ctx context.Context,
	id string,
	params UpdateFoodParams,
) (*model.Food, error) {
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
	if params.Price != nil {
		updateMap["price"] = *params.Price
	}
	if params.Image != nil {
		updateMap["image"] = *params.Image
	}
	if params.Category != nil {
		updateMap["category"] = *params.Category
	}
	if params.Ingredients != nil {
		updateMap["ingredients"] = params.Ingredients
	}
	if params.IsAvailable != nil {
		updateMap["is_available"] = *params.IsAvailable
	}
	if params.Rating != nil {
		updateMap["rating"] = *params.Rating
	}
	if params.Servings != nil {
		updateMap["servings"] = *params.Servings
	}
	if params.Coords != nil {
		updateMap["coords"] = params.Coords
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no food fields to update")
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(foodCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var food model.Food
	if err := result.Decode(&food); err != nil {
		return nil, err
	}

	return &food, nil
}
