package repository

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/mavesys/foodcourt-api/internal/model"
)

// CategoryRepository defines the interface for catalog category operations.
// The item catalog and the food catalog share this shape; construct one
// repository per collection.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	ListCategories(ctx context.Context, page Page) ([]*model.Category, error)
	CountCategories(ctx context.Context) (int64, error)
}

// Collection names served by CategoryRepository.
const (
	ItemCategoryCollection = "categories"
	FoodCategoryCollection = "food_categories"
)

type categoryMongoRepository struct {
	db         *mongo.Database
	collection string
}

func NewCategoryMongoRepository(
	ctx context.Context,
	logger *zerolog.Logger,
	db *mongo.Database,
	collection string,
) CategoryRepository {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category_name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Str("collection", collection).Msg("failed to create category indexes")
	}

	return &categoryMongoRepository{db: db, collection: collection}
}

func (r *categoryMongoRepository) CreateCategory(
	ctx context.Context,
	category *model.Category,
) (*model.Category, error) {
	result, err := r.db.Collection(r.collection).InsertOne(ctx, category)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		category.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return category, nil
}

func (r *categoryMongoRepository) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(r.collection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var category model.Category
	if err := result.Decode(&category); err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *categoryMongoRepository) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	result := r.db.Collection(r.collection).FindOne(ctx, bson.M{"category_name": name})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var category model.Category
	if err := result.Decode(&category); err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *categoryMongoRepository) ListCategories(ctx context.Context, page Page) ([]*model.Category, error) {
	page = page.Normalize()
	findOptions := options.Find().
		SetSkip(page.Skip()).
		SetLimit(page.Limit)

	cursor, err := r.db.Collection(r.collection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []*model.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryMongoRepository) CountCategories(ctx context.Context) (int64, error) {
	return r.db.Collection(r.collection).CountDocuments(ctx, bson.M{})
}
