package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/mavesys/foodcourt-api/internal/model"
)

// MoodContentRepository defines the database operations for the mood content
// collections: categories, photos, stories, onboarding slides and reels.
type MoodContentRepository interface {
	CreateMoodCategory(ctx context.Context, category *model.MoodCategory) (*model.MoodCategory, error)
	GetMoodCategory(ctx context.Context, id string) (*model.MoodCategory, error)
	ListMoodCategories(ctx context.Context) ([]*model.MoodCategory, error)
	UpdateMoodCategory(ctx context.Context, id string, params UpdateMoodCategoryParams) (*model.MoodCategory, error)
	DeleteMoodCategory(ctx context.Context, id string) (*model.MoodCategory, error)

	CreateMoodPhoto(ctx context.Context, photo *model.MoodPhoto) (*model.MoodPhoto, error)
	GetMoodPhoto(ctx context.Context, id string) (*model.MoodPhoto, error)
	ListMoodPhotos(ctx context.Context, category *string) ([]*model.MoodPhoto, error)
	UpdateMoodPhoto(ctx context.Context, id string, params UpdateMoodPhotoParams) (*model.MoodPhoto, error)
	DeleteMoodPhoto(ctx context.Context, id string) (*model.MoodPhoto, error)

	CreateMoodStory(ctx context.Context, story *model.MoodStory) (*model.MoodStory, error)
	GetMoodStory(ctx context.Context, id string) (*model.MoodStory, error)
	ListMoodStories(ctx context.Context) ([]*model.MoodStory, error)
	UpdateMoodStory(ctx context.Context, id string, params UpdateMoodStoryParams) (*model.MoodStory, error)
	DeleteMoodStory(ctx context.Context, id string) (*model.MoodStory, error)

	CreateMoodOnboard(ctx context.Context, onboard *model.MoodOnboard) (*model.MoodOnboard, error)
	ListMoodOnboards(ctx context.Context) ([]*model.MoodOnboard, error)

	ListMoodReels(ctx context.Context) ([]*model.MoodReel, error)
}

// UpdateMoodCategoryParams defines the optional parameters for updating a mood
// category. Only the fields that are not nil will be updated.
type UpdateMoodCategoryParams struct {
	Name        *string
	Description *string
}

// UpdateMoodPhotoParams defines the optional parameters for updating a mood photo.
type UpdateMoodPhotoParams struct {
	URI   *string
	Shape *model.MediaShape
	Type  *model.MediaType
}

// UpdateMoodStoryParams defines the optional parameters for updating a mood story.
type UpdateMoodStoryParams struct {
	Title    *string
	Content  *string
	Summary  *string
	Category *string
}

const (
	moodCategoryCollection = "mood_categories"
	moodPhotoCollection    = "mood_photos"
	moodStoryCollection    = "mood_stories"
	moodOnboardCollection  = "mood_onboards"
	moodReelCollection     = "mood_reels"
)

type moodContentMongoRepository struct {
	db *mongo.Database
}

func NewMoodContentMongoRepository(
	ctx context.Context,
	logger *zerolog.Logger,
	db *mongo.Database,
) MoodContentRepository {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := db.Collection(moodCategoryCollection).Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create mood category indexes")
	}

	return &moodContentMongoRepository{db: db}
}

func insertedObjectID(result *mongo.InsertOneResult) (bson.ObjectID, error) {
	objectID, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.ObjectID{}, errors.New("failed to convert inserted ID to ObjectID")
	}
	return objectID, nil
}

func (r *moodContentMongoRepository) CreateMoodCategory(
	ctx context.Context,
	category *model.MoodCategory,
) (*model.MoodCategory, error) {
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	result, err := r.db.Collection(moodCategoryCollection).InsertOne(ctx, category)
	if err != nil {
		return nil, err
	}

	if category.ID, err = insertedObjectID(result); err != nil {
		return nil, err
	}

	return category, nil
}

func (r *moodContentMongoRepository) GetMoodCategory(ctx context.Context, id string) (*model.MoodCategory, error) {
	var category model.MoodCategory
	if err := r.findByID(ctx, moodCategoryCollection, id, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *moodContentMongoRepository) ListMoodCategories(ctx context.Context) ([]*model.MoodCategory, error) {
	cursor, err := r.db.Collection(moodCategoryCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []*model.MoodCategory{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *moodContentMongoRepository) UpdateMoodCategory(
	ctx context.Context,
	id string,
	params UpdateMoodCategoryParams,
) (*model.MoodCategory, error) {
	updateMap := bson.M{}
	if params.Name != nil {
		updateMap["name"] = *params.Name
	}
	if params.Description != nil {
		updateMap["description"] = *params.Description
	}
	if len(updateMap) == 0 {
		return nil, errors.New("no mood category fields to update")
	}
	updateMap["updated_at"] = time.Now()

	var category model.MoodCategory
	if err := r.updateByID(ctx, moodCategoryCollection, id, updateMap, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *moodContentMongoRepository) DeleteMoodCategory(ctx context.Context, id string) (*model.MoodCategory, error) {
	var category model.MoodCategory
	if err := r.deleteByID(ctx, moodCategoryCollection, id, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *moodContentMongoRepository) CreateMoodPhoto(
	ctx context.Context,
	photo *model.MoodPhoto,
) (*model.MoodPhoto, error) {
	now := time.Now()
	photo.CreatedAt = now
	photo.UpdatedAt = now

	result, err := r.db.Collection(moodPhotoCollection).InsertOne(ctx, photo)
	if err != nil {
		return nil, err
	}

	if photo.ID, err = insertedObjectID(result); err != nil {
		return nil, err
	}

	return photo, nil
}

func (r *moodContentMongoRepository) GetMoodPhoto(ctx context.Context, id string) (*model.MoodPhoto, error) {
	var photo model.MoodPhoto
	if err := r.findByID(ctx, moodPhotoCollection, id, &photo); err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *moodContentMongoRepository) ListMoodPhotos(
	ctx context.Context,
	category *string,
) ([]*model.MoodPhoto, error) {
	filter := bson.M{}
	if category != nil {
		filter["category"] = *category
	}

	cursor, err := r.db.Collection(moodPhotoCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	photos := []*model.MoodPhoto{}
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, err
	}

	return photos, nil
}

func (r *moodContentMongoRepository) UpdateMoodPhoto(
	ctx context.Context,
	id string,
	params UpdateMoodPhotoParams,
) (*model.MoodPhoto, error) {
	updateMap := bson.M{}
	if params.URI != nil {
		updateMap["uri"] = *params.URI
	}
	if params.Shape != nil {
		updateMap["shape"] = *params.Shape
	}
	if params.Type != nil {
		updateMap["type"] = *params.Type
	}
	if len(updateMap) == 0 {
		return nil, errors.New("no mood photo fields to update")
	}
	updateMap["updated_at"] = time.Now()

	var photo model.MoodPhoto
	if err := r.updateByID(ctx, moodPhotoCollection, id, updateMap, &photo); err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *moodContentMongoRepository) DeleteMoodPhoto(ctx context.Context, id string) (*model.MoodPhoto, error) {
	var photo model.MoodPhoto
	if err := r.deleteByID(ctx, moodPhotoCollection, id, &photo); err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *moodContentMongoRepository) CreateMoodStory(
	ctx context.Context,
	story *model.MoodStory,
) (*model.MoodStory, error) {
	now := time.Now()
	story.CreatedAt = now
	story.UpdatedAt = now

	result, err := r.db.Collection(moodStoryCollection).InsertOne(ctx, story)
	if err != nil {
		return nil, err
	}

	if story.ID, err = insertedObjectID(result); err != nil {
		return nil, err
	}

	return story, nil
}

func (r *moodContentMongoRepository) GetMoodStory(ctx context.Context, id string) (*model.MoodStory, error) {
	var story model.MoodStory
	if err := r.findByID(ctx, moodStoryCollection, id, &story); err != nil {
		return nil, err
	}
	return &story, nil
}

func (r *moodContentMongoRepository) ListMoodStories(ctx context.Context) ([]*model.MoodStory, error) {
	cursor, err := r.db.Collection(moodStoryCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stories := []*model.MoodStory{}
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, err
	}

	return stories, nil
}

func (r *moodContentMongoRepository) UpdateMoodStory(
	ctx context.Context,
	id string,
	params UpdateMoodStoryParams,
) (*model.MoodStory, error) {
	updateMap := bson.M{}
	if params.Title != nil {
		updateMap["title"] = *params.Title
	}
	if params.Content != nil {
		updateMap["content"] = *params.Content
	}
	if params.Summary != nil {
		updateMap["summary"] = *params.Summary
	}
	if params.Category != nil {
		updateMap["category"] = *params.Category
	}
	if len(updateMap) == 0 {
		return nil, errors.New("no mood story fields to update")
	}
	updateMap["updated_at"] = time.Now()

	var story model.MoodStory
	if err := r.updateByID(ctx, moodStoryCollection, id, updateMap, &story); err != nil {
		return nil, err
	}
	return &story, nil
}

func (r *moodContentMongoRepository) DeleteMoodStory(ctx context.Context, id string) (*model.MoodStory, error) {
	var story model.MoodStory
	if err := r.deleteByID(ctx, moodStoryCollection, id, &story); err != nil {
		return nil, err
	}
	return &story, nil
}

func (r *moodContentMongoRepository) CreateMoodOnboard(
	ctx context.Context,
	onboard *model.MoodOnboard,
) (*model.MoodOnboard, error) {
	result, err := r.db.Collection(moodOnboardCollection).InsertOne(ctx, onboard)
	if err != nil {
		return nil, err
	}

	if onboard.ID, err = insertedObjectID(result); err != nil {
		return nil, err
	}

	return onboard, nil
}

func (r *moodContentMongoRepository) ListMoodOnboards(ctx context.Context) ([]*model.MoodOnboard, error) {
	cursor, err := r.db.Collection(moodOnboardCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	onboards := []*model.MoodOnboard{}
	if err := cursor.All(ctx, &onboards); err != nil {
		return nil, err
	}

	return onboards, nil
}

func (r *moodContentMongoRepository) ListMoodReels(ctx context.Context) ([]*model.MoodReel, error) {
	cursor, err := r.db.Collection(moodReelCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reels := []*model.MoodReel{}
	if err := cursor.All(ctx, &reels); err != nil {
		return nil, err
	}

	return reels, nil
}

func (r *moodContentMongoRepository) findByID(ctx context.Context, collection, id string, out any) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result := r.db.Collection(collection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return result.Err()
	}

	return result.Decode(out)
}

func (r *moodContentMongoRepository) updateByID(
	ctx context.Context,
	collection, id string,
	updateMap bson.M,
	out any,
) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result := r.db.Collection(collection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return result.Err()
	}

	return result.Decode(out)
}

func (r *moodContentMongoRepository) deleteByID(ctx context.Context, collection, id string, out any) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result := r.db.Collection(collection).FindOneAndDelete(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return result.Err()
	}

	return result.Decode(out)
}
