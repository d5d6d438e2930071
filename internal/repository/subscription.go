package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mavesys/foodcourt-api/internal/model"
)

// SubscriptionRepository defines the interface for subscription-related
// database operations. Templates and user subscriptions share one collection,
// distinguished by the presence of user_id.
type SubscriptionRepository interface {
	CreateSubscription(ctx context.Context, sub *model.Subscription) (*model.Subscription, error)
	GetSubscription(ctx context.Context, id string) (*model.Subscription, error)
	ListSubscriptions(ctx context.Context) ([]*model.Subscription, error)
	ListTemplates(ctx context.Context) ([]*model.Subscription, error)
	ListSubscriptionsByUser(ctx context.Context, userID string) ([]*model.Subscription, error)
}

const subscriptionCollection = "subscriptions"

type subscriptionMongoRepository struct {
	db *mongo.Database
}

func NewSubscriptionMongoRepository(db *mongo.Database) SubscriptionRepository {
	return &subscriptionMongoRepository{db: db}
}

func (r *subscriptionMongoRepository) CreateSubscription(
	ctx context.Context,
	sub *model.Subscription,
) (*model.Subscription, error) {
	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	result, err := r.db.Collection(subscriptionCollection).InsertOne(ctx, sub)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		sub.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return sub, nil
}

func (r *subscriptionMongoRepository) GetSubscription(ctx context.Context, id string) (*model.Subscription, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(subscriptionCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var sub model.Subscription
	if err := result.Decode(&sub); err != nil {
		return nil, err
	}

	return &sub, nil
}

func (r *subscriptionMongoRepository) ListSubscriptions(ctx context.Context) ([]*model.Subscription, error) {
	return r.list(ctx, bson.M{})
}

func (r *subscriptionMongoRepository) ListTemplates(ctx context.Context) ([]*model.Subscription, error) {
	return r.list(ctx, bson.M{"user_id": bson.M{"$exists": false}})
}

func (r *subscriptionMongoRepository) ListSubscriptionsByUser(
	ctx context.Context,
	userID string,
) ([]*model.Subscription, error) {
	objectID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	return r.list(ctx, bson.M{"user_id": objectID})
}

func (r *subscriptionMongoRepository) list(ctx context.Context, filter bson.M) ([]*model.Subscription, error) {
	cursor, err := r.db.Collection(subscriptionCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := []*model.Subscription{}
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}

	return subs, nil
}
