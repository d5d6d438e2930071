package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/mavesys/foodcourt-api/internal/model"
)

// MoodActivityRepository defines the database operations for mood app
// activity: lightweight user registrations, app-open counters and the
// service status switch.
type MoodActivityRepository interface {
	// GetMoodUserByEmail performs a case-insensitive email lookup.
	GetMoodUserByEmail(ctx context.Context, email string) (*model.MoodUser, error)
	CreateMoodUser(ctx context.Context, user *model.MoodUser) (*model.MoodUser, error)
	// IncrementRegistration bumps the registration counter atomically and
	// returns the updated record.
	IncrementRegistration(ctx context.Context, id string) (*model.MoodUser, error)

	// RecordAppOpen upserts the per-device document, incrementing the total
	// and the per-user-agent counter in one atomic update.
	RecordAppOpen(ctx context.Context, deviceInfo, userAgent string) (*model.AppOpen, error)

	GetServiceStatus(ctx context.Context) (*model.ServiceStatus, error)
	// SetServiceStatus upserts the single status document.
	SetServiceStatus(ctx context.Context, number int) (*model.ServiceStatus, error)
	// UpdateServiceStatus updates the existing status document and fails with
	// mongo.ErrNoDocuments when none exists.
	UpdateServiceStatus(ctx context.Context, number int) (*model.ServiceStatus, error)
}

const (
	moodUserCollection      = "mood_users"
	appOpenCollection       = "app_opens"
	serviceStatusCollection = "service_status"
)

type moodActivityMongoRepository struct {
	db *mongo.Database
}

func NewMoodActivityMongoRepository(
	ctx context.Context,
	logger *zerolog.Logger,
	db *mongo.Database,
) MoodActivityRepository {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := db.Collection(moodUserCollection).Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create mood user indexes")
	}

	return &moodActivityMongoRepository{db: db}
}

func (r *moodActivityMongoRepository) GetMoodUserByEmail(ctx context.Context, email string) (*model.MoodUser, error) {
	pattern := fmt.Sprintf("^%s$", regexp.QuoteMeta(email))
	result := r.db.Collection(moodUserCollection).FindOne(ctx, bson.M{
		"email": bson.M{"$regex": pattern, "$options": "i"},
	})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user model.MoodUser
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *moodActivityMongoRepository) CreateMoodUser(ctx context.Context, user *model.MoodUser) (*model.MoodUser, error) {
	result, err := r.db.Collection(moodUserCollection).InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	objectID, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}
	user.ID = objectID

	return user, nil
}

func (r *moodActivityMongoRepository) IncrementRegistration(ctx context.Context, id string) (*model.MoodUser, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(moodUserCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$inc": bson.M{"registration_count": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user model.MoodUser
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *moodActivityMongoRepository) RecordAppOpen(
	ctx context.Context,
	deviceInfo, userAgent string,
) (*model.AppOpen, error) {
	// Dots in user agents would be parsed as nested field paths; key the
	// visit map by a sanitized form.
	visitKey := "device_visits." + SanitizeVisitKey(userAgent)

	result := r.db.Collection(appOpenCollection).FindOneAndUpdate(
		ctx,
		bson.M{"device_info": deviceInfo},
		bson.M{"$inc": bson.M{
			"total_opens": 1,
			visitKey:      1,
		}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var appOpen model.AppOpen
	if err := result.Decode(&appOpen); err != nil {
		return nil, err
	}

	return &appOpen, nil
}

var mapKeySanitizer = regexp.MustCompile(`[.$]`)

// SanitizeVisitKey maps a raw user agent to the key used in the per-device
// visit map.
func SanitizeVisitKey(userAgent string) string {
	return mapKeySanitizer.ReplaceAllString(userAgent, "_")
}

func (r *moodActivityMongoRepository) GetServiceStatus(ctx context.Context) (*model.ServiceStatus, error) {
	result := r.db.Collection(serviceStatusCollection).FindOne(ctx, bson.M{})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var status model.ServiceStatus
	if err := result.Decode(&status); err != nil {
		return nil, err
	}

	return &status, nil
}

func (r *moodActivityMongoRepository) SetServiceStatus(ctx context.Context, number int) (*model.ServiceStatus, error) {
	return r.updateServiceStatus(ctx, number, true)
}

func (r *moodActivityMongoRepository) UpdateServiceStatus(ctx context.Context, number int) (*model.ServiceStatus, error) {
	return r.updateServiceStatus(ctx, number, false)
}

func (r *moodActivityMongoRepository) updateServiceStatus(
	ctx context.Context,
	number int,
	upsert bool,
) (*model.ServiceStatus, error) {
	result := r.db.Collection(serviceStatusCollection).FindOneAndUpdate(
		ctx,
		bson.M{},
		bson.M{"$set": bson.M{"number": number}},
		options.FindOneAndUpdate().
			SetUpsert(upsert).
			SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var status model.ServiceStatus
	if err := result.Decode(&status); err != nil {
		return nil, err
	}

	return &status, nil
}
