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

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error)
	GetAddress(ctx context.Context, id string) (*model.Address, error)
	ListAddresses(ctx context.Context) ([]*model.Address, error)
	ListAddressesByUser(ctx context.Context, userID string) ([]*model.Address, error)
	UpdateAddress(ctx context.Context, id string, params UpdateAddressParams) (*model.Address, error)
	DeleteAddress(ctx context.Context, id string) (*model.Address, error)

	// DemoteOtherPrimaries clears the primary flag on every address of the
	// user except the one identified by exceptID, in a single UpdateMany.
	DemoteOtherPrimaries(ctx context.Context, userID, exceptID string) error
}

// UpdateAddressParams defines the optional parameters for updating an address.
// Only the fields that are not nil will be updated.
type UpdateAddressParams struct {
	Street    *string
	City      *string
	State     *string
	ZipCode   *string
	Country   *string
	IsPrimary *bool
}

const addressCollection = "addresses"

type addressMongoRepository struct {
	db *mongo.Database
}

func NewAddressMongoRepository(db *mongo.Database) AddressRepository {
	return &addressMongoRepository{db: db}
}

func (r *addressMongoRepository) CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error) {
	now := time.Now()
	address.CreatedAt = now
	address.UpdatedAt = now

	result, err := r.db.Collection(addressCollection).InsertOne(ctx, address)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		address.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return address, nil
}

func (r *addressMongoRepository) GetAddress(ctx context.Context, id string) (*model.Address, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(addressCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var address model.Address
	if err := result.Decode(&address); err != nil {
		return nil, err
	}

	return &address, nil
}

func (r *addressMongoRepository) ListAddresses(ctx context.Context) ([]*model.Address, error) {
	cursor, err := r.db.Collection(addressCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	addresses := []*model.Address{}
	if err := cursor.All(ctx, &addresses); err != nil {
		return nil, err
	}

	return addresses, nil
}

func (r *addressMongoRepository) ListAddressesByUser(ctx context.Context, userID string) ([]*model.Address, error) {
	objectID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	cursor, err := r.db.Collection(addressCollection).Find(ctx, bson.M{"user_id": objectID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	addresses := []*model.Address{}
	if err := cursor.All(ctx, &addresses); err != nil {
		return nil, err
	}

	return addresses, nil
}

func (r *addressMongoRepository) UpdateAddress(
	ctx context.Context,
	id string,
	params UpdateAddressParams,
) (*model.Address, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	updateMap := bson.M{}
	if params.Street != nil {
		updateMap["street"] = *params.Street
	}
	if params.City != nil {
		updateMap["city"] = *params.City
	}
	if params.State != nil {
		updateMap["state"] = *params.State
	}
	if params.ZipCode != nil {
		updateMap["zip_code"] = *params.ZipCode
	}
	if params.Country != nil {
		updateMap["country"] = *params.Country
	}
	if params.IsPrimary != nil {
		updateMap["is_primary"] = *params.IsPrimary
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no address fields to update")
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(addressCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var address model.Address
	if err := result.Decode(&address); err != nil {
		return nil, err
	}

	return &address, nil
}

func (r *addressMongoRepository) DeleteAddress(ctx context.Context, id string) (*model.Address, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(addressCollection).FindOneAndDelete(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var address model.Address
	if err := result.Decode(&address); err != nil {
		return nil, err
	}

	return &address, nil
}

func (r *addressMongoRepository) DemoteOtherPrimaries(ctx context.Context, userID, exceptID string) error {
	userObjectID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}

	filter := bson.M{
		"user_id":    userObjectID,
		"is_primary": true,
	}
	if exceptID != "" {
		exceptObjectID, err := bson.ObjectIDFromHex(exceptID)
		if err != nil {
			return err
		}
		filter["_id"] = bson.M{"$ne": exceptObjectID}
	}

	_, err = r.db.Collection(addressCollection).UpdateMany(ctx, filter, bson.M{
		"$set": bson.M{
			"is_primary": false,
			"updated_at": time.Now(),
		},
	})
	return err
}
