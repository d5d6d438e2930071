package usecase

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mavesys/foodcourt-api/internal/model"
	"github.com/mavesys/foodcourt-api/internal/repository"
)

// AddressUsecase defines the interface for address use cases. It owns two
// guarantees: only the owning user may mutate an address, and at most one
// address per user is primary at any observable point.
type AddressUsecase interface {
	CreateAddress(ctx context.Context, subjectID string, params CreateAddressParams) (*model.Address, error)
	GetAddress(ctx context.Context, id string) (*model.Address, error)
	ListAddresses(ctx context.Context) ([]*model.Address, error)
	ListAddressesByUser(ctx context.Context, userID string) ([]*model.Address, error)
	UpdateAddress(ctx context.Context, subjectID, id string, params UpdateAddressParams) (*model.Address, error)
	DeleteAddress(ctx context.Context, subjectID, id string) error
}

// CreateAddressParams defines the parameters for creating an address.
type CreateAddressParams struct {
	UserID    string
	Street    string
	City      string
	State     string
	ZipCode   string
	Country   string
	IsPrimary bool
}

// UpdateAddressParams defines the optional parameters for updating an address.
type UpdateAddressParams struct {
	Street    *string
	City      *string
	State     *string
	ZipCode   *string
	Country   *string
	IsPrimary *bool
}

var (
	ErrAddressNotFound = errors.New("address not found")
	ErrNotOwner        = errors.New("not the owner of this resource")
)

type addressUsecase struct {
	addressRepo repository.AddressRepository

	// userLocks serializes primary-flag changes per user. The demote write
	// and the promote write are separate operations against the store, so
	// without this two concurrent promotions for the same user could leave
	// zero or two primaries.
	userLocks sync.Map
}

func NewAddressUsecase(addressRepo repository.AddressRepository) AddressUsecase {
	return &addressUsecase{addressRepo: addressRepo}
}

func (u *addressUsecase) lockUser(userID string) *sync.Mutex {
	lock, _ := u.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func (u *addressUsecase) CreateAddress(
	ctx context.Context,
	subjectID string,
	params CreateAddressParams,
) (*model.Address, error) {
	if params.UserID != subjectID {
		return nil, ErrNotOwner
	}

	userObjectID, err := bson.ObjectIDFromHex(params.UserID)
	if err != nil {
		return nil, err
	}

	address := &model.Address{
		UserID:    userObjectID,
		Street:    params.Street,
		City:      params.City,
		State:     params.State,
		ZipCode:   params.ZipCode,
		Country:   params.Country,
		IsPrimary: params.IsPrimary,
	}

	if !params.IsPrimary {
		return u.addressRepo.CreateAddress(ctx, address)
	}

	lock := u.lockUser(params.UserID)
	lock.Lock()
	defer lock.Unlock()

	if err := u.addressRepo.DemoteOtherPrimaries(ctx, params.UserID, ""); err != nil {
		return nil, err
	}

	return u.addressRepo.CreateAddress(ctx, address)
}

func (u *addressUsecase) GetAddress(ctx context.Context, id string) (*model.Address, error) {
	address, err := u.addressRepo.GetAddress(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}

	return address, nil
}

func (u *addressUsecase) ListAddresses(ctx context.Context) ([]*model.Address, error) {
	return u.addressRepo.ListAddresses(ctx)
}

func (u *addressUsecase) ListAddressesByUser(ctx context.Context, userID string) ([]*model.Address, error) {
	return u.addressRepo.ListAddressesByUser(ctx, userID)
}

func (u *addressUsecase) UpdateAddress(
	ctx context.Context,
	subjectID, id string,
	params UpdateAddressParams,
) (*model.Address, error) {
	address, err := u.GetAddress(ctx, id)
	if err != nil {
		return nil, err
	}

	if address.UserID.Hex() != subjectID {
		return nil, ErrNotOwner
	}

	repoParams := repository.UpdateAddressParams{
		Street:    params.Street,
		City:      params.City,
		State:     params.State,
		ZipCode:   params.ZipCode,
		Country:   params.Country,
		IsPrimary: params.IsPrimary,
	}

	if params.IsPrimary == nil || !*params.IsPrimary {
		return u.updateExisting(ctx, id, repoParams)
	}

	userID := address.UserID.Hex()
	lock := u.lockUser(userID)
	lock.Lock()
	defer lock.Unlock()

	if err := u.addressRepo.DemoteOtherPrimaries(ctx, userID, id); err != nil {
		return nil, err
	}

	return u.updateExisting(ctx, id, repoParams)
}

func (u *addressUsecase) updateExisting(
	ctx context.Context,
	id string,
	params repository.UpdateAddressParams,
) (*model.Address, error) {
	address, err := u.addressRepo.UpdateAddress(ctx, id, params)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}

	return address, nil
}

func (u *addressUsecase) DeleteAddress(ctx context.Context, subjectID, id string) error {
	address, err := u.GetAddress(ctx, id)
	if err != nil {
		return err
	}

	if address.UserID.Hex() != subjectID {
		return ErrNotOwner
	}

	if _, err := u.addressRepo.DeleteAddress(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrAddressNotFound
		}
		return err
	}

	return nil
}
