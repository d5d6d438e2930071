package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mavesys/foodcourt-api/internal/model"
	"github.com/mavesys/foodcourt-api/internal/repository"
)

// fakeAddressRepo is an in-memory AddressRepository with the same demote
// semantics as the mongo implementation.
type fakeAddressRepo struct {
	mu        sync.Mutex
	addresses map[string]*model.Address
	nextID    int
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{addresses: map[string]*model.Address{}}
}

func (f *fakeAddressRepo) CreateAddress(_ context.Context, address *model.Address) (*model.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	address.ID = testObjectID(f.nextID)
	stored := *address
	f.addresses[address.ID.Hex()] = &stored
	return address, nil
}

func (f *fakeAddressRepo) GetAddress(_ context.Context, id string) (*model.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	address, ok := f.addresses[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *address
	return &copied, nil
}

func (f *fakeAddressRepo) ListAddresses(_ context.Context) ([]*model.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*model.Address, 0, len(f.addresses))
	for _, a := range f.addresses {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeAddressRepo) ListAddressesByUser(_ context.Context, userID string) ([]*model.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := []*model.Address{}
	for _, a := range f.addresses {
		if a.UserID.Hex() == userID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeAddressRepo) UpdateAddress(
	_ context.Context,
	id string,
	params repository.UpdateAddressParams,
) (*model.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	address, ok := f.addresses[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	if params.Street != nil {
		address.Street = *params.Street
	}
	if params.City != nil {
		address.City = *params.City
	}
	if params.State != nil {
		address.State = *params.State
	}
	if params.ZipCode != nil {
		address.ZipCode = *params.ZipCode
	}
	if params.Country != nil {
		address.Country = *params.Country
	}
	if params.IsPrimary != nil {
		address.IsPrimary = *params.IsPrimary
	}

	copied := *address
	return &copied, nil
}

func (f *fakeAddressRepo) DeleteAddress(_ context.Context, id string) (*model.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	address, ok := f.addresses[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(f.addresses, id)
	return address, nil
}

func (f *fakeAddressRepo) DemoteOtherPrimaries(_ context.Context, userID, exceptID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, a := range f.addresses {
		if a.UserID.Hex() == userID && a.ID.Hex() != exceptID {
			a.IsPrimary = false
		}
	}
	return nil
}

func (f *fakeAddressRepo) primaryCount(userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, a := range f.addresses {
		if a.UserID.Hex() == userID && a.IsPrimary {
			count++
		}
	}
	return count
}

// testObjectID builds a deterministic ObjectID from a counter.
func testObjectID(n int) bson.ObjectID {
	var id bson.ObjectID
	copy(id[:], fmt.Sprintf("%012d", n))
	return id
}

func testUserID(n int) string {
	return testObjectID(n).Hex()
}

func TestCreateAddress_RejectsOtherUsers(t *testing.T) {
	u := NewAddressUsecase(newFakeAddressRepo())

	_, err := u.CreateAddress(context.Background(), testUserID(1), CreateAddressParams{
		UserID: testUserID(2),
		Street: "1 Main St",
	})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestCreateAddress_FirstPrimary(t *testing.T) {
	repo := newFakeAddressRepo()
	u := NewAddressUsecase(repo)
	userID := testUserID(1)

	address, err := u.CreateAddress(context.Background(), userID, CreateAddressParams{
		UserID:    userID,
		Street:    "1 Main St",
		IsPrimary: true,
	})
	require.NoError(t, err)
	assert.True(t, address.IsPrimary)
	assert.Equal(t, 1, repo.primaryCount(userID))
}

func TestCreateAddress_NewPrimaryDemotesOld(t *testing.T) {
	repo := newFakeAddressRepo()
	u := NewAddressUsecase(repo)
	userID := testUserID(1)

	first, err := u.CreateAddress(context.Background(), userID, CreateAddressParams{
		UserID:    userID,
		Street:    "1 Main St",
		IsPrimary: true,
	})
	require.NoError(t, err)

	_, err = u.CreateAddress(context.Background(), userID, CreateAddressParams{
		UserID:    userID,
		Street:    "2 Oak Ave",
		IsPrimary: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.primaryCount(userID))

	reloaded, err := u.GetAddress(context.Background(), first.ID.Hex())
	require.NoError(t, err)
	assert.False(t, reloaded.IsPrimary)
}

func TestUpdateAddress_PromoteDemotesOld(t *testing.T) {
	repo := newFakeAddressRepo()
	u := NewAddressUsecase(repo)
	userID := testUserID(1)

	_, err := u.CreateAddress(context.Background(), userID, CreateAddressParams{
		UserID:    userID,
		Street:    "1 Main St",
		IsPrimary: true,
	})
	require.NoError(t, err)

	second, err := u.CreateAddress(context.Background(), userID, CreateAddressParams{
		UserID: userID,
		Street: "2 Oak Ave",
	})
	require.NoError(t, err)

	isPrimary := true
	updated, err := u.UpdateAddress(context.Background(), userID, second.ID.Hex(), UpdateAddressParams{
		IsPrimary: &isPrimary,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsPrimary)
	assert.Equal(t, 1, repo.primaryCount(userID))
}

func TestUpdateAddress_ConcurrentPromotionsKeepOnePrimary(t *testing.T) {
	repo := newFakeAddressRepo()
	u := NewAddressUsecase(repo)
	userID := testUserID(1)

	const addressCount = 8
	ids := make([]string, 0, addressCount)
	for i := 0; i < addressCount; i++ {
		address, err := u.CreateAddress(context.Background(), userID, CreateAddressParams{
			UserID: userID,
			Street: fmt.Sprintf("%d Main St", i+1),
		})
		require.NoError(t, err)
		ids = append(ids, address.ID.Hex())
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			isPrimary := true
			_, err := u.UpdateAddress(context.Background(), userID, id, UpdateAddressParams{
				IsPrimary: &isPrimary,
			})
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 1, repo.primaryCount(userID))
}

func TestUpdateAddress_NotOwner(t *testing.T) {
	repo := newFakeAddressRepo()
	u := NewAddressUsecase(repo)
	owner := testUserID(1)

	address, err := u.CreateAddress(context.Background(), owner, CreateAddressParams{
		UserID: owner,
		Street: "1 Main St",
	})
	require.NoError(t, err)

	street := "2 Oak Ave"
	_, err = u.UpdateAddress(context.Background(), testUserID(2), address.ID.Hex(), UpdateAddressParams{
		Street: &street,
	})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestDeleteAddress_NotOwner(t *testing.T) {
	repo := newFakeAddressRepo()
	u := NewAddressUsecase(repo)
	owner := testUserID(1)

	address, err := u.CreateAddress(context.Background(), owner, CreateAddressParams{
		UserID: owner,
		Street: "1 Main St",
	})
	require.NoError(t, err)

	err = u.DeleteAddress(context.Background(), testUserID(2), address.ID.Hex())
	assert.ErrorIs(t, err, ErrNotOwner)

	err = u.DeleteAddress(context.Background(), owner, address.ID.Hex())
	assert.NoError(t, err)
}

func TestGetAddress_NotFound(t *testing.T) {
	u := NewAddressUsecase(newFakeAddressRepo())

	_, err := u.GetAddress(context.Background(), testObjectID(99).Hex())
	assert.ErrorIs(t, err, ErrAddressNotFound)
}
