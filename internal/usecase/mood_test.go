package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mavesys/foodcourt-api/internal/model"
	"github.com/mavesys/foodcourt-api/internal/repository"
)

type fakeMoodActivityRepo struct {
	mu      sync.Mutex
	users   map[string]*model.MoodUser
	opens   map[string]*model.AppOpen
	status  *model.ServiceStatus
	nextID  int
	lastKey string
}

func newFakeMoodActivityRepo() *fakeMoodActivityRepo {
	return &fakeMoodActivityRepo{
		users: map[string]*model.MoodUser{},
		opens: map[string]*model.AppOpen{},
	}
}

func (f *fakeMoodActivityRepo) GetMoodUserByEmail(_ context.Context, email string) (*model.MoodUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeMoodActivityRepo) CreateMoodUser(_ context.Context, user *model.MoodUser) (*model.MoodUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	user.ID = testObjectID(f.nextID)
	stored := *user
	f.users[user.ID.Hex()] = &stored
	return user, nil
}

func (f *fakeMoodActivityRepo) IncrementRegistration(_ context.Context, id string) (*model.MoodUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	user.RegistrationCount++
	copied := *user
	return &copied, nil
}

func (f *fakeMoodActivityRepo) RecordAppOpen(
	_ context.Context,
	deviceInfo, userAgent string,
) (*model.AppOpen, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	open, ok := f.opens[deviceInfo]
	if !ok {
		f.nextID++
		open = &model.AppOpen{
			ID:           testObjectID(f.nextID),
			DeviceInfo:   deviceInfo,
			DeviceVisits: map[string]int{},
		}
		f.opens[deviceInfo] = open
	}

	f.lastKey = repository.SanitizeVisitKey(userAgent)
	open.TotalOpens++
	open.DeviceVisits[f.lastKey]++

	copied := *open
	return &copied, nil
}

func (f *fakeMoodActivityRepo) GetServiceStatus(_ context.Context) (*model.ServiceStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status == nil {
		return nil, mongo.ErrNoDocuments
	}
	copied := *f.status
	return &copied, nil
}

func (f *fakeMoodActivityRepo) SetServiceStatus(_ context.Context, number int) (*model.ServiceStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status == nil {
		f.nextID++
		f.status = &model.ServiceStatus{ID: testObjectID(f.nextID)}
	}
	f.status.Number = number
	copied := *f.status
	return &copied, nil
}

func (f *fakeMoodActivityRepo) UpdateServiceStatus(_ context.Context, number int) (*model.ServiceStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status == nil {
		return nil, mongo.ErrNoDocuments
	}
	f.status.Number = number
	copied := *f.status
	return &copied, nil
}

func TestRegisterMoodUser_FirstRegistration(t *testing.T) {
	u := NewMoodActivityUsecase(newFakeMoodActivityRepo())

	user, created, err := u.RegisterMoodUser(context.Background(), "John", "john@example.com")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, user.RegistrationCount)
}

func TestRegisterMoodUser_RepeatIncrementsCounter(t *testing.T) {
	u := NewMoodActivityUsecase(newFakeMoodActivityRepo())

	_, _, err := u.RegisterMoodUser(context.Background(), "John", "john@example.com")
	require.NoError(t, err)

	user, created, err := u.RegisterMoodUser(context.Background(), "John", "john@example.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 2, user.RegistrationCount)
}

func TestRecordAppOpen_CountsPerDeviceAndAgent(t *testing.T) {
	repo := newFakeMoodActivityRepo()
	u := NewMoodActivityUsecase(repo)

	agent := "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	open, err := u.RecordAppOpen(context.Background(), agent)
	require.NoError(t, err)
	assert.Equal(t, "Windows PC", open.DeviceInfo)
	assert.Equal(t, 1, open.TotalOpens)

	open, err = u.RecordAppOpen(context.Background(), agent)
	require.NoError(t, err)
	assert.Equal(t, 2, open.TotalOpens)
	assert.Equal(t, 2, open.DeviceVisits[repository.SanitizeVisitKey(agent)])
}

func TestDeviceInfoFromUserAgent(t *testing.T) {
	tests := []struct {
		userAgent string
		want      string
	}{
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0) Mobile/15E148", "Mobile Device"},
		{"Mozilla/5.0 (Linux; Android 14; Tablet)", "Tablet Device"},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64)", "Windows PC"},
		{"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)", "Mac Computer"},
		{"curl/8.4.0", "Unknown Device"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DeviceInfoFromUserAgent(tt.userAgent), tt.userAgent)
	}
}

func TestSanitizeVisitKey(t *testing.T) {
	assert.Equal(t, "curl/8_4_0", repository.SanitizeVisitKey("curl/8.4.0"))
	assert.Equal(t, "a_b_c", repository.SanitizeVisitKey("a.b$c"))
}
