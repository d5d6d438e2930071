package usecase

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mavesys/foodcourt-api/internal/model"
	"github.com/mavesys/foodcourt-api/internal/repository"
)

// MoodActivityUsecase covers the mood app flows with logic beyond plain CRUD:
// repeat registrations and per-device open counting.
type MoodActivityUsecase interface {
	// RegisterMoodUser creates the user on first registration and increments
	// the registration counter on every repeat. The returned flag reports
	// whether the user was newly created.
	RegisterMoodUser(ctx context.Context, name, email string) (*model.MoodUser, bool, error)

	RecordAppOpen(ctx context.Context, userAgent string) (*model.AppOpen, error)
}

type moodActivityUsecase struct {
	activityRepo repository.MoodActivityRepository
}

func NewMoodActivityUsecase(activityRepo repository.MoodActivityRepository) MoodActivityUsecase {
	return &moodActivityUsecase{activityRepo: activityRepo}
}

func (u *moodActivityUsecase) RegisterMoodUser(
	ctx context.Context,
	name, email string,
) (*model.MoodUser, bool, error) {
	existing, err := u.activityRepo.GetMoodUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, err
	}

	if existing != nil {
		user, err := u.activityRepo.IncrementRegistration(ctx, existing.ID.Hex())
		if err != nil {
			return nil, false, err
		}
		return user, false, nil
	}

	user, err := u.activityRepo.CreateMoodUser(ctx, &model.MoodUser{
		Name:              name,
		Email:             email,
		RegistrationCount: 1,
	})
	if err != nil {
		return nil, false, err
	}

	return user, true, nil
}

func (u *moodActivityUsecase) RecordAppOpen(ctx context.Context, userAgent string) (*model.AppOpen, error) {
	return u.activityRepo.RecordAppOpen(ctx, DeviceInfoFromUserAgent(userAgent), userAgent)
}

// DeviceInfoFromUserAgent maps a raw user agent to a coarse device class.
func DeviceInfoFromUserAgent(userAgent string) string {
	switch {
	case strings.Contains(userAgent, "Mobile"):
		return "Mobile Device"
	case strings.Contains(userAgent, "Tablet"):
		return "Tablet Device"
	case strings.Contains(userAgent, "Windows"):
		return "Windows PC"
	case strings.Contains(userAgent, "Macintosh"):
		return "Mac Computer"
	}
	return "Unknown Device"
}
