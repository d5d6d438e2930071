package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mavesys/foodcourt-api/internal/model"
	"github.com/mavesys/foodcourt-api/internal/repository"
)

// SubscriptionUsecase defines the interface for subscription use cases.
// Templates are catalog entries without a user; Subscribe clones a template's
// plan fields into a new user subscription, which then lives independently.
type SubscriptionUsecase interface {
	CreateTemplate(ctx context.Context, params CreateTemplateParams) (*model.Subscription, error)
	ListSubscriptions(ctx context.Context) ([]*model.Subscription, error)
	ListTemplates(ctx context.Context) ([]*model.Subscription, error)
	Subscribe(ctx context.Context, userID, subscriptionID string) (*model.Subscription, error)
	ListUserSubscriptions(ctx context.Context, userID string) ([]*model.Subscription, error)
}

// CreateTemplateParams defines the parameters for creating a template.
type CreateTemplateParams struct {
	Plan         model.SubscriptionPlan
	MealType     model.MealType
	Price        float64
	MealCount    int
	FreeDelivery bool
}

var ErrSubscriptionNotFound = errors.New("subscription not found")

type subscriptionUsecase struct {
	subscriptionRepo repository.SubscriptionRepository
}

func NewSubscriptionUsecase(subscriptionRepo repository.SubscriptionRepository) SubscriptionUsecase {
	return &subscriptionUsecase{subscriptionRepo: subscriptionRepo}
}

func (u *subscriptionUsecase) CreateTemplate(
	ctx context.Context,
	params CreateTemplateParams,
) (*model.Subscription, error) {
	return u.subscriptionRepo.CreateSubscription(ctx, &model.Subscription{
		Plan:         params.Plan,
		MealType:     params.MealType,
		Price:        params.Price,
		MealCount:    params.MealCount,
		FreeDelivery: params.FreeDelivery,
	})
}

func (u *subscriptionUsecase) ListSubscriptions(ctx context.Context) ([]*model.Subscription, error) {
	return u.subscriptionRepo.ListSubscriptions(ctx)
}

func (u *subscriptionUsecase) ListTemplates(ctx context.Context) ([]*model.Subscription, error) {
	return u.subscriptionRepo.ListTemplates(ctx)
}

func (u *subscriptionUsecase) Subscribe(
	ctx context.Context,
	userID, subscriptionID string,
) (*model.Subscription, error) {
	template, err := u.subscriptionRepo.GetSubscription(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}

	userObjectID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	// Copy the plan fields at subscribe time. The user subscription does not
	// track later edits to the template it came from.
	return u.subscriptionRepo.CreateSubscription(ctx, &model.Subscription{
		UserID:       &userObjectID,
		Plan:         template.Plan,
		MealType:     template.MealType,
		Price:        template.Price,
		MealCount:    template.MealCount,
		FreeDelivery: template.FreeDelivery,
	})
}

func (u *subscriptionUsecase) ListUserSubscriptions(
	ctx context.Context,
	userID string,
) ([]*model.Subscription, error) {
	return u.subscriptionRepo.ListSubscriptionsByUser(ctx, userID)
}
