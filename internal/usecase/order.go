package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mavesys/foodcourt-api/internal/model"
	"github.com/mavesys/foodcourt-api/internal/repository"
)

// OrderUsecase defines the interface for order use cases. Every mutation is
// gated on the authenticated subject owning the order.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, subjectID string, params CreateOrderParams) (*model.Order, error)
	ListUserOrders(ctx context.Context, params repository.FilterOrdersParams) ([]*model.Order, int64, error)
	UpdateOrder(ctx context.Context, subjectID, orderID string, params UpdateOrderParams) (*model.Order, error)
}

// CreateOrderParams defines the parameters for placing an order. Item prices
// are recorded as submitted; they are a snapshot, not a live food reference.
type CreateOrderParams struct {
	UserID      string
	Items       []model.OrderItem
	TotalAmount float64
}

// UpdateOrderParams defines the optional parameters for updating an order.
type UpdateOrderParams struct {
	Status *model.OrderStatus
	Items  []model.OrderItem
}

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyOrder         = errors.New("order must have at least one item")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

type orderUsecase struct {
	orderRepo repository.OrderRepository
}

func NewOrderUsecase(orderRepo repository.OrderRepository) OrderUsecase {
	return &orderUsecase{orderRepo: orderRepo}
}

func (u *orderUsecase) CreateOrder(
	ctx context.Context,
	subjectID string,
	params CreateOrderParams,
) (*model.Order, error) {
	if len(params.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	if params.UserID != subjectID {
		return nil, ErrNotOwner
	}

	userObjectID, err := bson.ObjectIDFromHex(params.UserID)
	if err != nil {
		return nil, err
	}

	return u.orderRepo.CreateOrder(ctx, &model.Order{
		UserID:      userObjectID,
		Items:       params.Items,
		TotalAmount: params.TotalAmount,
		Status:      model.OrderStatusPending,
	})
}

func (u *orderUsecase) ListUserOrders(
	ctx context.Context,
	params repository.FilterOrdersParams,
) ([]*model.Order, int64, error) {
	orders, err := u.orderRepo.ListOrdersByUser(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	total, err := u.orderRepo.CountOrdersByUser(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (u *orderUsecase) UpdateOrder(
	ctx context.Context,
	subjectID, orderID string,
	params UpdateOrderParams,
) (*model.Order, error) {
	if params.Status != nil && !params.Status.Valid() {
		return nil, ErrInvalidOrderStatus
	}

	order, err := u.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if order.UserID.Hex() != subjectID {
		return nil, ErrNotOwner
	}

	updated, err := u.orderRepo.UpdateOrder(ctx, orderID, repository.UpdateOrderParams{
		Status: params.Status,
		Items:  params.Items,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	return updated, nil
}
