package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavesys/foodcourt-api/internal/model"
	"github.com/mavesys/foodcourt-api/internal/repository"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*model.Order
	nextID int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*model.Order{}}
}

func (f *fakeOrderRepo) CreateOrder(_ context.Context, order *model.Order) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	order.ID = testObjectID(f.nextID)
	stored := *order
	f.orders[order.ID.Hex()] = &stored
	return order, nil
}

func (f *fakeOrderRepo) GetOrder(_ context.Context, id string) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	order, ok := f.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) ListOrdersByUser(
	_ context.Context,
	params repository.FilterOrdersParams,
) ([]*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := []*model.Order{}
	for _, o := range f.orders {
		if o.UserID.Hex() != params.UserID {
			continue
		}
		if params.Status != nil && o.Status != *params.Status {
			continue
		}
		copied := *o
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeOrderRepo) CountOrdersByUser(
	ctx context.Context,
	params repository.FilterOrdersParams,
) (int64, error) {
	orders, err := f.ListOrdersByUser(ctx, params)
	return int64(len(orders)), err
}

func (f *fakeOrderRepo) UpdateOrder(
	_ context.Context,
	id string,
	params repository.UpdateOrderParams,
) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	order, ok := f.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if params.Status != nil {
		order.Status = *params.Status
	}
	if params.Items != nil {
		order.Items = params.Items
	}
	copied := *order
	return &copied, nil
}

func testOrderItems() []model.OrderItem {
	return []model.OrderItem{
		{FoodID: testObjectID(42), Quantity: 2, Price: 9.5},
	}
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	u := NewOrderUsecase(newFakeOrderRepo())

	_, err := u.CreateOrder(context.Background(), testUserID(1), CreateOrderParams{
		UserID:      testUserID(1),
		TotalAmount: 19,
	})
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestCreateOrder_NotOwner(t *testing.T) {
	u := NewOrderUsecase(newFakeOrderRepo())

	_, err := u.CreateOrder(context.Background(), testUserID(1), CreateOrderParams{
		UserID:      testUserID(2),
		Items:       testOrderItems(),
		TotalAmount: 19,
	})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestCreateOrder_StartsPending(t *testing.T) {
	u := NewOrderUsecase(newFakeOrderRepo())

	order, err := u.CreateOrder(context.Background(), testUserID(1), CreateOrderParams{
		UserID:      testUserID(1),
		Items:       testOrderItems(),
		TotalAmount: 19,
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, testUserID(1), order.UserID.Hex())
}

func TestUpdateOrder_NotOwner(t *testing.T) {
	u := NewOrderUsecase(newFakeOrderRepo())

	order, err := u.CreateOrder(context.Background(), testUserID(1), CreateOrderParams{
		UserID:      testUserID(1),
		Items:       testOrderItems(),
		TotalAmount: 19,
	})
	require.NoError(t, err)

	status := model.OrderStatusCompleted
	_, err = u.UpdateOrder(context.Background(), testUserID(2), order.ID.Hex(), UpdateOrderParams{
		Status: &status,
	})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestUpdateOrder_InvalidStatus(t *testing.T) {
	u := NewOrderUsecase(newFakeOrderRepo())

	status := model.OrderStatus("shipped")
	_, err := u.UpdateOrder(context.Background(), testUserID(1), testObjectID(5).Hex(), UpdateOrderParams{
		Status: &status,
	})
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}

func TestUpdateOrder_NotFound(t *testing.T) {
	u := NewOrderUsecase(newFakeOrderRepo())

	status := model.OrderStatusCompleted
	_, err := u.UpdateOrder(context.Background(), testUserID(1), testObjectID(5).Hex(), UpdateOrderParams{
		Status: &status,
	})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateOrder_OwnerChangesStatus(t *testing.T) {
	u := NewOrderUsecase(newFakeOrderRepo())

	order, err := u.CreateOrder(context.Background(), testUserID(1), CreateOrderParams{
		UserID:      testUserID(1),
		Items:       testOrderItems(),
		TotalAmount: 19,
	})
	require.NoError(t, err)

	status := model.OrderStatusCanceled
	updated, err := u.UpdateOrder(context.Background(), testUserID(1), order.ID.Hex(), UpdateOrderParams{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCanceled, updated.Status)
}

func TestListUserOrders_FiltersByStatus(t *testing.T) {
	repo := newFakeOrderRepo()
	u := NewOrderUsecase(repo)
	userID := testUserID(1)

	for i := 0; i < 3; i++ {
		_, err := u.CreateOrder(context.Background(), userID, CreateOrderParams{
			UserID:      userID,
			Items:       testOrderItems(),
			TotalAmount: 19,
		})
		require.NoError(t, err)
	}

	completed := model.OrderStatusCompleted
	orders, total, err := u.ListUserOrders(context.Background(), repository.FilterOrdersParams{
		UserID: userID,
		Status: &completed,
	})
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Zero(t, total)

	pending := model.OrderStatusPending
	orders, total, err = u.ListUserOrders(context.Background(), repository.FilterOrdersParams{
		UserID: userID,
		Status: &pending,
	})
	require.NoError(t, err)
	assert.Len(t, orders, 3)
	assert.Equal(t, int64(3), total)
}
