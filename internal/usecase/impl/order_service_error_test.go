package impl

import (
	"context"
	"testing"

	"bookify/internal/domain/entity"
	domainerrors "bookify/internal/domain/errors"
	"bookify/internal/domain/repository"
	mockRepo "bookify/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCartRepo := mockRepo.NewMockCartRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockRedemptionRepo := mockRepo.NewMockRedemptionRepository(t)
		factory.EXPECT().NewCartRepository().Return(mockCartRepo)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewRedemptionRepository().Return(mockRedemptionRepo)

		mockCartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
	})

	order, err := fx.service.Checkout(ctx, userID)

	assert.Nil(t, order)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestOrderService_Checkout_CartNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCartRepo := mockRepo.NewMockCartRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockRedemptionRepo := mockRepo.NewMockRedemptionRepository(t)
		factory.EXPECT().NewCartRepository().Return(mockCartRepo)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewRedemptionRepository().Return(mockRedemptionRepo)

		mockCartRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCartNotFound)
	})

	order, err := fx.service.Checkout(ctx, userID)

	assert.Nil(t, order)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
}

func TestOrderService_Checkout_ReparentFailure(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	orderID := uuid.New()

	item := activeCartItem(cartID, entity.ItemTypeTicket, 1, 80.00)
	cart := &entity.Cart{ID: cartID, UserID: userID, Items: []*entity.CartItem{item}}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockCartRepo := mockRepo.NewMockCartRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockRedemptionRepo := mockRepo.NewMockRedemptionRepository(t)
		factory.EXPECT().NewCartRepository().Return(mockCartRepo)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewRedemptionRepository().Return(mockRedemptionRepo)

		mockCartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)
		mockOrderRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, order *entity.Order) {
				order.ID = orderID
			}).
			Return(nil)
		mockCartRepo.EXPECT().
			ReparentItems(ctx, []uuid.UUID{item.ID}, orderID).
			Return(repository.ErrCartItemNotFound)
	})

	order, err := fx.service.Checkout(ctx, userID)

	assert.Nil(t, order)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to move cart items to order")
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByIDForUser(ctx, orderID, userID).Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetOrder(ctx, userID, orderID)

	assert.Nil(t, order)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders_RepositoryFailure(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.orderRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, errors.New("db error"))

	orders, err := fx.service.ListOrders(ctx, userID)

	assert.Nil(t, orders)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list orders")
}

func TestOrderService_DeleteOrder_Delivered(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusDelivered}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)

		mockOrderRepo.EXPECT().FindByIDForUser(ctx, orderID, userID).Return(order, nil)
	})

	err := fx.service.DeleteOrder(ctx, userID, orderID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderDeleteDelivered)
}

func TestOrderService_DeleteOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)

		mockOrderRepo.EXPECT().FindByIDForUser(ctx, orderID, userID).Return(nil, repository.ErrOrderNotFound)
	})

	err := fx.service.DeleteOrder(ctx, userID, orderID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_TicketPass_NotDelivered(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{
		ID:     orderID,
		UserID: userID,
		Status: entity.OrderStatusUnderReview,
		Items: []*entity.CartItem{
			{ID: uuid.New(), ItemID: uuid.New(), ItemType: entity.ItemTypeTicket, Quantity: 1},
		},
	}

	fx.orderRepo.EXPECT().FindByIDForUser(ctx, orderID, userID).Return(order, nil)

	png, err := fx.service.TicketPass(ctx, userID, orderID, order.Items[0].ID)

	assert.Nil(t, png)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotDelivered)
}

func TestOrderService_TicketPass_NonTicketItem(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	productItem := &entity.CartItem{
		ID:       uuid.New(),
		ItemID:   uuid.New(),
		ItemType: entity.ItemTypeProduct,
		Quantity: 1,
	}
	order := &entity.Order{
		ID:     orderID,
		UserID: userID,
		Status: entity.OrderStatusDelivered,
		Items:  []*entity.CartItem{productItem},
	}

	fx.orderRepo.EXPECT().FindByIDForUser(ctx, orderID, userID).Return(order, nil)

	png, err := fx.service.TicketPass(ctx, userID, orderID, productItem.ID)

	assert.Nil(t, png)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderItemNotFound)
}

func TestOrderService_TicketPass_OrderNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByIDForUser(ctx, orderID, userID).Return(nil, repository.ErrOrderNotFound)

	png, err := fx.service.TicketPass(ctx, userID, orderID, uuid.New())

	assert.Nil(t, png)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
