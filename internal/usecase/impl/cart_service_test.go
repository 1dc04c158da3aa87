package impl

import (
	"context"
	"testing"

	"bookify/internal/domain/entity"
	domainerrors "bookify/internal/domain/errors"
	"bookify/internal/domain/repository"
	mockRepo "bookify/internal/mocks/repository"
	"bookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	ticketRepo  *mockRepo.MockTicketRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	ticketRepo := mockRepo.NewMockTicketRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		TicketRepo:  ticketRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:     service,
		cartRepo:    cartRepo,
		ticketRepo:  ticketRepo,
		productRepo: productRepo,
	}
}

func TestCartService_GetCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectedCart := &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
	}

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(expectedCart, nil)

	cart, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expectedCart, cart)
}

func TestCartService_GetCart_NotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCartNotFound)

	cart, err := fx.service.GetCart(ctx, userID)

	assert.Nil(t, cart)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
}

func TestCartService_AddItem_Ticket_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	ticketID := uuid.New()
	cartID := uuid.New()
	itemID := uuid.New()

	ticket := &entity.Ticket{
		ID:                ticketID,
		EventName:         "Summer Fest",
		Name:              "Early Bird",
		Price:             decimal.NewFromFloat(120.50),
		QuantityAvailable: 50,
	}

	fx.ticketRepo.EXPECT().FindByID(ctx, ticketID).Return(ticket, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	fx.cartRepo.EXPECT().
		AddItem(ctx, mock.AnythingOfType("*entity.CartItem")).
		Run(func(ctx context.Context, item *entity.CartItem) {
			item.ID = itemID
		}).
		Return(nil)

	item, err := fx.service.AddItem(ctx, &usecase.AddCartItemInput{
		UserID:   userID,
		ItemID:   ticketID,
		ItemType: "Ticket",
		Quantity: 2,
	})

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, itemID, item.ID)
	require.NotNil(t, item.CartID)
	assert.Equal(t, cartID, *item.CartID)
	assert.Nil(t, item.OrderID)
	assert.Equal(t, entity.ItemTypeTicket, item.ItemType)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "120.50", item.UnitPrice.StringFixed(2))
	assert.Equal(t, entity.CartItemStatusActive, item.Status)
}

func TestCartService_AddItem_Product_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	cartID := uuid.New()

	product := &entity.Product{
		ID:            productID,
		Name:          "Tour Shirt",
		Price:         decimal.NewFromFloat(35.00),
		StockQuantity: 10,
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	fx.cartRepo.EXPECT().
		AddItem(ctx, mock.AnythingOfType("*entity.CartItem")).
		Return(nil)

	item, err := fx.service.AddItem(ctx, &usecase.AddCartItemInput{
		UserID:   userID,
		ItemID:   productID,
		ItemType: "product",
		Quantity: 1,
	})

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, entity.ItemTypeProduct, item.ItemType)
	assert.Equal(t, "35.00", item.UnitPrice.StringFixed(2))
}

func TestCartService_AddItem_InvalidQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	item, err := fx.service.AddItem(ctx, &usecase.AddCartItemInput{
		UserID:   uuid.New(),
		ItemID:   uuid.New(),
		ItemType: "ticket",
		Quantity: 0,
	})

	assert.Nil(t, item)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestCartService_AddItem_UnknownItemType(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	item, err := fx.service.AddItem(ctx, &usecase.AddCartItemInput{
		UserID:   uuid.New(),
		ItemID:   uuid.New(),
		ItemType: "voucher",
		Quantity: 1,
	})

	assert.Nil(t, item)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownItemType)
}

func TestCartService_AddItem_TicketNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	ticketID := uuid.New()

	fx.ticketRepo.EXPECT().FindByID(ctx, ticketID).Return(nil, repository.ErrTicketNotFound)

	item, err := fx.service.AddItem(ctx, &usecase.AddCartItemInput{
		UserID:   uuid.New(),
		ItemID:   ticketID,
		ItemType: "ticket",
		Quantity: 1,
	})

	assert.Nil(t, item)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTicketNotFound)
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	itemID := uuid.New()

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	fx.cartRepo.EXPECT().SoftDeleteItem(ctx, cartID, itemID).Return(nil)

	err := fx.service.RemoveItem(ctx, userID, itemID)

	require.NoError(t, err)
}

func TestCartService_RemoveItem_ItemNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	itemID := uuid.New()

	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	fx.cartRepo.EXPECT().SoftDeleteItem(ctx, cartID, itemID).Return(repository.ErrCartItemNotFound)

	err := fx.service.RemoveItem(ctx, userID, itemID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}
