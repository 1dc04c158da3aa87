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

func TestPaymentService_CreatePayment_OrderNotFound(t *testing.T) {
	fx := createTestPaymentService(t)

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

	payment, err := fx.service.CreatePayment(ctx, &usecase.CreatePaymentInput{
		UserID:  userID,
		OrderID: orderID,
		Method:  "card",
	})

	assert.Nil(t, payment)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestPaymentService_CreatePayment_DeliveredOrder(t *testing.T) {
	fx := createTestPaymentService(t)

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

	payment, err := fx.service.CreatePayment(ctx, &usecase.CreatePaymentInput{
		UserID:  userID,
		OrderID: orderID,
		Method:  "card",
	})

	assert.Nil(t, payment)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderDelivered)
}

func TestPaymentService_CreatePayment_AlreadyUnderReview(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusUnderReview}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)

		mockOrderRepo.EXPECT().FindByIDForUser(ctx, orderID, userID).Return(order, nil)
	})

	payment, err := fx.service.CreatePayment(ctx, &usecase.CreatePaymentInput{
		UserID:  userID,
		OrderID: orderID,
		Method:  "card",
	})

	assert.Nil(t, payment)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentOutstanding)
}

func TestPaymentService_CreatePayment_DuplicateRace(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	order := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusUnpaid}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)

		mockOrderRepo.EXPECT().FindByIDForUser(ctx, orderID, userID).Return(order, nil)
		mockPaymentRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Payment")).
			Return(repository.ErrDuplicatePayment)
	})

	payment, err := fx.service.CreatePayment(ctx, &usecase.CreatePaymentInput{
		UserID:  userID,
		OrderID: orderID,
		Method:  "card",
	})

	assert.Nil(t, payment)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentOutstanding)
}

func TestPaymentService_UpdatePayment_ForeignOrder(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	paymentID := uuid.New()

	payment := &entity.Payment{ID: paymentID, OrderID: orderID, Status: entity.PaymentStatusPending}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)

		mockPaymentRepo.EXPECT().FindByID(ctx, paymentID).Return(payment, nil)
		// The payment exists but the order belongs to someone else.
		mockOrderRepo.EXPECT().FindByIDForUser(ctx, orderID, userID).Return(nil, repository.ErrOrderNotFound)
	})

	method := "card"
	updated, err := fx.service.UpdatePayment(ctx, &usecase.UpdatePaymentInput{
		UserID:    userID,
		PaymentID: paymentID,
		Method:    &method,
	})

	assert.Nil(t, updated)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
}

func TestPaymentService_DeletePayment_DeliveredOrder(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	paymentID := uuid.New()

	payment := &entity.Payment{ID: paymentID, OrderID: orderID, Status: entity.PaymentStatusValid}
	order := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusDelivered}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)

		mockPaymentRepo.EXPECT().FindByID(ctx, paymentID).Return(payment, nil)
		mockOrderRepo.EXPECT().FindByIDForUser(ctx, orderID, userID).Return(order, nil)
	})

	err := fx.service.DeletePayment(ctx, userID, paymentID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderDelivered)
}

func TestPaymentService_VerifyPayment_InvalidTargetStatus(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()

	payment, err := fx.service.VerifyPayment(ctx, &usecase.VerifyPaymentInput{
		PaymentID: uuid.New(),
		Status:    "Pending",
	})

	assert.Nil(t, payment)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentStatus)
}

func TestPaymentService_VerifyPayment_NotPending(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	paymentID := uuid.New()

	payment := &entity.Payment{ID: paymentID, OrderID: uuid.New(), Status: entity.PaymentStatusValid}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)

		mockPaymentRepo.EXPECT().FindByID(ctx, paymentID).Return(payment, nil)
	})

	verified, err := fx.service.VerifyPayment(ctx, &usecase.VerifyPaymentInput{
		PaymentID: paymentID,
		Status:    "Valid",
	})

	assert.Nil(t, verified)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotPending)
}

func TestPaymentService_VerifyPayment_OrderWithoutItems(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	paymentID := uuid.New()

	payment := &entity.Payment{ID: paymentID, OrderID: orderID, Status: entity.PaymentStatusPending}
	order := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusUnderReview}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)

		mockPaymentRepo.EXPECT().FindByID(ctx, paymentID).Return(payment, nil)
		mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	})

	verified, err := fx.service.VerifyPayment(ctx, &usecase.VerifyPaymentInput{
		PaymentID: paymentID,
		Status:    "Valid",
	})

	assert.Nil(t, verified)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderHasNoItems)
}

func TestPaymentService_VerifyPayment_InsufficientTicketInventory(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	paymentID := uuid.New()

	ticketItem := &entity.CartItem{
		ID:        uuid.New(),
		OrderID:   &orderID,
		ItemID:    uuid.New(),
		ItemType:  entity.ItemTypeTicket,
		Quantity:  5,
		UnitPrice: decimal.NewFromFloat(40.00),
	}
	payment := &entity.Payment{ID: paymentID, OrderID: orderID, Status: entity.PaymentStatusPending}
	order := &entity.Order{
		ID:          orderID,
		UserID:      userID,
		Status:      entity.OrderStatusUnderReview,
		TotalAmount: decimal.NewFromFloat(200.00),
		Items:       []*entity.CartItem{ticketItem},
	}
	user := &entity.User{ID: userID, Profile: &entity.UserProfile{UserID: userID, LoyaltyPoints: 50}}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRedemptionRepo := mockRepo.NewMockRedemptionRepository(t)
		mockTicketRepo := mockRepo.NewMockTicketRepository(t)
		factory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		factory.EXPECT().NewRedemptionRepository().Return(mockRedemptionRepo)
		factory.EXPECT().NewTicketRepository().Return(mockTicketRepo)

		mockPaymentRepo.EXPECT().FindByID(ctx, paymentID).Return(payment, nil)
		mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

		mockRedemptionRepo.EXPECT().
			FindByUserAndStatus(ctx, userID, entity.RedemptionStatusUnused).
			Return(nil, nil)

		// Only 3 tickets left for a quantity of 5; the settlement must abort
		// before any loyalty accrual or status change.
		mockTicketRepo.EXPECT().
			FindByID(ctx, ticketItem.ItemID).
			Return(&entity.Ticket{ID: ticketItem.ItemID, QuantityAvailable: 3, QuantitySold: 7}, nil)
	})

	verified, err := fx.service.VerifyPayment(ctx, &usecase.VerifyPaymentInput{
		PaymentID: paymentID,
		Status:    "Valid",
	})

	assert.Nil(t, verified)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTicketInventoryInsufficient)
	assert.Equal(t, 50, user.Profile.LoyaltyPoints)
	assert.Equal(t, entity.PaymentStatusPending, payment.Status)
	assert.Equal(t, entity.OrderStatusUnderReview, order.Status)
}

func TestPaymentService_VerifyPayment_UnknownItemType(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	paymentID := uuid.New()

	payment := &entity.Payment{ID: paymentID, OrderID: orderID, Status: entity.PaymentStatusPending}
	order := &entity.Order{
		ID:          orderID,
		UserID:      userID,
		Status:      entity.OrderStatusUnderReview,
		TotalAmount: decimal.NewFromFloat(10.00),
		Items: []*entity.CartItem{
			{ID: uuid.New(), ItemID: uuid.New(), ItemType: "voucher", Quantity: 1},
		},
	}
	user := &entity.User{ID: userID, Profile: &entity.UserProfile{UserID: userID}}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRedemptionRepo := mockRepo.NewMockRedemptionRepository(t)
		factory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		factory.EXPECT().NewRedemptionRepository().Return(mockRedemptionRepo)

		mockPaymentRepo.EXPECT().FindByID(ctx, paymentID).Return(payment, nil)
		mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

		mockRedemptionRepo.EXPECT().
			FindByUserAndStatus(ctx, userID, entity.RedemptionStatusUnused).
			Return(nil, nil)
	})

	verified, err := fx.service.VerifyPayment(ctx, &usecase.VerifyPaymentInput{
		PaymentID: paymentID,
		Status:    "Valid",
	})

	assert.Nil(t, verified)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownItemType)
}
