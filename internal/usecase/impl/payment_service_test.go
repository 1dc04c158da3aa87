package impl

import (
	"context"
	"testing"

	"bookify/config"
	"bookify/internal/domain/entity"
	"bookify/internal/domain/service"
	mockRepo "bookify/internal/mocks/repository"
	mockSvc "bookify/internal/mocks/service"
	"bookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// paymentServiceFixtures holds all test dependencies for payment service tests.
type paymentServiceFixtures struct {
	t              *testing.T
	service        usecase.PaymentUsecase
	txManager      *mockRepo.MockTransactionManager
	paymentRepo    *mockRepo.MockPaymentRepository
	orderRepo      *mockRepo.MockOrderRepository
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	return createTestPaymentServiceWithConfig(t, newTestConfig())
}

func createTestPaymentServiceWithConfig(t *testing.T, cfg *config.Config) paymentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	service := NewPaymentService(PaymentServiceParams{
		TxManager:      txManager,
		PaymentRepo:    paymentRepo,
		OrderRepo:      orderRepo,
		EventPublisher: eventPublisher,
		Config:         cfg,
		Logger:         newDiscardLogger(),
	})

	return paymentServiceFixtures{
		t:              t,
		service:        service,
		txManager:      txManager,
		paymentRepo:    paymentRepo,
		orderRepo:      orderRepo,
		eventPublisher: eventPublisher,
	}
}

func (fx paymentServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	expectExecute(fx.t, fx.txManager, ctx, setup)
}

func TestPaymentService_CreatePayment_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	paymentID := uuid.New()

	order := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusUnpaid}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)

		mockOrderRepo.EXPECT().FindByIDForUser(ctx, orderID, userID).Return(order, nil)

		mockPaymentRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Payment")).
			Run(func(ctx context.Context, payment *entity.Payment) {
				payment.ID = paymentID
			}).
			Return(nil)

		mockOrderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusUnderReview).Return(nil)
	})

	payment, err := fx.service.CreatePayment(ctx, &usecase.CreatePaymentInput{
		UserID:    userID,
		OrderID:   orderID,
		Method:    "bank_transfer",
		Reference: "TXN-0042",
	})

	require.NoError(t, err)
	require.NotNil(t, payment)
	assert.Equal(t, paymentID, payment.ID)
	assert.Equal(t, orderID, payment.OrderID)
	assert.Equal(t, "bank_transfer", payment.Method)
	assert.Equal(t, "TXN-0042", payment.Reference)
	assert.Equal(t, entity.PaymentStatusPending, payment.Status)
}

func TestPaymentService_UpdatePayment_ResetsToPending(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	paymentID := uuid.New()

	// A declined payment being corrected for another review round.
	payment := &entity.Payment{
		ID:        paymentID,
		OrderID:   orderID,
		Method:    "bank_transfer",
		Reference: "TXN-BAD",
		Status:    entity.PaymentStatusDeclined,
	}
	order := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusUnpaid}
	newReference := "TXN-GOOD"

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)

		mockPaymentRepo.EXPECT().FindByID(ctx, paymentID).Return(payment, nil)
		mockOrderRepo.EXPECT().FindByIDForUser(ctx, orderID, userID).Return(order, nil)
		mockPaymentRepo.EXPECT().Update(ctx, payment).Return(nil)
		mockOrderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusUnderReview).Return(nil)
	})

	updated, err := fx.service.UpdatePayment(ctx, &usecase.UpdatePaymentInput{
		UserID:    userID,
		PaymentID: paymentID,
		Reference: &newReference,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "bank_transfer", updated.Method)
	assert.Equal(t, newReference, updated.Reference)
	assert.Equal(t, entity.PaymentStatusPending, updated.Status)
}

func TestPaymentService_DeletePayment_ReturnsOrderToUnpaid(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	paymentID := uuid.New()

	payment := &entity.Payment{ID: paymentID, OrderID: orderID, Status: entity.PaymentStatusPending}
	order := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusUnderReview}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)

		mockPaymentRepo.EXPECT().FindByID(ctx, paymentID).Return(payment, nil)
		mockOrderRepo.EXPECT().FindByIDForUser(ctx, orderID, userID).Return(order, nil)
		mockOrderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusUnpaid).Return(nil)
		mockPaymentRepo.EXPECT().Delete(ctx, paymentID).Return(nil)
	})

	err := fx.service.DeletePayment(ctx, userID, paymentID)

	require.NoError(t, err)
}

func TestPaymentService_VerifyPayment_Settled(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	paymentID := uuid.New()
	redemptionID := uuid.New()

	ticketItem := &entity.CartItem{
		ID:        uuid.New(),
		OrderID:   &orderID,
		ItemID:    uuid.New(),
		ItemType:  entity.ItemTypeTicket,
		Quantity:  2,
		UnitPrice: decimal.NewFromFloat(75.25),
	}
	productItem := &entity.CartItem{
		ID:        uuid.New(),
		OrderID:   &orderID,
		ItemID:    uuid.New(),
		ItemType:  entity.ItemTypeProduct,
		Quantity:  1,
		UnitPrice: decimal.NewFromFloat(50.00),
	}

	payment := &entity.Payment{ID: paymentID, OrderID: orderID, Status: entity.PaymentStatusPending}
	order := &entity.Order{
		ID:          orderID,
		UserID:      userID,
		Status:      entity.OrderStatusUnderReview,
		TotalAmount: decimal.NewFromFloat(200.50),
		Items:       []*entity.CartItem{ticketItem, productItem},
	}
	user := &entity.User{
		ID:      userID,
		Profile: &entity.UserProfile{UserID: userID, LoyaltyPoints: 250},
	}
	redemption := &entity.Redemption{
		ID:          redemptionID,
		UserID:      userID,
		ItemID:      productItem.ItemID,
		ItemType:    entity.ItemTypeProduct,
		PointsSpent: 100,
		Status:      entity.RedemptionStatusUnused,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRedemptionRepo := mockRepo.NewMockRedemptionRepository(t)
		mockTicketRepo := mockRepo.NewMockTicketRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		factory.EXPECT().NewRedemptionRepository().Return(mockRedemptionRepo)
		factory.EXPECT().NewTicketRepository().Return(mockTicketRepo)
		factory.EXPECT().NewProductRepository().Return(mockProductRepo)

		mockPaymentRepo.EXPECT().FindByID(ctx, paymentID).Return(payment, nil)
		mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

		mockRedemptionRepo.EXPECT().
			FindByUserAndStatus(ctx, userID, entity.RedemptionStatusUnused).
			Return([]*entity.Redemption{redemption}, nil)
		mockRedemptionRepo.EXPECT().
			UpdateStatus(ctx, redemptionID, entity.RedemptionStatusUsed).
			Return(nil)

		mockTicketRepo.EXPECT().
			FindByID(ctx, ticketItem.ItemID).
			Return(&entity.Ticket{ID: ticketItem.ItemID, QuantityAvailable: 10, QuantitySold: 3}, nil)
		mockTicketRepo.EXPECT().
			UpdateQuantity(ctx, ticketItem.ItemID, 8, 5).
			Return(nil)

		mockProductRepo.EXPECT().
			FindByID(ctx, productItem.ItemID).
			Return(&entity.Product{ID: productItem.ItemID, StockQuantity: 5, QuantitySold: 1}, nil)
		mockProductRepo.EXPECT().
			UpdateQuantity(ctx, productItem.ItemID, 4, 2).
			Return(nil)

		// floor(200.50 * 0.1) = 20 points accrued on top of the 250 balance.
		mockUserRepo.EXPECT().
			UpdateProfile(ctx, mock.AnythingOfType("*entity.UserProfile")).
			Run(func(ctx context.Context, profile *entity.UserProfile) {
				assert.Equal(t, 270, profile.LoyaltyPoints)
			}).
			Return(nil)

		mockPaymentRepo.EXPECT().UpdateStatus(ctx, paymentID, entity.PaymentStatusValid).Return(nil)
		mockOrderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusDelivered).Return(nil)
	})

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(ctx context.Context, event *service.OrderEvent) {
			assert.Equal(t, service.OrderEventSettled, event.EventType)
			assert.Equal(t, "req-123", event.RequestID)
			assert.Equal(t, orderID.String(), event.OrderID)
			assert.Equal(t, "200.50", event.TotalAmount)
			assert.Equal(t, 2, event.ItemCount)
		}).
		Return(nil)

	verified, err := fx.service.VerifyPayment(ctx, &usecase.VerifyPaymentInput{
		PaymentID: paymentID,
		Status:    "Valid",
		RequestID: "req-123",
	})

	require.NoError(t, err)
	require.NotNil(t, verified)
	assert.Equal(t, entity.PaymentStatusValid, verified.Status)
	assert.Equal(t, entity.OrderStatusDelivered, order.Status)
}

func TestPaymentService_VerifyPayment_DefaultEarnRateAccrual(t *testing.T) {
	// With no loyalty section configured, settlement accrues floor(total * 0.1).
	fx := createTestPaymentServiceWithConfig(t, &config.Config{})

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	paymentID := uuid.New()

	productItem := &entity.CartItem{
		ID:        uuid.New(),
		OrderID:   &orderID,
		ItemID:    uuid.New(),
		ItemType:  entity.ItemTypeProduct,
		Quantity:  1,
		UnitPrice: decimal.NewFromFloat(70.00),
	}

	payment := &entity.Payment{ID: paymentID, OrderID: orderID, Status: entity.PaymentStatusPending}
	order := &entity.Order{
		ID:          orderID,
		UserID:      userID,
		Status:      entity.OrderStatusUnderReview,
		TotalAmount: decimal.NewFromFloat(70.00),
		Items:       []*entity.CartItem{productItem},
	}
	user := &entity.User{
		ID:      userID,
		Profile: &entity.UserProfile{UserID: userID, LoyaltyPoints: 0},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRedemptionRepo := mockRepo.NewMockRedemptionRepository(t)
		mockProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		factory.EXPECT().NewRedemptionRepository().Return(mockRedemptionRepo)
		factory.EXPECT().NewProductRepository().Return(mockProductRepo)

		mockPaymentRepo.EXPECT().FindByID(ctx, paymentID).Return(payment, nil)
		mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

		mockRedemptionRepo.EXPECT().
			FindByUserAndStatus(ctx, userID, entity.RedemptionStatusUnused).
			Return(nil, nil)

		mockProductRepo.EXPECT().
			FindByID(ctx, productItem.ItemID).
			Return(&entity.Product{ID: productItem.ItemID, StockQuantity: 3, QuantitySold: 0}, nil)
		mockProductRepo.EXPECT().
			UpdateQuantity(ctx, productItem.ItemID, 2, 1).
			Return(nil)

		// floor(70.00 * 0.1) = 7 points on an empty balance.
		mockUserRepo.EXPECT().
			UpdateProfile(ctx, mock.AnythingOfType("*entity.UserProfile")).
			Run(func(ctx context.Context, profile *entity.UserProfile) {
				assert.Equal(t, 7, profile.LoyaltyPoints)
			}).
			Return(nil)

		mockPaymentRepo.EXPECT().UpdateStatus(ctx, paymentID, entity.PaymentStatusValid).Return(nil)
		mockOrderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusDelivered).Return(nil)
	})

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	verified, err := fx.service.VerifyPayment(ctx, &usecase.VerifyPaymentInput{
		PaymentID: paymentID,
		Status:    "Valid",
	})

	require.NoError(t, err)
	require.NotNil(t, verified)
	assert.Equal(t, 7, user.Profile.LoyaltyPoints)
}

func TestPaymentService_VerifyPayment_Declined(t *testing.T) {
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
		TotalAmount: decimal.NewFromFloat(99.00),
		Items: []*entity.CartItem{
			{ID: uuid.New(), ItemID: uuid.New(), ItemType: entity.ItemTypeTicket, Quantity: 1},
		},
	}
	user := &entity.User{ID: userID, Profile: &entity.UserProfile{UserID: userID}}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)

		mockPaymentRepo.EXPECT().FindByID(ctx, paymentID).Return(payment, nil)
		mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

		mockPaymentRepo.EXPECT().UpdateStatus(ctx, paymentID, entity.PaymentStatusDeclined).Return(nil)
		mockOrderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusUnpaid).Return(nil)
	})

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(ctx context.Context, event *service.OrderEvent) {
			assert.Equal(t, service.OrderEventPaymentDeclined, event.EventType)
		}).
		Return(nil)

	verified, err := fx.service.VerifyPayment(ctx, &usecase.VerifyPaymentInput{
		PaymentID: paymentID,
		Status:    "Declined",
	})

	require.NoError(t, err)
	require.NotNil(t, verified)
	assert.Equal(t, entity.PaymentStatusDeclined, verified.Status)
	assert.Equal(t, entity.OrderStatusUnpaid, order.Status)
}

func TestPaymentService_VerifyPayment_PublishFailureDoesNotFail(t *testing.T) {
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
			{ID: uuid.New(), ItemID: uuid.New(), ItemType: entity.ItemTypeTicket, Quantity: 1},
		},
	}
	user := &entity.User{ID: userID, Profile: &entity.UserProfile{UserID: userID}}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)
		mockOrderRepo := mockRepo.NewMockOrderRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewPaymentRepository().Return(mockPaymentRepo)
		factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)

		mockPaymentRepo.EXPECT().FindByID(ctx, paymentID).Return(payment, nil)
		mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

		mockPaymentRepo.EXPECT().UpdateStatus(ctx, paymentID, entity.PaymentStatusDeclined).Return(nil)
		mockOrderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusUnpaid).Return(nil)
	})

	fx.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(errors.New("broker unavailable"))

	verified, err := fx.service.VerifyPayment(ctx, &usecase.VerifyPaymentInput{
		PaymentID: paymentID,
		Status:    "Declined",
	})

	require.NoError(t, err)
	require.NotNil(t, verified)
	assert.Equal(t, entity.PaymentStatusDeclined, verified.Status)
}

func TestOrderEventTypeFor(t *testing.T) {
	assert.Equal(t, service.OrderEventSettled, OrderEventTypeFor(entity.PaymentStatusValid))
	assert.Equal(t, service.OrderEventPaymentDeclined, OrderEventTypeFor(entity.PaymentStatusDeclined))
	assert.Empty(t, OrderEventTypeFor(entity.PaymentStatusPending))
}
