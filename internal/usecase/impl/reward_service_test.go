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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// rewardServiceFixtures holds all test dependencies for reward service tests.
type rewardServiceFixtures struct {
	t          *testing.T
	service    usecase.RewardUsecase
	txManager  *mockRepo.MockTransactionManager
	rewardRepo *mockRepo.MockRewardRepository
}

func createTestRewardService(t *testing.T) rewardServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	rewardRepo := mockRepo.NewMockRewardRepository(t)

	service := NewRewardService(RewardServiceParams{
		TxManager:  txManager,
		RewardRepo: rewardRepo,
		Logger:     newDiscardLogger(),
	})

	return rewardServiceFixtures{
		t:          t,
		service:    service,
		txManager:  txManager,
		rewardRepo: rewardRepo,
	}
}

func (fx rewardServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	expectExecute(fx.t, fx.txManager, ctx, setup)
}

func TestRewardService_ListRewards_Success(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	expected := []*entity.Reward{
		{ID: uuid.New(), Name: "Free Early Bird Ticket", PointsCost: 500},
		{ID: uuid.New(), Name: "Tour Shirt", PointsCost: 900},
	}

	fx.rewardRepo.EXPECT().List(ctx).Return(expected, nil)

	rewards, err := fx.service.ListRewards(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, rewards)
}

func TestRewardService_ListRewards_RepositoryFailure(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()

	fx.rewardRepo.EXPECT().List(ctx).Return(nil, errors.New("db error"))

	rewards, err := fx.service.ListRewards(ctx)

	assert.Nil(t, rewards)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list rewards")
}

func TestRewardService_RedeemReward_Success(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	userID := uuid.New()
	rewardID := uuid.New()
	redemptionID := uuid.New()

	reward := &entity.Reward{
		ID:         rewardID,
		Name:       "Free Early Bird Ticket",
		ItemID:     uuid.New(),
		ItemType:   entity.ItemTypeTicket,
		PointsCost: 100,
	}
	user := &entity.User{
		ID:      userID,
		Profile: &entity.UserProfile{UserID: userID, LoyaltyPoints: 250},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRewardRepo := mockRepo.NewMockRewardRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRedemptionRepo := mockRepo.NewMockRedemptionRepository(t)
		factory.EXPECT().NewRewardRepository().Return(mockRewardRepo)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		factory.EXPECT().NewRedemptionRepository().Return(mockRedemptionRepo)

		mockRewardRepo.EXPECT().FindByID(ctx, rewardID).Return(reward, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

		mockUserRepo.EXPECT().
			UpdateProfile(ctx, mock.AnythingOfType("*entity.UserProfile")).
			Run(func(ctx context.Context, profile *entity.UserProfile) {
				assert.Equal(t, 150, profile.LoyaltyPoints)
			}).
			Return(nil)

		mockRedemptionRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Redemption")).
			Run(func(ctx context.Context, redemption *entity.Redemption) {
				redemption.ID = redemptionID
			}).
			Return(nil)
	})

	redemption, err := fx.service.RedeemReward(ctx, userID, rewardID)

	require.NoError(t, err)
	require.NotNil(t, redemption)
	assert.Equal(t, redemptionID, redemption.ID)
	assert.Equal(t, userID, redemption.UserID)
	assert.Equal(t, rewardID, redemption.RewardID)
	assert.Equal(t, reward.ItemID, redemption.ItemID)
	assert.Equal(t, entity.ItemTypeTicket, redemption.ItemType)
	assert.Equal(t, 100, redemption.PointsSpent)
	assert.Equal(t, entity.RedemptionStatusPending, redemption.Status)
	assert.Equal(t, 150, user.Profile.LoyaltyPoints)
}

func TestRewardService_RedeemReward_InsufficientPoints(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	userID := uuid.New()
	rewardID := uuid.New()

	reward := &entity.Reward{
		ID:         rewardID,
		Name:       "Tour Shirt",
		ItemID:     uuid.New(),
		ItemType:   entity.ItemTypeProduct,
		PointsCost: 900,
	}
	user := &entity.User{
		ID:      userID,
		Profile: &entity.UserProfile{UserID: userID, LoyaltyPoints: 250},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRewardRepo := mockRepo.NewMockRewardRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRedemptionRepo := mockRepo.NewMockRedemptionRepository(t)
		factory.EXPECT().NewRewardRepository().Return(mockRewardRepo)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		factory.EXPECT().NewRedemptionRepository().Return(mockRedemptionRepo)

		mockRewardRepo.EXPECT().FindByID(ctx, rewardID).Return(reward, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	redemption, err := fx.service.RedeemReward(ctx, userID, rewardID)

	assert.Nil(t, redemption)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientPoints)
	assert.Equal(t, 250, user.Profile.LoyaltyPoints)
}

func TestRewardService_RedeemReward_RewardNotFound(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	userID := uuid.New()
	rewardID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRewardRepo := mockRepo.NewMockRewardRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRedemptionRepo := mockRepo.NewMockRedemptionRepository(t)
		factory.EXPECT().NewRewardRepository().Return(mockRewardRepo)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		factory.EXPECT().NewRedemptionRepository().Return(mockRedemptionRepo)

		mockRewardRepo.EXPECT().FindByID(ctx, rewardID).Return(nil, repository.ErrRewardNotFound)
	})

	redemption, err := fx.service.RedeemReward(ctx, userID, rewardID)

	assert.Nil(t, redemption)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRewardNotFound)
}

func TestRewardService_RedeemReward_MissingProfile(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	userID := uuid.New()
	rewardID := uuid.New()

	reward := &entity.Reward{
		ID:         rewardID,
		Name:       "Tour Shirt",
		ItemID:     uuid.New(),
		ItemType:   entity.ItemTypeProduct,
		PointsCost: 900,
	}
	user := &entity.User{ID: userID}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRewardRepo := mockRepo.NewMockRewardRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRedemptionRepo := mockRepo.NewMockRedemptionRepository(t)
		factory.EXPECT().NewRewardRepository().Return(mockRewardRepo)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		factory.EXPECT().NewRedemptionRepository().Return(mockRedemptionRepo)

		mockRewardRepo.EXPECT().FindByID(ctx, rewardID).Return(reward, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	redemption, err := fx.service.RedeemReward(ctx, userID, rewardID)

	assert.Nil(t, redemption)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}
