package impl

import (
	"context"
	"log/slog"

	deliverycontext "bookify/internal/delivery/context"
	"bookify/internal/domain/entity"
	domainerrors "bookify/internal/domain/errors"
	"bookify/internal/domain/repository"
	"bookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// rewardService implements the RewardUsecase interface.
type rewardService struct {
	txManager  repository.TransactionManager
	rewardRepo repository.RewardRepository
	logger     *slog.Logger
}

// RewardServiceParams holds dependencies for RewardService, injected by Fx.
type RewardServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RewardRepo repository.RewardRepository
	Logger     *slog.Logger
}

// NewRewardService is the constructor for rewardService.
func NewRewardService(params RewardServiceParams) usecase.RewardUsecase {
	return &rewardService{
		txManager:  params.TxManager,
		rewardRepo: params.RewardRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *rewardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListRewards retrieves the reward catalog.
func (srv *rewardService) ListRewards(ctx context.Context) ([]*entity.Reward, error) {
	rewards, err := srv.rewardRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list rewards", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list rewards")
	}

	return rewards, nil
}

// RedeemReward exchanges loyalty points for a reward. The deduction is
// optimistic: points leave the balance immediately and a Pending redemption
// is recorded, awaiting a checkout to consume its discount.
func (srv *rewardService) RedeemReward(ctx context.Context, userID, rewardID uuid.UUID) (*entity.Redemption, error) {
	srv.log(ctx).Info("Redeeming reward", slog.Any("userID", userID), slog.Any("rewardID", rewardID))

	var redemption *entity.Redemption
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		rewardRepo := repoFactory.NewRewardRepository()
		userRepo := repoFactory.NewUserRepository()
		redemptionRepo := repoFactory.NewRedemptionRepository()

		reward, err := rewardRepo.FindByID(ctx, rewardID)
		if err != nil {
			if errors.Is(err, repository.ErrRewardNotFound) {
				return errors.Wrap(domainerrors.ErrRewardNotFound, "reward not found")
			}

			return errors.Wrap(err, "failed to load reward")
		}

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load user for redemption")
		}
		if user.Profile == nil {
			return errors.Wrap(domainerrors.ErrInternalError, "user has no loyalty profile")
		}

		if err := user.Profile.DeductLoyaltyPoints(reward.PointsCost); err != nil {
			return errors.Wrap(domainerrors.ErrInsufficientPoints, "not enough loyalty points")
		}
		if err := userRepo.UpdateProfile(ctx, user.Profile); err != nil {
			return errors.Wrap(err, "failed to deduct loyalty points")
		}

		redemption = &entity.Redemption{
			UserID:      userID,
			RewardID:    reward.ID,
			ItemID:      reward.ItemID,
			ItemType:    reward.ItemType,
			PointsSpent: reward.PointsCost,
			Status:      entity.RedemptionStatusPending,
		}
		if err := redemptionRepo.Create(ctx, redemption); err != nil {
			return errors.Wrap(err, "failed to record redemption")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute redemption transaction",
			slog.Any("userID", userID),
			slog.Any("rewardID", rewardID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Reward redeemed",
		slog.Any("userID", userID),
		slog.Any("redemptionID", redemption.ID),
		slog.Int("pointsSpent", redemption.PointsSpent),
	)

	return redemption, nil
}
