package usecase

import (
	"context"

	"bookify/internal/domain/entity"

	"github.com/google/uuid"
)

// RewardUsecase defines the interface for loyalty reward business operations.
type RewardUsecase interface {
	// ListRewards retrieves the reward catalog.
	ListRewards(ctx context.Context) ([]*entity.Reward, error)

	// RedeemReward exchanges loyalty points for a reward. Points are deducted
	// immediately and a Pending redemption is recorded.
	RedeemReward(ctx context.Context, userID, rewardID uuid.UUID) (*entity.Redemption, error)
}
