package postgres

import (
	"context"

	"bookify/internal/domain/entity"
	"bookify/internal/domain/repository"
	"bookify/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// rewardRepository implements the domain's RewardRepository interface using GORM.
type rewardRepository struct {
	db *gorm.DB
}

// NewRewardRepository is the constructor for rewardRepository.
func NewRewardRepository(db *gorm.DB) repository.RewardRepository {
	return &rewardRepository{db: db}
}

// FindByID retrieves a reward by its unique ID.
func (repo *rewardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reward, error) {
	var rewardM model.RewardModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&rewardM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRewardNotFound
		}

		return nil, errors.Wrap(err, "failed to find reward by id")
	}

	return toRewardDomain(&rewardM), nil
}

// List retrieves the full reward catalog.
func (repo *rewardRepository) List(ctx context.Context) ([]*entity.Reward, error) {
	var rewardMs []*model.RewardModel
	err := repo.db.WithContext(ctx).
		Order("points_cost ASC").
		Find(&rewardMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rewards")
	}

	rewards := make([]*entity.Reward, 0, len(rewardMs))
	for _, rewardM := range rewardMs {
		rewards = append(rewards, toRewardDomain(rewardM))
	}

	return rewards, nil
}

// --- Mapper Functions ---

func toRewardDomain(data *model.RewardModel) *entity.Reward {
	if data == nil {
		return nil
	}

	return &entity.Reward{
		ID:         data.ID,
		Name:       data.Name,
		ItemID:     data.ItemID,
		ItemType:   entity.ItemType(data.ItemType),
		PointsCost: data.PointsCost,
		CreatedAt:  data.CreatedAt,
	}
}
