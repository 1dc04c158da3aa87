package postgres

import (
	"context"

	"bookify/internal/domain/entity"
	domainerrors "bookify/internal/domain/errors"
	"bookify/internal/domain/repository"
	"bookify/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// redemptionRepository implements the domain's RedemptionRepository interface using GORM.
type redemptionRepository struct {
	db *gorm.DB
}

// NewRedemptionRepository is the constructor for redemptionRepository.
func NewRedemptionRepository(db *gorm.DB) repository.RedemptionRepository {
	return &redemptionRepository{db: db}
}

// Create persists a new redemption.
func (repo *redemptionRepository) Create(ctx context.Context, redemption *entity.Redemption) error {
	redemptionM := fromRedemptionDomain(redemption)

	if err := repo.db.WithContext(ctx).Create(redemptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRewardNotFound.WrapMessage("reward does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create redemption")
	}

	redemption.ID = redemptionM.ID
	redemption.CreatedAt = redemptionM.CreatedAt
	redemption.UpdatedAt = redemptionM.UpdatedAt

	return nil
}

// FindByUserAndStatus lists a user's redemptions in the given status, oldest
// first. Settlement finalizes the first created match.
func (repo *redemptionRepository) FindByUserAndStatus(ctx context.Context, userID uuid.UUID, status entity.RedemptionStatus) ([]*entity.Redemption, error) {
	var redemptionMs []*model.RedemptionModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(status)).
		Order("created_at ASC").
		Find(&redemptionMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list redemptions for user")
	}

	redemptions := make([]*entity.Redemption, 0, len(redemptionMs))
	for _, redemptionM := range redemptionMs {
		redemptions = append(redemptions, toRedemptionDomain(redemptionM))
	}

	return redemptions, nil
}

// UpdateStatus sets the redemption status.
func (repo *redemptionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RedemptionStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RedemptionModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update redemption status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRedemptionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toRedemptionDomain(data *model.RedemptionModel) *entity.Redemption {
	if data == nil {
		return nil
	}

	return &entity.Redemption{
		ID:          data.ID,
		UserID:      data.UserID,
		RewardID:    data.RewardID,
		ItemID:      data.ItemID,
		ItemType:    entity.ItemType(data.ItemType),
		PointsSpent: data.PointsSpent,
		Status:      entity.RedemptionStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromRedemptionDomain(data *entity.Redemption) *model.RedemptionModel {
	if data == nil {
		return nil
	}

	return &model.RedemptionModel{
		ID:          data.ID,
		UserID:      data.UserID,
		RewardID:    data.RewardID,
		ItemID:      data.ItemID,
		ItemType:    string(data.ItemType),
		PointsSpent: data.PointsSpent,
		Status:      string(data.Status),
	}
}
