package repository

import (
	"context"

	"bookify/internal/domain/entity"
	"bookify/internal/errors"

	"github.com/google/uuid"
)

// ErrRewardNotFound is returned when a reward is not found.
var ErrRewardNotFound = errors.New("reward not found")

// RewardRepository defines the interface for the loyalty reward catalog.
type RewardRepository interface {
	// FindByID retrieves a reward by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reward, error)

	// List retrieves the full reward catalog.
	List(ctx context.Context) ([]*entity.Reward, error)
}
