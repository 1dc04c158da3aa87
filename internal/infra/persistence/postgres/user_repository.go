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

// userRepository implements the domain's UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading the loyalty profile.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading the loyalty profile.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity together with its loyalty profile.
// GORM's Create with associations inserts into users and user_profiles in one go.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Propagate the generated ID and timestamps back to the entity.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.Profile != nil && userM.Profile != nil {
		user.Profile.UserID = userM.Profile.UserID
		user.Profile.UpdatedAt = userM.Profile.UpdatedAt
	}

	return nil
}

// UpdateProfile persists the loyalty profile of a user.
func (repo *userRepository) UpdateProfile(ctx context.Context, profile *entity.UserProfile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Update("loyalty_points", profile.LoyaltyPoints)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         data.Role,
		Profile:      toUserProfileDomain(data.Profile),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         data.Role,
		Profile:      fromUserProfileDomain(data.Profile),
	}
}

func toUserProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		UserID:        data.UserID,
		LoyaltyPoints: data.LoyaltyPoints,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromUserProfileDomain(data *entity.UserProfile) *model.UserProfileModel {
	if data == nil {
		return nil
	}

	return &model.UserProfileModel{
		UserID:        data.UserID,
		LoyaltyPoints: data.LoyaltyPoints,
		UpdatedAt:     data.UpdatedAt,
	}
}
