package impl

import (
	"context"
	"testing"

	"bookify/internal/domain/constants"
	"bookify/internal/domain/entity"
	domainerrors "bookify/internal/domain/errors"
	"bookify/internal/domain/repository"
	mockRepo "bookify/internal/mocks/repository"
	mockSvc "bookify/internal/mocks/service"
	"bookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	t            *testing.T
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func (fx accountServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	expectExecute(fx.t, fx.txManager, ctx, setup)
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}
	userID := uuid.New()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockCartRepo := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		factory.EXPECT().NewCartRepository().Return(mockCartRepo)

		mockUserRepo.EXPECT().
			FindByEmail(ctx, input.Email).
			Return(nil, repository.ErrUserNotFound)

		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = userID
			}).
			Return(nil)

		mockCartRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Cart")).
			Run(func(ctx context.Context, cart *entity.Cart) {
				assert.Equal(t, userID, cart.UserID)
			}).
			Return(nil)
	})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, constants.RoleUser, output.User.Role)
	require.NotNil(t, output.User.Profile)
	assert.Zero(t, output.User.Profile.LoyaltyPoints)
}

func TestAccountService_Register_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockCartRepo := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		factory.EXPECT().NewCartRepository().Return(mockCartRepo)

		mockUserRepo.EXPECT().
			FindByEmail(ctx, input.Email).
			Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)
	})

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         constants.RoleUser,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{constants.RoleUser}).
		Return("access_token", "refresh_token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "missing@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "missing@example.com",
		Password: "Password123!",
	})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         constants.RoleUser,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong_password", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong_password",
	})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_TokenGenerationFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         constants.RoleUser,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, []string{constants.RoleUser}).
		Return("", "", errors.New("signing failure"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate tokens")
}
