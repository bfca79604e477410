package impl

import (
	"context"
	"testing"

	"greenlake/internal/domain/entity"
	domainerrors "greenlake/internal/domain/errors"
	"greenlake/internal/domain/repository"
	"greenlake/internal/domain/service"
	mockRepo "greenlake/internal/mocks/repository"
	mockSvc "greenlake/internal/mocks/service"
	"greenlake/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	ledger       *mockSvc.MockTokenLedger
	custody      *mockSvc.MockWalletCustody
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	ledger := mockSvc.NewMockTokenLedger(t)
	custody := mockSvc.NewMockWalletCustody(t)

	srv := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Ledger:       ledger,
		Custody:      custody,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      srv,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		ledger:       ledger,
		custody:      custody,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Username: "traveller",
		Email:    " Traveller@Example.com ",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "traveller@example.com", user.Email)
			assert.Equal(t, "hashed_password", user.PasswordHash)
		}).
		Return(nil)
	fx.ledger.EXPECT().
		CreateWallet(ctx, "traveller").
		Return(&service.Wallet{Address: "0xabc", PrivateKey: "secret"}, nil)
	fx.custody.EXPECT().Seal("secret").Return("sealed", nil)
	fx.userRepo.EXPECT().SetWallet(ctx, mock.AnythingOfType("uuid.UUID"), "0xabc", "sealed").Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.HasWallet())
	assert.Equal(t, "0xabc", *user.WalletAddress)
}

func TestUserService_Register_LedgerDownKeepsAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{Username: "traveller", Email: "t@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().CreateUser(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.ledger.EXPECT().CreateWallet(ctx, "traveller").Return(nil, errors.New("connection refused"))

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.False(t, user.HasWallet())
}

func TestUserService_Register_Duplicate(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{Username: "traveller", Email: "t@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrUserAlreadyExists)

	user, err := fx.service.Register(ctx, input)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_MissingFields(t *testing.T) {
	fx := createTestUserService(t)

	user, err := fx.service.Register(context.Background(), usecase.RegisterInput{Username: "  ", Email: "t@example.com"})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "t@example.com", PasswordHash: "hash"}

	tests := []struct {
		name      string
		setup     func(fx userServiceFixtures)
		wantErr   error
		wantToken string
	}{
		{
			name: "success",
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindUserByEmail(ctx, "t@example.com").Return(user, nil)
				fx.hasher.EXPECT().Check("Password123!", "hash").Return(true)
				fx.tokenService.EXPECT().GenerateAccessToken(user.ID).Return("jwt", nil)
			},
			wantToken: "jwt",
		},
		{
			name: "unknown email",
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindUserByEmail(ctx, "t@example.com").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindUserByEmail(ctx, "t@example.com").Return(user, nil)
				fx.hasher.EXPECT().Check("Password123!", "hash").Return(false)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			tt.setup(fx)

			out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "T@example.com", Password: "Password123!"})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, out)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, out.AccessToken)
			assert.Equal(t, user, out.User)
		})
	}
}

func TestUserService_CreateWallet_AlreadyHasWallet(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := newWalletUser("0xabc")
	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)

	got, err := fx.service.CreateWallet(ctx, user.ID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrWalletExists)
}

func TestUserService_CreateWallet_ConcurrentWrite(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "traveller"}
	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.ledger.EXPECT().CreateWallet(ctx, "traveller").Return(&service.Wallet{Address: "0xdef", PrivateKey: "k"}, nil)
	fx.custody.EXPECT().Seal("k").Return("sealed", nil)
	fx.userRepo.EXPECT().SetWallet(ctx, user.ID, "0xdef", "sealed").Return(repository.ErrWalletAlreadySet)

	got, err := fx.service.CreateWallet(ctx, user.ID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrWalletExists)
}

func TestUserService_Balance(t *testing.T) {
	t.Run("reads ledger", func(t *testing.T) {
		fx := createTestUserService(t)

		ctx := context.Background()
		user := newWalletUser("0xabc")
		fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
		fx.ledger.EXPECT().Balance(ctx, "0xabc").Return(decimal.NewFromInt(42), nil)

		balance, err := fx.service.Balance(ctx, user.ID)

		require.NoError(t, err)
		assert.True(t, balance.Equal(decimal.NewFromInt(42)))
	})

	t.Run("no wallet", func(t *testing.T) {
		fx := createTestUserService(t)

		ctx := context.Background()
		user := &entity.User{ID: uuid.New()}
		fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)

		_, err := fx.service.Balance(ctx, user.ID)

		assert.ErrorIs(t, err, domainerrors.ErrWalletRequired)
	})

	t.Run("ledger unavailable", func(t *testing.T) {
		fx := createTestUserService(t)

		ctx := context.Background()
		user := newWalletUser("0xabc")
		fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
		fx.ledger.EXPECT().Balance(ctx, "0xabc").Return(decimal.Zero, errors.New("timeout"))

		_, err := fx.service.Balance(ctx, user.ID)

		assert.ErrorIs(t, err, domainerrors.ErrLedgerUnavailable)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestUserService(t)

		ctx := context.Background()
		id := uuid.New()
		fx.userRepo.EXPECT().FindUserByID(ctx, id).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Balance(ctx, id)

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}
