// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "greenlake/internal/delivery/context"
	"greenlake/internal/domain/entity"
	domainerrors "greenlake/internal/domain/errors"
	"greenlake/internal/domain/repository"
	"greenlake/internal/domain/service"
	"greenlake/internal/errors"
	"greenlake/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	ledger       service.TokenLedger
	custody      service.WalletCustody
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Ledger       service.TokenLedger
	Custody      service.WalletCustody
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		ledger:       params.Ledger,
		custody:      params.Custody,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account, then tries to attach a wallet to it.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if username == "" || email == "" || input.Password == "" {
		return nil, domainerrors.NewValidationError("username, email and password are required")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration rejected")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	// The account stands even when the ledger is down; the wallet can be created later
	if err := srv.attachWallet(ctx, user); err != nil {
		srv.log(ctx).Warn("Registered without wallet",
			slog.String("user_id", user.ID.String()),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Debug("Registration completed", slog.String("user_id", user.ID.String()), slog.Bool("has_wallet", user.HasWallet()))

	return user, nil
}

// Login checks the password and issues an access token.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := srv.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	// bcrypt is CPU-bound, so the check runs outside any transaction
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{AccessToken: accessToken, User: user}, nil
}

// CreateWallet runs the wallet step for a user registered while the ledger was unavailable.
func (srv *userService) CreateWallet(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.HasWallet() {
		return nil, errors.Wrap(domainerrors.ErrWalletExists, "failed to create wallet")
	}

	if err := srv.attachWallet(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Balance reads the wallet balance from the ledger.
func (srv *userService) Balance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	if !user.HasWallet() {
		return decimal.Zero, errors.Wrap(domainerrors.ErrWalletRequired, "failed to read balance")
	}

	balance, err := srv.ledger.Balance(ctx, *user.WalletAddress)
	if err != nil {
		return decimal.Zero, domainerrors.WrapDomainError(domainerrors.ErrLedgerUnavailable, err)
	}

	return balance, nil
}

func (srv *userService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to find user")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// attachWallet creates a ledger wallet, seals its key and writes both to the user once
func (srv *userService) attachWallet(ctx context.Context, user *entity.User) error {
	wallet, err := srv.ledger.CreateWallet(ctx, user.Username)
	if err != nil {
		return domainerrors.WrapDomainError(domainerrors.ErrLedgerUnavailable, err)
	}

	sealed, err := srv.custody.Seal(wallet.PrivateKey)
	if err != nil {
		return errors.Wrap(err, "failed to seal wallet key")
	}

	if err := srv.userRepo.SetWallet(ctx, user.ID, wallet.Address, sealed); err != nil {
		if errors.Is(err, repository.ErrWalletAlreadySet) {
			return errors.Wrap(domainerrors.ErrWalletExists, "wallet was set concurrently")
		}

		return errors.Wrap(err, "failed to store wallet")
	}

	user.WalletAddress = &wallet.Address
	user.EncryptedPrivateKey = &sealed

	srv.log(ctx).Info("Wallet created", slog.String("user_id", user.ID.String()), slog.String("wallet", wallet.Address))

	return nil
}
