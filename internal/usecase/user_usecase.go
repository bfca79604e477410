// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"greenlake/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the access token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// UserUsecase defines account and wallet operations.
type UserUsecase interface {
	// Register creates the account and tries to create its wallet. A ledger failure
	// leaves the user without a wallet rather than failing registration.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// CreateWallet runs the wallet-creation step for a user that has none.
	CreateWallet(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// Balance reads the user's token balance from the ledger.
	Balance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}
