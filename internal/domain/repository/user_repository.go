// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"greenlake/internal/domain/entity"
	"greenlake/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the username or email is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrWalletAlreadySet is returned when the wallet fields were already written.
	ErrWalletAlreadySet = errors.New("wallet already set")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// SetWallet writes the wallet fields once. A second call returns ErrWalletAlreadySet.
	SetWallet(ctx context.Context, userID uuid.UUID, address, encryptedPrivateKey string) error
}
