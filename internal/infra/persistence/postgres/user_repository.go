package postgres

import (
	"context"

	"greenlake/internal/domain/entity"
	"greenlake/internal/domain/repository"
	"greenlake/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// CreateUser persists a new user. Username and email are unique.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserAlreadyExists
		}

		return dbError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindUserByID retrieves a single user by their unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, dbError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindUserByEmail retrieves a single user by their email address.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, dbError(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// SetWallet writes the wallet fields only while they are still empty.
func (repo *userRepository) SetWallet(ctx context.Context, userID uuid.UUID, address, encryptedPrivateKey string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND wallet_address IS NULL", userID).
		Updates(map[string]any{
			"wallet_address":        address,
			"encrypted_private_key": encryptedPrivateKey,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrWalletAlreadySet
		}

		return dbError(result.Error, "failed to set wallet")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	if _, err := repo.FindUserByID(ctx, userID); err != nil {
		return err
	}

	return repository.ErrWalletAlreadySet
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                  data.ID,
		Username:            data.Username,
		Email:               data.Email,
		PasswordHash:        data.PasswordHash,
		WalletAddress:       data.WalletAddress,
		EncryptedPrivateKey: data.EncryptedPrivateKey,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                  data.ID,
		Username:            data.Username,
		Email:               data.Email,
		PasswordHash:        data.PasswordHash,
		WalletAddress:       data.WalletAddress,
		EncryptedPrivateKey: data.EncryptedPrivateKey,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
