package postgres

import (
	"context"
	"time"

	"greenlake/internal/domain/entity"
	"greenlake/internal/domain/repository"
	"greenlake/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for the cart repository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) FindCartByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("user_id = ?", userID).
		First(&cartM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrCartNotFound
		}

		return nil, dbError(err, "failed to find cart")
	}

	return toCartDomain(&cartM), nil
}

func (repo *cartRepository) CreateCart(ctx context.Context, cart *entity.Cart) error {
	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}
	cartM := &model.CartModel{ID: cart.ID, UserID: cart.UserID}

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCartAlreadyExists
		}

		return dbError(err, "failed to create cart")
	}

	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// UpsertItem relies on the (cart_id, item_type, item_id) unique index,
// so concurrent adds of the same item converge on one row.
func (repo *cartRepository) UpsertItem(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	itemM := fromCartItemDomain(item)

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "item_type"}, {Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"quantity", "price", "start_date", "end_date", "additional_info", "updated_at",
		}),
	}).Create(itemM).Error
	if err != nil {
		return nil, dbError(err, "failed to upsert cart item")
	}

	var stored model.CartItemModel
	err = repo.db.WithContext(ctx).
		Where("cart_id = ? AND item_type = ? AND item_id = ?", item.CartID, string(item.ItemType), item.ItemID).
		First(&stored).Error
	if err != nil {
		return nil, dbError(err, "failed to reload cart item")
	}

	return toCartItemDomain(&stored), nil
}

func (repo *cartRepository) RemoveItem(ctx context.Context, cartID, cartItemID uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", cartItemID, cartID).
		First(&itemM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, dbError(err, "failed to find cart item")
	}

	result := repo.db.WithContext(ctx).Where("id = ? AND cart_id = ?", cartItemID, cartID).Delete(&model.CartItemModel{})
	if result.Error != nil {
		return nil, dbError(result.Error, "failed to remove cart item")
	}
	// Lost a race with another remove.
	if result.RowsAffected == 0 {
		return nil, repository.ErrCartItemNotFound
	}

	return toCartItemDomain(&itemM), nil
}

func (repo *cartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&model.CartItemModel{}).Error; err != nil {
		return dbError(err, "failed to clear cart")
	}

	return nil
}

func (repo *cartRepository) CountOverlappingVehicleItems(
	ctx context.Context,
	vehicleID uuid.UUID,
	from, to time.Time,
	excludeCartID uuid.UUID,
) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("item_type = ? AND item_id = ?", string(entity.ItemTypeVehicle), vehicleID).
		Where("start_date <= ? AND end_date >= ?", to, from).
		Where("cart_id <> ?", excludeCartID).
		Count(&count).Error
	if err != nil {
		return 0, dbError(err, "failed to count overlapping vehicle cart items")
	}

	return count, nil
}

func toCartDomain(c *model.CartModel) *entity.Cart {
	items := make([]*entity.CartItem, 0, len(c.Items))
	for _, itemM := range c.Items {
		items = append(items, toCartItemDomain(itemM))
	}

	return &entity.Cart{
		ID:        c.ID,
		UserID:    c.UserID,
		Items:     items,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCartItemDomain(i *model.CartItemModel) *entity.CartItem {
	return &entity.CartItem{
		ID:             i.ID,
		CartID:         i.CartID,
		ItemType:       entity.ItemType(i.ItemType),
		ItemID:         i.ItemID,
		Quantity:       i.Quantity,
		Price:          i.Price,
		StartDate:      i.StartDate,
		EndDate:        i.EndDate,
		AdditionalInfo: map[string]any(i.AdditionalInfo),
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

func fromCartItemDomain(i *entity.CartItem) *model.CartItemModel {
	return &model.CartItemModel{
		ID:             i.ID,
		CartID:         i.CartID,
		ItemType:       string(i.ItemType),
		ItemID:         i.ItemID,
		Quantity:       i.Quantity,
		Price:          i.Price,
		StartDate:      i.StartDate,
		EndDate:        i.EndDate,
		AdditionalInfo: datatypes.JSONMap(i.AdditionalInfo),
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}
