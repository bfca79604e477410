package postgres

import (
	"context"
	"time"

	"greenlake/internal/domain/entity"
	"greenlake/internal/domain/repository"
	"greenlake/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for the offer repository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{db: db}
}

func (repo *offerRepository) FindDiscountByID(ctx context.Context, id uuid.UUID) (*entity.Discount, error) {
	var discountM model.DiscountModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&discountM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrDiscountNotFound
		}

		return nil, dbError(err, "failed to find discount")
	}

	return toDiscountDomain(&discountM), nil
}

func (repo *offerRepository) FindAmenityByID(ctx context.Context, id uuid.UUID) (*entity.Amenity, error) {
	var amenityM model.AmenityModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&amenityM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrAmenityNotFound
		}

		return nil, dbError(err, "failed to find amenity")
	}

	return toAmenityDomain(&amenityM), nil
}

func (repo *offerRepository) ListActiveDiscounts(ctx context.Context, now time.Time) ([]*entity.Discount, error) {
	var discountMs []*model.DiscountModel
	err := repo.db.WithContext(ctx).
		Where("is_active = ? AND valid_from <= ? AND valid_until >= ?", true, now, now).
		Order("token_cost ASC").
		Find(&discountMs).Error
	if err != nil {
		return nil, dbError(err, "failed to list discounts")
	}

	discounts := make([]*entity.Discount, 0, len(discountMs))
	for _, discountM := range discountMs {
		discounts = append(discounts, toDiscountDomain(discountM))
	}

	return discounts, nil
}

func (repo *offerRepository) ListActiveAmenities(ctx context.Context) ([]*entity.Amenity, error) {
	var amenityMs []*model.AmenityModel
	if err := repo.db.WithContext(ctx).Where("is_active = ?", true).Order("token_cost ASC").Find(&amenityMs).Error; err != nil {
		return nil, dbError(err, "failed to list amenities")
	}

	amenities := make([]*entity.Amenity, 0, len(amenityMs))
	for _, amenityM := range amenityMs {
		amenities = append(amenities, toAmenityDomain(amenityM))
	}

	return amenities, nil
}

// ReserveDiscountUse takes one use in a single conditional UPDATE, so two
// concurrent redemptions of the last use cannot both succeed.
func (repo *offerRepository) ReserveDiscountUse(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DiscountModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Where("max_uses IS NULL OR used_count < max_uses").
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return false, dbError(result.Error, "failed to reserve discount use")
	}

	return result.RowsAffected > 0, nil
}

func (repo *offerRepository) ReleaseDiscountUse(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.DiscountModel{}).
		Where("id = ? AND used_count > 0", id).
		UpdateColumn("used_count", gorm.Expr("used_count - 1")).Error
	if err != nil {
		return dbError(err, "failed to release discount use")
	}

	return nil
}

func (repo *offerRepository) UpsertDiscount(ctx context.Context, discount *entity.Discount) error {
	discountM := fromDiscountDomain(discount)
	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		// used_count belongs to the redemption flow.
		DoUpdates: clause.AssignmentColumns([]string{
			"code", "name", "description", "token_cost", "discount_type", "discount_value",
			"valid_from", "valid_until", "max_uses", "is_active", "updated_at",
		}),
	}).Create(discountM).Error
	if err != nil {
		return dbError(err, "failed to upsert discount")
	}

	return nil
}

func (repo *offerRepository) UpsertAmenity(ctx context.Context, amenity *entity.Amenity) error {
	amenityM := &model.AmenityModel{
		ID:          amenity.ID,
		Code:        amenity.Code,
		Name:        amenity.Name,
		Description: amenity.Description,
		TokenCost:   amenity.TokenCost,
		IsActive:    amenity.IsActive,
		MaxQuantity: amenity.MaxQuantity,
	}
	if err := repo.db.WithContext(ctx).Clauses(upsertByID).Create(amenityM).Error; err != nil {
		return dbError(err, "failed to upsert amenity")
	}

	return nil
}

func toDiscountDomain(d *model.DiscountModel) *entity.Discount {
	return &entity.Discount{
		ID:            d.ID,
		Code:          d.Code,
		Name:          d.Name,
		Description:   d.Description,
		TokenCost:     d.TokenCost,
		DiscountType:  entity.DiscountType(d.DiscountType),
		DiscountValue: d.DiscountValue,
		ValidFrom:     d.ValidFrom,
		ValidUntil:    d.ValidUntil,
		MaxUses:       d.MaxUses,
		UsedCount:     d.UsedCount,
		IsActive:      d.IsActive,
	}
}

func fromDiscountDomain(d *entity.Discount) *model.DiscountModel {
	return &model.DiscountModel{
		ID:            d.ID,
		Code:          d.Code,
		Name:          d.Name,
		Description:   d.Description,
		TokenCost:     d.TokenCost,
		DiscountType:  string(d.DiscountType),
		DiscountValue: d.DiscountValue,
		ValidFrom:     d.ValidFrom,
		ValidUntil:    d.ValidUntil,
		MaxUses:       d.MaxUses,
		IsActive:      d.IsActive,
	}
}

func toAmenityDomain(a *model.AmenityModel) *entity.Amenity {
	return &entity.Amenity{
		ID:          a.ID,
		Code:        a.Code,
		Name:        a.Name,
		Description: a.Description,
		TokenCost:   a.TokenCost,
		IsActive:    a.IsActive,
		MaxQuantity: a.MaxQuantity,
	}
}
