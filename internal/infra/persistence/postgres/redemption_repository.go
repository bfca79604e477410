package postgres

import (
	"context"
	"sort"
	"time"

	"greenlake/internal/domain/entity"
	"greenlake/internal/domain/repository"
	"greenlake/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type redemptionRepository struct {
	db *gorm.DB
}

// NewRedemptionRepository is the constructor for the redemption repository.
func NewRedemptionRepository(db *gorm.DB) repository.RedemptionRepository {
	return &redemptionRepository{db: db}
}

func (repo *redemptionRepository) CreateDiscountRedemption(ctx context.Context, redemption *entity.DiscountRedemption) error {
	if redemption.ID == uuid.Nil {
		redemption.ID = uuid.New()
	}
	row := &model.DiscountRedemptionModel{
		ID:         redemption.ID,
		UserID:     redemption.UserID,
		DiscountID: redemption.DiscountID,
		TokensPaid: redemption.TokensPaid,
		QRCode:     redemption.QRCode,
		BurnTxHash: redemption.BurnTxHash,
		Status:     string(redemption.Status),
		UsedAt:     redemption.UsedAt,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateQRCode
		}

		return dbError(err, "failed to create discount redemption")
	}
	redemption.CreatedAt = row.CreatedAt

	return nil
}

func (repo *redemptionRepository) CreateAmenityPurchase(ctx context.Context, purchase *entity.AmenityPurchase) error {
	if purchase.ID == uuid.Nil {
		purchase.ID = uuid.New()
	}
	row := &model.AmenityPurchaseModel{
		ID:         purchase.ID,
		UserID:     purchase.UserID,
		AmenityID:  purchase.AmenityID,
		Quantity:   purchase.Quantity,
		TokensPaid: purchase.TokensPaid,
		QRCode:     purchase.QRCode,
		BurnTxHash: purchase.BurnTxHash,
		Status:     string(purchase.Status),
		UsedAt:     purchase.UsedAt,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateQRCode
		}

		return dbError(err, "failed to create amenity purchase")
	}
	purchase.CreatedAt = row.CreatedAt

	return nil
}

func (repo *redemptionRepository) ListRedemptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Redemption, error) {
	var discountRows []*model.DiscountRedemptionModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Find(&discountRows).Error; err != nil {
		return nil, dbError(err, "failed to list discount redemptions")
	}

	var amenityRows []*model.AmenityPurchaseModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Find(&amenityRows).Error; err != nil {
		return nil, dbError(err, "failed to list amenity purchases")
	}

	redemptions := make([]*entity.Redemption, 0, len(discountRows)+len(amenityRows))
	for _, row := range discountRows {
		redemptions = append(redemptions, discountRedemptionView(row))
	}
	for _, row := range amenityRows {
		redemptions = append(redemptions, amenityPurchaseView(row))
	}

	sort.SliceStable(redemptions, func(i, j int) bool {
		return redemptions[i].CreatedAt.After(redemptions[j].CreatedAt)
	})

	return redemptions, nil
}

func (repo *redemptionRepository) FindRedemptionByQRCode(ctx context.Context, qrCode string) (*entity.Redemption, error) {
	var discountRow model.DiscountRedemptionModel
	err := repo.db.WithContext(ctx).Where("qr_code = ?", qrCode).First(&discountRow).Error
	if err == nil {
		return discountRedemptionView(&discountRow), nil
	}
	if !isRecordNotFound(err) {
		return nil, dbError(err, "failed to find discount redemption")
	}

	var amenityRow model.AmenityPurchaseModel
	err = repo.db.WithContext(ctx).Where("qr_code = ?", qrCode).First(&amenityRow).Error
	if err == nil {
		return amenityPurchaseView(&amenityRow), nil
	}
	if isRecordNotFound(err) {
		return nil, repository.ErrRedemptionNotFound
	}

	return nil, dbError(err, "failed to find amenity purchase")
}

func (repo *redemptionRepository) MarkRedemptionUsed(ctx context.Context, kind entity.RedemptionKind, id uuid.UUID, usedAt time.Time) error {
	var target any
	switch kind {
	case entity.RedemptionKindDiscount:
		target = &model.DiscountRedemptionModel{}
	case entity.RedemptionKindAmenity:
		target = &model.AmenityPurchaseModel{}
	default:
		return repository.ErrRedemptionNotFound
	}

	result := repo.db.WithContext(ctx).
		Model(target).
		Where("id = ? AND status = ?", id, string(entity.RedemptionStatusActive)).
		Updates(map[string]any{
			"status":  string(entity.RedemptionStatusUsed),
			"used_at": usedAt,
		})
	if result.Error != nil {
		return dbError(result.Error, "failed to mark redemption used")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(target).Where("id = ?", id).Count(&count).Error; err != nil {
		return dbError(err, "failed to find redemption")
	}
	if count == 0 {
		return repository.ErrRedemptionNotFound
	}

	return repository.ErrRedemptionAlreadyUsed
}

func discountRedemptionView(row *model.DiscountRedemptionModel) *entity.Redemption {
	return &entity.Redemption{
		Kind:       entity.RedemptionKindDiscount,
		ID:         row.ID,
		UserID:     row.UserID,
		OfferID:    row.DiscountID,
		TokensPaid: row.TokensPaid,
		QRCode:     row.QRCode,
		Status:     entity.RedemptionStatus(row.Status),
		CreatedAt:  row.CreatedAt,
		UsedAt:     row.UsedAt,
	}
}

func amenityPurchaseView(row *model.AmenityPurchaseModel) *entity.Redemption {
	return &entity.Redemption{
		Kind:       entity.RedemptionKindAmenity,
		ID:         row.ID,
		UserID:     row.UserID,
		OfferID:    row.AmenityID,
		TokensPaid: row.TokensPaid,
		QRCode:     row.QRCode,
		Status:     entity.RedemptionStatus(row.Status),
		CreatedAt:  row.CreatedAt,
		UsedAt:     row.UsedAt,
	}
}
