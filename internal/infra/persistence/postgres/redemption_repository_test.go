package postgres

import (
	"context"
	"testing"
	"time"

	"greenlake/internal/domain/entity"
	"greenlake/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedemptionRepository_CreateListFind(t *testing.T) {
	repo := NewRedemptionRepository(newTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	discountRedemption := &entity.DiscountRedemption{
		UserID:     userID,
		DiscountID: uuid.New(),
		TokensPaid: 50,
		QRCode:     "qr-discount",
		BurnTxHash: "0xburn1",
		Status:     entity.RedemptionStatusActive,
	}
	require.NoError(t, repo.CreateDiscountRedemption(ctx, discountRedemption))

	purchase := &entity.AmenityPurchase{
		UserID:     userID,
		AmenityID:  uuid.New(),
		Quantity:   2,
		TokensPaid: 10,
		QRCode:     "qr-amenity",
		BurnTxHash: "0xburn2",
		Status:     entity.RedemptionStatusActive,
	}
	require.NoError(t, repo.CreateAmenityPurchase(ctx, purchase))

	list, err := repo.ListRedemptionsByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	found, err := repo.FindRedemptionByQRCode(ctx, "qr-amenity")
	require.NoError(t, err)
	assert.Equal(t, entity.RedemptionKindAmenity, found.Kind)
	assert.Equal(t, purchase.AmenityID, found.OfferID)

	found, err = repo.FindRedemptionByQRCode(ctx, "qr-discount")
	require.NoError(t, err)
	assert.Equal(t, entity.RedemptionKindDiscount, found.Kind)

	_, err = repo.FindRedemptionByQRCode(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrRedemptionNotFound)
}

func TestRedemptionRepository_DuplicateQRCode(t *testing.T) {
	repo := NewRedemptionRepository(newTestDB(t))
	ctx := context.Background()

	first := &entity.DiscountRedemption{
		UserID: uuid.New(), DiscountID: uuid.New(), TokensPaid: 1, QRCode: "same", Status: entity.RedemptionStatusActive,
	}
	require.NoError(t, repo.CreateDiscountRedemption(ctx, first))

	second := &entity.DiscountRedemption{
		UserID: uuid.New(), DiscountID: uuid.New(), TokensPaid: 1, QRCode: "same", Status: entity.RedemptionStatusActive,
	}
	assert.ErrorIs(t, repo.CreateDiscountRedemption(ctx, second), repository.ErrDuplicateQRCode)
}

func TestRedemptionRepository_MarkUsedOnce(t *testing.T) {
	repo := NewRedemptionRepository(newTestDB(t))
	ctx := context.Background()

	purchase := &entity.AmenityPurchase{
		UserID: uuid.New(), AmenityID: uuid.New(), Quantity: 1, TokensPaid: 5, QRCode: "qr-1", Status: entity.RedemptionStatusActive,
	}
	require.NoError(t, repo.CreateAmenityPurchase(ctx, purchase))

	usedAt := time.Now().UTC()
	require.NoError(t, repo.MarkRedemptionUsed(ctx, entity.RedemptionKindAmenity, purchase.ID, usedAt))

	found, err := repo.FindRedemptionByQRCode(ctx, "qr-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RedemptionStatusUsed, found.Status)
	require.NotNil(t, found.UsedAt)

	err = repo.MarkRedemptionUsed(ctx, entity.RedemptionKindAmenity, purchase.ID, usedAt)
	assert.ErrorIs(t, err, repository.ErrRedemptionAlreadyUsed)

	err = repo.MarkRedemptionUsed(ctx, entity.RedemptionKindDiscount, purchase.ID, usedAt)
	assert.ErrorIs(t, err, repository.ErrRedemptionNotFound)
}
