package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"greenlake/internal/domain/entity"
	"greenlake/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDiscount(maxUses *int) *entity.Discount {
	now := time.Now().UTC()

	return &entity.Discount{
		ID:            uuid.New(),
		Code:          "D-" + uuid.NewString()[:8],
		Name:          "10% off",
		TokenCost:     50,
		DiscountType:  entity.DiscountTypePercentage,
		DiscountValue: decimal.NewFromInt(10),
		ValidFrom:     now.Add(-time.Hour),
		ValidUntil:    now.Add(time.Hour),
		MaxUses:       maxUses,
		IsActive:      true,
	}
}

func intPtr(v int) *int {
	return &v
}

func TestOfferRepository_ReserveRespectsCap(t *testing.T) {
	repo := NewOfferRepository(newTestDB(t))
	ctx := context.Background()

	discount := newTestDiscount(intPtr(2))
	require.NoError(t, repo.UpsertDiscount(ctx, discount))

	for range 2 {
		ok, err := repo.ReserveDiscountUse(ctx, discount.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := repo.ReserveDiscountUse(ctx, discount.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.ReleaseDiscountUse(ctx, discount.ID))

	stored, err := repo.FindDiscountByID(ctx, discount.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.UsedCount)
}

func TestOfferRepository_ReserveUncappedAndInactive(t *testing.T) {
	repo := NewOfferRepository(newTestDB(t))
	ctx := context.Background()

	uncapped := newTestDiscount(nil)
	require.NoError(t, repo.UpsertDiscount(ctx, uncapped))
	for range 5 {
		ok, err := repo.ReserveDiscountUse(ctx, uncapped.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	inactive := newTestDiscount(nil)
	inactive.IsActive = false
	require.NoError(t, repo.UpsertDiscount(ctx, inactive))
	ok, err := repo.ReserveDiscountUse(ctx, inactive.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOfferRepository_ReleaseNeverGoesNegative(t *testing.T) {
	repo := NewOfferRepository(newTestDB(t))
	ctx := context.Background()

	discount := newTestDiscount(intPtr(1))
	require.NoError(t, repo.UpsertDiscount(ctx, discount))
	require.NoError(t, repo.ReleaseDiscountUse(ctx, discount.ID))

	stored, err := repo.FindDiscountByID(ctx, discount.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.UsedCount)
}

func TestOfferRepository_ConcurrentReserveOfLastUse(t *testing.T) {
	repo := NewOfferRepository(newTestDB(t))
	ctx := context.Background()

	discount := newTestDiscount(intPtr(1))
	require.NoError(t, repo.UpsertDiscount(ctx, discount))

	const attempts = 2
	results := make([]bool, attempts)
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.ReserveDiscountUse(ctx, discount.ID)
			assert.NoError(t, err)
			results[i] = ok
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, ok := range results {
		if ok {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)

	stored, err := repo.FindDiscountByID(ctx, discount.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.UsedCount)
}

func TestOfferRepository_UpsertDiscountKeepsUsedCount(t *testing.T) {
	repo := NewOfferRepository(newTestDB(t))
	ctx := context.Background()

	discount := newTestDiscount(intPtr(10))
	require.NoError(t, repo.UpsertDiscount(ctx, discount))
	ok, err := repo.ReserveDiscountUse(ctx, discount.ID)
	require.NoError(t, err)
	require.True(t, ok)

	discount.Name = "15% off"
	discount.UsedCount = 0
	require.NoError(t, repo.UpsertDiscount(ctx, discount))

	stored, err := repo.FindDiscountByID(ctx, discount.ID)
	require.NoError(t, err)
	assert.Equal(t, "15% off", stored.Name)
	assert.Equal(t, 1, stored.UsedCount)
}

func TestOfferRepository_ListActive(t *testing.T) {
	repo := NewOfferRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	live := newTestDiscount(nil)
	expired := newTestDiscount(nil)
	expired.ValidUntil = now.Add(-time.Minute)
	require.NoError(t, repo.UpsertDiscount(ctx, live))
	require.NoError(t, repo.UpsertDiscount(ctx, expired))

	require.NoError(t, repo.UpsertAmenity(ctx, &entity.Amenity{
		ID: uuid.New(), Code: "A-1", Name: "Bike wash", TokenCost: 5, IsActive: true, MaxQuantity: intPtr(3),
	}))
	require.NoError(t, repo.UpsertAmenity(ctx, &entity.Amenity{
		ID: uuid.New(), Code: "A-2", Name: "Retired", TokenCost: 5, IsActive: false,
	}))

	discounts, err := repo.ListActiveDiscounts(ctx, now)
	require.NoError(t, err)
	require.Len(t, discounts, 1)
	assert.Equal(t, live.ID, discounts[0].ID)

	amenities, err := repo.ListActiveAmenities(ctx)
	require.NoError(t, err)
	require.Len(t, amenities, 1)
	assert.Equal(t, "Bike wash", amenities[0].Name)
	require.NotNil(t, amenities[0].MaxQuantity)
	assert.Equal(t, 3, *amenities[0].MaxQuantity)

	_, err = repo.FindAmenityByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrAmenityNotFound)
	_, err = repo.FindDiscountByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrDiscountNotFound)
}
