package postgres

import (
	"context"
	"testing"
	"time"

	"greenlake/internal/domain/entity"
	"greenlake/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCart(t *testing.T, repo repository.CartRepository) *entity.Cart {
	t.Helper()

	cart := &entity.Cart{UserID: uuid.New()}
	require.NoError(t, repo.CreateCart(context.Background(), cart))

	return cart
}

func vehicleItem(cartID, vehicleID uuid.UUID, start, end time.Time) *entity.CartItem {
	return &entity.CartItem{
		CartID:    cartID,
		ItemType:  entity.ItemTypeVehicle,
		ItemID:    vehicleID,
		Quantity:  1,
		Price:     decimal.NewFromInt(30),
		StartDate: start,
		EndDate:   end,
	}
}

func TestCartRepository_CreateCartOncePerUser(t *testing.T) {
	repo := NewCartRepository(newTestDB(t))
	ctx := context.Background()

	cart := createTestCart(t, repo)

	err := repo.CreateCart(ctx, &entity.Cart{UserID: cart.UserID})
	assert.ErrorIs(t, err, repository.ErrCartAlreadyExists)

	found, err := repo.FindCartByUserID(ctx, cart.UserID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, found.ID)
	assert.Empty(t, found.Items)

	_, err = repo.FindCartByUserID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
}

func TestCartRepository_UpsertItemLastWriteWins(t *testing.T) {
	repo := NewCartRepository(newTestDB(t))
	ctx := context.Background()
	cart := createTestCart(t, repo)
	hotelID := uuid.New()

	first, err := repo.UpsertItem(ctx, &entity.CartItem{
		CartID:         cart.ID,
		ItemType:       entity.ItemTypeHotel,
		ItemID:         hotelID,
		Quantity:       2,
		Price:          decimal.NewFromInt(180),
		StartDate:      day(2026, time.August, 1),
		EndDate:        day(2026, time.August, 3),
		AdditionalInfo: map[string]any{"guests": 2},
	})
	require.NoError(t, err)

	second, err := repo.UpsertItem(ctx, &entity.CartItem{
		CartID:         cart.ID,
		ItemType:       entity.ItemTypeHotel,
		ItemID:         hotelID,
		Quantity:       3,
		Price:          decimal.NewFromInt(270),
		StartDate:      day(2026, time.August, 2),
		EndDate:        day(2026, time.August, 5),
		AdditionalInfo: map[string]any{"guests": 3},
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	found, err := repo.FindCartByUserID(ctx, cart.UserID)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)

	item := found.Items[0]
	assert.Equal(t, 3, item.Quantity)
	assert.True(t, decimal.NewFromInt(270).Equal(item.Price))
	assert.True(t, day(2026, time.August, 5).Equal(item.EndDate))
	assert.Equal(t, 3, item.Guests())
}

func TestCartRepository_RemoveAndClear(t *testing.T) {
	repo := NewCartRepository(newTestDB(t))
	ctx := context.Background()
	cart := createTestCart(t, repo)
	other := createTestCart(t, repo)

	item, err := repo.UpsertItem(ctx, vehicleItem(cart.ID, uuid.New(), day(2026, time.May, 1), day(2026, time.May, 2)))
	require.NoError(t, err)
	_, err = repo.UpsertItem(ctx, vehicleItem(cart.ID, uuid.New(), day(2026, time.May, 1), day(2026, time.May, 2)))
	require.NoError(t, err)

	// Another user's cart cannot remove the row.
	_, err = repo.RemoveItem(ctx, other.ID, item.ID)
	assert.ErrorIs(t, err, repository.ErrCartItemNotFound)

	removed, err := repo.RemoveItem(ctx, cart.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, removed.ID)

	_, err = repo.RemoveItem(ctx, cart.ID, item.ID)
	assert.ErrorIs(t, err, repository.ErrCartItemNotFound)

	require.NoError(t, repo.ClearItems(ctx, cart.ID))
	found, err := repo.FindCartByUserID(ctx, cart.UserID)
	require.NoError(t, err)
	assert.Empty(t, found.Items)
}

func TestCartRepository_CountOverlappingVehicleItems(t *testing.T) {
	repo := NewCartRepository(newTestDB(t))
	ctx := context.Background()
	mine := createTestCart(t, repo)
	theirs := createTestCart(t, repo)
	vehicleID := uuid.New()

	_, err := repo.UpsertItem(ctx, vehicleItem(theirs.ID, vehicleID, day(2026, time.June, 10), day(2026, time.June, 12)))
	require.NoError(t, err)
	_, err = repo.UpsertItem(ctx, vehicleItem(mine.ID, vehicleID, day(2026, time.June, 1), day(2026, time.June, 2)))
	require.NoError(t, err)

	tests := []struct {
		name     string
		from, to time.Time
		exclude  uuid.UUID
		want     int64
	}{
		{name: "intersects other cart", from: day(2026, time.June, 12), to: day(2026, time.June, 14), exclude: mine.ID, want: 1},
		{name: "touching end day counts", from: day(2026, time.June, 9), to: day(2026, time.June, 10), exclude: mine.ID, want: 1},
		{name: "disjoint", from: day(2026, time.June, 13), to: day(2026, time.June, 20), exclude: mine.ID, want: 0},
		{name: "own cart ignored", from: day(2026, time.June, 1), to: day(2026, time.June, 2), exclude: mine.ID, want: 0},
		{name: "own cart counted for others", from: day(2026, time.June, 1), to: day(2026, time.June, 2), exclude: theirs.ID, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.CountOverlappingVehicleItems(ctx, vehicleID, tt.from, tt.to, tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
