package postgres

import (
	"context"
	"testing"

	"greenlake/internal/domain/entity"
	"greenlake/internal/domain/repository"
	"greenlake/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()
	userID := uuid.New()

	cart := &entity.Cart{UserID: userID}
	require.NoError(t, NewCartRepository(db).CreateCart(ctx, cart))

	order := &entity.Order{
		UserID:      userID,
		TotalAmount: decimal.NewFromInt(10),
		OrderType:   entity.ItemTypeService,
		Quantity:    1,
		Status:      entity.OrderStatusConfirmed,
	}

	errBoom := errors.New("boom")
	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			return err
		}

		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	orders, err := NewOrderRepository(db).ListOrdersByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, orders)

	order.ID = uuid.Nil
	err = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			return err
		}

		return factory.NewCartRepository().ClearItems(ctx, cart.ID)
	})
	require.NoError(t, err)

	orders, err = NewOrderRepository(db).ListOrdersByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
