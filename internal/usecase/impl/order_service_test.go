package impl

import (
	"context"
	"testing"

	"greenlake/internal/domain/entity"
	domainerrors "greenlake/internal/domain/errors"
	"greenlake/internal/domain/repository"
	mockRepo "greenlake/internal/mocks/repository"
	mockSvc "greenlake/internal/mocks/service"
	mockUsecase "greenlake/internal/mocks/usecase"
	"greenlake/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service      usecase.OrderUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	orderRepo    *mockRepo.MockOrderRepository
	availability *mockUsecase.MockAvailabilityUsecase
	ledger       *mockSvc.MockTokenLedger
	custody      *mockSvc.MockWalletCustody
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	availability := mockUsecase.NewMockAvailabilityUsecase(t)
	ledger := mockSvc.NewMockTokenLedger(t)
	custody := mockSvc.NewMockWalletCustody(t)

	srv := NewOrderService(OrderServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		OrderRepo:    orderRepo,
		Availability: availability,
		Ledger:       ledger,
		Custody:      custody,
		Logger:       newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:      srv,
		txManager:    txManager,
		userRepo:     userRepo,
		orderRepo:    orderRepo,
		availability: availability,
		ledger:       ledger,
		custody:      custody,
	}
}

// expectOrderTx runs the transaction body against fresh repositories. createErr is
// returned by CreateOrder; clearCartID, when set, must be cleared in the same transaction.
func expectOrderTx(t *testing.T, fx orderServiceFixtures, createErr error, clearCartID uuid.UUID) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txOrders := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().NewOrderRepository().Return(txOrders)
			txOrders.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(createErr)

			if createErr == nil && clearCartID != uuid.Nil {
				txCarts := mockRepo.NewMockCartRepository(t)
				factory.EXPECT().NewCartRepository().Return(txCarts)
				txCarts.EXPECT().ClearItems(ctx, clearCartID).Return(nil)
			}

			return fn(factory)
		})
}

func TestOrderService_CreateOrder_WithoutDiscount(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	start := date(2025, 7, 1)
	fx.availability.EXPECT().CheckVehicleAvailability(ctx, itemID, start, start, uuid.Nil).Return(true, nil)
	expectOrderTx(t, fx, nil, uuid.Nil)

	order, err := fx.service.CreateOrder(ctx, userID, usecase.CreateOrderInput{
		TotalAmount: decimal.NewFromInt(120),
		OrderType:   entity.ItemTypeVehicle,
		ItemID:      &itemID,
		StartDate:   &start,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, order.Status)
	assert.Equal(t, int64(0), order.TokensUsed)
	assert.Equal(t, 1, order.Quantity)
	require.Len(t, order.Items, 1)
	assert.Equal(t, itemID, order.Items[0].ItemID)
	assert.Equal(t, start, order.Items[0].EndDate)
}

func TestOrderService_CreateOrder_VehicleAlreadyBooked(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	itemID := uuid.New()
	start, end := date(2025, 7, 1), date(2025, 7, 3)
	fx.availability.EXPECT().CheckVehicleAvailability(ctx, itemID, start, end, uuid.Nil).Return(false, nil)

	order, err := fx.service.CreateOrder(ctx, uuid.New(), usecase.CreateOrderInput{
		TotalAmount: decimal.NewFromInt(120),
		OrderType:   entity.ItemTypeVehicle,
		ItemID:      &itemID,
		StartDate:   &start,
		EndDate:     &end,
	})

	assert.Nil(t, order)
	var availabilityErr *domainerrors.AvailabilityError
	require.ErrorAs(t, err, &availabilityErr)
	assert.Equal(t, domainerrors.AvailabilityVehicleBooked, availabilityErr.ErrorCode())
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_CheckoutIgnoresOwnCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	cartID := uuid.New()
	vehicleID := uuid.New()
	start, end := date(2025, 7, 1), date(2025, 7, 2)
	fx.availability.EXPECT().CheckVehicleAvailability(ctx, vehicleID, start, end, cartID).Return(true, nil)
	expectOrderTx(t, fx, nil, cartID)

	_, err := fx.service.CreateOrder(ctx, uuid.New(), usecase.CreateOrderInput{
		TotalAmount: decimal.NewFromInt(80),
		OrderType:   entity.OrderTypeMultiple,
		Lines: []*entity.OrderItem{
			{ItemType: entity.ItemTypeService, ItemID: uuid.New(), Quantity: 1, StartDate: start, EndDate: start},
			{ItemType: entity.ItemTypeVehicle, ItemID: vehicleID, Quantity: 1, StartDate: start, EndDate: end},
		},
		ClearCartID: cartID,
	})

	require.NoError(t, err)
}

func TestOrderService_CreateOrder_BurnsDiscountTokens(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newWalletUser("0xabc")
	signer := mockSvc.NewMockSigner(t)
	cartID := uuid.New()

	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.custody.EXPECT().SignerFor(user).Return(signer, nil)
	signer.EXPECT().Address().Return("0xabc")
	fx.ledger.EXPECT().Balance(ctx, "0xabc").Return(decimal.NewFromInt(100), nil)
	fx.ledger.EXPECT().Burn(ctx, signer, int64(57)).Return(newReceipt("0xburn", 57), nil)
	expectOrderTx(t, fx, nil, cartID)

	order, err := fx.service.CreateOrder(ctx, user.ID, usecase.CreateOrderInput{
		TotalAmount: decimal.NewFromInt(300),
		Discount:    decimal.RequireFromString("5.79"),
		OrderType:   entity.OrderTypeMultiple,
		ClearCartID: cartID,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(57), order.TokensUsed)
	assert.Equal(t, "0xburn", order.BurnTxHash)
}

func TestOrderService_CreateOrder_InsufficientTokens(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newWalletUser("0xabc")
	signer := mockSvc.NewMockSigner(t)

	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.custody.EXPECT().SignerFor(user).Return(signer, nil)
	signer.EXPECT().Address().Return("0xabc")
	fx.ledger.EXPECT().Balance(ctx, "0xabc").Return(decimal.NewFromInt(10), nil)

	order, err := fx.service.CreateOrder(ctx, user.ID, usecase.CreateOrderInput{
		TotalAmount: decimal.NewFromInt(100),
		Discount:    decimal.NewFromInt(2),
		OrderType:   entity.ItemTypeService,
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientTokens)
}

func TestOrderService_CreateOrder_RefundsWhenPersistFails(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newWalletUser("0xabc")
	signer := mockSvc.NewMockSigner(t)

	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.custody.EXPECT().SignerFor(user).Return(signer, nil)
	signer.EXPECT().Address().Return("0xabc")
	fx.ledger.EXPECT().Balance(ctx, "0xabc").Return(decimal.NewFromInt(100), nil)
	fx.ledger.EXPECT().Burn(ctx, signer, int64(20)).Return(newReceipt("0xburn", 20), nil)
	expectOrderTx(t, fx, errors.New("disk full"), uuid.Nil)
	fx.ledger.EXPECT().Mint(mock.Anything, "0xabc", int64(20)).Return(newReceipt("0xrefund", 20), nil)

	order, err := fx.service.CreateOrder(ctx, user.ID, usecase.CreateOrderInput{
		TotalAmount: decimal.NewFromInt(100),
		Discount:    decimal.NewFromInt(2),
		OrderType:   entity.ItemTypeService,
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestOrderService_CreateOrder_BurnFailureWritesNothing(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := newWalletUser("0xabc")
	signer := mockSvc.NewMockSigner(t)

	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.custody.EXPECT().SignerFor(user).Return(signer, nil)
	signer.EXPECT().Address().Return("0xabc")
	fx.ledger.EXPECT().Balance(ctx, "0xabc").Return(decimal.NewFromInt(100), nil)
	fx.ledger.EXPECT().Burn(ctx, signer, int64(10)).Return(nil, errors.New("reverted"))

	_, err := fx.service.CreateOrder(ctx, user.ID, usecase.CreateOrderInput{
		TotalAmount: decimal.NewFromInt(100),
		Discount:    decimal.NewFromInt(1),
		OrderType:   entity.ItemTypeService,
	})

	assert.ErrorIs(t, err, domainerrors.ErrBurnFailed)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_DiscountWithoutWallet(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)

	_, err := fx.service.CreateOrder(ctx, user.ID, usecase.CreateOrderInput{
		TotalAmount: decimal.NewFromInt(100),
		Discount:    decimal.NewFromInt(1),
		OrderType:   entity.ItemTypeService,
	})

	assert.ErrorIs(t, err, domainerrors.ErrWalletRequired)
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.CreateOrderInput
	}{
		{name: "negative total", input: usecase.CreateOrderInput{TotalAmount: decimal.NewFromInt(-1), OrderType: entity.ItemTypeHotel}},
		{name: "discount above total", input: usecase.CreateOrderInput{TotalAmount: decimal.NewFromInt(10), Discount: decimal.NewFromInt(11), OrderType: entity.ItemTypeHotel}},
		{name: "unknown type", input: usecase.CreateOrderInput{TotalAmount: decimal.NewFromInt(10), OrderType: "FLIGHT"}},
		{
			name: "discount tokens overflow",
			input: usecase.CreateOrderInput{
				TotalAmount: decimal.RequireFromString("1844674407370955161"),
				Discount:    decimal.RequireFromString("1844674407370955160.6"),
				OrderType:   entity.ItemTypeService,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			_, err := fx.service.CreateOrder(context.Background(), uuid.New(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestOrderService_CancelOrder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("confirmed order", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := &entity.Order{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusConfirmed}
		fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
		fx.orderRepo.EXPECT().
			UpdateOrderStatus(ctx, order.ID, entity.OrderStatusConfirmed, entity.OrderStatusCancelled).
			Return(nil)

		got, err := fx.service.CancelOrder(ctx, userID, order.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCancelled, got.Status)
	})

	t.Run("another user's order", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderStatusConfirmed}
		fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

		_, err := fx.service.CancelOrder(ctx, userID, order.ID)

		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})

	t.Run("already cancelled", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := &entity.Order{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusCancelled}
		fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

		_, err := fx.service.CancelOrder(ctx, userID, order.ID)

		assert.ErrorIs(t, err, domainerrors.ErrOrderNotCancellable)
	})

	t.Run("cancelled concurrently", func(t *testing.T) {
		fx := createTestOrderService(t)
		order := &entity.Order{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusConfirmed}
		fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
		fx.orderRepo.EXPECT().
			UpdateOrderStatus(ctx, order.ID, entity.OrderStatusConfirmed, entity.OrderStatusCancelled).
			Return(repository.ErrOrderStatusConflict)

		_, err := fx.service.CancelOrder(ctx, userID, order.ID)

		assert.ErrorIs(t, err, domainerrors.ErrOrderNotCancellable)
	})
}
