package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "greenlake/internal/delivery/context"
	"greenlake/internal/domain/entity"
	domainerrors "greenlake/internal/domain/errors"
	"greenlake/internal/domain/repository"
	"greenlake/internal/domain/service"
	"greenlake/internal/errors"
	"greenlake/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	orderRepo    repository.OrderRepository
	availability usecase.AvailabilityUsecase
	settlement   *tokenSettlement
	logger       *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	OrderRepo    repository.OrderRepository
	Availability usecase.AvailabilityUsecase
	Ledger       service.TokenLedger
	Custody      service.WalletCustody
	Logger       *slog.Logger
}

// NewOrderService creates the order settlement service.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		orderRepo:    params.OrderRepo,
		availability: params.Availability,
		settlement: &tokenSettlement{
			ledger:  params.Ledger,
			custody: params.Custody,
		},
		logger: params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder stores the order as supplied. A positive discount is paid for in tokens
// before the order is written.
func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input usecase.CreateOrderInput) (*entity.Order, error) {
	order, err := buildOrder(userID, input)
	if err != nil {
		return nil, err
	}

	if err := srv.checkVehicleLines(ctx, order, input.ClearCartID); err != nil {
		return nil, err
	}

	persist := func() error {
		return srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
			if err := txRepoFactory.NewOrderRepository().CreateOrder(ctx, order); err != nil {
				return errors.Wrap(err, "failed to create order")
			}
			if input.ClearCartID != uuid.Nil {
				if err := txRepoFactory.NewCartRepository().ClearItems(ctx, input.ClearCartID); err != nil {
					return errors.Wrap(err, "failed to clear cart")
				}
			}

			return nil
		})
	}

	if order.TokensUsed == 0 {
		if err := persist(); err != nil {
			srv.log(ctx).Error("Failed to create order", slog.String("user_id", userID.String()), slog.Any("error", err))

			return nil, err
		}

		return order, nil
	}

	p, err := srv.settlement.payerFor(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, err
	}

	_, err = srv.settlement.charge(ctx, srv.log(ctx), p, order.TokensUsed, func(receipt *service.Receipt) error {
		order.BurnTxHash = receipt.TransactionHash

		return persist()
	})
	if err != nil {
		srv.log(ctx).Warn("Order settlement failed",
			slog.String("user_id", userID.String()),
			slog.Int64("tokens", order.TokensUsed),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.String("order_id", order.ID.String()),
		slog.Int64("tokens_used", order.TokensUsed),
		slog.String("burn_tx", order.BurnTxHash),
	)

	return order, nil
}

// ListOrders returns the user's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// CancelOrder cancels a confirmed order. Burnt tokens stay burnt.
func (srv *orderService) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "failed to cancel order")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	// Other users' orders are reported as missing
	if order.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "failed to cancel order")
	}
	if order.Status != entity.OrderStatusConfirmed {
		return nil, errors.Wrap(domainerrors.ErrOrderNotCancellable, "order is not confirmed")
	}

	err = srv.orderRepo.UpdateOrderStatus(ctx, orderID, entity.OrderStatusConfirmed, entity.OrderStatusCancelled)
	if err != nil {
		if errors.Is(err, repository.ErrOrderStatusConflict) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotCancellable, "order changed concurrently")
		}

		return nil, errors.Wrap(err, "failed to cancel order")
	}

	order.Status = entity.OrderStatusCancelled
	srv.log(ctx).Info("Order cancelled", slog.String("order_id", orderID.String()))

	return order, nil
}

// checkVehicleLines rejects an order whose vehicle lines overlap a booking held by
// another cart or a live order. The cart being checked out is not a conflict.
func (srv *orderService) checkVehicleLines(ctx context.Context, order *entity.Order, cartID uuid.UUID) error {
	for _, line := range order.Items {
		if line.ItemType != entity.ItemTypeVehicle {
			continue
		}

		ok, err := srv.availability.CheckVehicleAvailability(ctx, line.ItemID, line.StartDate, line.EndDate, cartID)
		if err != nil {
			return err
		}
		if !ok {
			return domainerrors.NewAvailabilityError(domainerrors.AvailabilityVehicleBooked, "vehicle is already booked for the selected dates")
		}
	}

	return nil
}

func buildOrder(userID uuid.UUID, input usecase.CreateOrderInput) (*entity.Order, error) {
	if input.TotalAmount.IsNegative() {
		return nil, domainerrors.NewValidationError("total amount must not be negative")
	}
	if input.Discount.IsNegative() {
		return nil, domainerrors.NewValidationError("discount must not be negative")
	}
	if input.Discount.GreaterThan(input.TotalAmount) {
		return nil, domainerrors.NewValidationError("discount exceeds total amount")
	}
	if !input.OrderType.IsValidOrderType() {
		return nil, domainerrors.NewValidationError("unknown order type " + string(input.OrderType))
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerrors.NewValidationError("end date is before start date")
	}

	tokensUsed, ok := entity.TokensForDiscount(input.Discount)
	if !ok {
		return nil, domainerrors.NewValidationError("discount is too large")
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	order := &entity.Order{
		ID:             uuid.New(),
		UserID:         userID,
		TotalAmount:    input.TotalAmount,
		Discount:       input.Discount,
		TokensUsed:     tokensUsed,
		OrderType:      input.OrderType,
		ItemID:         input.ItemID,
		Quantity:       quantity,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		AdditionalInfo: input.AdditionalInfo,
		PaymentMethod:  input.PaymentMethod,
		Status:         entity.OrderStatusConfirmed,
	}

	order.Items = input.Lines
	if len(order.Items) == 0 {
		if line := singleLine(order); line != nil {
			order.Items = []*entity.OrderItem{line}
		}
	}

	return order, nil
}

// singleLine derives the booked line of a direct single-item order
func singleLine(order *entity.Order) *entity.OrderItem {
	if order.ItemID == nil || !order.OrderType.IsBookable() {
		return nil
	}

	var start, end time.Time
	if order.StartDate != nil {
		start = *order.StartDate
		end = start
	}
	if order.EndDate != nil {
		end = *order.EndDate
	}

	return &entity.OrderItem{
		ItemType:  order.OrderType,
		ItemID:    *order.ItemID,
		Quantity:  order.Quantity,
		Price:     order.TotalAmount,
		StartDate: start,
		EndDate:   end,
	}
}
