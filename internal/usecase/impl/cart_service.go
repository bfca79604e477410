package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "greenlake/internal/delivery/context"
	"greenlake/internal/domain/entity"
	domainerrors "greenlake/internal/domain/errors"
	"greenlake/internal/domain/repository"
	"greenlake/internal/errors"
	"greenlake/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo     repository.CartRepository
	availability usecase.AvailabilityUsecase
	orders       usecase.OrderUsecase
	logger       *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo     repository.CartRepository
	Availability usecase.AvailabilityUsecase
	Orders       usecase.OrderUsecase
	Logger       *slog.Logger
}

// NewCartService creates the cart manager.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:     params.CartRepo,
		availability: params.Availability,
		orders:       params.Orders,
		logger:       params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's cart, creating an empty one on first use.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindCartByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	cart = &entity.Cart{ID: uuid.New(), UserID: userID, Items: []*entity.CartItem{}}
	err = srv.cartRepo.CreateCart(ctx, cart)
	if errors.Is(err, repository.ErrCartAlreadyExists) {
		// Lost a race with a concurrent first request
		cart, err = srv.cartRepo.FindCartByUserID(ctx, userID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	srv.log(ctx).Debug("Cart created", slog.String("user_id", userID.String()))

	return cart, nil
}

// AddItem runs the availability checker for hotels and vehicles, then upserts the line.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input usecase.AddCartItemInput) (*entity.CartItem, error) {
	item, err := buildCartItem(input)
	if err != nil {
		return nil, err
	}

	cart, err := srv.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	item.CartID = cart.ID

	if err := srv.checkAvailability(ctx, cart, item); err != nil {
		return nil, err
	}

	stored, err := srv.cartRepo.UpsertItem(ctx, item)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}

	srv.log(ctx).Info("Cart item saved",
		slog.String("cart_id", cart.ID.String()),
		slog.String("item_type", string(stored.ItemType)),
		slog.String("item_id", stored.ItemID.String()),
	)

	return stored, nil
}

func (srv *cartService) checkAvailability(ctx context.Context, cart *entity.Cart, item *entity.CartItem) error {
	if !item.ItemType.RequiresAvailabilityCheck() {
		return nil
	}

	switch item.ItemType {
	case entity.ItemTypeHotel:
		ok, err := srv.availability.CheckHotelAvailability(ctx, item.ItemID, item.StartDate, item.EndDate, item.Guests())
		if err != nil {
			return err
		}
		if !ok {
			return domainerrors.NewAvailabilityError(domainerrors.AvailabilityHotelFull, "hotel has no rooms left for the selected dates")
		}

	case entity.ItemTypeVehicle:
		// Re-adding the same vehicle updates the caller's line, so their own cart is not a conflict
		ok, err := srv.availability.CheckVehicleAvailability(ctx, item.ItemID, item.StartDate, item.EndDate, cart.ID)
		if err != nil {
			return err
		}
		if !ok {
			return domainerrors.NewAvailabilityError(domainerrors.AvailabilityVehicleBooked, "vehicle is already booked for the selected dates")
		}
	}

	return nil
}

// RemoveItem deletes one line of the caller's cart.
func (srv *cartService) RemoveItem(ctx context.Context, userID, cartItemID uuid.UUID) (*entity.CartItem, error) {
	cart, err := srv.cartRepo.FindCartByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCartItemNotFound, "user has no cart")
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	item, err := srv.cartRepo.RemoveItem(ctx, cart.ID, cartItemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCartItemNotFound, "failed to remove cart item")
		}

		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return item, nil
}

// ClearCart empties the cart. A missing cart is already empty.
func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	cart, err := srv.cartRepo.FindCartByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find cart")
	}

	if err := srv.cartRepo.ClearItems(ctx, cart.ID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// Checkout turns the cart into one order. The cart is emptied together with the order insert.
func (srv *cartService) Checkout(ctx context.Context, userID uuid.UUID, input usecase.CheckoutInput) (*entity.Order, error) {
	cart, err := srv.cartRepo.FindCartByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCartEmpty, "user has no cart")
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}
	if len(cart.Items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrCartEmpty, "nothing to check out")
	}

	orderInput := checkoutOrderInput(cart, input)

	order, err := srv.orders.CreateOrder(ctx, userID, orderInput)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Cart checked out",
		slog.String("cart_id", cart.ID.String()),
		slog.String("order_id", order.ID.String()),
		slog.Int("items", len(cart.Items)),
	)

	return order, nil
}

func buildCartItem(input usecase.AddCartItemInput) (*entity.CartItem, error) {
	if !input.ItemType.IsBookable() {
		return nil, domainerrors.NewValidationError("unknown item type " + string(input.ItemType))
	}
	if input.ItemID == uuid.Nil {
		return nil, domainerrors.NewValidationError("item id is required")
	}
	if input.Quantity < 1 {
		return nil, domainerrors.NewValidationError("quantity must be at least 1")
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.NewValidationError("price must not be negative")
	}
	if input.StartDate.IsZero() {
		return nil, domainerrors.NewValidationError("start date is required")
	}

	end := input.StartDate
	if input.EndDate != nil {
		end = *input.EndDate
	}
	if end.Before(input.StartDate) {
		return nil, domainerrors.NewValidationError("end date is before start date")
	}

	return &entity.CartItem{
		ID:             uuid.New(),
		ItemType:       input.ItemType,
		ItemID:         input.ItemID,
		Quantity:       input.Quantity,
		Price:          input.Price,
		StartDate:      input.StartDate,
		EndDate:        end,
		AdditionalInfo: input.AdditionalInfo,
	}, nil
}

// checkoutOrderInput assembles the order from the cart lines
func checkoutOrderInput(cart *entity.Cart, input usecase.CheckoutInput) usecase.CreateOrderInput {
	orderType := cart.Items[0].ItemType
	lines := make([]*entity.OrderItem, 0, len(cart.Items))
	breakdown := make([]any, 0, len(cart.Items))
	start, end := cart.Items[0].StartDate, cart.Items[0].EndDate

	for _, item := range cart.Items {
		if item.ItemType != orderType {
			orderType = entity.OrderTypeMultiple
		}
		if item.StartDate.Before(start) {
			start = item.StartDate
		}
		if item.EndDate.After(end) {
			end = item.EndDate
		}

		lines = append(lines, &entity.OrderItem{
			ItemType:  item.ItemType,
			ItemID:    item.ItemID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			StartDate: item.StartDate,
			EndDate:   item.EndDate,
		})
		breakdown = append(breakdown, map[string]any{
			"itemType":       string(item.ItemType),
			"itemId":         item.ItemID.String(),
			"quantity":       item.Quantity,
			"price":          item.Price.String(),
			"startDate":      item.StartDate.Format(time.DateOnly),
			"endDate":        item.EndDate.Format(time.DateOnly),
			"additionalInfo": item.AdditionalInfo,
		})
	}

	orderInput := usecase.CreateOrderInput{
		TotalAmount:    cart.Total(),
		OrderType:      orderType,
		Quantity:       1,
		StartDate:      &start,
		EndDate:        &end,
		AdditionalInfo: map[string]any{"items": breakdown},
		PaymentMethod:  input.PaymentMethod,
		Discount:       input.Discount,
		Lines:          lines,
		ClearCartID:    cart.ID,
	}

	if len(cart.Items) == 1 {
		only := cart.Items[0]
		itemID := only.ItemID
		orderInput.ItemID = &itemID
		orderInput.Quantity = only.Quantity
	}

	return orderInput
}
