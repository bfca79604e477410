package handler

import (
	"log/slog"
	"net/http"

	"greenlake/internal/delivery/api/response"
	"greenlake/internal/domain/entity"
	"greenlake/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddCartItemRequest represents the request body for adding an item to the cart
type AddCartItemRequest struct {
	ItemType       string          `json:"itemType" validate:"required"`
	ItemID         string          `json:"itemId" validate:"required,uuid"`
	Quantity       int             `json:"quantity" validate:"required,min=1"`
	Price          decimal.Decimal `json:"price"`
	StartDate      Date            `json:"startDate"`
	EndDate        *Date           `json:"endDate,omitempty"`
	AdditionalInfo map[string]any  `json:"additionalInfo,omitempty"`
}

// CheckoutRequest represents the optional request body of a checkout
type CheckoutRequest struct {
	PaymentMethod string          `json:"paymentMethod"`
	Discount      decimal.Decimal `json:"discount"`
}

// GetCart returns the current user's cart
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddItem adds or updates a cart item. Unavailable hotels and vehicles answer 400.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req AddCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	itemID, err := parseID(req.ItemID, "item id")
	if err != nil {
		return err
	}
	itemType, _ := entity.ParseItemType(req.ItemType)

	item, err := h.cartUC.AddItem(c.Request().Context(), userID, usecase.AddCartItemInput{
		ItemType:       itemType,
		ItemID:         itemID,
		Quantity:       req.Quantity,
		Price:          req.Price,
		StartDate:      req.StartDate.Time,
		EndDate:        req.EndDate.timePtr(),
		AdditionalInfo: req.AdditionalInfo,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, item)
}

// RemoveItem removes the cart item named by ?itemId=
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	cartItemID, err := parseID(c.QueryParam("itemId"), "itemId")
	if err != nil {
		return err
	}

	item, err := h.cartUC.RemoveItem(c.Request().Context(), userID, cartItemID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, item)
}

// ClearCart empties the current user's cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), userID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Checkout turns the cart into an order
func (h *CartHandler) Checkout(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CheckoutRequest
	if c.Request().ContentLength != 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
	}

	order, err := h.cartUC.Checkout(c.Request().Context(), userID, usecase.CheckoutInput{
		PaymentMethod: req.PaymentMethod,
		Discount:      req.Discount,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, order)
}
