package handler

import (
	"net/http"

	"greenlake/internal/delivery/api/response"
	"greenlake/internal/domain/entity"
	"greenlake/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(orderUC usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

// CreateOrderRequest represents the request body of a direct order
type CreateOrderRequest struct {
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	OrderType      string          `json:"orderType" validate:"required"`
	ItemID         *string         `json:"itemId,omitempty" validate:"omitempty,uuid"`
	Quantity       int             `json:"quantity" validate:"min=0"`
	StartDate      *Date           `json:"startDate,omitempty"`
	EndDate        *Date           `json:"endDate,omitempty"`
	AdditionalInfo map[string]any  `json:"additionalInfo,omitempty"`
	PaymentMethod  string          `json:"paymentMethod"`
	Discount       decimal.Decimal `json:"discount"`
}

// ListOrders lists the current user's orders, newest first
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orders)
}

// CreateOrder stores a direct order. The caller supplies the totals.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var itemID *uuid.UUID
	if req.ItemID != nil {
		id, err := parseID(*req.ItemID, "item id")
		if err != nil {
			return err
		}
		itemID = &id
	}
	orderType, _ := entity.ParseItemType(req.OrderType)

	order, err := h.orderUC.CreateOrder(c.Request().Context(), userID, usecase.CreateOrderInput{
		TotalAmount:    req.TotalAmount,
		OrderType:      orderType,
		ItemID:         itemID,
		Quantity:       req.Quantity,
		StartDate:      req.StartDate.timePtr(),
		EndDate:        req.EndDate.timePtr(),
		AdditionalInfo: req.AdditionalInfo,
		PaymentMethod:  req.PaymentMethod,
		Discount:       req.Discount,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, order)
}

// CancelOrder cancels one of the current user's confirmed orders
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	orderID, err := parseID(c.Param("id"), "order id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.CancelOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order)
}
