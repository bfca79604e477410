package handler

import (
	"log/slog"
	"net/http"

	"greenlake/internal/delivery/api/response"
	"greenlake/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RewardHandlerParams holds dependencies for RewardHandler, injected by Fx.
type RewardHandlerParams struct {
	fx.In

	RewardUC usecase.RewardUsecase
	Logger   *slog.Logger
}

// RewardHandler serves the token-funded redemption endpoints
type RewardHandler struct {
	rewardUC usecase.RewardUsecase
	logger   *slog.Logger
}

// NewRewardHandler is the constructor for RewardHandler
func NewRewardHandler(params RewardHandlerParams) *RewardHandler {
	return &RewardHandler{
		rewardUC: params.RewardUC,
		logger:   params.Logger,
	}
}

// RedeemDiscountRequest represents the request body for redeeming a discount
type RedeemDiscountRequest struct {
	DiscountID string `json:"discountId" validate:"required,uuid"`
}

// PurchaseAmenityRequest represents the request body for buying an amenity.
// A zero quantity means one.
type PurchaseAmenityRequest struct {
	AmenityID string `json:"amenityId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"min=0"`
}

// RedeemDiscount burns the discount's token cost and issues a redemption code
func (h *RewardHandler) RedeemDiscount(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req RedeemDiscountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	discountID, err := parseID(req.DiscountID, "discountId")
	if err != nil {
		return err
	}

	result, err := h.rewardUC.RedeemDiscount(c.Request().Context(), userID, discountID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result)
}

// PurchaseAmenity burns tokenCost * quantity and issues a redemption code
func (h *RewardHandler) PurchaseAmenity(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req PurchaseAmenityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	amenityID, err := parseID(req.AmenityID, "amenityId")
	if err != nil {
		return err
	}

	result, err := h.rewardUC.PurchaseAmenity(c.Request().Context(), userID, amenityID, req.Quantity)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result)
}

// ListRedemptions lists the current user's discount redemptions and amenity purchases
func (h *RewardHandler) ListRedemptions(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	redemptions, err := h.rewardUC.ListRedemptions(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, redemptions)
}

// RedemptionQRCode renders one of the current user's codes as a PNG
func (h *RewardHandler) RedemptionQRCode(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	png, err := h.rewardUC.RedemptionQRCode(c.Request().Context(), userID, c.Param("code"))
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// UseRedemption checks a code off at the point of sale
func (h *RewardHandler) UseRedemption(c echo.Context) error {
	if _, err := currentUserID(c); err != nil {
		return err
	}

	redemption, err := h.rewardUC.UseRedemption(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}

	h.logger.Info("Redemption used",
		slog.String("redemption_id", redemption.ID.String()),
		slog.String("kind", string(redemption.Kind)),
	)

	return response.Success(c, http.StatusOK, redemption)
}
