package handler

import (
	"net/http"

	"greenlake/internal/delivery/api/response"
	"greenlake/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the public catalog.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(catalogUC usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// ListHotels lists hotels, optionally filtered by ?city=
func (h *CatalogHandler) ListHotels(c echo.Context) error {
	hotels, err := h.catalogUC.ListHotels(c.Request().Context(), c.QueryParam("city"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, hotels)
}

func (h *CatalogHandler) GetHotel(c echo.Context) error {
	hotelID, err := parseID(c.Param("id"), "hotel id")
	if err != nil {
		return err
	}

	hotel, err := h.catalogUC.GetHotel(c.Request().Context(), hotelID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, hotel)
}

func (h *CatalogHandler) ListVehicles(c echo.Context) error {
	vehicles, err := h.catalogUC.ListVehicles(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, vehicles)
}

func (h *CatalogHandler) ListRoutes(c echo.Context) error {
	routes, err := h.catalogUC.ListRoutes(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, routes)
}

func (h *CatalogHandler) ListServices(c echo.Context) error {
	services, err := h.catalogUC.ListServices(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, services)
}

// ListDiscounts lists the discounts redeemable right now
func (h *CatalogHandler) ListDiscounts(c echo.Context) error {
	discounts, err := h.catalogUC.ListActiveDiscounts(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, discounts)
}

func (h *CatalogHandler) ListAmenities(c echo.Context) error {
	amenities, err := h.catalogUC.ListActiveAmenities(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, amenities)
}
