// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"greenlake/internal/delivery/api/middleware"
	"greenlake/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	RewardHandler  *handler.RewardHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	rewardHandler  *handler.RewardHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		catalogHandler: params.CatalogHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		rewardHandler:  params.RewardHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	apiV1 := e.Group("/api/v1")

	// Public routes
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	apiV1.GET("/hotels", r.catalogHandler.ListHotels)
	apiV1.GET("/hotels/:id", r.catalogHandler.GetHotel)
	apiV1.GET("/vehicles", r.catalogHandler.ListVehicles)
	apiV1.GET("/routes", r.catalogHandler.ListRoutes)
	apiV1.GET("/services", r.catalogHandler.ListServices)
	apiV1.GET("/discounts", r.catalogHandler.ListDiscounts)
	apiV1.GET("/amenities", r.catalogHandler.ListAmenities)

	// Everything below requires a bearer token
	walletGroup := apiV1.Group("/wallet", r.authMiddleware.Authenticate)
	{
		walletGroup.POST("", r.userHandler.CreateWallet)
		walletGroup.GET("/balance", r.userHandler.Balance)
	}

	cartGroup := apiV1.Group("/cart", r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("", r.cartHandler.AddItem)
		cartGroup.DELETE("", r.cartHandler.RemoveItem)
		cartGroup.POST("/clear", r.cartHandler.ClearCart)
		cartGroup.POST("/checkout", r.cartHandler.Checkout)
	}

	ordersGroup := apiV1.Group("/orders", r.authMiddleware.Authenticate)
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)
	}

	rewardsGroup := apiV1.Group("/rewards", r.authMiddleware.Authenticate)
	{
		rewardsGroup.POST("/redeem-discount", r.rewardHandler.RedeemDiscount)
		rewardsGroup.POST("/purchase-amenity", r.rewardHandler.PurchaseAmenity)
		rewardsGroup.GET("/redemptions", r.rewardHandler.ListRedemptions)
		rewardsGroup.GET("/redemptions/:code/qr", r.rewardHandler.RedemptionQRCode)
		rewardsGroup.POST("/redemptions/:code/use", r.rewardHandler.UseRedemption)
	}
}
