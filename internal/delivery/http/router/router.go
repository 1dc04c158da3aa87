// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bookify/internal/delivery/http/middleware"
	"bookify/internal/delivery/http/router/handler"
	"bookify/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	CartHandler         *handler.CartHandler
	OrderHandler        *handler.OrderHandler
	PaymentHandler      *handler.PaymentHandler
	RewardHandler       *handler.RewardHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	cartHandler         *handler.CartHandler
	orderHandler        *handler.OrderHandler
	paymentHandler      *handler.PaymentHandler
	rewardHandler       *handler.RewardHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		cartHandler:         params.CartHandler,
		orderHandler:        params.OrderHandler,
		paymentHandler:      params.PaymentHandler,
		rewardHandler:       params.RewardHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	// Authenticated commerce routes
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup := apiGroup.Group("/cart")
		{
			cartGroup.GET("", r.cartHandler.GetCart)
			cartGroup.POST("/items", r.cartHandler.AddItem)
			cartGroup.DELETE("/items/:itemID", r.cartHandler.RemoveItem)
		}

		orderGroup := apiGroup.Group("/orders")
		{
			orderGroup.POST("/checkout", r.orderHandler.Checkout)
			orderGroup.GET("", r.orderHandler.ListOrders)
			orderGroup.GET("/:orderID", r.orderHandler.GetOrder)
			orderGroup.DELETE("/:orderID", r.orderHandler.DeleteOrder)
			orderGroup.GET("/:orderID/items/:itemID/pass", r.orderHandler.TicketPass)
		}

		paymentGroup := apiGroup.Group("/payments")
		{
			paymentGroup.POST("", r.paymentHandler.CreatePayment)
			paymentGroup.PUT("/:paymentID", r.paymentHandler.UpdatePayment)
			paymentGroup.DELETE("/:paymentID", r.paymentHandler.DeletePayment)
		}

		rewardGroup := apiGroup.Group("/rewards")
		{
			rewardGroup.GET("", r.rewardHandler.ListRewards)
			rewardGroup.POST("/:rewardID/redeem", r.rewardHandler.RedeemReward)
		}

		// Admin routes require the admin role on top of authentication
		adminGroup := apiGroup.Group("/payments/admin")
		adminGroup.Use(r.authMiddleware.RequireRole(constants.RoleAdmin))
		{
			adminGroup.PUT("/:paymentID", r.paymentHandler.VerifyPayment)
		}
	}
}
