// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kusina/internal/delivery/http/middleware"
	"kusina/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams collects the handlers and middleware Fx injects into the router.
type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	CatalogHandler      *handler.CatalogHandler
	CartHandler         *handler.CartHandler
	OrderHandler        *handler.OrderHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
		authGroup.POST("/refresh", r.params.UserHandler.RefreshToken)
		authGroup.POST("/logout", r.params.UserHandler.Logout)
	}

	// Catalog routes; browsing is public, maintenance is authenticated
	productGroup := e.Group("/products")
	{
		productGroup.GET("/categories", r.params.CatalogHandler.ListCategories)
		productGroup.GET("/category/:category", r.params.CatalogHandler.ListByCategory)
		productGroup.POST("", r.params.CatalogHandler.CreateProduct, r.params.AuthMiddleware.Authenticate)
		productGroup.PUT("/:id", r.params.CatalogHandler.UpdateProduct, r.params.AuthMiddleware.Authenticate)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.params.UserHandler.GetProfile)

		userGroup.GET("/cart", r.params.CartHandler.GetCart)
		userGroup.POST("/cart", r.params.CartHandler.AddToCart)
		userGroup.DELETE("/cart/:productID", r.params.CartHandler.RemoveFromCart)

		userGroup.POST("/orders", r.params.OrderHandler.CreateOrder)
		userGroup.GET("/orders", r.params.OrderHandler.ListOrders)
		userGroup.GET("/orders/:id", r.params.OrderHandler.GetOrder)
		userGroup.GET("/orders/:id/qr", r.params.OrderHandler.GetOrderQR)
	}
}
