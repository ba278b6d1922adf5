// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"inventory/internal/delivery/http/middleware"
	"inventory/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProductHandler  *handler.ProductHandler
	CategoryHandler *handler.CategoryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	productHandler  *handler.ProductHandler
	categoryHandler *handler.CategoryHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		productHandler:  params.ProductHandler,
		categoryHandler: params.CategoryHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Token inspection runs on every request; individual route groups then decide
// whether an anonymous request may proceed.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.authMiddleware.Authenticate)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes: signup and login are open, the account list is not.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/accounts", r.authHandler.ListAccounts, r.authMiddleware.RequireAuth)
	}

	// Product routes require authentication.
	productGroup := api.Group("/products")
	productGroup.Use(r.authMiddleware.RequireAuth)
	{
		productGroup.POST("", r.productHandler.Create)
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/search", r.productHandler.Search)
		productGroup.GET("/price-range", r.productHandler.PriceRange)
		productGroup.GET("/low-stock", r.productHandler.LowStock)
		productGroup.GET("/out-of-stock", r.productHandler.OutOfStock)
		productGroup.GET("/premium-stock", r.productHandler.PremiumStock)
		productGroup.GET("/count-stock", r.productHandler.CountStock)
		productGroup.GET("/total-value", r.productHandler.TotalValue)
		productGroup.GET("/category/:categoryId", r.productHandler.ListByCategory)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.PUT("/:id/category/:categoryId", r.productHandler.AssignCategory)
		productGroup.PUT("/:id", r.productHandler.Update)
		productGroup.DELETE("/:id", r.productHandler.Delete)
	}

	// Category routes require authentication.
	categoryGroup := api.Group("/categories")
	categoryGroup.Use(r.authMiddleware.RequireAuth)
	{
		categoryGroup.POST("", r.categoryHandler.Create)
		categoryGroup.GET("", r.categoryHandler.List)
		categoryGroup.GET("/:id", r.categoryHandler.Get)
		categoryGroup.PUT("/:id", r.categoryHandler.Update)
		categoryGroup.DELETE("/:id", r.categoryHandler.Delete)
	}
}
