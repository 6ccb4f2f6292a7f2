// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cookbook/internal/delivery/http/middleware"
	"cookbook/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	RecipeHandler   *handler.RecipeHandler
	CategoryHandler *handler.CategoryHandler
	UserHandler     *handler.UserHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	recipeHandler   *handler.RecipeHandler
	categoryHandler *handler.CategoryHandler
	userHandler     *handler.UserHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		recipeHandler:   params.RecipeHandler,
		categoryHandler: params.CategoryHandler,
		userHandler:     params.UserHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Route/method pairs mirror the public API contract: reads are anonymous,
// writes require an authenticated session.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account and session routes
	e.POST("/signup", r.authHandler.Signup)
	e.POST("/login", r.authHandler.Login)
	e.GET("/check-auth", r.authHandler.CheckAuth)
	e.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)

	// Category routes
	e.GET("/categories", r.categoryHandler.List)
	e.POST("/categories", r.categoryHandler.Create, r.authMiddleware.Authenticate)

	// Recipe routes
	e.GET("/recipes", r.recipeHandler.List)
	e.POST("/recipes", r.recipeHandler.Create, r.authMiddleware.Authenticate)
	e.GET("/recipes/:id", r.recipeHandler.Get)
	e.PUT("/recipes/:id", r.recipeHandler.Update, r.authMiddleware.Authenticate)
	e.DELETE("/recipes/:id", r.recipeHandler.Delete, r.authMiddleware.Authenticate)

	// User profile routes
	e.GET("/users/:id", r.userHandler.GetProfile, r.authMiddleware.Authenticate)
}
